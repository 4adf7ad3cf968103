package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vichu/gaming-addiction-api/internal/config"
	"github.com/vichu/gaming-addiction-api/internal/database"
	"github.com/vichu/gaming-addiction-api/internal/handlers"
	"github.com/vichu/gaming-addiction-api/internal/repository"
	"github.com/vichu/gaming-addiction-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Optional development question bank
	if cfg.SeedQuestions {
		if err := database.SeedQuestions(db); err != nil {
			log.Fatalf("Failed to seed questions: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	surveyService := services.NewSurveyService(questionRepo)
	assistantService := services.NewAssistantService(cfg.OpenAIAPIKey)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	surveyHandler := handlers.NewSurveyHandler(surveyService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// Initialize Gin router
	r := gin.Default()

	// The survey frontend is served from a different origin
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	r.Use(cors.New(corsConfig))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Gaming Addiction Survey API is running",
		})
	})

	// Account routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Survey routes
	r.GET("/gaming/questions/:ageGroup", surveyHandler.GetQuestions)
	r.POST("/submit", surveyHandler.Submit)

	// Guidance routes
	r.GET("/recommendations/:level", assistantHandler.GetRecommendation)
	r.POST("/chat", assistantHandler.Chat)

	// Start server
	addr := ":" + cfg.ServerPort
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
