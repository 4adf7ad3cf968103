package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	ServerPort    string
	GinMode       string
	SeedQuestions bool
	OpenAIAPIKey  string
}

func Load() *Config {
	// Optional .env file for local development; real deployments set env vars directly.
	_ = godotenv.Load()

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "mysql"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "root"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "gaming"),
		ServerPort:    getEnv("SERVER_PORT", "5000"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		SeedQuestions: getEnv("SEED_QUESTIONS", "false") == "true",
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
