package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vichu/gaming-addiction-api/internal/dto"
	apierrors "github.com/vichu/gaming-addiction-api/internal/errors"
	"github.com/vichu/gaming-addiction-api/internal/services"
)

// AuthHandler coordinates registration and login HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	_, err := h.authService.Register(services.RegisterInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			apierrors.ValidationFailed(c, validationErr.Fields)
			return
		}
		apierrors.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful! Redirecting to login...",
	})
}

// Login authenticates a user by username or email.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		UsernameOrEmail: req.UsernameOrEmail,
		Password:        req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, "Invalid username/email or password")
			return
		}
		apierrors.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful!",
		"username": user.Username,
	})
}
