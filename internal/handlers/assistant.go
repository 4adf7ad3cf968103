package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vichu/gaming-addiction-api/internal/dto"
	apierrors "github.com/vichu/gaming-addiction-api/internal/errors"
	"github.com/vichu/gaming-addiction-api/internal/services"
)

// AssistantHandler serves the post-assessment guidance endpoints.
type AssistantHandler struct {
	assistantService *services.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistantService *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
	}
}

// GetRecommendation returns the guidance for an addiction level.
func (h *AssistantHandler) GetRecommendation(c *gin.Context) {
	level := c.Param("level")

	rec, err := h.assistantService.Recommendation(level)
	if err != nil {
		if errors.Is(err, services.ErrUnknownLevel) {
			apierrors.NotFound(c, "No recommendation for this addiction level")
			return
		}
		apierrors.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, rec)
}

// Chat answers one assistant message.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		apierrors.BadRequest(c, "Message is required")
		return
	}

	reply, err := h.assistantService.Reply(c.Request.Context(), req.Level, req.Message)
	if err != nil {
		apierrors.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
