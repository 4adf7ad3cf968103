package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vichu/gaming-addiction-api/internal/dto"
	apierrors "github.com/vichu/gaming-addiction-api/internal/errors"
	"github.com/vichu/gaming-addiction-api/internal/services"
)

// SurveyHandler coordinates question lookup and survey submission handlers.
type SurveyHandler struct {
	surveyService *services.SurveyService
}

// NewSurveyHandler creates a new SurveyHandler.
func NewSurveyHandler(surveyService *services.SurveyService) *SurveyHandler {
	return &SurveyHandler{
		surveyService: surveyService,
	}
}

// GetQuestions returns the question bank for an age group.
func (h *SurveyHandler) GetQuestions(c *gin.Context) {
	ageGroup := c.Param("ageGroup")

	questions, err := h.surveyService.QuestionsForAgeGroup(ageGroup)
	if err != nil {
		if errors.Is(err, services.ErrNoQuestions) {
			apierrors.NotFound(c, "No questions found for this age group")
			return
		}
		apierrors.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionDTOs(questions))
}

// Submit scores one survey submission.
func (h *SurveyHandler) Submit(c *gin.Context) {
	var req dto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.surveyService.Score(req.Responses)
	if err != nil {
		if errors.Is(err, services.ErrNoResponses) {
			apierrors.BadRequest(c, "No responses provided")
			return
		}
		apierrors.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}
