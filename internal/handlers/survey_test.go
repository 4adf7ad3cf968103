package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/vichu/gaming-addiction-api/internal/dto"
	"github.com/vichu/gaming-addiction-api/internal/models"
	"github.com/vichu/gaming-addiction-api/internal/repository"
	"github.com/vichu/gaming-addiction-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSurveyTestEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Question{}, &models.Answer{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	surveyService := services.NewSurveyService(repository.NewQuestionRepository(db))
	handler := NewSurveyHandler(surveyService)

	r := gin.New()
	r.GET("/gaming/questions/:ageGroup", handler.GetQuestions)
	r.POST("/submit", handler.Submit)

	return r, db
}

func TestGetQuestions_ReturnsNestedShape(t *testing.T) {
	router, db := setupSurveyTestEnv(t)

	require.NoError(t, db.Create(&models.Question{
		AgeGroup: "21-30",
		Text:     "How often does gaming cut into your work?",
		Answers: []models.Answer{
			{Text: "Never", Score: 0},
			{Text: "Often", Score: 4},
		},
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/gaming/questions/21-30", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var questions []dto.QuestionDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))
	require.Len(t, questions, 1)
	require.Equal(t, "How often does gaming cut into your work?", questions[0].Question)
	require.Len(t, questions[0].Answers, 2)
	require.Equal(t, "Often", questions[0].Answers[1].Text)
	require.Equal(t, 4, questions[0].Answers[1].Score)
}

func TestGetQuestions_EmptyAgeGroupIs404(t *testing.T) {
	router, _ := setupSurveyTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/gaming/questions/90-120", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error": "No questions found for this age group"}`, w.Body.String())
}

func TestSubmit_ScoresAndClassifies(t *testing.T) {
	router, _ := setupSurveyTestEnv(t)

	tests := []struct {
		scores []int
		total  int
		level  string
	}{
		{[]int{5, 5, 5}, 15, "Low Addiction"},
		{[]int{5, 5, 6}, 16, "Moderate Addiction"},
		{[]int{45}, 45, "High Addiction"},
		{[]int{46}, 46, "Severe Addiction"},
	}

	for _, tt := range tests {
		responses := make([]services.SurveyResponse, len(tt.scores))
		for i, s := range tt.scores {
			responses[i] = services.SurveyResponse{Score: s}
		}

		w := postJSON(t, router, "/submit", dto.SubmitRequest{Responses: responses})
		require.Equal(t, http.StatusOK, w.Code)

		var result struct {
			TotalScore int    `json:"total_score"`
			Level      string `json:"level"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Equal(t, tt.total, result.TotalScore)
		require.Equal(t, tt.level, result.Level)
	}
}

func TestSubmit_EmptyResponses(t *testing.T) {
	router, _ := setupSurveyTestEnv(t)

	w := postJSON(t, router, "/submit", dto.SubmitRequest{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error": "No responses provided"}`, w.Body.String())

	w = postJSON(t, router, "/submit", map[string]interface{}{"responses": []interface{}{}})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
