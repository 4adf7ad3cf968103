package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/vichu/gaming-addiction-api/internal/services"
)

func setupAssistantRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewAssistantHandler(services.NewAssistantService(""))

	r := gin.New()
	r.GET("/recommendations/:level", handler.GetRecommendation)
	r.POST("/chat", handler.Chat)
	return r
}

func TestGetRecommendation(t *testing.T) {
	router := setupAssistantRouter(t)

	path := "/recommendations/" + url.PathEscape("Severe Addiction")
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var rec struct {
		Level  string `json:"level"`
		Advice string `json:"advice"`
		Doctor struct {
			Name string `json:"name"`
		} `json:"doctor"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	require.Equal(t, "Severe Addiction", rec.Level)
	require.Equal(t, "Seek professional help immediately.", rec.Advice)
	require.NotEmpty(t, rec.Doctor.Name)
}

func TestGetRecommendation_UnknownLevel(t *testing.T) {
	router := setupAssistantRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/recommendations/Unknown", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestChat(t *testing.T) {
	router := setupAssistantRouter(t)

	w := postJSON(t, router, "/chat", map[string]string{
		"level":   "High Addiction",
		"message": "what are the symptoms?",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Contains(t, response["reply"], "thoughts about gaming")
}

func TestChat_EmptyMessage(t *testing.T) {
	router := setupAssistantRouter(t)

	w := postJSON(t, router, "/chat", map[string]string{
		"level":   "Low Addiction",
		"message": "   ",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}
