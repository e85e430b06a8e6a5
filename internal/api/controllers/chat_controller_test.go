package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthpulse/internal/models/db_models"
	"healthpulse/internal/models/request_models"
	"healthpulse/internal/models/response_models"
	"healthpulse/internal/repositories"
	"healthpulse/internal/services"
)

type recordingHealthAI struct {
	reply     string
	chatCalls int
}

func (r *recordingHealthAI) PersonalizedTips(ctx context.Context, profile *db_models.HealthProfile, recentLogs []db_models.LifestyleLog) ([]string, services.Origin) {
	return nil, services.OriginFallback
}

func (r *recordingHealthAI) LocationAlerts(ctx context.Context, weather *response_models.WeatherSnapshot, profile *db_models.HealthProfile) ([]response_models.HealthAlert, services.Origin) {
	return nil, services.OriginFallback
}

func (r *recordingHealthAI) ComprehensiveTips(ctx context.Context, profile *db_models.HealthProfile, recentLogs []db_models.LifestyleLog) (response_models.ComprehensiveTips, services.Origin) {
	return response_models.ComprehensiveTips{}, services.OriginFallback
}

func (r *recordingHealthAI) DetailedLocationAlerts(ctx context.Context, weather *response_models.WeatherSnapshot, profile *db_models.HealthProfile) ([]response_models.DetailedHealthAlert, services.Origin) {
	return nil, services.OriginFallback
}

func (r *recordingHealthAI) ChatResponse(ctx context.Context, message string, profile *db_models.HealthProfile) (string, services.Origin) {
	r.chatCalls++
	return r.reply, services.OriginModel
}

func newChatRouter(t *testing.T, healthAI services.HealthAIServiceInterface, authed bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repositories.NewMemoryStore()
	accountService := services.NewAccountService(store)
	if authed {
		_, err := accountService.Register(context.Background(), request_models.RegisterRequest{
			Name: "Alex", Email: "alex@example.com", Password: "s3cret-pass",
			Age: 34, Gender: "female", ExerciseFrequency: "daily",
			SleepHours: 7, DietType: "balanced",
		})
		require.NoError(t, err)
	}

	router := gin.New()
	router.POST("/api/chat", func(c *gin.Context) {
		if authed {
			c.Set("account_id", uint(1))
		}
		NewChatController(accountService, healthAI).Chat(c)
	})
	return router
}

func postChat(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	fake := &recordingHealthAI{}
	router := newChatRouter(t, fake, true)

	for _, body := range []string{`{"message": ""}`, `{"message": "   "}`} {
		w := postChat(router, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Message cannot be empty")
	}
	assert.Zero(t, fake.chatCalls)
}

func TestChatRequiresAuth(t *testing.T) {
	fake := &recordingHealthAI{}
	router := newChatRouter(t, fake, false)

	w := postChat(router, `{"message": "hello"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, fake.chatCalls)
}

func TestChatReturnsResponse(t *testing.T) {
	fake := &recordingHealthAI{reply: "Aim for 7 to 9 hours of sleep."}
	router := newChatRouter(t, fake, true)

	w := postChat(router, `{"message": "how much sleep do I need?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, fake.chatCalls)

	var envelope struct {
		Status string `json:"status"`
		Data   struct {
			Response string `json:"response"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)
	assert.Equal(t, "Aim for 7 to 9 hours of sleep.", envelope.Data.Response)
}
