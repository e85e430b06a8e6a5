package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"healthpulse/internal/models/request_models"
	"healthpulse/internal/services"
	"healthpulse/pkg/utils"
)

type ChatController struct {
	accountService services.AccountServiceInterface
	healthAI       services.HealthAIServiceInterface
}

func NewChatController(
	accountService services.AccountServiceInterface,
	healthAI services.HealthAIServiceInterface,
) *ChatController {
	return &ChatController{
		accountService: accountService,
		healthAI:       healthAI,
	}
}

// Chat answers a health question. Empty messages are rejected before any
// external call is attempted.
func (h *ChatController) Chat(c *gin.Context) {
	accountID, ok := accountIDFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		utils.RespondError(c, http.StatusBadRequest, "Message cannot be empty")
		return
	}

	profile, err := h.accountService.ProfileOf(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	response, _ := h.healthAI.ChatResponse(c.Request.Context(), message, profile)
	utils.RespondSuccess(c, gin.H{"response": response}, "")
}
