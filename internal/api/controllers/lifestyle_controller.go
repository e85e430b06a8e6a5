package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthpulse/internal/models/request_models"
	"healthpulse/internal/services"
	"healthpulse/pkg/utils"
)

type LifestyleController struct {
	lifestyleService services.LifestyleServiceInterface
}

func NewLifestyleController(lifestyleService services.LifestyleServiceInterface) *LifestyleController {
	return &LifestyleController{lifestyleService: lifestyleService}
}

// AddLog appends today's entry to the account's lifestyle log.
func (l *LifestyleController) AddLog(c *gin.Context) {
	accountID, ok := accountIDFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.LogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := l.lifestyleService.AppendLog(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Lifestyle data logged successfully!")
}

// ListLogs returns the account's full log history in insertion order.
func (l *LifestyleController) ListLogs(c *gin.Context) {
	accountID, ok := accountIDFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	logs, err := l.lifestyleService.History(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, logs, "")
}

// ChartData returns the last 7 entries as index-aligned chart series.
func (l *LifestyleController) ChartData(c *gin.Context) {
	accountID, ok := accountIDFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	chart, err := l.lifestyleService.ChartData(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// Chart payload is consumed directly by the frontend chart library, so it
	// skips the envelope.
	c.JSON(http.StatusOK, chart)
}
