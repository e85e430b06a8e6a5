package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthpulse/internal/services"
	"healthpulse/pkg/utils"
)

type HealthTipsController struct {
	accountService   services.AccountServiceInterface
	lifestyleService services.LifestyleServiceInterface
	healthAI         services.HealthAIServiceInterface
	weatherService   services.WeatherServiceInterface
}

func NewHealthTipsController(
	accountService services.AccountServiceInterface,
	lifestyleService services.LifestyleServiceInterface,
	healthAI services.HealthAIServiceInterface,
	weatherService services.WeatherServiceInterface,
) *HealthTipsController {
	return &HealthTipsController{
		accountService:   accountService,
		lifestyleService: lifestyleService,
		healthAI:         healthAI,
		weatherService:   weatherService,
	}
}

// ComprehensiveTips returns category-grouped tips over the last 14 entries.
func (h *HealthTipsController) ComprehensiveTips(c *gin.Context) {
	accountID, ok := accountIDFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx := c.Request.Context()

	profile, err := h.accountService.ProfileOf(ctx, accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	recentLogs, err := h.lifestyleService.RecentLogs(ctx, accountID, 14)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	tips, origin := h.healthAI.ComprehensiveTips(ctx, profile, recentLogs)
	utils.RespondSuccess(c, gin.H{"tips": tips, "origin": origin}, "")
}

// DetailedAlerts returns weather-driven health alerts for the profile's
// location.
func (h *HealthTipsController) DetailedAlerts(c *gin.Context) {
	accountID, ok := accountIDFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx := c.Request.Context()

	profile, err := h.accountService.ProfileOf(ctx, accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if profile.Location == "" {
		utils.RespondSuccess(c, gin.H{"alerts": []string{}}, "No location on profile")
		return
	}

	weather := h.weatherService.GetCurrent(ctx, profile.Location)
	alerts, origin := h.healthAI.DetailedLocationAlerts(ctx, weather, profile)
	utils.RespondSuccess(c, gin.H{"alerts": alerts, "origin": origin, "weather": weather}, "")
}
