package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthpulse/internal/models/response_models"
	"healthpulse/internal/services"
	"healthpulse/pkg/utils"
)

type DashboardController struct {
	accountService   services.AccountServiceInterface
	lifestyleService services.LifestyleServiceInterface
	healthAI         services.HealthAIServiceInterface
	weatherService   services.WeatherServiceInterface
}

func NewDashboardController(
	accountService services.AccountServiceInterface,
	lifestyleService services.LifestyleServiceInterface,
	healthAI services.HealthAIServiceInterface,
	weatherService services.WeatherServiceInterface,
) *DashboardController {
	return &DashboardController{
		accountService:   accountService,
		lifestyleService: lifestyleService,
		healthAI:         healthAI,
		weatherService:   weatherService,
	}
}

// GetDashboard assembles the profile, the last 7 log entries, personalized
// tips and, when the profile carries a location, weather-driven alerts.
func (d *DashboardController) GetDashboard(c *gin.Context) {
	accountID, ok := accountIDFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx := c.Request.Context()

	profile, err := d.accountService.ProfileOf(ctx, accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	recentLogs, err := d.lifestyleService.RecentLogs(ctx, accountID, 7)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	tips, origin := d.healthAI.PersonalizedTips(ctx, profile, recentLogs)

	resp := response_models.DashboardResponse{
		Profile:        profile,
		RecentLogs:     recentLogs,
		HealthTips:     tips,
		TipsOrigin:     string(origin),
		LocationAlerts: []response_models.HealthAlert{},
	}

	if profile.Location != "" {
		weather := d.weatherService.GetCurrent(ctx, profile.Location)
		alerts, _ := d.healthAI.LocationAlerts(ctx, weather, profile)
		resp.Weather = weather
		resp.LocationAlerts = alerts
	}

	utils.RespondSuccess(c, resp, "")
}
