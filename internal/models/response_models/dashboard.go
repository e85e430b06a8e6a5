package response_models

import "healthpulse/internal/models/db_models"

type DashboardResponse struct {
	Profile        *db_models.HealthProfile `json:"profile"`
	RecentLogs     []db_models.LifestyleLog `json:"recent_logs"`
	HealthTips     []string                 `json:"health_tips"`
	TipsOrigin     string                   `json:"tips_origin"`
	LocationAlerts []HealthAlert            `json:"location_alerts"`
	Weather        *WeatherSnapshot         `json:"weather,omitempty"`
}

type ChartData struct {
	Labels       []string  `json:"labels"`
	SleepData    []float64 `json:"sleep_data"`
	ExerciseData []int     `json:"exercise_data"`
	WaterData    []int     `json:"water_data"`
}
