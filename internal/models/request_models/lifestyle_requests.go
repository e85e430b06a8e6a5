package request_models

type LogEntryRequest struct {
	Date            string  `json:"date"`
	SleepHours      float64 `json:"sleep_hours" binding:"min=0,max=24"`
	ExerciseMinutes int     `json:"exercise_minutes" binding:"min=0"`
	WaterGlasses    int     `json:"water_glasses" binding:"min=0"`
	Meals           string  `json:"meals" binding:"required"`
	Notes           string  `json:"notes"`
}

type ChatRequest struct {
	Message string `json:"message"`
}
