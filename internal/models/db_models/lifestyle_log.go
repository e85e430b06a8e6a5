package db_models

import "time"

// LifestyleLog is one day's self-reported metrics. Append-only per account,
// ordered by insertion.
type LifestyleLog struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID       uint      `gorm:"index" json:"account_id"`
	Date            string    `json:"date"`
	SleepHours      float64   `json:"sleep_hours"`
	ExerciseMinutes int       `json:"exercise_minutes"`
	WaterGlasses    int       `json:"water_glasses"`
	Meals           string    `json:"meals"`
	Notes           string    `json:"notes"`
	LoggedAt        time.Time `json:"logged_at"`
}
