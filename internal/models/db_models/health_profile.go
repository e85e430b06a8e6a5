package db_models

// HealthProfile holds the demographic and lifestyle fields collected at
// registration. One per account, immutable after creation.
type HealthProfile struct {
	ID                uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	AccountID         uint   `gorm:"uniqueIndex" json:"account_id"`
	Age               int    `json:"age"`
	Gender            string `json:"gender"`
	Location          string `json:"location"`
	ExerciseFrequency string `json:"exercise_frequency"`
	SleepHours        int    `json:"sleep_hours"`
	DietType          string `json:"diet_type"`
}
