package request_models

type RegisterRequest struct {
	Name              string `json:"name" binding:"required,max=100"`
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required,min=6"`
	Age               int    `json:"age" binding:"required,min=1,max=120"`
	Gender            string `json:"gender" binding:"required"`
	Location          string `json:"location"`
	ExerciseFrequency string `json:"exercise_frequency" binding:"required"`
	SleepHours        int    `json:"sleep_hours" binding:"required,min=1,max=24"`
	DietType          string `json:"diet_type" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
