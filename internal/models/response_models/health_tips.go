package response_models

// ComprehensiveTips groups tips into the five fixed categories the tips page
// renders.
type ComprehensiveTips struct {
	Nutrition      []string `json:"nutrition"`
	Exercise       []string `json:"exercise"`
	Sleep          []string `json:"sleep"`
	MentalHealth   []string `json:"mental_health"`
	PreventiveCare []string `json:"preventive_care"`
}

type HealthAlert struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type DetailedHealthAlert struct {
	Type            string   `json:"type"`
	Category        string   `json:"category"`
	Title           string   `json:"title"`
	Message         string   `json:"message"`
	Recommendations []string `json:"recommendations"`
}
