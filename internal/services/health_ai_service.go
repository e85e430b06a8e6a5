package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"healthpulse/internal/models/db_models"
	"healthpulse/internal/models/response_models"
	"healthpulse/pkg/utils"
)

// Origin tags generator output so callers and tests can tell a model reply
// from rule-based fallback content.
type Origin string

const (
	OriginModel    Origin = "model"
	OriginFallback Origin = "fallback"
)

// HealthAIServiceInterface produces tips, alerts and chat replies. Every
// operation is total: any provider failure, empty reply or malformed JSON is
// absorbed and replaced with deterministic fallback content.
type HealthAIServiceInterface interface {
	PersonalizedTips(ctx context.Context, profile *db_models.HealthProfile, recentLogs []db_models.LifestyleLog) ([]string, Origin)
	LocationAlerts(ctx context.Context, weather *response_models.WeatherSnapshot, profile *db_models.HealthProfile) ([]response_models.HealthAlert, Origin)
	ComprehensiveTips(ctx context.Context, profile *db_models.HealthProfile, recentLogs []db_models.LifestyleLog) (response_models.ComprehensiveTips, Origin)
	DetailedLocationAlerts(ctx context.Context, weather *response_models.WeatherSnapshot, profile *db_models.HealthProfile) ([]response_models.DetailedHealthAlert, Origin)
	ChatResponse(ctx context.Context, message string, profile *db_models.HealthProfile) (string, Origin)
}

type HealthAIService struct {
	client utils.CompletionClientInterface
}

func NewHealthAIService(client utils.CompletionClientInterface) HealthAIServiceInterface {
	return &HealthAIService{client: client}
}

const personalizedTipsPrompt = `You are a healthcare AI assistant. Based on the following user profile and recent lifestyle data,
provide 5 personalized preventive health tips. Focus on actionable advice that can improve their health.

User Context: %s

Provide your response as a JSON object with this format:
{"tips": ["tip1", "tip2", "tip3", "tip4", "tip5"]}`

func (s *HealthAIService) PersonalizedTips(ctx context.Context, profile *db_models.HealthProfile, recentLogs []db_models.LifestyleLog) ([]string, Origin) {
	if s.client == nil {
		return s.fallbackTips(profile), OriginFallback
	}

	prompt := fmt.Sprintf(personalizedTipsPrompt, buildUserContext(profile, recentLogs))

	raw, err := s.client.CompleteJSON(ctx, prompt)
	if err != nil || strings.TrimSpace(raw) == "" {
		log.Printf("Error generating personalized tips: %v", err)
		return s.fallbackTips(profile), OriginFallback
	}

	var reply struct {
		Tips *[]string `json:"tips"`
	}
	if err := json.Unmarshal([]byte(cleanJSONReply(raw)), &reply); err != nil || reply.Tips == nil {
		log.Printf("Personalized tips reply did not match schema: %v", err)
		return s.fallbackTips(profile), OriginFallback
	}
	return *reply.Tips, OriginModel
}

const locationAlertsPrompt = `You are a healthcare AI assistant. Based on the current weather conditions and user profile,
identify potential health risks and provide preventive advice.

Weather Data: %s
User Profile: Age %d, Gender %s, Location %s

Provide your response as a JSON object with this format:
{"alerts": [{"type": "warning/info", "title": "Alert Title", "message": "Alert message"}]}`

func (s *HealthAIService) LocationAlerts(ctx context.Context, weather *response_models.WeatherSnapshot, profile *db_models.HealthProfile) ([]response_models.HealthAlert, Origin) {
	if weather == nil {
		return []response_models.HealthAlert{}, OriginFallback
	}
	if s.client == nil {
		return s.fallbackAlerts(weather), OriginFallback
	}

	weatherJSON, _ := json.Marshal(weather)
	prompt := fmt.Sprintf(locationAlertsPrompt, weatherJSON, profile.Age, profile.Gender, profile.Location)

	raw, err := s.client.CompleteJSON(ctx, prompt)
	if err != nil || strings.TrimSpace(raw) == "" {
		log.Printf("Error generating location alerts: %v", err)
		return s.fallbackAlerts(weather), OriginFallback
	}

	var reply struct {
		Alerts *[]response_models.HealthAlert `json:"alerts"`
	}
	if err := json.Unmarshal([]byte(cleanJSONReply(raw)), &reply); err != nil || reply.Alerts == nil {
		log.Printf("Location alerts reply did not match schema: %v", err)
		return s.fallbackAlerts(weather), OriginFallback
	}
	return *reply.Alerts, OriginModel
}

const comprehensiveTipsPrompt = `You are a healthcare AI assistant. Based on the user's profile and lifestyle data,
provide comprehensive health tips organized by category.

User Context: %s

Provide your response as a JSON object with this format:
{
    "nutrition": ["tip1", "tip2", "tip3"],
    "exercise": ["tip1", "tip2", "tip3"],
    "sleep": ["tip1", "tip2", "tip3"],
    "mental_health": ["tip1", "tip2", "tip3"],
    "preventive_care": ["tip1", "tip2", "tip3"]
}`

func (s *HealthAIService) ComprehensiveTips(ctx context.Context, profile *db_models.HealthProfile, recentLogs []db_models.LifestyleLog) (response_models.ComprehensiveTips, Origin) {
	if s.client == nil {
		return fallbackComprehensiveTips(), OriginFallback
	}

	prompt := fmt.Sprintf(comprehensiveTipsPrompt, buildUserContext(profile, recentLogs))

	raw, err := s.client.CompleteJSON(ctx, prompt)
	if err != nil || strings.TrimSpace(raw) == "" {
		log.Printf("Error generating comprehensive tips: %v", err)
		return fallbackComprehensiveTips(), OriginFallback
	}

	var reply response_models.ComprehensiveTips
	if err := json.Unmarshal([]byte(cleanJSONReply(raw)), &reply); err != nil {
		log.Printf("Comprehensive tips reply did not match schema: %v", err)
		return fallbackComprehensiveTips(), OriginFallback
	}
	// A reply with no category filled is as good as a missing key.
	if len(reply.Nutrition) == 0 && len(reply.Exercise) == 0 && len(reply.Sleep) == 0 &&
		len(reply.MentalHealth) == 0 && len(reply.PreventiveCare) == 0 {
		return fallbackComprehensiveTips(), OriginFallback
	}
	return reply, OriginModel
}

const detailedAlertsPrompt = `You are a healthcare AI assistant. Analyze current weather conditions and provide detailed health alerts.

Weather Data: %s
User Profile: %s

Focus on:
- Temperature-related health risks
- Humidity and air quality concerns
- Seasonal disease prevention
- Activity recommendations

Provide your response as a JSON object with this format:
{
    "alerts": [
        {
            "type": "warning/info/danger",
            "category": "Temperature/Air Quality/Disease Prevention/Activity",
            "title": "Alert Title",
            "message": "Detailed alert message",
            "recommendations": ["recommendation1", "recommendation2"]
        }
    ]
}`

func (s *HealthAIService) DetailedLocationAlerts(ctx context.Context, weather *response_models.WeatherSnapshot, profile *db_models.HealthProfile) ([]response_models.DetailedHealthAlert, Origin) {
	if s.client == nil {
		return fallbackDetailedAlerts(), OriginFallback
	}

	weatherJSON, _ := json.Marshal(weather)
	profileJSON, _ := json.Marshal(profile)
	prompt := fmt.Sprintf(detailedAlertsPrompt, weatherJSON, profileJSON)

	raw, err := s.client.CompleteJSON(ctx, prompt)
	if err != nil || strings.TrimSpace(raw) == "" {
		log.Printf("Error generating detailed alerts: %v", err)
		return fallbackDetailedAlerts(), OriginFallback
	}

	var reply struct {
		Alerts *[]response_models.DetailedHealthAlert `json:"alerts"`
	}
	if err := json.Unmarshal([]byte(cleanJSONReply(raw)), &reply); err != nil || reply.Alerts == nil {
		log.Printf("Detailed alerts reply did not match schema: %v", err)
		return fallbackDetailedAlerts(), OriginFallback
	}
	return *reply.Alerts, OriginModel
}

const chatSystemPrompt = `You are a helpful healthcare AI assistant. Answer health-related questions with accurate,
helpful information while emphasizing that you're not replacing professional medical advice.

User Profile: Age %d, Gender %s

Guidelines:
- Provide helpful, evidence-based health information
- Always recommend consulting healthcare professionals for serious concerns
- Be supportive and encouraging
- Keep responses concise but informative`

func (s *HealthAIService) ChatResponse(ctx context.Context, message string, profile *db_models.HealthProfile) (string, Origin) {
	if s.client == nil {
		return fallbackChatResponse, OriginFallback
	}

	systemPrompt := fmt.Sprintf(chatSystemPrompt, profile.Age, profile.Gender)

	content, err := s.client.Complete(ctx, systemPrompt, message)
	if err != nil || strings.TrimSpace(content) == "" {
		log.Printf("Error generating chat response: %v", err)
		return fallbackChatResponse, OriginFallback
	}
	return content, OriginModel
}

// buildUserContext summarizes the profile and, when logs exist, the window
// averages: sleep to one decimal, exercise and water to whole numbers.
func buildUserContext(profile *db_models.HealthProfile, recentLogs []db_models.LifestyleLog) string {
	context := fmt.Sprintf("Age: %d, Gender: %s, Location: %s, Exercise Frequency: %s, Typical Sleep: %d hours, Diet Type: %s",
		profile.Age, profile.Gender, profile.Location, profile.ExerciseFrequency, profile.SleepHours, profile.DietType)

	if len(recentLogs) > 0 {
		var sleep, exercise, water float64
		for _, entry := range recentLogs {
			sleep += entry.SleepHours
			exercise += float64(entry.ExerciseMinutes)
			water += float64(entry.WaterGlasses)
		}
		n := float64(len(recentLogs))
		context += fmt.Sprintf("\nRecent averages: Sleep: %.1fh, Exercise: %.0fmin, Water: %.0f glasses",
			sleep/n, exercise/n, water/n)
	}

	return context
}

// cleanJSONReply strips markdown fences some providers wrap around JSON.
func cleanJSONReply(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

func (s *HealthAIService) fallbackTips(profile *db_models.HealthProfile) []string {
	tips := []string{
		"Stay hydrated by drinking at least 8 glasses of water daily",
		"Aim for 7-9 hours of quality sleep each night",
		"Include at least 30 minutes of physical activity in your daily routine",
		"Eat a balanced diet rich in fruits, vegetables, and whole grains",
		"Practice stress management techniques like deep breathing or meditation",
	}

	if profile.Age > 50 {
		tips = append(tips, "Schedule regular health check-ups and screenings")
	}
	if profile.SleepHours < 7 {
		tips = append(tips, "Focus on improving your sleep quality and duration")
	}

	return tips
}

func (s *HealthAIService) fallbackAlerts(weather *response_models.WeatherSnapshot) []response_models.HealthAlert {
	alerts := []response_models.HealthAlert{}

	if weather.Temperature > 30 {
		alerts = append(alerts, response_models.HealthAlert{
			Type:    "warning",
			Title:   "High Temperature Alert",
			Message: "Stay hydrated and avoid prolonged sun exposure",
		})
	}
	if weather.Humidity > 80 {
		alerts = append(alerts, response_models.HealthAlert{
			Type:    "info",
			Title:   "High Humidity",
			Message: "Take breaks in air-conditioned spaces when possible",
		})
	}

	return alerts
}

func fallbackComprehensiveTips() response_models.ComprehensiveTips {
	return response_models.ComprehensiveTips{
		Nutrition: []string{
			"Eat 5 servings of fruits and vegetables daily",
			"Choose whole grains over refined grains",
			"Limit processed foods and added sugars",
		},
		Exercise: []string{
			"Aim for 150 minutes of moderate exercise weekly",
			"Include strength training 2-3 times per week",
			"Take regular breaks from sitting",
		},
		Sleep: []string{
			"Maintain a consistent sleep schedule",
			"Create a relaxing bedtime routine",
			"Keep your bedroom cool and dark",
		},
		MentalHealth: []string{
			"Practice mindfulness or meditation",
			"Stay connected with friends and family",
			"Seek help when feeling overwhelmed",
		},
		PreventiveCare: []string{
			"Schedule regular check-ups with your doctor",
			"Stay up-to-date with vaccinations",
			"Monitor your vital signs regularly",
		},
	}
}

func fallbackDetailedAlerts() []response_models.DetailedHealthAlert {
	return []response_models.DetailedHealthAlert{
		{
			Type:            "info",
			Category:        "General Health",
			Title:           "Daily Health Reminder",
			Message:         "Remember to stay hydrated and maintain your daily health routines",
			Recommendations: []string{"Drink plenty of water", "Get adequate sleep", "Stay active"},
		},
	}
}

const fallbackChatResponse = "I understand you're asking about health topics. While I'd love to help, " +
	"I recommend consulting with a qualified healthcare professional for personalized advice. " +
	"In the meantime, focus on the basics: stay hydrated, get enough sleep, eat well, " +
	"and stay active. Is there anything specific about your lifestyle habits I can help you track?"
