package health_ai_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"healthpulse/internal/services"
	"healthpulse/pkg/utils"
)

var Module = fx.Provide(provideCompletionClient, provideHealthAIService)

// provideCompletionClient builds the configured AI provider. A missing key
// yields a nil client, which puts the generator in fallback mode.
func provideCompletionClient() utils.CompletionClientInterface {
	if os.Getenv("AI_PROVIDER") == "gemini" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			log.Println("GEMINI_API_KEY not set; health tips run in fallback mode")
			return nil
		}
		client, err := utils.NewGeminiCompletionClient(apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Printf("Gemini client init failed, falling back to static tips: %v", err)
			return nil
		}
		return client
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("OPENAI_API_KEY not set; health tips run in fallback mode")
		return nil
	}
	return utils.NewOpenAICompletionClient(apiKey, os.Getenv("OPENAI_MODEL"))
}

func provideHealthAIService(client utils.CompletionClientInterface) services.HealthAIServiceInterface {
	return services.NewHealthAIService(client)
}
