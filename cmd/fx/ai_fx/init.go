package ai_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"lakbay/pkg/utils"
)

var Module = fx.Provide(ProvideItineraryClient)

// AIConfig holds configuration for itinerary generation clients
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideItineraryClient creates an AI client based on environment variables
func ProvideItineraryClient() (utils.ItineraryClientInterface, error) {
	config := getAIConfig()

	log.Printf("Initializing %s itinerary client with model: %s", config.Provider, config.Model)

	return utils.NewItineraryClient(config.Provider, config.APIKey, config.Model)
}

// getAIConfig reads configuration from environment variables
func getAIConfig() AIConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini") // Default to free Gemini

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return AIConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
