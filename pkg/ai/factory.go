package ai

import (
	"fmt"

	"donorhub-backend/pkg/gemini"
)

// DynamicConfig selects the AI provider. The Ollama settings are runtime
// getters so the settings API can change them without a restart.
type DynamicConfig struct {
	Provider         ProviderType
	GeminiAPIKey     string
	GetOllamaBaseURL func() string
	GetOllamaModel   func() string
}

// NewAssistantServiceWithDynamicConfig creates an AssistantService based on
// the config. This is the factory function - switch AI provider by changing
// cfg.Provider.
func NewAssistantServiceWithDynamicConfig(cfg DynamicConfig) (AssistantService, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return gemini.NewGeminiService(cfg.GeminiAPIKey), nil

	case ProviderOllama:
		return NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, cfg.GetOllamaModel), nil

	default:
		// Default to Gemini if API key is available, otherwise Ollama
		if cfg.GeminiAPIKey != "" {
			return gemini.NewGeminiService(cfg.GeminiAPIKey), nil
		}
		return NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, cfg.GetOllamaModel), nil
	}
}
