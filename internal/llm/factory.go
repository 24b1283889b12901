package llm

import (
	"fmt"

	"arogya-mitr/internal/config"
)

// NewFromConfig builds the generation client for the configured provider.
func NewFromConfig(cfg *config.Config) (Client, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini, "":
		return NewGemini(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel), nil
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}
