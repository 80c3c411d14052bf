package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/templui/lifecoach/internal/config"
)

// NewBackend creates a completion backend based on configuration
func NewBackend(ctx context.Context, cfg *config.Config) (Backend, error) {
	provider := cfg.AIProvider

	slog.Info("initializing llm backend", "provider", provider)

	switch provider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when using OpenAI provider: %w", ErrNoAPIKey)
		}
		backend, err := NewOpenAIBackend(OpenAIConfig{
			APIKey:      cfg.OpenAIAPIKey,
			BaseURL:     cfg.OpenAIBaseURL,
			Model:       cfg.OpenAIModel,
			Temperature: cfg.AITemperature,
			MaxRetries:  2,
		})
		if err != nil {
			return nil, err
		}
		return backend, nil

	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when using Gemini provider: %w", ErrNoAPIKey)
		}
		backend, err := NewGeminiBackend(ctx, GeminiConfig{
			APIKey:      cfg.GeminiAPIKey,
			Model:       cfg.GeminiModel,
			Temperature: cfg.AITemperature,
		})
		if err != nil {
			return nil, err
		}
		return backend, nil

	default:
		return nil, fmt.Errorf("%w: %s (supported: openai, gemini)", ErrUnknownProvider, provider)
	}
}
