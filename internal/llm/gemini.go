package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/templui/lifecoach/internal/model"
	"google.golang.org/genai"
)

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float64
}

// GeminiBackend sends one concatenated prompt per turn.
type GeminiBackend struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGeminiBackend(ctx context.Context, cfg GeminiConfig) (*GeminiBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: %w", ErrNoAPIKey)
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiBackend{
		client:      client,
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
	}, nil
}

func (b *GeminiBackend) Name() string {
	return ProviderGemini
}

func (b *GeminiBackend) Complete(ctx context.Context, systemPrompt string, history []model.Message, message string) (string, error) {
	prompt := buildPrompt(systemPrompt, history, message)

	resp, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(b.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil {
		return NoAnswer, nil
	}

	return extracted(resp.Text()), nil
}

// buildPrompt flattens the conversation into a single transcript ending on the coach's turn.
func buildPrompt(systemPrompt string, history []model.Message, message string) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")

	for _, m := range conversation(history) {
		if m.Role == model.RoleAssistant {
			b.WriteString("Coach: ")
		} else {
			b.WriteString("User: ")
		}
		b.WriteString(strings.TrimSpace(m.Content))
		b.WriteString("\n")
	}

	b.WriteString("User: ")
	b.WriteString(strings.TrimSpace(message))
	b.WriteString("\nCoach:")
	return b.String()
}
