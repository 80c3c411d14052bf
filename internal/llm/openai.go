package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/templui/lifecoach/internal/model"
)

type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxRetries  int
}

// OpenAIBackend sends role-tagged chat completions to OpenAI or any compatible endpoint.
type OpenAIBackend struct {
	client      *openai.Client
	model       string
	temperature float64
	log         *slog.Logger
}

func NewOpenAIBackend(cfg OpenAIConfig) (*OpenAIBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: %w", ErrNoAPIKey)
	}
	if cfg.Model == "" {
		cfg.Model = openai.ChatModelGPT4oMini
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	client := openai.NewClient(opts...)
	return &OpenAIBackend{
		client:      &client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		log:         slog.Default().With("component", "llm", "provider", ProviderOpenAI),
	}, nil
}

func (b *OpenAIBackend) Name() string {
	return ProviderOpenAI
}

func (b *OpenAIBackend) Complete(ctx context.Context, systemPrompt string, history []model.Message, message string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
	}
	for _, m := range conversation(history) {
		if m.Role == model.RoleAssistant {
			messages = append(messages, openai.AssistantMessage(m.Content))
		} else {
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}
	messages = append(messages, openai.UserMessage(message))

	completion, err := b.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       b.model,
		Messages:    messages,
		Temperature: openai.Float(b.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		b.log.Warn("completion returned no choices", "model", b.model)
		return NoAnswer, nil
	}

	return extracted(completion.Choices[0].Message.Content), nil
}
