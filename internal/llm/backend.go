package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/templui/lifecoach/internal/model"
)

// NoAnswer is returned when the provider responded but no text could be extracted.
const NoAnswer = "(no answer)"

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

var (
	ErrNoAPIKey        = errors.New("llm: api key is required")
	ErrUnknownProvider = errors.New("llm: unknown provider")
)

// Backend defines the interface that all completion providers must implement
type Backend interface {
	// Complete returns the completion text for message given the system prompt and the
	// prior conversation. Transport failures are errors; an empty completion is NoAnswer.
	Complete(ctx context.Context, systemPrompt string, history []model.Message, message string) (string, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// conversation drops history entries with unknown roles or no content.
func conversation(history []model.Message) []model.Message {
	out := make([]model.Message, 0, len(history))
	for _, m := range history {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		if m.Role != model.RoleUser && m.Role != model.RoleAssistant {
			continue
		}
		out = append(out, m)
	}
	return out
}

func extracted(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return NoAnswer
	}
	return text
}
