package model

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of the conversation history sent by the chat widget.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
