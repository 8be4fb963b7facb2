package llm

import "context"

// chat roles accepted by the completion API
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversational turn sent to or received from the
// completion API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Generator produces a single assistant reply for a prompt with prior turns.
type Generator interface {
	GenerateReply(ctx context.Context, history []Message, prompt string) (string, error)
}
