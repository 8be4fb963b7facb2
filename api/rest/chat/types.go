package chat

import (
	"context"

	"github.com/adonai-ai/server/adonai/conversations"
	"github.com/adonai-ai/server/internal/llm"
)

// Request represents the request body for the chat endpoint
type Request struct {
	Prompt         string `json:"prompt"`
	ConversationID string `json:"conversationId"`
}

// Response represents the chat endpoint response. ConversationID is only
// present for authenticated callers with persistence available.
type Response struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId,omitempty"`
	Remaining      int    `json:"remaining"`
}

// ConversationStore is the slice of the conversations repository the chat
// handler needs. Nil when persistence is unavailable.
type ConversationStore interface {
	Create(ctx context.Context, userID, title string) (*conversations.Conversation, error)
	History(ctx context.Context, conversationID, userID string, limit int) ([]llm.Message, error)
	AppendMessage(ctx context.Context, conversationID, role, content string) error
	Touch(ctx context.Context, conversationID string) error
}
