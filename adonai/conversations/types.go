package conversations

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles conversation and message database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a conversation owned by an account
type Conversation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// represents a single stored turn; append-only, ordered by creation time
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// a conversation together with its full ordered message list
type ConversationWithMessages struct {
	Conversation
	Messages []Message `json:"messages"`
}
