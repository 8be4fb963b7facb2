package conversations

import (
	"context"
	"errors"

	"github.com/adonai-ai/server/internal/llm"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrConversationNotFound = errors.New("conversation not found")

// number of prior turns included as completion context
const HistoryLimit = 20

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// creates a conversation titled from the opening prompt
func (r *Repository) Create(ctx context.Context, userID, title string) (*Conversation, error) {
	var conv Conversation

	err := r.db.QueryRow(ctx, queryCreate, userID, title).Scan(
		&conv.ID,
		&conv.UserID,
		&conv.Title,
		&conv.CreatedAt,
		&conv.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &conv, nil
}

// lists the user's conversations, most recently updated first
func (r *Repository) List(ctx context.Context, userID string) ([]Conversation, error) {
	rows, err := r.db.Query(ctx, queryList, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	conversations := []Conversation{}

	for rows.Next() {
		var conv Conversation

		err := rows.Scan(&conv.ID, &conv.UserID, &conv.Title, &conv.CreatedAt, &conv.UpdatedAt)
		if err != nil {
			return nil, err
		}

		conversations = append(conversations, conv)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return conversations, nil
}

// fetches a conversation by ID, scoped to its owner
func (r *Repository) Get(ctx context.Context, conversationID, userID string) (*Conversation, error) {
	var conv Conversation

	err := r.db.QueryRow(ctx, queryGet, conversationID, userID).Scan(
		&conv.ID,
		&conv.UserID,
		&conv.Title,
		&conv.CreatedAt,
		&conv.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrConversationNotFound
		}

		return nil, err
	}

	return &conv, nil
}

// fetches a conversation with its full ordered message list
func (r *Repository) GetWithMessages(ctx context.Context, conversationID, userID string) (*ConversationWithMessages, error) {
	conv, err := r.Get(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, queryMessages, conversationID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	messages := []Message{}

	for rows.Next() {
		var m Message

		err := rows.Scan(&m.ID, &m.Role, &m.Content, &m.CreatedAt)
		if err != nil {
			return nil, err
		}

		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &ConversationWithMessages{Conversation: *conv, Messages: messages}, nil
}

// renames a conversation, scoped to its owner
func (r *Repository) UpdateTitle(ctx context.Context, conversationID, userID, title string) error {
	tag, err := r.db.Exec(ctx, queryUpdateTitle, title, conversationID, userID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrConversationNotFound
	}

	return nil
}

// deletes a conversation and its messages (cascade), scoped to its owner
func (r *Repository) Delete(ctx context.Context, conversationID, userID string) error {
	tag, err := r.db.Exec(ctx, queryDelete, conversationID, userID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrConversationNotFound
	}

	return nil
}

// bumps the conversation's updated_at timestamp
func (r *Repository) Touch(ctx context.Context, conversationID string) error {
	_, err := r.db.Exec(ctx, queryTouch, conversationID)
	return err
}

// appends a turn to a conversation
func (r *Repository) AppendMessage(ctx context.Context, conversationID, role, content string) error {
	_, err := r.db.Exec(ctx, queryAppendMessage, conversationID, role, content)
	return err
}

// History returns up to limit of the newest turns for a conversation,
// oldest-first, as (role, content) pairs. Ownership is verified first:
// a conversation that does not exist or belongs to another account yields
// ErrConversationNotFound, never another caller's messages.
func (r *Repository) History(ctx context.Context, conversationID, userID string, limit int) ([]llm.Message, error) {
	if _, err := r.Get(ctx, conversationID, userID); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, queryHistory, conversationID, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	history := []llm.Message{}

	for rows.Next() {
		var m llm.Message

		if err := rows.Scan(&m.Role, &m.Content); err != nil {
			return nil, err
		}

		history = append(history, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
