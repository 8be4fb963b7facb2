package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// completions can take a while upstream
const chatRequestTimeout = 60 * time.Second

// manages HTTP requests to the chat REST API
type ChatClient struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
}

// creates a new chat REST client. The access token is optional; without
// one the client chats anonymously against the daily quota.
func NewChatClient() *ChatClient {
	endpoint := os.Getenv("ADONAI_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:3000"
	}

	return &ChatClient{
		endpoint:    endpoint,
		accessToken: os.Getenv("ADONAI_ACCESS_TOKEN"),
		httpClient: &http.Client{
			Timeout: chatRequestTimeout,
		},
	}
}

// sends one prompt to the chat endpoint
func (c *ChatClient) Ask(ctx context.Context, prompt, conversationID string) (*ChatReplyMsg, error) {
	payload := chatRequest{
		Prompt:         prompt,
		ConversationID: conversationID,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/chat", c.endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp chatErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			if errResp.Message != "" {
				return nil, fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
			}
			return nil, fmt.Errorf("%s", errResp.Error)
		}
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &ChatReplyMsg{
		prompt:         prompt,
		reply:          result.Message,
		conversationID: result.ConversationID,
		remaining:      result.Remaining,
	}, nil
}

// returns a tea.Cmd that sends one prompt
func (c *ChatClient) AskCmd(prompt, conversationID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chatRequestTimeout)
		defer cancel()

		resp, err := c.Ask(ctx, prompt, conversationID)
		if err != nil {
			return ChatErrorMsg{prompt: prompt, err: err}
		}

		return *resp
	}
}

// REST API request/response types

type chatRequest struct {
	Prompt         string `json:"prompt"`
	ConversationID string `json:"conversationId,omitempty"`
}

type chatResponse struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId,omitempty"`
	Remaining      int    `json:"remaining"`
}

type chatErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
