package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateChat
)

// main TUI application model
type Model struct {
	state   AppState
	width   int
	height  int
	err     error
	welcome *Welcome
	chat    *ChatModel
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to transition to the chat state
type EnterChatMsg struct{}

// a single exchange rendered in the transcript
type MessageModel struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// interactive chat screen
type ChatModel struct {
	input           textinput.Model
	viewport        viewport.Model
	spinner         spinner.Model
	width           int
	height          int
	history         []MessageModel
	conversationID  string
	remaining       int
	isFetching      bool
	ready           bool
	glamourRenderer *glamour.TermRenderer
	client          *ChatClient
}

// sent when the server answers a prompt
type ChatReplyMsg struct {
	prompt         string
	reply          string
	conversationID string
	remaining      int
}

// sent when a chat request fails
type ChatErrorMsg struct {
	prompt string
	err    error
}

// welcome screen model
type Welcome struct {
	input    string
	commands []Command
}

// represents an available TUI command
type Command struct {
	Name        string
	Description string
}
