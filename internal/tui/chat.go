package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// returns a new chat screen
func NewChatModel() *ChatModel {
	ti := textinput.New()
	ti.Placeholder = "ask about scripture, faith, or life..."
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.TextStyle = userStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorGold)

	return &ChatModel{
		input:     ti,
		spinner:   sp,
		history:   []MessageModel{},
		remaining: -1,
		client:    NewChatClient(),
	}
}

func (m *ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ChatModel) Update(msg tea.Msg) (*ChatModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			prompt := strings.TrimSpace(m.input.Value())
			if prompt == "" || m.isFetching {
				return m, nil
			}

			m.isFetching = true
			m.input.SetValue("")
			m.history = append(m.history, MessageModel{Role: "user", Content: prompt})
			m.refreshViewport()

			return m, tea.Batch(m.spinner.Tick, m.client.AskCmd(prompt, m.conversationID))

		case "ctrl+l":
			m.history = []MessageModel{}
			m.conversationID = ""
			m.isFetching = false
			m.refreshViewport()
			return m, nil
		}

	case ChatReplyMsg:
		m.isFetching = false
		m.conversationID = msg.conversationID
		m.remaining = msg.remaining
		m.history = append(m.history, MessageModel{Role: "assistant", Content: msg.reply})
		m.refreshViewport()
		m.input.Focus()
		return m, nil

	case ChatErrorMsg:
		m.isFetching = false
		m.history = append(m.history, MessageModel{Role: "error", Content: msg.err.Error()})
		m.refreshViewport()
		m.input.Focus()
		return m, nil

	case spinner.TickMsg:
		if m.isFetching {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 10

		viewportHeight := msg.Height - 7
		if viewportHeight < 3 {
			viewportHeight = 3
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(msg.Width-8),
		)
		if err == nil {
			m.glamourRenderer = renderer
		}

		m.refreshViewport()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *ChatModel) View() string {
	if !m.ready {
		return infoStyle.Render("loading...")
	}

	var b strings.Builder

	header := lipgloss.NewStyle().Bold(true).Foreground(colorGold).Render("ADONAI")
	help := helpStyle.Render("[Enter: Send] [Ctrl+L: New Conversation] [Ctrl+C: Back]")

	padding := m.width - lipgloss.Width(header) - lipgloss.Width(help) - 2
	if padding < 1 {
		padding = 1
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, header, strings.Repeat(" ", padding), help))
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	inputBox := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorGray).
		Width(m.width - 4).
		Padding(0, 1).
		Render(m.input.View())

	b.WriteString(inputBox)
	b.WriteString("\n")

	b.WriteString(m.statusLine())

	return b.String()
}

func (m *ChatModel) statusLine() string {
	if m.isFetching {
		return infoStyle.Render(m.spinner.View() + " waiting for an answer...")
	}

	if m.remaining >= 0 {
		return infoStyle.Render(fmt.Sprintf("questions remaining today: %s", formatRemaining(m.remaining)))
	}

	return ""
}

// rebuilds the transcript and scrolls to the latest message
func (m *ChatModel) refreshViewport() {
	if !m.ready {
		return
	}

	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}

func (m *ChatModel) renderHistory() string {
	if len(m.history) == 0 {
		return infoStyle.Render("ask your first question below.")
	}

	var b strings.Builder

	for _, msg := range m.history {
		switch msg.Role {
		case "user":
			b.WriteString(userStyle.Render("you: ") + msg.Content)
			b.WriteString("\n")

		case "assistant":
			b.WriteString(m.renderMarkdown(msg.Content))
			b.WriteString("\n")

		case "error":
			b.WriteString(errorStyle.Render("error: ") + msg.Content)
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func (m *ChatModel) renderMarkdown(content string) string {
	if m.glamourRenderer == nil {
		return content
	}

	rendered, err := m.glamourRenderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
