package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/courtside/pkg/chat"
	"github.com/jwebster45206/courtside/pkg/session"
)

const (
	AgentName       = "Courtside"
	PlaceHolderText = "Try: 'Compare LeBron James and Stephen Curry 2021' or 'Top scorers 2022'"
)

// ConsoleUI is the BubbleTea model that runs the chat UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config   *ConsoleConfig
	client   *http.Client
	session  *session.Session
	viewport viewport.Model
	textarea textarea.Model
	ready    bool
	width    int
	height   int
	err      error
	loading  bool
}

type chatResponseMsg struct {
	response *chat.ChatResponse
	err      error
}

type sessionResetMsg struct {
	session *session.Session
	err     error
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")). // orange
			Bold(true)

	botStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client, s *session.Session) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = chat.MaxMessageLength
	ta.SetWidth(50)
	ta.SetHeight(2)
	ta.ShowLineNumbers = false

	vp := viewport.New(50, 20)
	vp.MouseWheelEnabled = true

	return ConsoleUI{
		config:   cfg,
		client:   client,
		session:  s,
		textarea: ta,
		viewport: vp,
	}
}

func (m *ConsoleUI) writeChatContent() {
	width := m.viewport.Width - 4
	if width < 20 {
		width = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("🏀 COURTSIDE") + "\n\n")
	content.WriteString("Ask about NBA players, stats, comparisons, top scorers, or player info.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", width)) + "\n\n")

	for _, msg := range m.session.ChatHistory {
		switch msg.Role {
		case chat.ChatRoleUser:
			content.WriteString(userStyle.Render("You: ") + wordwrap.String(msg.Content, width-5) + "\n\n")
		case chat.ChatRoleAgent:
			wrapped := wordwrap.String(msg.Content, width-len(AgentName)-2)
			content.WriteString(botStyle.Render(AgentName+": ") + wrapped + "\n\n")
		}
	}

	if m.loading {
		content.WriteString(loadingStyle.Render("Checking the stat sheets...") + "\n")
	}
	if m.err != nil {
		content.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.width - 4
		m.viewport.Height = m.height - 6
		m.textarea.SetWidth(m.width - 6)
		m.ready = true
		m.writeChatContent()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlR:
			// Clear chat: reset remembered player/season and transcript.
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.err = nil
			m.writeChatContent()
			return m, m.clearChat()

		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()
			m.loading = true
			m.err = nil
			m.session.Append(chat.ChatRoleUser, input)
			m.writeChatContent()
			return m, m.sendChatMessage(input)
		}

	case chatResponseMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.session.ChatHistory = msg.response.ChatHistory
		}
		m.writeChatContent()

	case sessionResetMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.session = msg.session
		}
		m.writeChatContent()
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

func (m ConsoleUI) sendChatMessage(message string) tea.Cmd {
	return func() tea.Msg {
		resp, err := sendChat(m.client, m.config.APIBaseURL, m.session.ID, message)
		return chatResponseMsg{resp, err}
	}
}

func (m ConsoleUI) clearChat() tea.Cmd {
	return func() tea.Msg {
		s, err := resetSession(m.client, m.config.APIBaseURL, m.session.ID)
		return sessionResetMsg{s, err}
	}
}

func (m ConsoleUI) View() string {
	if !m.ready {
		return "Loading..."
	}
	footer := promptStyle.Render("Enter: send  •  Ctrl+R: clear chat  •  Ctrl+C: quit")
	return fmt.Sprintf("%s\n\n%s\n%s", m.viewport.View(), m.textarea.View(), footer)
}
