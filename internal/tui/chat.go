package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evalizada/manat/internal/assistant"
	"github.com/evalizada/manat/internal/model"
	"github.com/evalizada/manat/internal/tui/theme"
)

// chatInput wraps the assistant overlay's text input.
type chatInput struct {
	input textinput.Model
}

func newChatInput() chatInput {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 200
	ti.Prompt = "> "
	return chatInput{input: ti}
}

// updateChat handles key input while the assistant overlay is open.
func (a App) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.chatOpen = false
		a.chatInput.input.Blur()
		return a, nil
	case "enter":
		text := a.chatInput.input.Value()
		if !a.chat.Send(text) {
			return a, nil
		}
		a.chatInput.input.SetValue("")
		return a, tea.Tick(assistant.ReplyDelay, func(time.Time) tea.Msg {
			return assistantReplyMsg{}
		})
	}

	var cmd tea.Cmd
	a.chatInput.input, cmd = a.chatInput.input.Update(msg)
	return a, cmd
}

// viewChat renders the assistant conversation as a full-screen overlay.
func (a App) viewChat() string {
	t := theme.Active
	cw := a.contentWidth()
	inner := cw - 6

	title := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true).
		Render("AI Assistant")

	userStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	botStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Width(inner)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var lines []string
	lines = append(lines, title, "")
	for _, m := range a.chat.Messages() {
		label := botStyle.Render("assistant")
		if m.Sender == model.SenderUser {
			label = userStyle.Render(a.ledger.Username())
		}
		lines = append(lines, label, textStyle.Render(m.Text), "")
	}
	if a.chat.Pending() > 0 {
		lines = append(lines, dimStyle.Render("assistant is typing..."), "")
	}

	transcript := strings.Join(lines, "\n")

	// Keep the newest messages visible when the transcript outgrows the box.
	maxTranscript := a.height - 8
	if maxTranscript > 0 {
		rows := strings.Split(transcript, "\n")
		if len(rows) > maxTranscript {
			transcript = strings.Join(rows[len(rows)-maxTranscript:], "\n")
		}
	}

	input := a.chatInput.input.View()
	hint := dimStyle.Render("[enter]send  [esc]close")

	body := lipgloss.JoinVertical(lipgloss.Left, transcript, "", input, hint)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2).
		Width(cw - 2).
		Render(body)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}
