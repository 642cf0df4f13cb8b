package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Padding(0, 1)
	statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Padding(0, 1)
)

type dismissMsg struct {
	id int
}

// notifier is a single-slot status line. Only the timer recorded in pending
// may clear the message; ticks from superseded displays are ignored.
type notifier struct {
	text    string
	isError bool
	pending int
	lastID  int
	delay   time.Duration
}

func newNotifier() notifier {
	return notifier{delay: dismissDelayMs * time.Millisecond}
}

func (n *notifier) display(text string, isError bool) tea.Cmd {
	n.pending = 0
	n.text = text
	n.isError = isError
	if isError {
		return nil
	}

	n.lastID++
	id := n.lastID
	n.pending = id
	return tea.Tick(n.delay, func(time.Time) tea.Msg {
		return dismissMsg{id: id}
	})
}

func (n *notifier) hide() {
	n.text = ""
	n.pending = 0
}

func (n *notifier) dismiss(msg dismissMsg) {
	if msg.id == 0 || msg.id != n.pending {
		return
	}
	n.hide()
}

func (n notifier) View() string {
	if n.text == "" {
		return ""
	}
	if n.isError {
		return statusErrorStyle.Render(n.text)
	}
	return statusStyle.Render(n.text)
}
