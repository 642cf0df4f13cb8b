package main

import (
	"log"
	"net/http"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Submit   key.Binding
	Examples key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
	Examples: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "examples")),
	Help:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
)

type model struct {
	form         form
	editor       editor
	notifier     notifier
	client       *http.Client
	seq          int
	examples     string
	help         string
	helpStyle    string
	showExamples bool
	showHelp     bool
	width        int
	height       int
}

func initialModel(cfg *Config) model {
	field := formField{name: cfg.FieldName, value: cfg.Rules}
	helpStyle := detectHelpStyle()

	return model{
		form:         newForm(cfg.Method, cfg.EditorURL, field),
		editor:       installEditor(field),
		notifier:     newNotifier(),
		client:       newSubmitClient(cfg.Username, cfg.Password),
		examples:     renderSnippets(exampleSnippets, cfg.Style),
		help:         renderHelp(cfg.EditorURL, 80, helpStyle),
		helpStyle:    helpStyle,
		showExamples: true,
	}
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

		return m, nil
	case submitResultMsg:
		if msg.seq != m.seq {
			log.Printf("[debug] dropping stale response of submission %d, latest is %d", msg.seq, m.seq)
			return m, nil
		}
		text, isError := msg.message()

		return m, m.notifier.display(text, isError)
	case dismissMsg:
		m.notifier.dismiss(msg)

		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case m.showHelp:
			return m, nil
		case key.Matches(msg, keys.Examples):
			m.showExamples = !m.showExamples
			m.layout()
			return m, nil
		case key.Matches(msg, keys.Submit):
			return m.startSubmit()
		}
	}

	m.editor, cmd = m.editor.Update(msg)

	return m, cmd
}

// startSubmit replaces a full form submission: clear the status, flush the
// editor into the form, send the snapshot and hand focus back to the editor.
func (m model) startSubmit() (model, tea.Cmd) {
	m.notifier.hide()
	m.editor.flush(&m.form)
	snapshot := m.form.snapshot()

	m.seq++
	send := submit(m.client, m.seq, snapshot, m.form.method, m.form.action)
	rules, _ := m.form.value(m.editor.fieldName)
	log.Printf("[debug] submission %d sent to %s %s: %d bytes of %s", m.seq, m.form.method, m.form.action, len(rules), m.editor.fieldName)

	return m, tea.Batch(send, m.editor.focus())
}

func (m *model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// header, status line and pane borders
	height := m.height - 5
	width := m.width - 4
	if m.showExamples {
		width = m.width*3/5 - 4
	}
	m.editor.setSize(max(width, 10), max(height, 3))
	m.help = renderHelp(m.form.action, max(m.width-4, 20), m.helpStyle)
}

func (m model) View() string {
	header := headerStyle.Render("Rules → " + m.form.method + " " + m.form.action)

	if m.showHelp {
		return header + "\n" + m.help
	}

	body := paneStyle.Render(m.editor.View())
	if m.showExamples {
		examples := paneStyle.Width(max(m.width-lipgloss.Width(body)-2, 20)).Render(m.examples)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, examples)
	}

	status := m.notifier.View()
	if status == "" {
		status = hintStyle.Render("ctrl+s submit • ctrl+e examples • f1 help • ctrl+c quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}
