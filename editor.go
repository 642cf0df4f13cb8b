package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

var indentKey = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent"))

// editor is the editing surface laid over the raw rules field. The form field
// stays the source of truth for submission; flush copies the surface back.
type editor struct {
	surface   textarea.Model
	fieldName string
	indent    string
}

func installEditor(field formField) editor {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.Placeholder = "Write rules…"
	ta.SetValue(field.value)
	ta.Focus()

	return editor{
		surface:   ta,
		fieldName: field.name,
		indent:    strings.Repeat(" ", editorIndentWidth),
	}
}

func (e *editor) flush(f *form) {
	f.set(e.fieldName, e.surface.Value())
}

func (e *editor) focus() tea.Cmd {
	return e.surface.Focus()
}

func (e *editor) setSize(width, height int) {
	e.surface.SetWidth(width)
	e.surface.SetHeight(height)
}

func (e editor) Update(msg tea.Msg) (editor, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, indentKey) {
		if e.surface.Focused() {
			e.surface.InsertString(e.indent)
		}
		return e, nil
	}

	var cmd tea.Cmd
	e.surface, cmd = e.surface.Update(msg)
	return e, cmd
}

func (e editor) View() string {
	return e.surface.View()
}
