package main

import (
	"log"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
)

type snippet struct {
	title string
	code  string
}

var exampleSnippets = []snippet{
	{"Plain text", "text('Hello world!\\n')\n"},
	{"Status and headers", "status(418)\nheader('Cache-Control', 'no-store')\ntext('I am a teapot.\\n')\n"},
	{"JSON", "json({'id': 123, 'name': 'Jane'})\n"},
	{"Routing", "if route('/api/users/:id'):\n    json({'id': int(id)})\nelse:\n    error(404)\n"},
	{"Redirect", "redirect('/login', 303)\n"},
	{"Random failures", "if maybe(0.1):\n    error(503)\nelse:\n    html()\n"},
	{"CORS and gzip", "cors()\ngzip()\njson({'ok': True})\n"},
}

var snippetTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

// highlight colors a read-only snippet. Any lexer or style failure falls back
// to the plain code.
func highlight(code, style string) string {
	var sb strings.Builder
	if err := quick.Highlight(&sb, code, "python", "terminal256", style); err != nil {
		log.Printf("[debug] highlighting snippet: %v", err)
		return code
	}
	return sb.String()
}

func renderSnippets(snippets []snippet, style string) string {
	blocks := make([]string, 0, len(snippets))
	for _, s := range snippets {
		blocks = append(blocks, snippetTitleStyle.Render(s.title)+"\n"+strings.TrimRight(highlight(s.code, style), "\n"))
	}
	return strings.Join(blocks, "\n\n")
}
