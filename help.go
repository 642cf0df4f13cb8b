package main

import (
	"fmt"
	"log"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# Rules editor

Rules are submitted to **%s** and installed by the mock server right away.

| Key | Action |
|---|---|
| ctrl+s | submit rules |
| tab | indent |
| ctrl+e | toggle examples |
| f1 | toggle this help |
| ctrl+c | quit |

Successful submissions show a short confirmation that disappears after a
second. Errors stay on screen until the next submission.
`

// detectHelpStyle queries the terminal background, so it must run before the
// program starts reading input.
func detectHelpStyle() string {
	if lipgloss.HasDarkBackground() {
		return styles.DarkStyle
	}
	return styles.LightStyle
}

func renderHelp(editorURL string, width int, style string) string {
	md := fmt.Sprintf(helpMarkdown, editorURL)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Printf("[debug] creating help renderer: %v", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("[debug] rendering help: %v", err)
		return md
	}
	return out
}
