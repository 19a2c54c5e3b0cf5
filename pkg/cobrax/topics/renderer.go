package topics

import (
	"strings"

	"github.com/arthur-debert/cmdhelp/pkg/help"
)

// Renderer formats topic content for the terminal.
type Renderer interface {
	// Render formats content read from a file with the given extension.
	Render(content string, format string) string
}

// PlainRenderer wraps text at Width. A zero Width leaves content unchanged.
type PlainRenderer struct {
	Width int
}

// Render wraps each line of content. Line breaks in the file are kept.
func (r *PlainRenderer) Render(content string, format string) string {
	if r.Width <= 0 {
		return content
	}

	var sb strings.Builder
	for line := range help.Wrap(content, r.Width) {
		sb.WriteString(strings.TrimRight(line, " \t"))
		sb.WriteString("\n")
	}
	return sb.String()
}
