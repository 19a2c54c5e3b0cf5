package topics

import (
	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/cmdhelp/pkg/logging"
)

// GlamourRenderer renders markdown topics with glamour. Other formats fall
// back to Plain.
type GlamourRenderer struct {
	Style string // standard style name or path to a style file
	Width int    // word wrap width, 0 disables wrapping

	Plain PlainRenderer
}

// NewGlamourRenderer returns a renderer using the colorless "notty" style so
// output does not depend on the terminal.
func NewGlamourRenderer(width int) *GlamourRenderer {
	return &GlamourRenderer{
		Style: "notty",
		Width: width,
		Plain: PlainRenderer{Width: width},
	}
}

// Render converts markdown to terminal output.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return r.Plain.Render(content, format)
	}

	style := r.Style
	if style == "" {
		style = "notty"
	}
	options := []glamour.TermRendererOption{glamour.WithStylePath(style)}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	logger := logging.GetLogger("topics")
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		logger.Warn().Err(err).Str("style", style).Msg("Falling back to plain topic rendering")
		return r.Plain.Render(content, format)
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		logger.Warn().Err(err).Msg("Falling back to plain topic rendering")
		return r.Plain.Render(content, format)
	}
	return rendered
}
