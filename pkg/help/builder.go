package help

import (
	"bytes"
	"io"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/cmdhelp/pkg/cli"
	"github.com/arthur-debert/cmdhelp/pkg/errors"
	"github.com/arthur-debert/cmdhelp/pkg/locale"
)

const indent = "  "

// TextFunc supplies customized text for one render. Returning false falls
// back to the default text.
type TextFunc func(ctx *Context) (string, bool)

// Text returns a TextFunc that always yields s.
func Text(s string) TextFunc {
	return func(*Context) (string, bool) { return s, true }
}

// Customization overrides parts of a symbol's row. Nil fields keep the
// default rendering.
type Customization struct {
	FirstColumn  TextFunc
	SecondColumn TextFunc
	DefaultValue TextFunc
}

func (c *Customization) firstColumn(ctx *Context) (string, bool) {
	if c == nil || c.FirstColumn == nil {
		return "", false
	}
	return c.FirstColumn(ctx)
}

func (c *Customization) secondColumn(ctx *Context) (string, bool) {
	if c == nil || c.SecondColumn == nil {
		return "", false
	}
	return c.SecondColumn(ctx)
}

func (c *Customization) defaultValue(ctx *Context) (string, bool) {
	if c == nil || c.DefaultValue == nil {
		return "", false
	}
	return c.DefaultValue(ctx)
}

// Builder renders help for commands. Customizations must not be registered
// while a Write on the same Builder is running.
type Builder struct {
	maxWidth       int
	catalog        locale.Catalog
	logger         zerolog.Logger
	customizations map[cli.Symbol]*Customization
	layout         LayoutFunc
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithCatalog sets the catalog used for headings and fixed tokens.
func WithCatalog(c locale.Catalog) BuilderOption {
	return func(b *Builder) {
		if c != nil {
			b.catalog = c
		}
	}
}

// WithLogger sets the logger. Builders are silent by default.
func WithLogger(l zerolog.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = l
	}
}

// New creates a Builder that wraps output at maxWidth. A non-positive width
// disables wrapping.
func New(maxWidth int, opts ...BuilderOption) *Builder {
	if maxWidth <= 0 {
		maxWidth = math.MaxInt
	}

	b := &Builder{
		maxWidth:       maxWidth,
		logger:         zerolog.Nop(),
		customizations: make(map[cli.Symbol]*Customization),
		layout:         defaultLayout,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.catalog == nil {
		b.catalog = locale.Default()
	}
	return b
}

// MaxWidth returns the width output is wrapped at.
func (b *Builder) MaxWidth() int {
	return b.maxWidth
}

// Catalog returns the catalog headings are looked up in.
func (b *Builder) Catalog() locale.Catalog {
	return b.catalog
}

// CustomizeSymbol registers overrides for sym, replacing earlier ones.
func (b *Builder) CustomizeSymbol(sym cli.Symbol, c Customization) error {
	if isNilSymbol(sym) {
		return errors.New(errors.ErrInvalidArgument, "cannot customize a nil symbol")
	}

	b.customizations[sym] = &c
	b.logger.Debug().
		Str("symbol", sym.Name()).
		Str("kind", sym.Kind().String()).
		Msg("Registered help customization")
	return nil
}

// CustomizeLayout replaces the section order.
func (b *Builder) CustomizeLayout(fn LayoutFunc) error {
	if fn == nil {
		return errors.New(errors.ErrInvalidArgument, "layout function is nil")
	}
	b.layout = fn
	return nil
}

// Write renders help for cmd to w. Nothing is written for a hidden command,
// and nothing reaches w if any section fails.
func (b *Builder) Write(cmd *cli.Command, w io.Writer) error {
	if cmd == nil {
		return errors.New(errors.ErrInvalidArgument, "command is nil")
	}
	if w == nil {
		return errors.New(errors.ErrInvalidArgument, "output writer is nil")
	}
	if cmd.Hidden {
		b.logger.Debug().Str("command", cmd.Name()).Msg("Skipping help for hidden command")
		return nil
	}

	var buf bytes.Buffer
	ctx := &Context{Builder: b, Command: cmd, Output: &buf}

	b.logger.Debug().Str("command", cmd.Name()).Int("width", b.maxWidth).Msg("Rendering help")

	for _, section := range b.layout(ctx) {
		if section.Write == nil {
			return errors.Newf(errors.ErrInvalidArgument, "section %q has no writer", section.Name)
		}

		wrote, err := section.Write(ctx)
		if err != nil {
			return errors.Wrapf(err, errors.GetErrorCode(err), "section %q failed", section.Name).
				WithDetail("section", section.Name)
		}
		b.logger.Trace().Str("section", section.Name).Bool("wrote", wrote).Msg("Section done")

		if wrote {
			buf.WriteString("\n")
		}
	}

	if _, err := buf.WriteTo(w); err != nil {
		return errors.Wrap(err, errors.ErrWrite, "failed to write help")
	}
	return nil
}

// Render returns the help for cmd as a string.
func (b *Builder) Render(cmd *cli.Command) (string, error) {
	var sb strings.Builder
	if err := b.Write(cmd, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteHeading writes heading on its own line and description wrapped and
// indented below it. Blank parts are skipped.
func (b *Builder) WriteHeading(ctx *Context, heading, description string) error {
	if ctx == nil || ctx.Output == nil {
		return errors.New(errors.ErrInvalidArgument, "help context has no output")
	}

	var sb strings.Builder
	if strings.TrimSpace(heading) != "" {
		sb.WriteString(heading)
		sb.WriteString("\n")
	}
	for line := range Wrap(description, b.maxWidth-len(indent)) {
		sb.WriteString(indent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(ctx.Output, sb.String()); err != nil {
		return errors.Wrap(err, errors.ErrWrite, "failed to write heading")
	}
	return nil
}

func (b *Builder) text(key locale.Key) string {
	return b.catalog.Text(key)
}
