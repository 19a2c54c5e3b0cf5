package help

import (
	"github.com/arthur-debert/cmdhelp/pkg/cli"
	"github.com/arthur-debert/cmdhelp/pkg/errors"
	"github.com/arthur-debert/cmdhelp/pkg/locale"
)

// SectionFunc writes one section to ctx.Output and reports whether it wrote
// anything. A true result is followed by a blank line.
type SectionFunc func(ctx *Context) (bool, error)

// Section is a named entry of a layout.
type Section struct {
	Name    string
	Summary string
	Write   SectionFunc
}

// LayoutFunc returns the sections to write, in order.
type LayoutFunc func(ctx *Context) []Section

// Built-in section names.
const (
	SectionSynopsis            = "synopsis"
	SectionUsage               = "usage"
	SectionArguments           = "arguments"
	SectionOptions             = "options"
	SectionSubcommands         = "subcommands"
	SectionAdditionalArguments = "additional-arguments"
)

// DefaultSections returns the built-in sections in their default order.
func DefaultSections() []Section {
	return []Section{
		{Name: SectionSynopsis, Summary: "Command description", Write: writeSynopsis},
		{Name: SectionUsage, Summary: "Usage line built from the command path", Write: writeUsage},
		{Name: SectionArguments, Summary: "Arguments of the command and its ancestors", Write: writeArguments},
		{Name: SectionOptions, Summary: "Options of the command and inherited recursive options", Write: writeOptions},
		{Name: SectionSubcommands, Summary: "Visible subcommands", Write: writeSubcommands},
		{Name: SectionAdditionalArguments, Summary: "Note for commands that pass unmatched tokens through", Write: writeAdditionalArguments},
	}
}

// SectionsByName resolves built-in sections by name, keeping the given order.
func SectionsByName(names ...string) ([]Section, error) {
	byName := make(map[string]Section)
	for _, s := range DefaultSections() {
		byName[s.Name] = s
	}

	sections := make([]Section, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, errors.Newf(errors.ErrUnknownSection, "unknown help section %q", name).
				WithDetail("section", name)
		}
		sections = append(sections, s)
	}
	return sections, nil
}

// Layout returns a LayoutFunc that always yields sections.
func Layout(sections []Section) LayoutFunc {
	fixed := append([]Section(nil), sections...)
	return func(*Context) []Section {
		return fixed
	}
}

func defaultLayout(*Context) []Section {
	return DefaultSections()
}

func writeSynopsis(ctx *Context) (bool, error) {
	b := ctx.Builder
	return true, b.WriteHeading(ctx, b.text(locale.DescriptionTitle), ctx.Command.Description)
}

func writeUsage(ctx *Context) (bool, error) {
	b := ctx.Builder
	return true, b.WriteHeading(ctx, b.text(locale.UsageTitle), b.Usage(ctx.Command))
}

// writeArguments lists the visible arguments of every command from the root
// down. An argument shared between levels is listed once.
func writeArguments(ctx *Context) (bool, error) {
	b := ctx.Builder
	seen := make(map[*cli.Argument]bool)

	var rows []Row
	for _, c := range ctx.Command.Ancestors() {
		for _, arg := range c.Arguments() {
			if arg.Hidden || seen[arg] {
				continue
			}
			seen[arg] = true

			row, err := b.GetRow(arg, ctx)
			if err != nil {
				return false, err
			}
			rows = append(rows, row)
		}
	}

	return b.writeTable(ctx, locale.ArgumentsTitle, rows)
}

// writeOptions lists the command's visible options followed by the recursive
// options of its ancestors, nearest first.
func writeOptions(ctx *Context) (bool, error) {
	b := ctx.Builder
	seen := make(map[*cli.Option]bool)
	hasHelp := false

	var options []*cli.Option
	for _, o := range ctx.Command.Options() {
		if o.Hidden || seen[o] {
			continue
		}
		seen[o] = true
		hasHelp = hasHelp || o.IsHelp()
		options = append(options, o)
	}

	for parent := ctx.Command.Parent(); parent != nil; parent = parent.Parent() {
		for _, o := range parent.Options() {
			if !o.Recursive || o.Hidden || seen[o] {
				continue
			}
			// a command declaring its own help option shadows the inherited one
			if o.IsHelp() && hasHelp {
				continue
			}
			seen[o] = true
			hasHelp = hasHelp || o.IsHelp()
			options = append(options, o)
		}
	}

	rows := make([]Row, 0, len(options))
	for _, o := range options {
		row, err := b.GetRow(o, ctx)
		if err != nil {
			return false, err
		}
		rows = append(rows, row)
	}

	return b.writeTable(ctx, locale.OptionsTitle, rows)
}

func writeSubcommands(ctx *Context) (bool, error) {
	b := ctx.Builder

	var rows []Row
	for _, sub := range ctx.Command.Subcommands() {
		if sub.Hidden {
			continue
		}
		row, err := b.GetRow(sub, ctx)
		if err != nil {
			return false, err
		}
		rows = append(rows, row)
	}

	return b.writeTable(ctx, locale.CommandsTitle, rows)
}

func writeAdditionalArguments(ctx *Context) (bool, error) {
	if ctx.Command.TreatUnmatchedTokensAsErrors {
		return false, nil
	}
	b := ctx.Builder
	return true, b.WriteHeading(ctx, b.text(locale.AdditionalArgumentsTitle), b.text(locale.AdditionalArgumentsDesc))
}

// writeTable writes a heading and rows, or nothing when rows is empty.
func (b *Builder) writeTable(ctx *Context, title locale.Key, rows []Row) (bool, error) {
	if len(rows) == 0 {
		return false, nil
	}
	if err := b.WriteHeading(ctx, b.text(title), ""); err != nil {
		return false, err
	}
	if err := b.WriteColumns(rows, ctx); err != nil {
		return false, err
	}
	return true, nil
}
