package help

import (
	"io"
	"strings"

	"github.com/arthur-debert/cmdhelp/pkg/errors"
)

// Row is one rendered line item of a two-column table. It is immutable.
type Row struct {
	first  string
	second string
}

// NewRow creates a row from its two column texts.
func NewRow(first, second string) Row {
	return Row{first: first, second: second}
}

// FirstColumn returns the label text.
func (r Row) FirstColumn() string { return r.first }

// SecondColumn returns the description text.
func (r Row) SecondColumn() string { return r.second }

// WriteColumns writes rows as an indented two-column table to ctx.Output.
//
// Columns keep their natural widths when they fit in MaxWidth. Otherwise the
// first column is capped at half the width and the second column gets the
// rest. Both columns are wrapped independently and their lines zipped. An
// empty row set writes nothing.
func (b *Builder) WriteColumns(rows []Row, ctx *Context) error {
	if ctx == nil || ctx.Output == nil {
		return errors.New(errors.ErrInvalidArgument, "help context has no output")
	}
	if len(rows) == 0 {
		return nil
	}

	firstWidth, secondWidth := b.columnWidths(rows)

	var sb strings.Builder
	for _, row := range rows {
		firstLines := WrapLines(row.first, firstWidth)
		secondLines := WrapLines(row.second, secondWidth)

		for i := 0; i < max(len(firstLines), len(secondLines)); i++ {
			first, second := lineAt(firstLines, i), lineAt(secondLines, i)

			sb.WriteString(indent)
			sb.WriteString(first)
			// no gutter for an empty description line
			if strings.TrimSpace(second) != "" {
				if pad := firstWidth - textWidth(first); pad > 0 {
					sb.WriteString(strings.Repeat(" ", pad))
				}
				sb.WriteString(indent)
				sb.WriteString(second)
			}
			sb.WriteString("\n")
		}
	}

	if _, err := io.WriteString(ctx.Output, sb.String()); err != nil {
		return errors.Wrap(err, errors.ErrWrite, "failed to write columns")
	}
	return nil
}

func (b *Builder) columnWidths(rows []Row) (int, int) {
	var first, second int
	for _, row := range rows {
		first = max(first, textWidth(row.first))
		second = max(second, textWidth(row.second))
	}

	gutters := 2 * len(indent)
	if first+second+gutters <= b.maxWidth {
		return first, second
	}

	firstMax := b.maxWidth/2 - len(indent)
	if first > firstMax {
		first = 0
		for _, row := range rows {
			for line := range Wrap(row.first, firstMax) {
				first = max(first, textWidth(line))
			}
		}
	}
	return first, b.maxWidth - first - gutters
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
