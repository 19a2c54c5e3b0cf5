package help

import (
	"strings"

	"github.com/arthur-debert/cmdhelp/pkg/cli"
	"github.com/arthur-debert/cmdhelp/pkg/locale"
)

// Usage returns the synopsis line for cmd, for example
// "tool remote add <name> <url> [options]".
//
// Every command from the root down to cmd contributes its name followed by
// its own arguments. "[command]" is added when cmd has visible subcommands,
// "[options]" when cmd has visible options or an ancestor has a visible
// recursive one, and "[<additional arguments>]" when cmd passes unmatched
// tokens through.
func (b *Builder) Usage(cmd *cli.Command) string {
	if cmd == nil {
		return ""
	}

	var parts []string
	showOptions := false

	for _, c := range cmd.Ancestors() {
		if !showOptions {
			showOptions = hasVisibleOption(c, true)
		}

		parts = append(parts, c.Name())
		if len(c.Arguments()) > 0 {
			parts = append(parts, formatArgumentUsage(c.Arguments()))
		}
	}

	if hasVisibleSubcommand(cmd) {
		parts = append(parts, b.text(locale.UsageCommandToken))
	}

	if showOptions || hasVisibleOption(cmd, false) {
		parts = append(parts, b.text(locale.UsageOptionsToken))
	}

	if !cmd.TreatUnmatchedTokensAsErrors {
		parts = append(parts, b.text(locale.UsageAdditionalArgumentsToken))
	}

	tokens := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			tokens = append(tokens, p)
		}
	}
	return strings.Join(tokens, " ")
}

// formatArgumentUsage renders one command's arguments. Optional arguments
// open a bracket that is closed after the last argument, so consecutive
// optional arguments nest: "[<a> [<b>...]]".
func formatArgumentUsage(args []*cli.Argument) string {
	var sb strings.Builder
	closing := 0

	for _, arg := range args {
		if arg.Hidden {
			continue
		}

		suffix := ""
		if arg.Arity.IsMultiple() {
			suffix = "..."
		}

		if arg.Arity.IsOptional() {
			sb.WriteString("[<" + arg.Name() + ">" + suffix)
			closing++
		} else {
			sb.WriteString("<" + arg.Name() + ">" + suffix)
		}
		sb.WriteString(" ")
	}

	out := strings.TrimSuffix(sb.String(), " ")
	if out == "" {
		return ""
	}
	return out + strings.Repeat("]", closing)
}

func hasVisibleOption(c *cli.Command, recursiveOnly bool) bool {
	for _, o := range c.Options() {
		if !o.Hidden && (!recursiveOnly || o.Recursive) {
			return true
		}
	}
	return false
}

func hasVisibleSubcommand(c *cli.Command) bool {
	for _, sub := range c.Subcommands() {
		if !sub.Hidden {
			return true
		}
	}
	return false
}
