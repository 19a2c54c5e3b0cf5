// Package cobrax renders cobra command help with the help engine. A cobra
// tree is converted into the pkg/cli model on demand, so flags and commands
// cobra adds at execution time are included.
package cobrax

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arthur-debert/cmdhelp/pkg/cli"
	"github.com/arthur-debert/cmdhelp/pkg/errors"
	"github.com/arthur-debert/cmdhelp/pkg/help"
)

// Use tokens that describe the command line shape rather than an argument.
var placeholderTokens = map[string]bool{
	"flags":   true,
	"options": true,
	"command": true,
}

// Tree is the cli form of a cobra command tree.
type Tree struct {
	Root *cli.Command

	byCobra map[*cobra.Command]*cli.Command
	// short descriptions of commands whose Long text became the description
	short map[*cli.Command]string
}

// Convert mirrors root and everything below it.
func Convert(root *cobra.Command) *Tree {
	t := &Tree{
		byCobra: make(map[*cobra.Command]*cli.Command),
		short:   make(map[*cli.Command]string),
	}
	t.Root = t.command(root, nil)
	return t
}

// Lookup returns the converted form of c.
func (t *Tree) Lookup(c *cobra.Command) (*cli.Command, error) {
	if cmd, ok := t.byCobra[c]; ok {
		return cmd, nil
	}
	return nil, errors.Newf(errors.ErrCommandNotFound, "command %q is not part of the tree", c.CommandPath())
}

// Customize makes subcommand rows show the short description while the
// synopsis keeps the long one.
func (t *Tree) Customize(b *help.Builder) error {
	for cmd, short := range t.short {
		if err := b.CustomizeSymbol(cmd, help.Customization{SecondColumn: help.Text(short)}); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) command(c *cobra.Command, parent *cli.Command) *cli.Command {
	description := c.Short
	if c.Long != "" {
		description = c.Long
	}

	cmd := cli.NewCommand(c.Name(), description)
	cmd.AddAlias(c.Aliases...)
	cmd.TreatUnmatchedTokensAsErrors = !c.DisableFlagParsing
	if c.Short != "" && c.Long != "" {
		t.short[cmd] = c.Short
	}

	if parent == nil {
		cmd.AddOption(cli.NewHelpOption())
		if c.Version != "" {
			cmd.AddOption(cli.NewVersionOption())
		}
	} else {
		// cobra lists its own help command although it is never "available"
		cmd.Hidden = !c.IsAvailableCommand() && c.Name() != "help"
		parent.AddCommand(cmd)
	}

	cmd.AddArgument(useArguments(c.Use)...)

	persistent := c.PersistentFlags()
	c.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" || (parent == nil && c.Version != "" && f.Name == "version") {
			return
		}
		opt := option(f)
		opt.Recursive = persistent.Lookup(f.Name) != nil
		cmd.AddOption(opt)
	})

	t.byCobra[c] = cmd
	for _, child := range c.Commands() {
		t.command(child, cmd)
	}
	return cmd
}

func option(f *pflag.Flag) *cli.Option {
	var aliases []string
	if f.Shorthand != "" {
		aliases = append(aliases, "-"+f.Shorthand)
	}

	var opt *cli.Option
	switch {
	case f.Value.Type() == "bool" || f.Value.Type() == "count":
		opt = cli.NewFlag("--"+f.Name, aliases...)
	case f.NoOptDefVal != "":
		opt = cli.NewOption("--"+f.Name, aliases...)
		opt.Value.Arity = cli.ArityZeroOrOne
	default:
		opt = cli.NewOption("--"+f.Name, aliases...)
	}

	varname, usage := pflag.UnquoteUsage(f)
	opt.Description = usage
	if strings.Contains(f.Usage, "`") {
		opt.Value.HelpName = varname
	}
	opt.Hidden = f.Hidden || f.Deprecated != ""

	if required, ok := f.Annotations[cobra.BashCompOneRequiredFlag]; ok && len(required) > 0 && required[0] == "true" {
		opt.Required = true
	}

	if def, ok := flagDefault(f); ok {
		opt.Value.SetDefault(def)
	}
	return opt
}

// flagDefault reports the flag's default unless it is the zero value of its
// type. Slice defaults come back as []string.
func flagDefault(f *pflag.Flag) (any, bool) {
	switch f.DefValue {
	case "", "false", "0", "[]", "<nil>", "map[]":
		return nil, false
	}

	typ := f.Value.Type()
	if (strings.HasSuffix(typ, "Slice") || strings.HasSuffix(typ, "Array")) &&
		strings.HasPrefix(f.DefValue, "[") && strings.HasSuffix(f.DefValue, "]") {
		return strings.Split(strings.Trim(f.DefValue, "[]"), ","), true
	}
	return f.DefValue, true
}

// useArguments reads positional arguments from a cobra Use line such as
// "render <file> [<command>...]". A leading "[" marks an optional argument
// and a trailing "..." a repeatable one.
func useArguments(use string) []*cli.Argument {
	fields := strings.Fields(use)
	if len(fields) < 2 {
		return nil
	}

	var args []*cli.Argument
	for _, token := range fields[1:] {
		optional := strings.HasPrefix(token, "[")
		name := strings.Trim(token, "[]")
		if placeholderTokens[strings.ToLower(name)] {
			continue
		}

		multiple := strings.HasSuffix(name, "...")
		name = strings.Trim(strings.TrimSuffix(name, "..."), "<>")
		if name == "" {
			continue
		}

		arg := cli.NewArgument(name)
		switch {
		case optional && multiple:
			arg.Arity = cli.ArityZeroOrMore
		case multiple:
			arg.Arity = cli.ArityOneOrMore
		case optional:
			arg.Arity = cli.ArityZeroOrOne
		}
		args = append(args, arg)
	}
	return args
}
