package cli

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/arthur-debert/cmdhelp/pkg/errors"
)

// Command is a node of the command tree.
type Command struct {
	name    string
	aliases []string

	Description string
	Hidden      bool
	// TreatUnmatchedTokensAsErrors is false for commands that pass unknown
	// tokens through to something else.
	TreatUnmatchedTokensAsErrors bool

	arguments   []*Argument
	options     []*Option
	subcommands []*Command
	parent      *Command
}

// NewCommand returns a command that rejects unmatched tokens.
func NewCommand(name, description string) *Command {
	return &Command{
		name:                         name,
		Description:                  description,
		TreatUnmatchedTokensAsErrors: true,
	}
}

// NewRootCommand returns a command named after the running executable, with
// the help and version options attached.
func NewRootCommand(description string) *Command {
	c := NewCommand(ExecutableName(), description)
	c.AddOption(NewHelpOption(), NewVersionOption())
	return c
}

// ExecutableName is the file name of the running program without its
// extension.
func ExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return "app"
	}
	base := filepath.Base(os.Args[0])
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (c *Command) Name() string { return c.name }
func (c *Command) Kind() Kind   { return KindCommand }
func (c *Command) symbol()      {}

// Aliases returns the alternate names, excluding the primary name.
func (c *Command) Aliases() []string { return append([]string(nil), c.aliases...) }

// Names returns the primary name followed by the aliases.
func (c *Command) Names() []string { return append([]string{c.name}, c.aliases...) }

// AddAlias registers an alternate name.
func (c *Command) AddAlias(alias ...string) *Command {
	c.aliases = append(c.aliases, alias...)
	return c
}

// AddArgument appends positional arguments. The same argument may be added to
// several commands.
func (c *Command) AddArgument(args ...*Argument) *Command {
	for _, a := range args {
		if a != nil {
			c.arguments = append(c.arguments, a)
		}
	}
	return c
}

// AddOption appends options.
func (c *Command) AddOption(opts ...*Option) *Command {
	for _, o := range opts {
		if o != nil {
			c.options = append(c.options, o)
		}
	}
	return c
}

// AddCommand appends subcommands and makes c their parent. A command that
// already had a parent is moved. c and its ancestors are never added, so the
// tree stays acyclic.
func (c *Command) AddCommand(cmds ...*Command) *Command {
	for _, sub := range cmds {
		if sub == nil || c.descendsFrom(sub) {
			continue
		}
		if sub.parent != nil && sub.parent != c {
			sub.parent.subcommands = slices.DeleteFunc(sub.parent.subcommands, func(x *Command) bool { return x == sub })
		}
		sub.parent = c
		c.subcommands = append(c.subcommands, sub)
	}
	return c
}

func (c *Command) Arguments() []*Argument  { return c.arguments }
func (c *Command) Options() []*Option      { return c.options }
func (c *Command) Subcommands() []*Command { return c.subcommands }

// Parent returns the owning command, or nil for a root.
func (c *Command) Parent() *Command { return c.parent }

// Root returns the topmost ancestor.
func (c *Command) Root() *Command {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// descendsFrom reports whether other is c or one of its ancestors.
func (c *Command) descendsFrom(other *Command) bool {
	for cur := c; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

// Ancestors returns the chain from the root down to c, inclusive.
func (c *Command) Ancestors() []*Command {
	var chain []*Command
	for cur := c; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	slices.Reverse(chain)
	return chain
}

// Subcommand returns the direct child whose name or alias matches.
func (c *Command) Subcommand(name string) *Command {
	for _, sub := range c.subcommands {
		if slices.Contains(sub.Names(), name) {
			return sub
		}
	}
	return nil
}

// Find walks path from c through subcommand names or aliases.
func (c *Command) Find(path ...string) (*Command, error) {
	cur := c
	for _, name := range path {
		next := cur.Subcommand(name)
		if next == nil {
			return nil, errors.Newf(errors.ErrCommandNotFound, "no command %q under %q", name, cur.name).
				WithDetail("path", strings.Join(path, " "))
		}
		cur = next
	}
	return cur, nil
}
