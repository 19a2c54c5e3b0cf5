package treefile

import (
	"strings"

	"github.com/arthur-debert/cmdhelp/pkg/cli"
	"github.com/arthur-debert/cmdhelp/pkg/errors"
)

type commandSpec struct {
	Name        string   `yaml:"name" toml:"name"`
	Aliases     []string `yaml:"aliases" toml:"aliases"`
	Description string   `yaml:"description" toml:"description"`
	Hidden      bool     `yaml:"hidden" toml:"hidden"`

	// Root adds the standard help and version options.
	Root bool `yaml:"root" toml:"root"`

	TreatUnmatchedTokensAsErrors *bool `yaml:"treat_unmatched_tokens_as_errors" toml:"treat_unmatched_tokens_as_errors"`

	Arguments []argumentSpec `yaml:"arguments" toml:"arguments"`
	Options   []optionSpec   `yaml:"options" toml:"options"`
	Commands  []commandSpec  `yaml:"commands" toml:"commands"`
}

type argumentSpec struct {
	Name        string   `yaml:"name" toml:"name"`
	Ref         string   `yaml:"ref" toml:"ref"`
	Description string   `yaml:"description" toml:"description"`
	HelpName    string   `yaml:"help_name" toml:"help_name"`
	Hidden      bool     `yaml:"hidden" toml:"hidden"`
	Arity       string   `yaml:"arity" toml:"arity"`
	Choices     []string `yaml:"choices" toml:"choices"`
	Default     any      `yaml:"default" toml:"default"`
}

type optionSpec struct {
	Name        string   `yaml:"name" toml:"name"`
	Aliases     []string `yaml:"aliases" toml:"aliases"`
	Description string   `yaml:"description" toml:"description"`
	Hidden      bool     `yaml:"hidden" toml:"hidden"`
	Required    bool     `yaml:"required" toml:"required"`
	Recursive   bool     `yaml:"recursive" toml:"recursive"`

	// Flag makes the option take no value.
	Flag bool `yaml:"flag" toml:"flag"`

	Arity    string   `yaml:"arity" toml:"arity"`
	HelpName string   `yaml:"help_name" toml:"help_name"`
	Choices  []string `yaml:"choices" toml:"choices"`
	Default  any      `yaml:"default" toml:"default"`
}

// builder turns specs into a cli tree, tracking the arguments visible to
// "ref" entries.
type builder struct {
	path []string
}

func (b *builder) command(spec commandSpec, parent *cli.Command, scope map[string]*cli.Argument) (*cli.Command, error) {
	name := spec.Name
	if name == "" {
		if !spec.Root {
			return nil, b.fail("command without a name")
		}
		name = cli.ExecutableName()
	}

	b.path = append(b.path, name)
	defer func() { b.path = b.path[:len(b.path)-1] }()

	cmd := cli.NewCommand(name, spec.Description)
	cmd.AddAlias(spec.Aliases...)
	cmd.Hidden = spec.Hidden
	if spec.TreatUnmatchedTokensAsErrors != nil {
		cmd.TreatUnmatchedTokensAsErrors = *spec.TreatUnmatchedTokensAsErrors
	}
	if parent != nil {
		parent.AddCommand(cmd)
	}

	// arguments of this command are visible to descendants only
	inner := make(map[string]*cli.Argument, len(scope)+len(spec.Arguments))
	for k, v := range scope {
		inner[k] = v
	}

	for _, as := range spec.Arguments {
		arg, err := b.argument(as, inner)
		if err != nil {
			return nil, err
		}
		cmd.AddArgument(arg)
		inner[arg.Name()] = arg
	}

	if spec.Root {
		cmd.AddOption(cli.NewHelpOption(), cli.NewVersionOption())
	}
	for _, ospec := range spec.Options {
		opt, err := b.option(ospec)
		if err != nil {
			return nil, err
		}
		cmd.AddOption(opt)
	}

	for _, cs := range spec.Commands {
		if _, err := b.command(cs, cmd, inner); err != nil {
			return nil, err
		}
	}

	return cmd, nil
}

func (b *builder) argument(spec argumentSpec, scope map[string]*cli.Argument) (*cli.Argument, error) {
	if spec.Ref != "" {
		arg, ok := scope[spec.Ref]
		if !ok {
			return nil, b.fail("argument ref %q does not match an ancestor argument", spec.Ref)
		}
		return arg, nil
	}
	if spec.Name == "" {
		return nil, b.fail("argument without a name")
	}

	arg := cli.NewArgument(spec.Name)
	arg.Description = spec.Description
	arg.HelpName = spec.HelpName
	arg.Hidden = spec.Hidden
	arg.Choices = spec.Choices

	if spec.Arity != "" {
		arity, err := cli.ParseArity(spec.Arity)
		if err != nil {
			return nil, b.wrap(err, "argument %q", spec.Name)
		}
		arg.Arity = arity
	}
	if spec.Default != nil {
		arg.SetDefault(spec.Default)
	}
	return arg, nil
}

func (b *builder) option(spec optionSpec) (*cli.Option, error) {
	if spec.Name == "" {
		return nil, b.fail("option without a name")
	}

	var opt *cli.Option
	if spec.Flag {
		opt = cli.NewFlag(spec.Name, spec.Aliases...)
	} else {
		opt = cli.NewOption(spec.Name, spec.Aliases...)
	}
	opt.Description = spec.Description
	opt.Hidden = spec.Hidden
	opt.Required = spec.Required
	opt.Recursive = spec.Recursive

	if spec.Arity != "" {
		arity, err := cli.ParseArity(spec.Arity)
		if err != nil {
			return nil, b.wrap(err, "option %q", spec.Name)
		}
		opt.Value.Arity = arity
	}
	opt.Value.HelpName = spec.HelpName
	opt.Value.Choices = spec.Choices
	if spec.Default != nil {
		opt.Value.SetDefault(spec.Default)
	}
	return opt, nil
}

func (b *builder) fail(format string, args ...interface{}) error {
	return errors.Newf(errors.ErrTreeParse, format, args...).
		WithDetail("command", b.commandPath())
}

func (b *builder) wrap(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, errors.ErrTreeParse, format, args...).
		WithDetail("command", b.commandPath())
}

func (b *builder) commandPath() string {
	return strings.Join(b.path, " ")
}
