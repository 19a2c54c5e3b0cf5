package cli

// Option is a named switch. Its value, if any, is described by Value.
type Option struct {
	name    string
	aliases []string

	Description string
	Hidden      bool
	Required    bool
	// Recursive options apply to every descendant of the declaring command.
	Recursive bool
	// Value is never nil. A zero arity marks a flag that takes no value.
	Value *Argument

	help    bool
	version bool
}

// NewOption returns an option taking exactly one value.
func NewOption(name string, aliases ...string) *Option {
	return &Option{
		name:    name,
		aliases: aliases,
		Value: &Argument{
			name:        name,
			Arity:       ArityExactlyOne,
			optionValue: true,
		},
	}
}

// NewFlag returns an option that takes no value.
func NewFlag(name string, aliases ...string) *Option {
	o := NewOption(name, aliases...)
	o.Value.Arity = ArityZero
	return o
}

// NewHelpOption returns the recursive -?, -h, --help flag. Its description is
// left empty so the renderer can supply a localized one.
func NewHelpOption() *Option {
	o := NewFlag("--help", "-?", "-h")
	o.Recursive = true
	o.help = true
	return o
}

// NewVersionOption returns the --version flag.
func NewVersionOption() *Option {
	o := NewFlag("--version")
	o.version = true
	return o
}

func (o *Option) Name() string { return o.name }
func (o *Option) Kind() Kind   { return KindOption }
func (o *Option) symbol()      {}

// Aliases returns the alternate spellings, excluding the primary name.
func (o *Option) Aliases() []string { return append([]string(nil), o.aliases...) }

// Names returns the primary name followed by the aliases.
func (o *Option) Names() []string { return append([]string{o.name}, o.aliases...) }

// AddAlias registers an alternate spelling.
func (o *Option) AddAlias(alias string) *Option {
	o.aliases = append(o.aliases, alias)
	return o
}

// IsHelp reports whether o was created by NewHelpOption.
func (o *Option) IsHelp() bool { return o.help }

// IsVersion reports whether o was created by NewVersionOption.
func (o *Option) IsVersion() bool { return o.version }
