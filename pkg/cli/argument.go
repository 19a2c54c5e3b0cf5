package cli

// Argument is a positional value accepted by a command, or the value taken by
// an option.
type Argument struct {
	name string

	Description string
	// HelpName replaces the name in usage labels when set.
	HelpName string
	Hidden   bool
	Arity    Arity
	// Choices is the closed set of accepted values, if any.
	Choices []string
	// DefaultValue supplies the value used when none is given. Nil means the
	// argument has no default.
	DefaultValue func() any

	optionValue bool
}

// NewArgument returns an argument that takes exactly one value.
func NewArgument(name string) *Argument {
	return &Argument{name: name, Arity: ArityExactlyOne}
}

func (a *Argument) Name() string { return a.name }
func (a *Argument) Kind() Kind   { return KindArgument }
func (a *Argument) symbol()      {}

// HasDefaultValue reports whether a default supplier is set.
func (a *Argument) HasDefaultValue() bool { return a.DefaultValue != nil }

// IsOptionValue reports whether the argument is the value of an option rather
// than a positional argument.
func (a *Argument) IsOptionValue() bool { return a.optionValue }

// SetDefault installs a constant default value.
func (a *Argument) SetDefault(v any) *Argument {
	a.DefaultValue = func() any { return v }
	return a
}
