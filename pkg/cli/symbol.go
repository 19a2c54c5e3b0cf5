package cli

// Kind discriminates the symbol variants.
type Kind int

const (
	KindCommand Kind = iota
	KindOption
	KindArgument
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindOption:
		return "option"
	case KindArgument:
		return "argument"
	default:
		return "unknown"
	}
}

// Symbol is implemented by *Command, *Option and *Argument only.
type Symbol interface {
	Name() string
	Kind() Kind
	symbol()
}

var (
	_ Symbol = (*Command)(nil)
	_ Symbol = (*Option)(nil)
	_ Symbol = (*Argument)(nil)
)
