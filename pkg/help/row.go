package help

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/arthur-debert/cmdhelp/pkg/cli"
	"github.com/arthur-debert/cmdhelp/pkg/errors"
	"github.com/arthur-debert/cmdhelp/pkg/locale"
)

// GetRow builds the default row for an option, command or argument, applying
// any customization registered for it. Callers filter hidden symbols first.
func (b *Builder) GetRow(sym cli.Symbol, ctx *Context) (Row, error) {
	if isNilSymbol(sym) {
		return Row{}, errors.New(errors.ErrInvalidArgument, "symbol is nil")
	}
	if ctx == nil {
		return Row{}, errors.New(errors.ErrInvalidArgument, "help context is nil")
	}

	custom := b.customizations[sym]

	switch s := sym.(type) {
	case *cli.Option:
		var params []*cli.Argument
		if s.Value != nil {
			params = append(params, s.Value)
		}
		return b.identifierRow(s, b.optionLabel(s), b.optionDescription(s), params, custom, ctx), nil
	case *cli.Command:
		return b.identifierRow(s, b.commandLabel(s), s.Description, s.Arguments(), custom, ctx), nil
	case *cli.Argument:
		return b.argumentRow(s, custom, ctx), nil
	default:
		return Row{}, errors.Newf(errors.ErrUnsupportedSymbol, "symbol %q of kind %s is not supported", sym.Name(), sym.Kind())
	}
}

// identifierRow renders options and commands. A customized description
// suppresses the default value annotation.
func (b *Builder) identifierRow(sym cli.Symbol, label, description string, params []*cli.Argument, custom *Customization, ctx *Context) Row {
	first, ok := custom.firstColumn(ctx)
	if !ok {
		first = label
	}

	second, customized := custom.secondColumn(ctx)
	if !customized {
		second = strings.TrimSpace(description + " " + b.identifierDefault(sym, params, ctx))
	}

	return NewRow(first, strings.TrimSpace(second))
}

func (b *Builder) argumentRow(arg *cli.Argument, custom *Customization, ctx *Context) Row {
	first, ok := custom.firstColumn(ctx)
	if !ok {
		first = b.argumentLabel(arg)
		if arg.Arity.IsMultiple() {
			first += "..."
		}
	}

	second, ok := custom.secondColumn(ctx)
	if !ok {
		second = arg.Description
	}

	if !arg.Hidden && b.hasDefault(arg, nil) {
		var parent cli.Symbol
		if ctx.Command != nil {
			parent = ctx.Command
		}
		if value := b.defaultValue(parent, arg, ctx); value != "" {
			second += " [" + b.text(locale.DefaultValueLabel) + ": " + value + "]"
		}
	}

	return NewRow(first, strings.TrimSpace(second))
}

// identifierDefault renders "[default: v]" for a single contributing
// parameter and "[a: v1, b: v2]" for several.
func (b *Builder) identifierDefault(parent cli.Symbol, params []*cli.Argument, ctx *Context) string {
	type contribution struct{ name, value string }

	var parentCustom *Customization
	if _, isOption := parent.(*cli.Option); isOption {
		parentCustom = b.customizations[parent]
	}

	var found []contribution
	for _, p := range params {
		if p.Hidden || !b.hasDefault(p, parentCustom) {
			continue
		}
		if value := b.defaultValue(parent, p, ctx); value != "" {
			found = append(found, contribution{name: p.Name(), value: value})
		}
	}

	switch len(found) {
	case 0:
		return ""
	case 1:
		return "[" + b.text(locale.DefaultValueLabel) + ": " + found[0].value + "]"
	}

	parts := make([]string, 0, len(found))
	for _, c := range found {
		parts = append(parts, c.name+": "+c.value)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// hasDefault reports whether arg has a default to display: a built-in
// supplier, a default customization of its own, or one on the owning option.
func (b *Builder) hasDefault(arg *cli.Argument, owner *Customization) bool {
	if arg.HasDefaultValue() {
		return true
	}
	if c := b.customizations[arg]; c != nil && c.DefaultValue != nil {
		return true
	}
	return owner != nil && owner.DefaultValue != nil
}

// defaultValue resolves the displayed default for param: the parent's
// customization first, then the parameter's, then the built-in supplier.
// Blank results display nothing.
func (b *Builder) defaultValue(parent cli.Symbol, param *cli.Argument, ctx *Context) string {
	value, ok := "", false
	if parent != nil {
		value, ok = b.customizations[parent].defaultValue(ctx)
	}
	if !ok {
		value, ok = b.customizations[param].defaultValue(ctx)
	}
	if !ok && param.HasDefaultValue() {
		value = formatDefault(param.DefaultValue())
	}

	if strings.TrimSpace(value) == "" {
		return ""
	}
	return value
}

func (b *Builder) optionLabel(o *cli.Option) string {
	label := strings.Join(cli.DisplayAliases(o.Names()), ", ")

	if o.Value != nil && o.Value.Arity.Max > 0 && !o.Value.Hidden {
		if usage := b.argumentLabel(o.Value); usage != "" {
			label += " " + usage
		}
	}

	if o.Required {
		label += " " + b.text(locale.RequiredLabel)
	}
	return label
}

func (b *Builder) optionDescription(o *cli.Option) string {
	if o.Description != "" {
		return o.Description
	}
	switch {
	case o.IsHelp():
		return b.text(locale.HelpOptionDescription)
	case o.IsVersion():
		return b.text(locale.VersionOptionDescription)
	}
	return ""
}

func (b *Builder) commandLabel(c *cli.Command) string {
	parts := []string{strings.Join(cli.DisplayAliases(c.Names()), ", ")}
	for _, arg := range c.Arguments() {
		if arg.Hidden {
			continue
		}
		if usage := b.argumentLabel(arg); usage != "" {
			parts = append(parts, usage)
		}
	}
	return strings.Join(parts, " ")
}

// argumentLabel is "<HelpName>", the choices as "<a|b>", or "<name>".
// Option values have no name of their own and fall back to nothing.
func (b *Builder) argumentLabel(arg *cli.Argument) string {
	switch {
	case arg.HelpName != "":
		return "<" + arg.HelpName + ">"
	case len(arg.Choices) > 0:
		return "<" + strings.Join(arg.Choices, "|") + ">"
	case arg.IsOptionValue():
		return ""
	}
	return "<" + arg.Name() + ">"
}

// formatDefault renders a default value. Slices and arrays are joined
// with "|".
func formatDefault(v any) string {
	if v == nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ""
		}
		return formatDefault(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return ""
		}
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts = append(parts, formatDefault(rv.Index(i).Interface()))
		}
		return strings.Join(parts, "|")
	}
	return fmt.Sprint(v)
}

func isNilSymbol(sym cli.Symbol) bool {
	switch s := sym.(type) {
	case nil:
		return true
	case *cli.Command:
		return s == nil
	case *cli.Option:
		return s == nil
	case *cli.Argument:
		return s == nil
	}
	return false
}
