package cli

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/cmdhelp/pkg/errors"
)

// MaxArity stands in for "unbounded" in the upper bound of an arity.
const MaxArity = 100000

// Arity is the permitted (minimum, maximum) count of values.
type Arity struct {
	Min int
	Max int
}

var (
	ArityZero       = Arity{Min: 0, Max: 0}
	ArityZeroOrOne  = Arity{Min: 0, Max: 1}
	ArityExactlyOne = Arity{Min: 1, Max: 1}
	ArityZeroOrMore = Arity{Min: 0, Max: MaxArity}
	ArityOneOrMore  = Arity{Min: 1, Max: MaxArity}
	namedArities    = map[string]Arity{
		"zero":         ArityZero,
		"zero_or_one":  ArityZeroOrOne,
		"exactly_one":  ArityExactlyOne,
		"one":          ArityExactlyOne,
		"zero_or_more": ArityZeroOrMore,
		"one_or_more":  ArityOneOrMore,
	}
)

// IsOptional reports whether no value is required.
func (a Arity) IsOptional() bool { return a.Min == 0 }

// IsMultiple reports whether more than one value is accepted.
func (a Arity) IsMultiple() bool { return a.Max > 1 }

func (a Arity) String() string {
	if a.Max >= MaxArity {
		return strconv.Itoa(a.Min) + "..*"
	}
	return strconv.Itoa(a.Min) + ".." + strconv.Itoa(a.Max)
}

// ParseArity accepts a preset name ("zero_or_more"), a range ("1..3", "0..*")
// or a single count ("2").
func ParseArity(s string) (Arity, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if a, ok := namedArities[strings.ReplaceAll(s, "-", "_")]; ok {
		return a, nil
	}

	lo, hi, isRange := strings.Cut(s, "..")
	if !isRange {
		hi = lo
	}

	minimum, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Arity{}, errors.Newf(errors.ErrInvalidArgument, "invalid arity %q", s)
	}

	maximum := MaxArity
	if hi = strings.TrimSpace(hi); hi != "*" {
		if maximum, err = strconv.Atoi(hi); err != nil {
			return Arity{}, errors.Newf(errors.ErrInvalidArgument, "invalid arity %q", s)
		}
	}

	if minimum < 0 || maximum < minimum {
		return Arity{}, errors.Newf(errors.ErrInvalidArgument, "invalid arity %q", s).
			WithDetail("min", minimum).
			WithDetail("max", maximum)
	}
	return Arity{Min: minimum, Max: maximum}, nil
}
