package currency

import (
	"fmt"
	"strings"
	"unicode"
)

// MaxDecimalPlaces bounds the fraction width accepted by Options.
const MaxDecimalPlaces = 18

// SignPlacement selects which segment carries the minus sign of a negative amount.
type SignPlacement int

const (
	// SignInInteger puts the minus at the front of the integer segment: "$" "-1,234" "56".
	SignInInteger SignPlacement = iota
	// SignBeforeSymbol prefixes the symbol segment: "-$" "1,234" "56".
	SignBeforeSymbol
	// SignAfterSymbol suffixes the symbol segment: "$-" "1,234" "56".
	SignAfterSymbol
)

var signPlacementNames = map[SignPlacement]string{
	SignInInteger:    "integer",
	SignBeforeSymbol: "before-symbol",
	SignAfterSymbol:  "after-symbol",
}

func (s SignPlacement) String() string {
	if name, ok := signPlacementNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SignPlacement(%d)", int(s))
}

// ParseSignPlacement resolves a placement name; the empty string means SignInInteger.
func ParseSignPlacement(name string) (SignPlacement, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return SignInInteger, nil
	}
	for placement, candidate := range signPlacementNames {
		if candidate == n {
			return placement, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown sign placement %q (want integer, before-symbol or after-symbol)", ErrInvalidOptions, name)
}

func (s SignPlacement) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *SignPlacement) UnmarshalText(text []byte) error {
	parsed, err := ParseSignPlacement(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Options holds the fixed formatting convention. Nothing is read from the
// host locale.
type Options struct {
	Symbol            string
	GroupingSeparator string
	DecimalSeparator  string
	DecimalPlaces     int
	SignPlacement     SignPlacement
}

// DefaultOptions returns the US dollar convention: "$", ",", ".", 2 places.
func DefaultOptions() Options {
	return Options{
		Symbol:            "$",
		GroupingSeparator: ",",
		DecimalSeparator:  ".",
		DecimalPlaces:     2,
		SignPlacement:     SignInInteger,
	}
}

// Validate reports options that would make the output ambiguous.
func (o Options) Validate() error {
	if o.DecimalPlaces < 0 || o.DecimalPlaces > MaxDecimalPlaces {
		return fmt.Errorf("%w: decimal places must be between 0 and %d, got %d", ErrInvalidOptions, MaxDecimalPlaces, o.DecimalPlaces)
	}
	if _, ok := signPlacementNames[o.SignPlacement]; !ok {
		return fmt.Errorf("%w: unknown sign placement %d", ErrInvalidOptions, int(o.SignPlacement))
	}
	if o.DecimalPlaces > 0 && o.DecimalSeparator == "" {
		return fmt.Errorf("%w: decimal separator is required when decimal places > 0", ErrInvalidOptions)
	}
	if hasDigitOrSign(o.GroupingSeparator) {
		return fmt.Errorf("%w: grouping separator %q must not contain digits or signs", ErrInvalidOptions, o.GroupingSeparator)
	}
	if hasDigitOrSign(o.DecimalSeparator) {
		return fmt.Errorf("%w: decimal separator %q must not contain digits or signs", ErrInvalidOptions, o.DecimalSeparator)
	}
	if o.GroupingSeparator != "" && o.GroupingSeparator == o.DecimalSeparator {
		return fmt.Errorf("%w: grouping and decimal separator are both %q", ErrInvalidOptions, o.GroupingSeparator)
	}
	return nil
}

func hasDigitOrSign(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsDigit(r) || r == '-' || r == '+'
	})
}

// Option mutates Options; used by NewDecomposer.
type Option func(*Options)

func WithSymbol(symbol string) Option {
	return func(o *Options) { o.Symbol = symbol }
}

func WithGroupingSeparator(sep string) Option {
	return func(o *Options) { o.GroupingSeparator = sep }
}

func WithDecimalSeparator(sep string) Option {
	return func(o *Options) { o.DecimalSeparator = sep }
}

func WithDecimalPlaces(places int) Option {
	return func(o *Options) { o.DecimalPlaces = places }
}

func WithSignPlacement(p SignPlacement) Option {
	return func(o *Options) { o.SignPlacement = p }
}

// WithOptions replaces every field at once.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}
