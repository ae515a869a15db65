package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	money "github.com/bankey/account-summary/pkg/decimal"
)

// SegmentKind identifies a piece of a formatted amount for styling.
type SegmentKind string

const (
	SegmentSymbol   SegmentKind = "symbol"
	SegmentInteger  SegmentKind = "integer"
	SegmentFraction SegmentKind = "fraction"
)

// Segment is one styled run of text.
type Segment struct {
	Kind SegmentKind `json:"kind"`
	Text string      `json:"text"`
}

// FormattedCurrency is the decomposed display form of an amount. Presentation
// code decides how each segment is rendered; nothing here joins them except
// String.
type FormattedCurrency struct {
	SymbolText   string `json:"symbol"`
	IntegerText  string `json:"integer"`
	FractionText string `json:"fraction"`
	// DecimalSeparator goes between integer and fraction in String; empty means ".".
	DecimalSeparator string `json:"decimal_separator"`
}

// Segments returns symbol, integer and fraction in display order.
func (f FormattedCurrency) Segments() []Segment {
	return []Segment{
		{Kind: SegmentSymbol, Text: f.SymbolText},
		{Kind: SegmentInteger, Text: f.IntegerText},
		{Kind: SegmentFraction, Text: f.FractionText},
	}
}

// String joins the segments into a conventional currency string, e.g. "$929,466.23".
func (f FormattedCurrency) String() string {
	if f.FractionText == "" {
		return f.SymbolText + f.IntegerText
	}
	sep := f.DecimalSeparator
	if sep == "" {
		sep = "."
	}
	return f.SymbolText + f.IntegerText + sep + f.FractionText
}

// Format decomposes amount according to opts. It is a pure function: the
// same input always yields the same segments.
func Format(amount money.Money, opts Options) (FormattedCurrency, error) {
	result, _, err := format(amount, opts)
	return result, err
}

func format(amount money.Money, opts Options) (FormattedCurrency, bool, error) {
	if err := opts.Validate(); err != nil {
		return FormattedCurrency{}, false, err
	}
	if !amount.IsFinite() {
		return FormattedCurrency{}, false, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	d, _ := amount.Decimal()
	whole, cents, carried := split(d, opts.DecimalPlaces)

	negative := amount.IsNegative() && !(whole.IsZero() && cents.IsZero())
	result := FormattedCurrency{
		SymbolText:       opts.Symbol,
		IntegerText:      groupDigits(whole.String(), opts.GroupingSeparator),
		FractionText:     padFraction(cents, opts.DecimalPlaces),
		DecimalSeparator: opts.DecimalSeparator,
	}
	if negative {
		switch opts.SignPlacement {
		case SignBeforeSymbol:
			result.SymbolText = "-" + result.SymbolText
		case SignAfterSymbol:
			result.SymbolText = result.SymbolText + "-"
		default:
			result.IntegerText = "-" + result.IntegerText
		}
	}
	return result, carried, nil
}

// split returns the unsigned whole part and the fraction scaled to places
// digits, rounded half away from zero. A fraction that rounds up to a full
// unit is carried into the whole part; carried reports that case.
func split(d decimal.Decimal, places int) (whole, scaled decimal.Decimal, carried bool) {
	abs := d.Abs()
	whole = abs.Truncate(0)
	scaled = abs.Sub(whole).Shift(int32(places)).Round(0)

	unit := decimal.New(1, int32(places))
	if scaled.GreaterThanOrEqual(unit) {
		whole = whole.Add(decimal.NewFromInt(1))
		scaled = scaled.Sub(unit)
		carried = true
	}
	return whole, scaled, carried
}

// groupDigits inserts sep every three digits counting from the right.
func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func padFraction(scaled decimal.Decimal, places int) string {
	if places == 0 {
		return ""
	}
	digits := scaled.String()
	if len(digits) < places {
		digits = strings.Repeat("0", places-len(digits)) + digits
	}
	return digits
}
