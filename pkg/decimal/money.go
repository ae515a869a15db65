package decimal

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with exact decimal precision.
// The zero value is a valid amount of zero. An invalid (not-a-number)
// amount can only be produced by NaN or by constructing from a value
// that has no decimal representation. The underlying decimal is only
// reachable through Decimal, which reports whether it is valid.
type Money struct {
	d       decimal.Decimal
	invalid bool
}

// NewMoney creates a new Money instance from a float64.
// NaN and infinities produce the invalid sentinel instead of panicking.
func NewMoney(value float64) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NaN()
	}
	return Money{d: decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d: d}
}

// NewMoneyFromInt creates a whole-unit Money instance
func NewMoneyFromInt(value int64) Money {
	return Money{d: decimal.NewFromInt(value)}
}

// NewMoneyFromNullDecimal maps a missing decimal to the invalid sentinel.
func NewMoneyFromNullDecimal(d decimal.NullDecimal) Money {
	if !d.Valid {
		return NaN()
	}
	return Money{d: d.Decimal}
}

// NewMoneyFromString creates a new Money instance from a string.
// "NaN" (any case) yields the invalid sentinel rather than an error.
func NewMoneyFromString(value string) (Money, error) {
	if strings.EqualFold(value, "NaN") {
		return NaN(), nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d: d}, nil
}

// NaN returns the invalid amount sentinel.
func NaN() Money {
	return Money{invalid: true}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{d: decimal.Zero}
}

// IsFinite reports whether the amount is a representable decimal.
func (m Money) IsFinite() bool {
	return !m.invalid
}

// Decimal returns the exact value; ok is false for NaN.
func (m Money) Decimal() (d decimal.Decimal, ok bool) {
	if m.invalid {
		return decimal.Decimal{}, false
	}
	return m.d, true
}

// NullDecimal converts to the nullable form; NaN becomes Valid=false.
func (m Money) NullDecimal() decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: m.d, Valid: !m.invalid}
}

// Round rounds the amount to the given number of decimal places,
// halves away from zero.
func (m Money) Round(places int32) Money {
	if m.invalid {
		return m
	}
	return Money{d: m.d.Round(places)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	if m.invalid || other.invalid {
		return NaN()
	}
	return Money{d: m.d.Add(other.d)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	if m.invalid || other.invalid {
		return NaN()
	}
	return Money{d: m.d.Sub(other.d)}
}

// Neg flips the sign
func (m Money) Neg() Money {
	if m.invalid {
		return m
	}
	return Money{d: m.d.Neg()}
}

// Abs returns the magnitude
func (m Money) Abs() Money {
	if m.invalid {
		return m
	}
	return Money{d: m.d.Abs()}
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.comparable(other) && m.d.GreaterThan(other.d)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.comparable(other) && m.d.LessThan(other.d)
}

// Equal checks if this amount equals another. NaN equals nothing.
func (m Money) Equal(other Money) bool {
	return m.comparable(other) && m.d.Equal(other.d)
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return !m.invalid && m.d.IsZero()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return !m.invalid && m.d.IsNegative()
}

func (m Money) comparable(other Money) bool {
	return !m.invalid && !other.invalid
}

// String returns the amount with two decimal places, or "NaN".
func (m Money) String() string {
	if m.invalid {
		return "NaN"
	}
	return m.d.StringFixed(2)
}

// Exact returns every stored digit, or "NaN".
func (m Money) Exact() string {
	if m.invalid {
		return "NaN"
	}
	return m.d.String()
}

// UnmarshalText accepts the same input as NewMoneyFromString.
func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := NewMoneyFromString(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText renders the exact decimal, or "NaN".
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.Exact()), nil
}

// MarshalJSON writes the amount as a quoted exact decimal so the invalid
// sentinel and large magnitudes survive a round trip.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.Exact())), nil
}

// UnmarshalJSON accepts quoted and bare numbers; null maps to NaN like a
// missing NullDecimal.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*m = NaN()
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	return m.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer. NaN is stored as SQL NULL.
func (m Money) Value() (driver.Value, error) {
	if m.invalid {
		return nil, nil
	}
	return m.d.Value()
}

// Scan implements sql.Scanner. NULL scans to NaN.
func (m *Money) Scan(value any) error {
	if value == nil {
		*m = NaN()
		return nil
	}
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return fmt.Errorf("failed to scan money: %w", err)
	}
	*m = Money{d: d}
	return nil
}
