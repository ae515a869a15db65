package currency

import (
	"errors"

	money "github.com/bankey/account-summary/pkg/decimal"
)

// Decomposer formats amounts with a fixed set of Options. It holds no mutable
// state after construction and is safe for concurrent use.
type Decomposer struct {
	Options Options
	Logger  Logger
}

// NewDecomposer starts from DefaultOptions and applies opts in order.
func NewDecomposer(opts ...Option) *Decomposer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Decomposer{Options: o, Logger: NopLogger{}}
}

// SetLogger sets the logger for the decomposer. If nil is provided, a no-op logger is used.
func (d *Decomposer) SetLogger(l Logger) {
	if l == nil {
		d.Logger = NopLogger{}
		return
	}
	d.Logger = l
}

// Format decomposes amount into symbol, integer and fraction segments.
func (d *Decomposer) Format(amount money.Money) (FormattedCurrency, error) {
	result, carried, err := format(amount, d.Options)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount):
			d.logger().Warnf("refusing to format %s: %v", amount, err)
		default:
			d.logger().Errorf("formatter misconfigured: %v", err)
		}
		return FormattedCurrency{}, err
	}
	if carried {
		d.logger().Debugf("fraction of %s rounded up to a whole unit, formatted as %s", amount.Exact(), result)
	}
	return result, nil
}

// BreakIntoDollarsAndCents returns only the integer and fraction segments,
// e.g. 929466.23 -> ("929,466", "23").
func (d *Decomposer) BreakIntoDollarsAndCents(amount money.Money) (string, string, error) {
	result, err := d.Format(amount)
	if err != nil {
		return "", "", err
	}
	return result.IntegerText, result.FractionText, nil
}

func (d *Decomposer) logger() Logger {
	if d.Logger == nil {
		return NopLogger{}
	}
	return d.Logger
}
