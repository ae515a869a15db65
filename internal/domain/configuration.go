package domain

import (
	"github.com/bankey/account-summary/internal/currency"
)

// Configuration is the top-level input file: how to format balances and
// which accounts to show.
type Configuration struct {
	Formatting FormattingConfig `yaml:"formatting" json:"formatting"`
	Accounts   []Account        `yaml:"accounts" json:"accounts"`
}

// FormattingConfig mirrors currency.Options. Nil fields keep the default.
type FormattingConfig struct {
	Symbol            *string                 `yaml:"symbol,omitempty" json:"symbol,omitempty"`
	GroupingSeparator *string                 `yaml:"grouping_separator,omitempty" json:"grouping_separator,omitempty"`
	DecimalSeparator  *string                 `yaml:"decimal_separator,omitempty" json:"decimal_separator,omitempty"`
	DecimalPlaces     *int                    `yaml:"decimal_places,omitempty" json:"decimal_places,omitempty"`
	SignPlacement     *currency.SignPlacement `yaml:"sign_placement,omitempty" json:"sign_placement,omitempty"`
}

// Options resolves the configured values over currency.DefaultOptions.
func (f FormattingConfig) Options() currency.Options {
	opts := currency.DefaultOptions()
	if f.Symbol != nil {
		opts.Symbol = *f.Symbol
	}
	if f.GroupingSeparator != nil {
		opts.GroupingSeparator = *f.GroupingSeparator
	}
	if f.DecimalSeparator != nil {
		opts.DecimalSeparator = *f.DecimalSeparator
	}
	if f.DecimalPlaces != nil {
		opts.DecimalPlaces = *f.DecimalPlaces
	}
	if f.SignPlacement != nil {
		opts.SignPlacement = *f.SignPlacement
	}
	return opts
}

// Summary wraps the configured accounts.
func (c *Configuration) Summary() AccountSummary {
	return AccountSummary{Accounts: c.Accounts}
}
