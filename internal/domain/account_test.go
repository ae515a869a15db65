package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bankey/account-summary/internal/currency"
	money "github.com/bankey/account-summary/pkg/decimal"
)

func TestParseAccountType(t *testing.T) {
	cases := map[string]AccountType{
		"banking":     AccountTypeBanking,
		"Banking":     AccountTypeBanking,
		"creditCard":  AccountTypeCreditCard,
		"credit_card": AccountTypeCreditCard,
		"credit-card": AccountTypeCreditCard,
		"investment":  AccountTypeInvestment,
	}
	for in, want := range cases {
		got, err := ParseAccountType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseAccountType("mortgage")
	assert.Error(t, err)
	assert.False(t, AccountType("mortgage").Valid())
	assert.True(t, AccountTypeInvestment.Valid())
}

func TestBalanceLabel(t *testing.T) {
	assert.Equal(t, "Current Balance", AccountTypeBanking.BalanceLabel())
	assert.Equal(t, "Current Balance", AccountTypeCreditCard.BalanceLabel())
	assert.Equal(t, "Value", AccountTypeInvestment.BalanceLabel())
}

func TestSummaryTotal(t *testing.T) {
	s := AccountSummary{Accounts: SampleAccounts()}
	assert.Len(t, s.Accounts, 6)
	assert.Equal(t, "964492.33", s.Total().String())

	s.Accounts = append(s.Accounts, Account{Type: AccountTypeBanking, Name: "Broken", Balance: money.NaN()})
	assert.False(t, s.Total().IsFinite())
}

func TestAccountYAML(t *testing.T) {
	src := "type: credit_card\nname: Visa Avion Card\nbalance: 412.83\n"
	var a Account
	require.NoError(t, yaml.Unmarshal([]byte(src), &a))
	assert.Equal(t, AccountTypeCreditCard, a.Type)
	assert.Equal(t, "412.83", a.Balance.String())

	err := yaml.Unmarshal([]byte("type: mortgage\nname: x\nbalance: 1\n"), &a)
	assert.ErrorContains(t, err, "mortgage")
}

func TestFormattingConfigOptions(t *testing.T) {
	assert.Equal(t, currency.DefaultOptions(), FormattingConfig{}.Options())

	src := "symbol: \"€\"\ngrouping_separator: \".\"\ndecimal_separator: \",\"\ndecimal_places: 3\nsign_placement: before-symbol\n"
	var f FormattingConfig
	require.NoError(t, yaml.Unmarshal([]byte(src), &f))
	opts := f.Options()
	assert.Equal(t, "€", opts.Symbol)
	assert.Equal(t, ".", opts.GroupingSeparator)
	assert.Equal(t, ",", opts.DecimalSeparator)
	assert.Equal(t, 3, opts.DecimalPlaces)
	assert.Equal(t, currency.SignBeforeSymbol, opts.SignPlacement)

	empty := ""
	f = FormattingConfig{GroupingSeparator: &empty}
	assert.Equal(t, "", f.Options().GroupingSeparator)
}
