package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	money "github.com/bankey/account-summary/pkg/decimal"
)

// AccountType groups accounts on the summary screen.
type AccountType string

const (
	AccountTypeBanking    AccountType = "banking"
	AccountTypeCreditCard AccountType = "creditCard"
	AccountTypeInvestment AccountType = "investment"
)

// AccountTypes lists every known type in display order.
var AccountTypes = []AccountType{AccountTypeBanking, AccountTypeCreditCard, AccountTypeInvestment}

// ParseAccountType accepts the canonical names case-insensitively; "credit_card"
// and "credit-card" are also recognised.
func ParseAccountType(name string) (AccountType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("_", "", "-", "", " ", "").Replace(n)
	for _, t := range AccountTypes {
		if strings.ToLower(string(t)) == n {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown account type %q", name)
}

// Valid reports whether t is one of AccountTypes.
func (t AccountType) Valid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// BalanceLabel is the caption shown above the balance.
func (t AccountType) BalanceLabel() string {
	if t == AccountTypeInvestment {
		return "Value"
	}
	return "Current Balance"
}

// UnmarshalYAML implements custom YAML unmarshaling for AccountType
func (t *AccountType) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseAccountType(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}

// Account is one row of the account summary.
type Account struct {
	Type    AccountType `yaml:"type" json:"type"`
	Name    string      `yaml:"name" json:"name"`
	Balance money.Money `yaml:"balance" json:"balance"`
}

// AccountSummary is the ordered list of accounts shown to the user.
type AccountSummary struct {
	Accounts []Account `yaml:"accounts" json:"accounts"`
}

// Total sums every balance. The result is NaN if any balance is.
func (s AccountSummary) Total() money.Money {
	total := money.Zero()
	for _, a := range s.Accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// SampleAccounts returns the demo accounts shown before real data is wired in.
func SampleAccounts() []Account {
	return []Account{
		{Type: AccountTypeBanking, Name: "Basic Savings", Balance: mustMoney("929466.23")},
		{Type: AccountTypeBanking, Name: "No-Fee All-In Chequing", Balance: mustMoney("17562.44")},
		{Type: AccountTypeCreditCard, Name: "Visa Avion Card", Balance: mustMoney("412.83")},
		{Type: AccountTypeCreditCard, Name: "Student Mastercard", Balance: mustMoney("50.83")},
		{Type: AccountTypeInvestment, Name: "Tax-Free Saver", Balance: mustMoney("2000.00")},
		{Type: AccountTypeInvestment, Name: "Growth Fund", Balance: mustMoney("15000.00")},
	}
}

func mustMoney(s string) money.Money {
	m, err := money.NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}
