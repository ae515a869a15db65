package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bankey/account-summary/internal/domain"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML document.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := config.Formatting.Options().Validate(); err != nil {
		return fmt.Errorf("formatting: %w", err)
	}

	if len(config.Accounts) == 0 {
		return fmt.Errorf("no accounts provided")
	}

	for i, account := range config.Accounts {
		if err := ip.validateAccount(&account); err != nil {
			return fmt.Errorf("account %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validateAccount validates a single account row
func (ip *InputParser) validateAccount(account *domain.Account) error {
	if strings.TrimSpace(account.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !account.Type.Valid() {
		return fmt.Errorf("%s: unknown account type %q", account.Name, account.Type)
	}
	if !account.Balance.IsFinite() {
		return fmt.Errorf("%s: balance must be a finite amount", account.Name)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration with the demo accounts
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Accounts: domain.SampleAccounts(),
	}
}

// SaveExampleConfiguration writes the example configuration as YAML.
func (ip *InputParser) SaveExampleConfiguration(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
