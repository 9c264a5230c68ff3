package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

// InputParser handles parsing of scenario configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file. Fields a
// scenario omits keep their defaults; the result is fully validated.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

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
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("duplicate scenario name: %s", scenario.Name)
		}
		seen[scenario.Name] = true

		if err := ip.ValidateInput(&scenario.Input); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
	}

	return nil
}

// ValidateInput checks a single input set against the ranges the
// simulation can handle. The engine itself assumes these hold, so every
// input must pass here before it reaches the calculation layer.
func (ip *InputParser) ValidateInput(input *domain.SimulationInput) error {
	if input.HomePrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("home price must be positive")
	}
	if input.DownPaymentPercent.IsNegative() || input.DownPaymentPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("down payment percent must be between 0 and 100")
	}
	if input.MortgageRate.IsNegative() {
		return fmt.Errorf("mortgage rate cannot be negative")
	}
	if input.LoanTermYears < 1 || input.LoanTermYears > 50 {
		return fmt.Errorf("loan term must be between 1 and 50 years")
	}
	if input.TimeHorizonYears < 1 || input.TimeHorizonYears > 50 {
		return fmt.Errorf("time horizon must be between 1 and 50 years")
	}
	if input.PropertyTaxRate.IsNegative() {
		return fmt.Errorf("property tax rate cannot be negative")
	}
	if input.HomeInsurance.IsNegative() {
		return fmt.Errorf("home insurance cannot be negative")
	}
	if input.HOAMonthly.IsNegative() {
		return fmt.Errorf("HOA dues cannot be negative")
	}
	if input.MaintenancePercent.IsNegative() {
		return fmt.Errorf("maintenance percent cannot be negative")
	}
	if input.HomeAppreciation.LessThan(decimal.NewFromInt(-100)) {
		return fmt.Errorf("home appreciation cannot be less than -100%%")
	}
	if input.ClosingCostPercent.IsNegative() || input.ClosingCostPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("closing cost percent must be between 0 and 100")
	}
	if input.SellingCostPercent.IsNegative() || input.SellingCostPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("selling cost percent must be between 0 and 100")
	}
	if input.MonthlyRent.IsNegative() {
		return fmt.Errorf("monthly rent cannot be negative")
	}
	if input.RentIncreaseRate.IsNegative() {
		return fmt.Errorf("rent increase rate cannot be negative")
	}
	if input.RentersInsurance.IsNegative() {
		return fmt.Errorf("renters insurance cannot be negative")
	}
	if input.InvestmentReturn.IsNegative() {
		return fmt.Errorf("investment return cannot be negative")
	}

	return nil
}
