package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	config, err := parser.LoadFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, config, "Should return nil config")
	assert.Contains(t, err.Error(), "failed to read file", "Should have specific error message")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	// Create a temporary file with invalid YAML
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.yaml")

	err := os.WriteFile(invalidFile, []byte("invalid: yaml: content: [unclosed"), 0644)
	assert.NoError(t, err)

	parser := NewInputParser()
	config, err := parser.LoadFromFile(invalidFile)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, config, "Should return nil config")
	assert.Contains(t, err.Error(), "failed to parse YAML", "Should have specific error message")
}

func TestInputParser_LoadFromFile_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	validFile := filepath.Join(tmpDir, "valid.yaml")

	validYAML := `
scenarios:
  - name: "baseline"
  - name: "expensive market"
    home_price: 1500000
    monthly_rent: 4200
    property_tax_rate: 1.2
`

	err := os.WriteFile(validFile, []byte(validYAML), 0644)
	assert.NoError(t, err)

	parser := NewInputParser()
	config, err := parser.LoadFromFile(validFile)

	assert.NoError(t, err, "Should not error for valid YAML")
	assert.NotNil(t, config, "Should return config")
	assert.Len(t, config.Scenarios, 2, "Should parse both scenarios")
	assert.Equal(t, "baseline", config.Scenarios[0].Name, "Should parse scenario name")
	assert.Equal(t, domain.DefaultInput(), config.Scenarios[0].Input, "Bare scenario should carry all defaults")

	expensive := config.Scenarios[1].Input
	assert.True(t, expensive.HomePrice.Equal(decimal.NewFromInt(1500000)), "Should override home price, got %s", expensive.HomePrice)
	assert.True(t, expensive.MonthlyRent.Equal(decimal.NewFromInt(4200)), "Should override rent, got %s", expensive.MonthlyRent)
	assert.True(t, expensive.PropertyTaxRate.Equal(decimal.NewFromFloat(1.2)), "Should override tax rate, got %s", expensive.PropertyTaxRate)
	assert.Equal(t, 30, expensive.LoanTermYears, "Omitted loan term should keep its default")
	assert.True(t, expensive.InvestmentReturn.Equal(decimal.NewFromInt(7)), "Omitted return should keep its default")
}

func TestInputParser_LoadFromFile_RejectsInvalidScenario(t *testing.T) {
	tmpDir := t.TempDir()
	badFile := filepath.Join(tmpDir, "bad.yaml")

	badYAML := `
scenarios:
  - name: "free house"
    home_price: -5
`

	err := os.WriteFile(badFile, []byte(badYAML), 0644)
	assert.NoError(t, err)

	parser := NewInputParser()
	config, err := parser.LoadFromFile(badFile)

	assert.Error(t, err, "Should reject a negative home price")
	assert.Nil(t, config, "Should return nil config")
	assert.Contains(t, err.Error(), "home price must be positive", "Should have specific error message")
}

func TestInputParser_ValidateConfiguration_NoScenarios(t *testing.T) {
	parser := NewInputParser()

	err := parser.ValidateConfiguration(&domain.Configuration{})

	assert.Error(t, err, "Should error for empty configuration")
	assert.Contains(t, err.Error(), "no scenarios provided", "Should have specific error message")
}

func TestInputParser_ValidateConfiguration_DuplicateNames(t *testing.T) {
	parser := NewInputParser()

	config := &domain.Configuration{
		Scenarios: []domain.NamedScenario{
			{Name: "twice", Input: domain.DefaultInput()},
			{Name: "twice", Input: domain.DefaultInput()},
		},
	}

	err := parser.ValidateConfiguration(config)

	assert.Error(t, err, "Should error for duplicate scenario names")
	assert.Contains(t, err.Error(), "duplicate scenario name", "Should have specific error message")
}

func TestInputParser_ValidateInput_AcceptsDefaults(t *testing.T) {
	parser := NewInputParser()
	input := domain.DefaultInput()

	err := parser.ValidateInput(&input)

	assert.NoError(t, err, "Default input should validate")
}

func TestInputParser_ValidateInput_AcceptsDepreciation(t *testing.T) {
	parser := NewInputParser()
	input := domain.DefaultInput()
	input.HomeAppreciation = decimal.NewFromInt(-5)

	err := parser.ValidateInput(&input)

	assert.NoError(t, err, "Falling home values are a legitimate scenario")
}

func TestInputParser_ValidateInput_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.SimulationInput)
		wantErr string
	}{
		{
			"zero home price",
			func(in *domain.SimulationInput) { in.HomePrice = decimal.Zero },
			"home price must be positive",
		},
		{
			"down payment above 100 percent",
			func(in *domain.SimulationInput) { in.DownPaymentPercent = decimal.NewFromInt(120) },
			"down payment percent must be between 0 and 100",
		},
		{
			"negative mortgage rate",
			func(in *domain.SimulationInput) { in.MortgageRate = decimal.NewFromInt(-1) },
			"mortgage rate cannot be negative",
		},
		{
			"zero loan term",
			func(in *domain.SimulationInput) { in.LoanTermYears = 0 },
			"loan term must be between 1 and 50 years",
		},
		{
			"zero time horizon",
			func(in *domain.SimulationInput) { in.TimeHorizonYears = 0 },
			"time horizon must be between 1 and 50 years",
		},
		{
			"negative property tax",
			func(in *domain.SimulationInput) { in.PropertyTaxRate = decimal.NewFromFloat(-0.5) },
			"property tax rate cannot be negative",
		},
		{
			"negative HOA dues",
			func(in *domain.SimulationInput) { in.HOAMonthly = decimal.NewFromInt(-50) },
			"HOA dues cannot be negative",
		},
		{
			"crash beyond total loss",
			func(in *domain.SimulationInput) { in.HomeAppreciation = decimal.NewFromInt(-150) },
			"home appreciation cannot be less than -100%",
		},
		{
			"negative rent",
			func(in *domain.SimulationInput) { in.MonthlyRent = decimal.NewFromInt(-100) },
			"monthly rent cannot be negative",
		},
		{
			"negative investment return",
			func(in *domain.SimulationInput) { in.InvestmentReturn = decimal.NewFromInt(-2) },
			"investment return cannot be negative",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := domain.DefaultInput()
			tt.mutate(&input)

			err := parser.ValidateInput(&input)

			assert.Error(t, err, "Should reject %s", tt.name)
			assert.Contains(t, err.Error(), tt.wantErr, "Should have specific error message")
		})
	}
}
