package domain

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// SimulationInput holds the complete parameter set for one buy-vs-rent
// projection. All rates are annual percentages (6.5 means 6.5%/year); the
// engine converts them to monthly fractional rates internally. Loan term and
// time horizon are whole years and may differ: a horizon longer than the term
// models post-payoff ownership, a shorter one stops mid-amortization.
type SimulationInput struct {
	HomePrice          decimal.Decimal `yaml:"home_price" json:"home_price"`
	DownPaymentPercent decimal.Decimal `yaml:"down_payment_percent" json:"down_payment_percent"`
	MortgageRate       decimal.Decimal `yaml:"mortgage_rate" json:"mortgage_rate"`
	LoanTermYears      int             `yaml:"loan_term_years" json:"loan_term_years"`
	PropertyTaxRate    decimal.Decimal `yaml:"property_tax_rate" json:"property_tax_rate"`
	HomeInsurance      decimal.Decimal `yaml:"home_insurance" json:"home_insurance"`
	HOAMonthly         decimal.Decimal `yaml:"hoa_monthly" json:"hoa_monthly"`
	MaintenancePercent decimal.Decimal `yaml:"maintenance_percent" json:"maintenance_percent"`
	HomeAppreciation   decimal.Decimal `yaml:"home_appreciation" json:"home_appreciation"`
	ClosingCostPercent decimal.Decimal `yaml:"closing_cost_percent" json:"closing_cost_percent"`
	SellingCostPercent decimal.Decimal `yaml:"selling_cost_percent" json:"selling_cost_percent"`
	MonthlyRent        decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	RentIncreaseRate   decimal.Decimal `yaml:"rent_increase_rate" json:"rent_increase_rate"`
	RentersInsurance   decimal.Decimal `yaml:"renters_insurance" json:"renters_insurance"`
	InvestmentReturn   decimal.Decimal `yaml:"investment_return" json:"investment_return"`
	TimeHorizonYears   int             `yaml:"time_horizon_years" json:"time_horizon_years"`
}

// DefaultInput returns a typical starter scenario: a $400k home at 6.5%/30y
// with 20% down, against $2k/month rent, both sides investing at 7%.
func DefaultInput() SimulationInput {
	return SimulationInput{
		HomePrice:          decimal.NewFromInt(400000),
		DownPaymentPercent: decimal.NewFromInt(20),
		MortgageRate:       decimal.NewFromFloat(6.5),
		LoanTermYears:      30,
		PropertyTaxRate:    decimal.NewFromFloat(1.2),
		HomeInsurance:      decimal.NewFromInt(1500),
		HOAMonthly:         decimal.Zero,
		MaintenancePercent: decimal.NewFromInt(1),
		HomeAppreciation:   decimal.NewFromInt(3),
		ClosingCostPercent: decimal.NewFromInt(3),
		SellingCostPercent: decimal.NewFromInt(6),
		MonthlyRent:        decimal.NewFromInt(2000),
		RentIncreaseRate:   decimal.NewFromInt(3),
		RentersInsurance:   decimal.NewFromInt(200),
		InvestmentReturn:   decimal.NewFromInt(7),
		TimeHorizonYears:   10,
	}
}

// Clone returns an independent copy of the input. Decimal values are
// immutable, so a struct copy is sufficient.
func (in *SimulationInput) Clone() *SimulationInput {
	c := *in
	return &c
}

// DownPayment is the up-front cash portion of the purchase price.
func (in *SimulationInput) DownPayment() decimal.Decimal {
	return in.HomePrice.Mul(in.DownPaymentPercent).Div(hundred)
}

// LoanAmount is the financed portion of the purchase price.
func (in *SimulationInput) LoanAmount() decimal.Decimal {
	return in.HomePrice.Sub(in.DownPayment())
}

// ClosingCosts is the one-time purchase transaction cost.
func (in *SimulationInput) ClosingCosts() decimal.Decimal {
	return in.HomePrice.Mul(in.ClosingCostPercent).Div(hundred)
}

// InitialInvestment is the capital a renter keeps invested instead of
// sinking it into a purchase: down payment plus closing costs.
func (in *SimulationInput) InitialInvestment() decimal.Decimal {
	return in.DownPayment().Add(in.ClosingCosts())
}

// TotalMonths is the simulated horizon in months.
func (in *SimulationInput) TotalMonths() int {
	return in.TimeHorizonYears * 12
}

// LoanTermMonths is the amortization period in months.
func (in *SimulationInput) LoanTermMonths() int {
	return in.LoanTermYears * 12
}

var hundred = decimal.NewFromInt(100)

// NamedScenario pairs a scenario name with its full input set. The input
// fields sit inline in YAML so a scenario reads as one flat block.
type NamedScenario struct {
	Name  string          `yaml:"name" json:"name"`
	Input SimulationInput `yaml:",inline" json:"input"`
}

// UnmarshalYAML seeds a scenario with the default input before decoding,
// so a file only needs to name the fields it changes.
func (s *NamedScenario) UnmarshalYAML(value *yaml.Node) error {
	s.Input = DefaultInput()

	type plain NamedScenario
	return value.Decode((*plain)(s))
}

// Configuration is the top-level structure of a scenario file.
type Configuration struct {
	Scenarios []NamedScenario `yaml:"scenarios" json:"scenarios"`
}

// ScenarioByName returns the named scenario, or nil if absent.
func (c *Configuration) ScenarioByName(name string) *NamedScenario {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i]
		}
	}
	return nil
}

// DefaultScenario returns the first scenario in the file, or nil when the
// file defines none.
func (c *Configuration) DefaultScenario() *NamedScenario {
	if len(c.Scenarios) == 0 {
		return nil
	}
	return &c.Scenarios[0]
}

// ScenarioNames lists scenario names in file order.
func (c *Configuration) ScenarioNames() []string {
	names := make([]string, 0, len(c.Scenarios))
	for i := range c.Scenarios {
		names = append(names, c.Scenarios[i].Name)
	}
	return names
}
