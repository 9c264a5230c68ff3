package domain

import (
	"github.com/shopspring/decimal"
)

// SweepPoint is one sample of a sensitivity curve: the swept field's value
// and the resulting buy-minus-rent net-worth difference.
type SweepPoint struct {
	Value      float64         `json:"value"`
	Difference decimal.Decimal `json:"difference"`
}

// SweepResult holds a full sensitivity curve for one field.
type SweepResult struct {
	Field     Field        `json:"field"`
	BaseValue float64      `json:"base_value"`
	Points    []SweepPoint `json:"points"`
}

// SweepParameter describes the canonical slider/sweep range for a field.
// The ranges come from the interactive UI and double as the default bounds
// for CLI sweeps and the break-even solver.
type SweepParameter struct {
	Field       Field   `yaml:"field" json:"field"`
	Label       string  `yaml:"label" json:"label"`
	Group       string  `yaml:"group" json:"group"`
	Min         float64 `yaml:"min" json:"min"`
	Max         float64 `yaml:"max" json:"max"`
	Step        float64 `yaml:"step" json:"step"`
	Unit        string  `yaml:"unit" json:"unit"`
	Description string  `yaml:"description" json:"description"`
}

// Input groups, in the order the parameter screens present them.
const (
	GroupHorizon     = "Time Horizon"
	GroupPurchase    = "Home Purchase Details"
	GroupOwnerCosts  = "Ongoing Home Costs"
	GroupTransaction = "Transaction Costs"
	GroupRental      = "Rental Details"
	GroupInvestment  = "Investment Assumptions"
)

// SweepParameters lists every field with its display metadata and default
// range, in presentation order.
func SweepParameters() []SweepParameter {
	return []SweepParameter{
		{FieldTimeHorizonYears, "Time Horizon", GroupHorizon, 1, 30, 1, "years", "How long you plan to stay"},
		{FieldHomePrice, "Home Price", GroupPurchase, 100000, 2000000, 10000, "$", "Purchase price of the home"},
		{FieldDownPaymentPercent, "Down Payment", GroupPurchase, 0, 100, 1, "%", "Percent of price paid up front"},
		{FieldMortgageRate, "Mortgage Interest Rate", GroupPurchase, 0, 15, 0.125, "%", "Annual fixed mortgage rate"},
		{FieldLoanTermYears, "Loan Term", GroupPurchase, 10, 30, 5, "years", "Amortization period"},
		{FieldHomeAppreciation, "Home Appreciation Rate", GroupPurchase, -5, 10, 0.5, "%/yr", "Annual change in home value"},
		{FieldPropertyTaxRate, "Property Tax Rate", GroupOwnerCosts, 0, 4, 0.1, "%/yr", "Annual tax on current home value"},
		{FieldHomeInsurance, "Home Insurance", GroupOwnerCosts, 0, 5000, 100, "$/yr", "Annual homeowner insurance premium"},
		{FieldHOAMonthly, "HOA Fees", GroupOwnerCosts, 0, 1000, 25, "$/mo", "Monthly association dues"},
		{FieldMaintenancePercent, "Maintenance", GroupOwnerCosts, 0, 3, 0.25, "%/yr", "Annual upkeep as percent of home value"},
		{FieldClosingCostPercent, "Closing Costs", GroupTransaction, 0, 6, 0.5, "%", "One-time purchase costs as percent of price"},
		{FieldSellingCostPercent, "Selling Costs", GroupTransaction, 0, 10, 0.5, "%", "Realtor and transfer costs as percent of sale"},
		{FieldMonthlyRent, "Monthly Rent", GroupRental, 500, 10000, 100, "$/mo", "Starting monthly rent"},
		{FieldRentIncreaseRate, "Annual Rent Increase", GroupRental, 0, 10, 0.5, "%/yr", "Yearly rent escalation"},
		{FieldRentersInsurance, "Renter's Insurance", GroupRental, 0, 1000, 25, "$/yr", "Annual renter insurance premium"},
		{FieldInvestmentReturn, "Investment Return Rate", GroupInvestment, 0, 15, 0.5, "%/yr", "Annual return on invested savings"},
	}
}

// SweepParameterFor returns the canonical range for a field.
func SweepParameterFor(f Field) (SweepParameter, bool) {
	for _, p := range SweepParameters() {
		if p.Field == f {
			return p, true
		}
	}
	return SweepParameter{}, false
}
