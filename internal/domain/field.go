package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Field identifies a single sweepable input. The set is closed: these
// sixteen constants are the only values the sweep, the transforms and the
// break-even solver accept.
type Field string

const (
	FieldHomePrice          Field = "home_price"
	FieldDownPaymentPercent Field = "down_payment_percent"
	FieldMortgageRate       Field = "mortgage_rate"
	FieldLoanTermYears      Field = "loan_term_years"
	FieldPropertyTaxRate    Field = "property_tax_rate"
	FieldHomeInsurance      Field = "home_insurance"
	FieldHOAMonthly         Field = "hoa_monthly"
	FieldMaintenancePercent Field = "maintenance_percent"
	FieldHomeAppreciation   Field = "home_appreciation"
	FieldClosingCostPercent Field = "closing_cost_percent"
	FieldSellingCostPercent Field = "selling_cost_percent"
	FieldMonthlyRent        Field = "monthly_rent"
	FieldRentIncreaseRate   Field = "rent_increase_rate"
	FieldRentersInsurance   Field = "renters_insurance"
	FieldInvestmentReturn   Field = "investment_return"
	FieldTimeHorizonYears   Field = "time_horizon_years"
)

// AllFields lists every sweepable field in display order.
func AllFields() []Field {
	return []Field{
		FieldHomePrice,
		FieldDownPaymentPercent,
		FieldMortgageRate,
		FieldLoanTermYears,
		FieldPropertyTaxRate,
		FieldHomeInsurance,
		FieldHOAMonthly,
		FieldMaintenancePercent,
		FieldHomeAppreciation,
		FieldClosingCostPercent,
		FieldSellingCostPercent,
		FieldMonthlyRent,
		FieldRentIncreaseRate,
		FieldRentersInsurance,
		FieldInvestmentReturn,
		FieldTimeHorizonYears,
	}
}

// ParseField maps a field name string onto the closed Field set. Unknown
// names are rejected here so that stringly-typed dispatch never reaches the
// simulation layer.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown field %q", s)
	}
	return f, nil
}

// Valid reports whether f is one of the sixteen known fields.
func (f Field) Valid() bool {
	switch f {
	case FieldHomePrice, FieldDownPaymentPercent, FieldMortgageRate,
		FieldLoanTermYears, FieldPropertyTaxRate, FieldHomeInsurance,
		FieldHOAMonthly, FieldMaintenancePercent, FieldHomeAppreciation,
		FieldClosingCostPercent, FieldSellingCostPercent, FieldMonthlyRent,
		FieldRentIncreaseRate, FieldRentersInsurance, FieldInvestmentReturn,
		FieldTimeHorizonYears:
		return true
	}
	return false
}

// IsIntegerYears reports whether the field carries a whole-year semantic.
// Swept values assigned to such a field are truncated, not rounded.
func (f Field) IsIntegerYears() bool {
	return f == FieldLoanTermYears || f == FieldTimeHorizonYears
}

func (f Field) String() string { return string(f) }

// Set assigns value to the named field on the input. Whole-year fields
// truncate the value. An unrecognized field leaves the input untouched;
// this leniency is intentional and keeps a sweep over a stale field name a
// no-op rather than a crash, but callers should reject unknown names up
// front via ParseField.
func (in *SimulationInput) Set(f Field, value float64) {
	switch f {
	case FieldHomePrice:
		in.HomePrice = decimal.NewFromFloat(value)
	case FieldDownPaymentPercent:
		in.DownPaymentPercent = decimal.NewFromFloat(value)
	case FieldMortgageRate:
		in.MortgageRate = decimal.NewFromFloat(value)
	case FieldLoanTermYears:
		in.LoanTermYears = int(value)
	case FieldPropertyTaxRate:
		in.PropertyTaxRate = decimal.NewFromFloat(value)
	case FieldHomeInsurance:
		in.HomeInsurance = decimal.NewFromFloat(value)
	case FieldHOAMonthly:
		in.HOAMonthly = decimal.NewFromFloat(value)
	case FieldMaintenancePercent:
		in.MaintenancePercent = decimal.NewFromFloat(value)
	case FieldHomeAppreciation:
		in.HomeAppreciation = decimal.NewFromFloat(value)
	case FieldClosingCostPercent:
		in.ClosingCostPercent = decimal.NewFromFloat(value)
	case FieldSellingCostPercent:
		in.SellingCostPercent = decimal.NewFromFloat(value)
	case FieldMonthlyRent:
		in.MonthlyRent = decimal.NewFromFloat(value)
	case FieldRentIncreaseRate:
		in.RentIncreaseRate = decimal.NewFromFloat(value)
	case FieldRentersInsurance:
		in.RentersInsurance = decimal.NewFromFloat(value)
	case FieldInvestmentReturn:
		in.InvestmentReturn = decimal.NewFromFloat(value)
	case FieldTimeHorizonYears:
		in.TimeHorizonYears = int(value)
	}
}

// Get returns the current value of the named field as a float64, for
// sliders and sweep baselines. Unknown fields read as zero.
func (in *SimulationInput) Get(f Field) float64 {
	switch f {
	case FieldHomePrice:
		return in.HomePrice.InexactFloat64()
	case FieldDownPaymentPercent:
		return in.DownPaymentPercent.InexactFloat64()
	case FieldMortgageRate:
		return in.MortgageRate.InexactFloat64()
	case FieldLoanTermYears:
		return float64(in.LoanTermYears)
	case FieldPropertyTaxRate:
		return in.PropertyTaxRate.InexactFloat64()
	case FieldHomeInsurance:
		return in.HomeInsurance.InexactFloat64()
	case FieldHOAMonthly:
		return in.HOAMonthly.InexactFloat64()
	case FieldMaintenancePercent:
		return in.MaintenancePercent.InexactFloat64()
	case FieldHomeAppreciation:
		return in.HomeAppreciation.InexactFloat64()
	case FieldClosingCostPercent:
		return in.ClosingCostPercent.InexactFloat64()
	case FieldSellingCostPercent:
		return in.SellingCostPercent.InexactFloat64()
	case FieldMonthlyRent:
		return in.MonthlyRent.InexactFloat64()
	case FieldRentIncreaseRate:
		return in.RentIncreaseRate.InexactFloat64()
	case FieldRentersInsurance:
		return in.RentersInsurance.InexactFloat64()
	case FieldInvestmentReturn:
		return in.InvestmentReturn.InexactFloat64()
	case FieldTimeHorizonYears:
		return float64(in.TimeHorizonYears)
	}
	return 0
}
