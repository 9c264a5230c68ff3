package domain

import (
	"github.com/shopspring/decimal"
)

// YearlySnapshot records both net-worth figures at the end of a simulated
// year. Year is 1-based; a snapshot is taken every 12th month, never at
// month zero. Buy-side net worth treats the snapshot as a hypothetical
// immediate sale, so selling costs are already deducted.
type YearlySnapshot struct {
	Year         int             `json:"year"`
	BuyNetWorth  decimal.Decimal `json:"buy_net_worth"`
	RentNetWorth decimal.Decimal `json:"rent_net_worth"`
}

// BuyBreakdown aggregates every dollar that moved in the buy scenario over
// the full horizon. It is produced once at the end of a run and never
// mutated afterward.
type BuyBreakdown struct {
	DownPayment           decimal.Decimal `json:"down_payment"`
	ClosingCosts          decimal.Decimal `json:"closing_costs"`
	TotalMortgagePayments decimal.Decimal `json:"total_mortgage_payments"`
	TotalInterestPaid     decimal.Decimal `json:"total_interest_paid"`
	TotalPrincipalPaid    decimal.Decimal `json:"total_principal_paid"`
	TotalPropertyTax      decimal.Decimal `json:"total_property_tax"`
	TotalInsurance        decimal.Decimal `json:"total_insurance"`
	TotalHOA              decimal.Decimal `json:"total_hoa"`
	TotalMaintenance      decimal.Decimal `json:"total_maintenance"`
	SellingCosts          decimal.Decimal `json:"selling_costs"`
	FinalHomeValue        decimal.Decimal `json:"final_home_value"`
	RemainingMortgage     decimal.Decimal `json:"remaining_mortgage"`

	// Buyer-side investing: months where owning was cheaper than renting.
	MonthlySavingsInvested decimal.Decimal `json:"monthly_savings_invested"`
	InvestmentReturns      decimal.Decimal `json:"investment_returns"`
	InvestmentBalance      decimal.Decimal `json:"investment_balance"`

	NetWorth decimal.Decimal `json:"net_worth"`
}

// RentBreakdown aggregates the rent scenario: the renter keeps the down
// payment and closing costs invested and banks any month where renting was
// the cheaper option.
type RentBreakdown struct {
	InitialInvestment     decimal.Decimal `json:"initial_investment"`
	TotalRentPaid         decimal.Decimal `json:"total_rent_paid"`
	TotalRentersInsurance decimal.Decimal `json:"total_renters_insurance"`
	MonthlyCostSavings    decimal.Decimal `json:"monthly_cost_savings"`
	InvestmentReturns     decimal.Decimal `json:"investment_returns"`
	FinalInvestmentValue  decimal.Decimal `json:"final_investment_value"`
	NetWorth              decimal.Decimal `json:"net_worth"`
}

// MonthlyCostComparison holds horizon-averaged monthly outlays for both
// sides. AvgMonthlyDifference is buy minus rent: positive means renting was
// cheaper per month on average.
type MonthlyCostComparison struct {
	AvgBuyMonthly        decimal.Decimal `json:"avg_buy_monthly"`
	AvgRentMonthly       decimal.Decimal `json:"avg_rent_monthly"`
	AvgMonthlyDifference decimal.Decimal `json:"avg_monthly_difference"`
}

// MonthlyBreakdown splits the averaged monthly cost into its components.
// Every field is the corresponding running total divided by the number of
// simulated months; nothing here is computed independently of the totals.
type MonthlyBreakdown struct {
	BuyMortgage    decimal.Decimal `json:"buy_mortgage"`
	BuyPropertyTax decimal.Decimal `json:"buy_property_tax"`
	BuyInsurance   decimal.Decimal `json:"buy_insurance"`
	BuyHOA         decimal.Decimal `json:"buy_hoa"`
	BuyMaintenance decimal.Decimal `json:"buy_maintenance"`
	BuyTotal       decimal.Decimal `json:"buy_total"`

	RentPayment   decimal.Decimal `json:"rent_payment"`
	RentInsurance decimal.Decimal `json:"rent_insurance"`
	RentTotal     decimal.Decimal `json:"rent_total"`
}

// CalculationResult is the complete outcome of one simulation run.
// Difference is buy net worth minus rent net worth; positive favors buying.
type CalculationResult struct {
	BuyBreakdown      BuyBreakdown          `json:"buy_breakdown"`
	RentBreakdown     RentBreakdown         `json:"rent_breakdown"`
	MonthlyComparison MonthlyCostComparison `json:"monthly_comparison"`
	MonthlyBreakdown  MonthlyBreakdown      `json:"monthly_breakdown"`
	Difference        decimal.Decimal       `json:"difference"`
	YearlySnapshots   []YearlySnapshot      `json:"yearly_snapshots"`
}

// BuyingWins reports whether the buy scenario ended ahead.
func (r *CalculationResult) BuyingWins() bool {
	return r.Difference.IsPositive()
}

// Margin is the absolute net-worth gap between the two scenarios.
func (r *CalculationResult) Margin() decimal.Decimal {
	return r.Difference.Abs()
}
