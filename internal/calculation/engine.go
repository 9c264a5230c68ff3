// Package calculation implements the month-by-month buy-versus-rent
// simulation and the closed-form mortgage amortization it relies on.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

// Engine runs the deterministic buy-versus-rent simulation. It performs
// no validation of its own; inputs are expected to have passed through
// the config layer (positive price, term and horizon of at least a
// year) before they reach Run.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with logging disabled.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger replaces the engine's logger. A nil logger restores the
// default no-op behavior.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = logger
}

// Run simulates both paths month by month over the input's time horizon
// and returns the full accounting of each side.
//
// Each month the buyer pays mortgage (while the loan lasts), property
// tax and maintenance on the current home value, insurance and HOA dues;
// the renter pays rent and renters insurance. Whichever side is cheaper
// that month invests the difference, after both portfolios have
// compounded at the monthly investment return. The home appreciates
// monthly, rent rises once a year, and a net worth snapshot is taken at
// each year boundary.
func (e *Engine) Run(input *domain.SimulationInput) *domain.CalculationResult {
	downPayment := input.DownPayment()
	loanAmount := input.LoanAmount()
	closingCosts := input.ClosingCosts()
	initialInvestment := input.InitialInvestment()

	totalMonths := input.TotalMonths()
	termMonths := input.LoanTermMonths()

	monthlyMortgage := MonthlyPayment(loanAmount, input.MortgageRate, input.LoanTermYears)
	monthlyHomeInsurance := input.HomeInsurance.Div(twelve)
	monthlyRentersInsurance := input.RentersInsurance.Div(twelve)

	investmentGrowth := one.Add(monthlyRate(input.InvestmentReturn))
	appreciationGrowth := one.Add(monthlyRate(input.HomeAppreciation))
	rentGrowth := one.Add(input.RentIncreaseRate.Div(hundred))

	e.Logger.Debugf("simulating %d months: loan=%s payment=%s initial_investment=%s",
		totalMonths, loanAmount.StringFixed(2), monthlyMortgage.StringFixed(2), initialInvestment.StringFixed(2))

	homeValue := input.HomePrice
	rent := input.MonthlyRent

	var (
		totalMortgagePayments decimal.Decimal
		totalPropertyTax      decimal.Decimal
		totalHomeInsurance    decimal.Decimal
		totalHOA              decimal.Decimal
		totalMaintenance      decimal.Decimal
		totalBuyCosts         decimal.Decimal

		totalRentPaid         decimal.Decimal
		totalRentersInsurance decimal.Decimal
		totalRentCosts        decimal.Decimal

		buyerBalance        decimal.Decimal
		buyerContributions  decimal.Decimal
		renterBalance       = initialInvestment
		renterContributions decimal.Decimal
	)

	snapshots := make([]domain.YearlySnapshot, 0, input.TimeHorizonYears)

	for month := 1; month <= totalMonths; month++ {
		mortgage := decimal.Zero
		if month <= termMonths {
			mortgage = monthlyMortgage
		}

		// Tax and maintenance track the appreciated value, not the
		// purchase price.
		propertyTax := homeValue.Mul(input.PropertyTaxRate).Div(hundred).Div(twelve)
		maintenance := homeValue.Mul(input.MaintenancePercent).Div(hundred).Div(twelve)

		buyCost := mortgage.Add(propertyTax).Add(monthlyHomeInsurance).Add(input.HOAMonthly).Add(maintenance)
		rentCost := rent.Add(monthlyRentersInsurance)

		totalMortgagePayments = totalMortgagePayments.Add(mortgage)
		totalPropertyTax = totalPropertyTax.Add(propertyTax)
		totalHomeInsurance = totalHomeInsurance.Add(monthlyHomeInsurance)
		totalHOA = totalHOA.Add(input.HOAMonthly)
		totalMaintenance = totalMaintenance.Add(maintenance)
		totalBuyCosts = totalBuyCosts.Add(buyCost)

		totalRentPaid = totalRentPaid.Add(rent)
		totalRentersInsurance = totalRentersInsurance.Add(monthlyRentersInsurance)
		totalRentCosts = totalRentCosts.Add(rentCost)

		// Portfolios compound before this month's surplus is deposited.
		buyerBalance = buyerBalance.Mul(investmentGrowth)
		renterBalance = renterBalance.Mul(investmentGrowth)

		if buyCost.LessThan(rentCost) {
			surplus := rentCost.Sub(buyCost)
			buyerBalance = buyerBalance.Add(surplus)
			buyerContributions = buyerContributions.Add(surplus)
		} else {
			surplus := buyCost.Sub(rentCost)
			renterBalance = renterBalance.Add(surplus)
			renterContributions = renterContributions.Add(surplus)
		}

		homeValue = homeValue.Mul(appreciationGrowth)

		if month%12 == 0 {
			rent = rent.Mul(rentGrowth)

			monthsPaid := min(month, termMonths)
			remaining := RemainingBalance(loanAmount, input.MortgageRate, input.LoanTermYears, monthsPaid)
			sellingCosts := homeValue.Mul(input.SellingCostPercent).Div(hundred)
			snapshots = append(snapshots, domain.YearlySnapshot{
				Year:         month / 12,
				BuyNetWorth:  homeValue.Sub(remaining).Sub(sellingCosts).Add(buyerBalance),
				RentNetWorth: renterBalance,
			})
		}
	}

	remainingMortgage := RemainingBalance(loanAmount, input.MortgageRate, input.LoanTermYears, min(totalMonths, termMonths))
	sellingCosts := homeValue.Mul(input.SellingCostPercent).Div(hundred)
	buyNetWorth := homeValue.Sub(remainingMortgage).Sub(sellingCosts).Add(buyerBalance)
	rentNetWorth := renterBalance

	totalPrincipalPaid := loanAmount.Sub(remainingMortgage)
	totalInterestPaid := totalMortgagePayments.Sub(totalPrincipalPaid)

	buyerReturns := buyerBalance.Sub(buyerContributions)
	renterReturns := renterBalance.Sub(initialInvestment).Sub(renterContributions)

	months := decimal.NewFromInt(int64(totalMonths))
	avgBuy := totalBuyCosts.Div(months)
	avgRent := totalRentCosts.Div(months)

	e.Logger.Debugf("simulation complete: buy_net_worth=%s rent_net_worth=%s",
		buyNetWorth.StringFixed(2), rentNetWorth.StringFixed(2))

	return &domain.CalculationResult{
		BuyBreakdown: domain.BuyBreakdown{
			DownPayment:            downPayment,
			ClosingCosts:           closingCosts,
			TotalMortgagePayments:  totalMortgagePayments,
			TotalInterestPaid:      totalInterestPaid,
			TotalPrincipalPaid:     totalPrincipalPaid,
			TotalPropertyTax:       totalPropertyTax,
			TotalInsurance:         totalHomeInsurance,
			TotalHOA:               totalHOA,
			TotalMaintenance:       totalMaintenance,
			SellingCosts:           sellingCosts,
			FinalHomeValue:         homeValue,
			RemainingMortgage:      remainingMortgage,
			MonthlySavingsInvested: buyerContributions,
			InvestmentReturns:      buyerReturns,
			InvestmentBalance:      buyerBalance,
			NetWorth:               buyNetWorth,
		},
		RentBreakdown: domain.RentBreakdown{
			InitialInvestment:     initialInvestment,
			TotalRentPaid:         totalRentPaid,
			TotalRentersInsurance: totalRentersInsurance,
			MonthlyCostSavings:    renterContributions,
			InvestmentReturns:     renterReturns,
			FinalInvestmentValue:  renterBalance,
			NetWorth:              rentNetWorth,
		},
		MonthlyComparison: domain.MonthlyCostComparison{
			AvgBuyMonthly:        avgBuy,
			AvgRentMonthly:       avgRent,
			AvgMonthlyDifference: avgBuy.Sub(avgRent),
		},
		MonthlyBreakdown: domain.MonthlyBreakdown{
			BuyMortgage:    totalMortgagePayments.Div(months),
			BuyPropertyTax: totalPropertyTax.Div(months),
			BuyInsurance:   totalHomeInsurance.Div(months),
			BuyHOA:         totalHOA.Div(months),
			BuyMaintenance: totalMaintenance.Div(months),
			BuyTotal:       avgBuy,
			RentPayment:    totalRentPaid.Div(months),
			RentInsurance:  totalRentersInsurance.Div(months),
			RentTotal:      avgRent,
		},
		Difference:      buyNetWorth.Sub(rentNetWorth),
		YearlySnapshots: snapshots,
	}
}
