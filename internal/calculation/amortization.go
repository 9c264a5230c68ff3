package calculation

import (
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// monthlyRate converts an annual percentage rate to a monthly fraction.
// 6.5 becomes 0.065/12.
func monthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(hundred).Div(twelve)
}

// MonthlyPayment returns the fixed monthly payment for a fully amortizing
// loan using the standard annuity formula
//
//	P * r * (1+r)^n / ((1+r)^n - 1)
//
// where r is the monthly rate and n the total number of payments. A zero
// rate degenerates to straight principal division.
func MonthlyPayment(principal, annualRatePercent decimal.Decimal, termYears int) decimal.Decimal {
	n := termYears * 12
	if annualRatePercent.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(n)))
	}

	r := monthlyRate(annualRatePercent)
	growth := one.Add(r).Pow(decimal.NewFromInt(int64(n)))
	return principal.Mul(r).Mul(growth).Div(growth.Sub(one))
}

// RemainingBalance returns the principal still owed after monthsPaid
// payments. Once the loan term has elapsed the balance is exactly zero,
// regardless of accumulated rounding in the closed-form expression.
func RemainingBalance(principal, annualRatePercent decimal.Decimal, termYears, monthsPaid int) decimal.Decimal {
	n := termYears * 12
	if monthsPaid >= n {
		return decimal.Zero
	}

	payment := MonthlyPayment(principal, annualRatePercent, termYears)
	if annualRatePercent.IsZero() {
		balance := principal.Sub(payment.Mul(decimal.NewFromInt(int64(monthsPaid))))
		if balance.IsNegative() {
			return decimal.Zero
		}
		return balance
	}

	r := monthlyRate(annualRatePercent)
	growth := one.Add(r).Pow(decimal.NewFromInt(int64(monthsPaid)))
	return principal.Mul(growth).Sub(payment.Mul(growth.Sub(one)).Div(r))
}
