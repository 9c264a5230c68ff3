package breakeven

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/calculation"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

// crossingInput is a one-year scenario with zero rates everywhere, so the
// final difference is linear in rent (break-even at $2500) and in price
// (break-even at $320000).
func crossingInput() *domain.SimulationInput {
	input := domain.DefaultInput()
	input.HomePrice = decimal.NewFromInt(400000)
	input.DownPaymentPercent = decimal.NewFromInt(10)
	input.MortgageRate = decimal.Zero
	input.LoanTermYears = 1
	input.TimeHorizonYears = 1
	input.PropertyTaxRate = decimal.Zero
	input.HomeInsurance = decimal.Zero
	input.HOAMonthly = decimal.Zero
	input.MaintenancePercent = decimal.Zero
	input.HomeAppreciation = decimal.Zero
	input.ClosingCostPercent = decimal.NewFromInt(3)
	input.SellingCostPercent = decimal.NewFromFloat(4.5)
	input.MonthlyRent = decimal.NewFromInt(2000)
	input.RentIncreaseRate = decimal.Zero
	input.RentersInsurance = decimal.Zero
	input.InvestmentReturn = decimal.Zero
	return &input
}

// buyAlwaysWinsInput is a ten-year interest-free scenario where buying wins
// across every canonical lever range.
func buyAlwaysWinsInput() *domain.SimulationInput {
	input := domain.DefaultInput()
	input.HomePrice = decimal.NewFromInt(240000)
	input.DownPaymentPercent = decimal.NewFromInt(10)
	input.MortgageRate = decimal.Zero
	input.LoanTermYears = 10
	input.TimeHorizonYears = 10
	input.PropertyTaxRate = decimal.Zero
	input.HomeInsurance = decimal.Zero
	input.HOAMonthly = decimal.Zero
	input.MaintenancePercent = decimal.Zero
	input.HomeAppreciation = decimal.Zero
	input.ClosingCostPercent = decimal.NewFromInt(2)
	input.SellingCostPercent = decimal.NewFromInt(5)
	input.MonthlyRent = decimal.NewFromInt(2000)
	input.RentIncreaseRate = decimal.Zero
	input.RentersInsurance = decimal.Zero
	input.InvestmentReturn = decimal.Zero
	return &input
}

func TestNewSolver(t *testing.T) {
	engine := calculation.NewEngine()
	options := DefaultSolverOptions()

	solver := NewSolver(engine, options)

	if solver == nil {
		t.Fatal("Expected solver to be created, got nil")
	}

	if solver.Engine != engine {
		t.Error("Expected Engine to match input")
	}

	if solver.Options != options {
		t.Error("Expected Options to match input")
	}
}

func TestNewDefaultSolver(t *testing.T) {
	solver := NewDefaultSolver(nil)

	if solver == nil {
		t.Fatal("Expected solver to be created, got nil")
	}

	if solver.Engine == nil {
		t.Error("Expected a default calculation engine")
	}

	// Check that default options are applied
	expected := DefaultSolverOptions()
	if solver.Options.MaxIterations != expected.MaxIterations {
		t.Error("Expected default max iterations to be applied")
	}
	if !solver.Options.ToleranceDollars.Equal(expected.ToleranceDollars) {
		t.Error("Expected default tolerance to be applied")
	}
}

func TestSolver_Solve_UnknownField(t *testing.T) {
	solver := NewDefaultSolver(nil)

	result, err := solver.Solve(context.Background(), crossingInput(), domain.Field("granite_countertops"), 0, 1, SolverOptions{})

	if err == nil {
		t.Error("Expected error for unknown field, got nil")
	}
	if result != nil {
		t.Error("Expected result to be nil for unknown field")
	}
	if !strings.Contains(err.Error(), "unknown field") {
		t.Errorf("Expected unknown field error, got: %v", err)
	}
}

func TestSolver_Solve_EmptyBracket(t *testing.T) {
	solver := NewDefaultSolver(nil)

	_, err := solver.Solve(context.Background(), crossingInput(), domain.FieldMonthlyRent, 3000, 3000, SolverOptions{})

	if err == nil {
		t.Error("Expected error for empty bracket, got nil")
	}
}

func TestSolver_Solve_RentCrossing(t *testing.T) {
	solver := NewDefaultSolver(nil)

	result, err := solver.Solve(context.Background(), crossingInput(), domain.FieldMonthlyRent, 500, 10000, SolverOptions{})
	if err != nil {
		t.Fatalf("Expected solve to succeed, got: %v", err)
	}

	if !result.Converged {
		t.Fatal("Expected solver to converge")
	}
	if math.Abs(result.Value-2500) > 0.1 {
		t.Errorf("Expected break-even rent near 2500, got %v", result.Value)
	}
	if result.Difference.Abs().GreaterThan(decimal.NewFromInt(1)) {
		t.Errorf("Expected residual within tolerance, got %s", result.Difference)
	}
	if result.Iterations < 1 || result.Iterations > 100 {
		t.Errorf("Expected a bounded iteration count, got %d", result.Iterations)
	}
}

func TestSolver_Solve_PriceCrossing(t *testing.T) {
	solver := NewDefaultSolver(nil)

	result, err := solver.Solve(context.Background(), crossingInput(), domain.FieldHomePrice, 100000, 2000000, SolverOptions{})
	if err != nil {
		t.Fatalf("Expected solve to succeed, got: %v", err)
	}

	if !result.Converged {
		t.Fatal("Expected solver to converge")
	}
	if math.Abs(result.Value-320000) > 15 {
		t.Errorf("Expected break-even price near 320000, got %v", result.Value)
	}
}

func TestSolver_Solve_EndpointWithinTolerance(t *testing.T) {
	solver := NewDefaultSolver(nil)

	// At exactly $2500 rent the two sides end the year dead even.
	result, err := solver.Solve(context.Background(), crossingInput(), domain.FieldMonthlyRent, 2500, 10000, SolverOptions{})
	if err != nil {
		t.Fatalf("Expected solve to succeed, got: %v", err)
	}

	if result.Value != 2500 {
		t.Errorf("Expected the lower endpoint to be the answer, got %v", result.Value)
	}
	if result.Iterations != 0 {
		t.Errorf("Expected no bisection steps, got %d", result.Iterations)
	}
	if !result.Converged {
		t.Error("Expected endpoint hit to count as converged")
	}
	if !result.Difference.IsZero() {
		t.Errorf("Expected an exactly even outcome, got %s", result.Difference)
	}
}

func TestSolver_Solve_NoCrossing(t *testing.T) {
	solver := NewDefaultSolver(nil)

	// Renting wins this scenario at every mortgage rate; raising the rate
	// only widens the gap.
	result, err := solver.Solve(context.Background(), crossingInput(), domain.FieldMortgageRate, 0, 15, SolverOptions{})

	if err == nil {
		t.Fatal("Expected error when the difference never changes sign, got nil")
	}
	if result != nil {
		t.Error("Expected result to be nil without a crossing")
	}

	var beErr *BreakEvenError
	if !errors.As(err, &beErr) {
		t.Fatalf("Expected a BreakEvenError, got %T", err)
	}
	if beErr.Operation != "bracket" {
		t.Errorf("Expected bracket operation, got %s", beErr.Operation)
	}
	if !strings.Contains(err.Error(), "same sign") {
		t.Errorf("Expected same sign message, got: %v", err)
	}
}

func TestSolver_Solve_ContextCancellation(t *testing.T) {
	solver := NewDefaultSolver(nil)

	// Create a context that's already cancelled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.Solve(ctx, crossingInput(), domain.FieldMonthlyRent, 500, 10000, SolverOptions{})

	if err == nil {
		t.Error("Expected context cancelled error")
	}

	if err != context.Canceled {
		t.Errorf("Expected context.Canceled error, got %v", err)
	}
}

func TestSolver_Solve_ZeroOptionsUseSolverDefaults(t *testing.T) {
	solver := NewDefaultSolver(nil)

	result, err := solver.Solve(context.Background(), crossingInput(), domain.FieldMonthlyRent, 500, 10000, SolverOptions{})
	if err != nil {
		t.Fatalf("Expected zero-valued options to fall back to defaults, got: %v", err)
	}

	if !result.Converged {
		t.Error("Expected convergence under default options")
	}
}

func TestSolver_Solve_MaxIterationsExhausted(t *testing.T) {
	solver := NewDefaultSolver(nil)

	opts := SolverOptions{
		ToleranceDollars: decimal.NewFromFloat(0.001),
		MaxIterations:    3,
	}

	result, err := solver.Solve(context.Background(), crossingInput(), domain.FieldMonthlyRent, 500, 10000, opts)
	if err != nil {
		t.Fatalf("Exhausting iterations should not be an error, got: %v", err)
	}

	if result.Converged {
		t.Error("Expected non-convergence after three bisection steps")
	}
	if result.Iterations != 3 {
		t.Errorf("Expected 3 iterations, got %d", result.Iterations)
	}
}

func TestSolver_SolveLevers(t *testing.T) {
	solver := NewDefaultSolver(nil)

	multi, err := solver.SolveLevers(context.Background(), crossingInput(), nil)
	if err != nil {
		t.Fatalf("Expected lever solve to succeed, got: %v", err)
	}

	if len(multi.Results) != 3 {
		t.Fatalf("Expected 3 crossing levers, got %d", len(multi.Results))
	}

	if multi.Results[0].Field != domain.FieldHomePrice {
		t.Errorf("Expected home price first, got %s", multi.Results[0].Field)
	}
	if math.Abs(multi.Results[0].Value-320000) > 15 {
		t.Errorf("Expected break-even price near 320000, got %v", multi.Results[0].Value)
	}

	if multi.Results[1].Field != domain.FieldMonthlyRent {
		t.Errorf("Expected monthly rent second, got %s", multi.Results[1].Field)
	}
	if math.Abs(multi.Results[1].Value-2500) > 0.1 {
		t.Errorf("Expected break-even rent near 2500, got %v", multi.Results[1].Value)
	}

	if multi.Results[2].Field != domain.FieldHomeAppreciation {
		t.Errorf("Expected appreciation third, got %s", multi.Results[2].Field)
	}
	if multi.Results[2].Value < 1.2 || multi.Results[2].Value > 1.9 {
		t.Errorf("Expected break-even appreciation between 1.2 and 1.9, got %v", multi.Results[2].Value)
	}

	expectedFlat := []domain.Field{domain.FieldMortgageRate, domain.FieldInvestmentReturn}
	if len(multi.NoCrossing) != len(expectedFlat) {
		t.Fatalf("Expected %d flat levers, got %d", len(expectedFlat), len(multi.NoCrossing))
	}
	for i, field := range expectedFlat {
		if multi.NoCrossing[i] != field {
			t.Errorf("Expected flat lever %s at position %d, got %s", field, i, multi.NoCrossing[i])
		}
	}

	if len(multi.Recommendations) != 4 {
		t.Fatalf("Expected 4 recommendations, got %d", len(multi.Recommendations))
	}
	if !strings.Contains(multi.Recommendations[0], "Home Price") || !strings.Contains(multi.Recommendations[0], "falls") {
		t.Errorf("Expected a falling price recommendation, got %q", multi.Recommendations[0])
	}
	if !strings.Contains(multi.Recommendations[1], "Monthly Rent") || !strings.Contains(multi.Recommendations[1], "rises") {
		t.Errorf("Expected a rising rent recommendation, got %q", multi.Recommendations[1])
	}
	if !strings.Contains(multi.Recommendations[3], "No realistic change") {
		t.Errorf("Expected a flat lever recommendation, got %q", multi.Recommendations[3])
	}
}

func TestSolver_SolveLevers_NoneCross(t *testing.T) {
	solver := NewDefaultSolver(nil)

	result, err := solver.SolveLevers(context.Background(), buyAlwaysWinsInput(), nil)

	if err == nil {
		t.Fatal("Expected error when no lever crosses, got nil")
	}
	if result != nil {
		t.Error("Expected result to be nil when no lever crosses")
	}
	if !strings.Contains(err.Error(), "no lever crosses") {
		t.Errorf("Expected no lever crosses message, got: %v", err)
	}
}

func TestSolver_SolveLevers_UnknownField(t *testing.T) {
	solver := NewDefaultSolver(nil)

	_, err := solver.SolveLevers(context.Background(), crossingInput(), []domain.Field{"granite_countertops"})

	if err == nil {
		t.Error("Expected error for field without a canonical range, got nil")
	}
}
