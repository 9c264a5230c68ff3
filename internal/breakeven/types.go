package breakeven

import (
	"github.com/shopspring/decimal"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	ToleranceDollars decimal.Decimal // Convergence tolerance on the net-worth difference
	MaxIterations    int             // Maximum bisection steps
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		ToleranceDollars: decimal.NewFromInt(1), // $1 tolerance
		MaxIterations:    100,
	}
}

// BreakEvenResult holds the solved value of one input field at which buying
// and renting end the horizon with the same net worth.
type BreakEvenResult struct {
	Field      domain.Field    `json:"field"`
	Value      float64         `json:"value"`
	Difference decimal.Decimal `json:"difference"` // Residual buy-minus-rent at Value
	Iterations int             `json:"iterations"`
	Converged  bool            `json:"converged"`
}

// MultiFieldResult contains results when solving several levers at once
type MultiFieldResult struct {
	Results         []BreakEvenResult `json:"results"`
	NoCrossing      []domain.Field    `json:"no_crossing,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
}

// BreakEvenError represents errors from the break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
