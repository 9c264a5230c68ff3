package breakeven

import (
	"context"
	"fmt"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/calculation"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

// Solver finds the value of a single input field at which the buy and rent
// outcomes break even.
type Solver struct {
	Engine  *calculation.Engine
	Options SolverOptions

	probe *calculation.Sweeper
}

// NewSolver creates a new break-even solver
func NewSolver(engine *calculation.Engine, options SolverOptions) *Solver {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	return &Solver{
		Engine:  engine,
		Options: options,
		probe:   calculation.NewSweeper(engine),
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(engine *calculation.Engine) *Solver {
	return NewSolver(engine, DefaultSolverOptions())
}

// Solve bisects field over [lo, hi] for the value where the final
// buy-minus-rent difference crosses zero. The difference must be monotonic
// on the bracket; the endpoints are checked for a sign change before the
// search starts. Zero-valued opts fields fall back to the solver's options.
func (s *Solver) Solve(
	ctx context.Context,
	input *domain.SimulationInput,
	field domain.Field,
	lo, hi float64,
	opts SolverOptions,
) (*BreakEvenResult, error) {

	if !field.Valid() {
		return nil, &BreakEvenError{
			Operation: "solve",
			Message:   fmt.Sprintf("unknown field: %s", field),
		}
	}
	if lo >= hi {
		return nil, &BreakEvenError{
			Operation: "solve",
			Message:   fmt.Sprintf("bracket [%v, %v] is empty", lo, hi),
		}
	}

	// Apply defaults
	if opts.MaxIterations == 0 {
		opts.MaxIterations = s.Options.MaxIterations
	}
	if opts.ToleranceDollars.IsZero() {
		opts.ToleranceDollars = s.Options.ToleranceDollars
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	diffLo := s.probe.DifferenceForValue(input, field, lo)
	diffHi := s.probe.DifferenceForValue(input, field, hi)

	// An endpoint already within tolerance is the answer.
	if diffLo.Abs().LessThanOrEqual(opts.ToleranceDollars) {
		return &BreakEvenResult{Field: field, Value: lo, Difference: diffLo, Converged: true}, nil
	}
	if diffHi.Abs().LessThanOrEqual(opts.ToleranceDollars) {
		return &BreakEvenResult{Field: field, Value: hi, Difference: diffHi, Converged: true}, nil
	}

	if diffLo.Sign() == diffHi.Sign() {
		return nil, &BreakEvenError{
			Operation: "bracket",
			Message: fmt.Sprintf("no break-even for %s on [%v, %v]: difference has the same sign at both ends",
				field, lo, hi),
		}
	}

	var mid float64
	var diffMid = diffLo

	for iterations := 1; iterations <= opts.MaxIterations; iterations++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid = (lo + hi) / 2
		diffMid = s.probe.DifferenceForValue(input, field, mid)

		if diffMid.Abs().LessThanOrEqual(opts.ToleranceDollars) {
			return &BreakEvenResult{
				Field:      field,
				Value:      mid,
				Difference: diffMid,
				Iterations: iterations,
				Converged:  true,
			}, nil
		}

		// Keep the half of the bracket that still spans the crossing.
		if diffMid.Sign() == diffLo.Sign() {
			lo = mid
			diffLo = diffMid
		} else {
			hi = mid
		}
	}

	return &BreakEvenResult{
		Field:      field,
		Value:      mid,
		Difference: diffMid,
		Iterations: opts.MaxIterations,
		Converged:  false,
	}, nil
}
