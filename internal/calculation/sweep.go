package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

// Sweeper measures how the final buy-versus-rent difference responds to
// changes in a single input field. Every sample is a full re-simulation
// of a cloned input; the base input is never mutated.
type Sweeper struct {
	engine *Engine
}

// NewSweeper creates a sweeper backed by the given engine. A nil engine
// gets a default one.
func NewSweeper(engine *Engine) *Sweeper {
	if engine == nil {
		engine = NewEngine()
	}
	return &Sweeper{engine: engine}
}

// DifferenceForValue clones the input, overrides one field and returns
// the resulting final difference (buy net worth minus rent net worth).
func (s *Sweeper) DifferenceForValue(input *domain.SimulationInput, field domain.Field, value float64) decimal.Decimal {
	modified := input.Clone()
	modified.Set(field, value)
	return s.engine.Run(modified).Difference
}

// Sweep samples the difference across [minValue, maxValue] at
// sampleCount+1 evenly spaced points, both endpoints included.
// sampleCount must be at least 1. Integer-valued fields truncate each
// sample, so coarse steps can yield repeated points.
func (s *Sweeper) Sweep(input *domain.SimulationInput, field domain.Field, minValue, maxValue float64, sampleCount int) *domain.SweepResult {
	step := (maxValue - minValue) / float64(sampleCount)

	points := make([]domain.SweepPoint, 0, sampleCount+1)
	for i := 0; i <= sampleCount; i++ {
		value := minValue + step*float64(i)
		points = append(points, domain.SweepPoint{
			Value:      value,
			Difference: s.DifferenceForValue(input, field, value),
		})
	}

	return &domain.SweepResult{
		Field:     field,
		BaseValue: input.Get(field),
		Points:    points,
	}
}
