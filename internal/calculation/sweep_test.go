package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

func TestNewSweeper_NilEngine(t *testing.T) {
	sweeper := NewSweeper(nil)

	assert.NotNil(t, sweeper, "Should create sweeper")
	assert.NotNil(t, sweeper.engine, "Should fall back to a default engine")
}

func TestSweeper_Sweep_SampleCountAndEndpoints(t *testing.T) {
	input := domain.DefaultInput()
	sweeper := NewSweeper(nil)

	result := sweeper.Sweep(&input, domain.FieldMortgageRate, 3.0, 9.0, 6)

	assert.Len(t, result.Points, 7, "Should produce sampleCount+1 points")
	assert.Equal(t, 3.0, result.Points[0].Value, "Should include the lower endpoint")
	assert.Equal(t, 9.0, result.Points[6].Value, "Should include the upper endpoint")
	assert.Equal(t, domain.FieldMortgageRate, result.Field, "Should record the swept field")

	// A costlier mortgage always favors renting.
	first := result.Points[0].Difference
	last := result.Points[6].Difference
	assert.True(t, first.GreaterThan(last), "Difference should fall as the rate climbs, got %s vs %s", first, last)
}

func TestSweeper_Sweep_BaseInputUntouched(t *testing.T) {
	input := domain.DefaultInput()
	pristine := domain.DefaultInput()
	sweeper := NewSweeper(NewEngine())

	sweeper.Sweep(&input, domain.FieldHomePrice, 100000, 2000000, 10)

	assert.Equal(t, pristine, input, "Sweeping should never mutate the base input")
}

func TestSweeper_DifferenceForValue_MatchesDirectRun(t *testing.T) {
	input := domain.DefaultInput()
	engine := NewEngine()
	sweeper := NewSweeper(engine)

	direct := engine.Run(&input).Difference
	swept := sweeper.DifferenceForValue(&input, domain.FieldHomePrice, 400000)

	assert.True(t, swept.Equal(direct), "Overriding a field with its current value should reproduce the base run, got %s vs %s", swept, direct)
}

func TestSweeper_DifferenceForValue_IntegerFieldTruncates(t *testing.T) {
	input := domain.DefaultInput()
	sweeper := NewSweeper(nil)

	truncated := sweeper.DifferenceForValue(&input, domain.FieldLoanTermYears, 17.9)
	whole := sweeper.DifferenceForValue(&input, domain.FieldLoanTermYears, 17.0)

	assert.True(t, truncated.Equal(whole), "Fractional years should truncate, got %s vs %s", truncated, whole)
}

func TestSweeper_Sweep_IntegerFieldRepeatsPoints(t *testing.T) {
	input := domain.DefaultInput()
	sweeper := NewSweeper(nil)

	result := sweeper.Sweep(&input, domain.FieldLoanTermYears, 10, 11, 4)

	assert.Len(t, result.Points, 5, "Should still sample the requested grid")
	for _, point := range result.Points[1:4] {
		assert.True(t, point.Difference.Equal(result.Points[0].Difference),
			"Samples inside the same whole year should collapse to one result")
	}
}
