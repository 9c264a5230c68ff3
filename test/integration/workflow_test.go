package integration

import (
	"context"
	"testing"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/breakeven"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/calculation"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/compare"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/config"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompareWorkflow walks the full comparison path: load a file, compare
// named scenarios, compare template-derived alternatives, format the output.
func TestCompareWorkflow(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/scenarios.yaml")
	require.NoError(t, err)

	ce := compare.NewCompareEngine(calculation.NewEngine())
	ctx := context.Background()

	t.Run("named_scenarios", func(t *testing.T) {
		compSet, err := ce.CompareScenarios(ctx, cfg, "Baseline", []string{"Bigger House", "Cheap Rent Long Stay"})
		require.NoError(t, err)
		require.NotNil(t, compSet)

		assert.Equal(t, "Baseline", compSet.BaseScenarioName)
		assert.Len(t, compSet.AlternativeResults, 2)
		assert.NotNil(t, compSet.BaseResult)

		for _, alt := range compSet.AlternativeResults {
			assert.NotEmpty(t, alt.ScenarioName)
			assert.Contains(t, []string{compare.VerdictBuy, compare.VerdictRent}, alt.Verdict)
			// The delta columns must reconcile with the absolute numbers
			assert.True(t, alt.DifferenceFromBase.Equal(alt.Difference.Sub(compSet.BaseResult.Difference)),
				"%s: difference-from-base should reconcile", alt.ScenarioName)
		}

		formatted := (&compare.TableFormatter{}).Format(compSet)
		assert.Contains(t, formatted, "Baseline")
		assert.Contains(t, formatted, "Bigger House")

		jsonOut, err := (&compare.JSONFormatter{Pretty: true}).Format(compSet)
		require.NoError(t, err)
		assert.Contains(t, jsonOut, "\"baseScenarioName\"")

		csvOut, err := (&compare.CSVFormatter{}).Format(compSet)
		require.NoError(t, err)
		assert.Contains(t, csvOut, "Baseline")
	})

	t.Run("unknown_base", func(t *testing.T) {
		_, err := ce.CompareScenarios(ctx, cfg, "Missing", []string{"Baseline"})
		assert.Error(t, err)
	})

	t.Run("template_alternatives", func(t *testing.T) {
		compSet, err := ce.Compare(ctx, cfg, compare.CompareOptions{
			BaseScenarioName: "Baseline",
			Templates:        []string{"rates_up_1", "rates_down_1"},
		})
		require.NoError(t, err)
		require.Len(t, compSet.AlternativeResults, 2)

		// A rate hike must not help the buyer
		base := compSet.BaseResult.Difference
		found := false
		for _, alt := range compSet.AlternativeResults {
			if alt.ScenarioName == "Baseline_rates_up_1" {
				found = true
				assert.True(t, alt.Difference.LessThanOrEqual(base),
					"a higher mortgage rate should not improve the buy outcome")
			}
		}
		assert.True(t, found, "the rate hike alternative should be present")
	})

	t.Run("transform_specs", func(t *testing.T) {
		compSet, err := ce.Compare(ctx, cfg, compare.CompareOptions{
			BaseScenarioName: "Baseline",
			TransformSpecs:   []string{"set:field=home_price,value=500000"},
		})
		require.NoError(t, err)
		require.Len(t, compSet.AlternativeResults, 1)
		assert.False(t, compSet.BaseResult.BuyNetWorth.Equal(compSet.AlternativeResults[0].BuyNetWorth),
			"changing the home price should move the buy outcome")
	})
}

// TestSweepWorkflow runs a parameter sweep and feeds it through the sweep
// formatters the way the CLI does.
func TestSweepWorkflow(t *testing.T) {
	input := domain.DefaultInput()
	sweeper := calculation.NewSweeper(calculation.NewEngine())

	sweep := sweeper.Sweep(&input, domain.FieldMonthlyRent, 500, 10000, 20)
	require.NotNil(t, sweep)
	require.Len(t, sweep.Points, 21)

	t.Run("curve_shape", func(t *testing.T) {
		// Cheap rent favors renting, expensive rent favors buying, so the
		// curve must rise across the range and cross zero somewhere.
		first := sweep.Points[0].Difference
		last := sweep.Points[len(sweep.Points)-1].Difference

		assert.True(t, first.IsNegative(), "at $500 rent the renter should win, got %s", first)
		assert.True(t, last.IsPositive(), "at $10000 rent the buyer should win, got %s", last)

		crossings := output.SweepCrossings(sweep)
		require.NotEmpty(t, crossings, "the verdict should flip somewhere in the rent range")
		assert.Greater(t, crossings[0], 500.0)
		assert.Less(t, crossings[0], 10000.0)
	})

	t.Run("formats", func(t *testing.T) {
		for _, format := range []string{"console", "csv", "json"} {
			formatter := output.NewSweepFormatter(format)
			out, err := formatter.FormatSweep(sweep)
			require.NoError(t, err, "format %s", format)
			assert.NotEmpty(t, out, "format %s", format)
		}
	})
}

// TestBreakEvenWorkflow solves break-even questions end to end.
func TestBreakEvenWorkflow(t *testing.T) {
	engine := calculation.NewEngine()
	solver := breakeven.NewDefaultSolver(engine)
	ctx := context.Background()
	input := domain.DefaultInput()

	t.Run("single_field", func(t *testing.T) {
		result, err := solver.Solve(ctx, &input, domain.FieldMonthlyRent, 500, 10000, breakeven.SolverOptions{})
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.True(t, result.Converged, "rent spans both verdicts, so the solver should converge")
		assert.Greater(t, result.Value, 500.0)
		assert.Less(t, result.Value, 10000.0)

		// The solved rent really is a near-tie
		assert.True(t, result.Difference.Abs().LessThanOrEqual(decimal.NewFromInt(1)),
			"at the solved rent the residual gap should be inside tolerance, got %s", result.Difference)

		formatted := (&breakeven.TableFormatter{}).Format(result, &input)
		assert.NotEmpty(t, formatted)

		jsonOut, err := (&breakeven.JSONFormatter{}).Format(result)
		require.NoError(t, err)
		assert.NotEmpty(t, jsonOut)
	})

	t.Run("common_levers", func(t *testing.T) {
		multi, err := solver.SolveLevers(ctx, &input, nil)
		require.NoError(t, err)
		require.NotNil(t, multi)

		// Every common lever lands in exactly one bucket
		total := len(multi.Results) + len(multi.NoCrossing)
		assert.Equal(t, len(breakeven.CommonLevers()), total)

		formatted := (&breakeven.TableFormatter{}).FormatMulti(multi, &input)
		assert.NotEmpty(t, formatted)
	})

	t.Run("invalid_bracket", func(t *testing.T) {
		_, err := solver.Solve(ctx, &input, domain.FieldMonthlyRent, 5000, 500, breakeven.SolverOptions{})
		assert.Error(t, err, "an inverted bracket should be rejected")
	})
}
