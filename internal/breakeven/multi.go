package breakeven

import (
	"context"
	"errors"
	"fmt"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

// CommonLevers lists the inputs people most often ask break-even questions
// about, in presentation order.
func CommonLevers() []domain.Field {
	return []domain.Field{
		domain.FieldHomePrice,
		domain.FieldMortgageRate,
		domain.FieldMonthlyRent,
		domain.FieldHomeAppreciation,
		domain.FieldInvestmentReturn,
	}
}

// SolveLevers solves each requested field over its canonical range and
// splits the levers into those with a break-even point and those whose
// difference never changes sign. An empty fields slice solves the common
// levers.
func (s *Solver) SolveLevers(
	ctx context.Context,
	input *domain.SimulationInput,
	fields []domain.Field,
) (*MultiFieldResult, error) {

	if len(fields) == 0 {
		fields = CommonLevers()
	}

	result := &MultiFieldResult{}

	for _, field := range fields {
		param, ok := domain.SweepParameterFor(field)
		if !ok {
			return nil, &BreakEvenError{
				Operation: "solve_levers",
				Message:   fmt.Sprintf("no canonical range for field %s", field),
			}
		}

		res, err := s.Solve(ctx, input, field, param.Min, param.Max, s.Options)
		if err != nil {
			var beErr *BreakEvenError
			if errors.As(err, &beErr) && beErr.Operation == "bracket" {
				result.NoCrossing = append(result.NoCrossing, field)
				continue
			}
			return nil, err
		}

		result.Results = append(result.Results, *res)
	}

	if len(result.Results) == 0 {
		return nil, &BreakEvenError{
			Operation: "solve_levers",
			Message:   "no lever crosses break-even within its range",
		}
	}

	result.Recommendations = generateLeverRecommendations(input, result)

	return result, nil
}

// generateLeverRecommendations creates recommendations from solved levers
func generateLeverRecommendations(input *domain.SimulationInput, result *MultiFieldResult) []string {
	var recommendations []string

	for i := range result.Results {
		res := &result.Results[i]

		param, ok := domain.SweepParameterFor(res.Field)
		if !ok {
			continue
		}

		base := input.Get(res.Field)
		verb := "rises"
		if res.Value < base {
			verb = "falls"
		}

		recommendations = append(recommendations,
			fmt.Sprintf("%s: the verdict flips if it %s to %.2f %s (now %.2f)",
				param.Label, verb, res.Value, param.Unit, base))
	}

	if len(result.NoCrossing) > 0 {
		labels := ""
		for i, field := range result.NoCrossing {
			if i > 0 {
				labels += ", "
			}
			if param, ok := domain.SweepParameterFor(field); ok {
				labels += param.Label
			} else {
				labels += string(field)
			}
		}
		recommendations = append(recommendations,
			"No realistic change to "+labels+" flips the verdict on its own")
	}

	return recommendations
}
