package compare

import (
	"github.com/shopspring/decimal"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

// Verdict labels for a scenario outcome.
const (
	VerdictBuy  = "buy"
	VerdictRent = "rent"
)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string                    `json:"scenarioName"`
	Description  string                    `json:"description"`
	Result       *domain.CalculationResult `json:"result"`

	// Key Metrics
	BuyNetWorth    decimal.Decimal `json:"buyNetWorth"`
	RentNetWorth   decimal.Decimal `json:"rentNetWorth"`
	Difference     decimal.Decimal `json:"difference"`
	AvgBuyMonthly  decimal.Decimal `json:"avgBuyMonthly"`
	AvgRentMonthly decimal.Decimal `json:"avgRentMonthly"`
	Verdict        string          `json:"verdict"`

	// Comparison to Base
	DifferenceFromBase   decimal.Decimal `json:"differenceFromBase"`
	BuyNetWorthFromBase  decimal.Decimal `json:"buyNetWorthFromBase"`
	RentNetWorthFromBase decimal.Decimal `json:"rentNetWorthFromBase"`
	VerdictFlipped       bool            `json:"verdictFlipped"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// MetricsCalculator extracts key metrics from calculation results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for one scenario run
func (mc *MetricsCalculator) CalculateMetrics(name string, result *domain.CalculationResult) ComparisonResult {
	verdict := VerdictRent
	if result.BuyingWins() {
		verdict = VerdictBuy
	}

	return ComparisonResult{
		ScenarioName:   name,
		Result:         result,
		BuyNetWorth:    result.BuyBreakdown.NetWorth,
		RentNetWorth:   result.RentBreakdown.NetWorth,
		Difference:     result.Difference,
		AvgBuyMonthly:  result.MonthlyComparison.AvgBuyMonthly,
		AvgRentMonthly: result.MonthlyComparison.AvgRentMonthly,
		Verdict:        verdict,
	}
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.DifferenceFromBase = scenario.Difference.Sub(base.Difference)
	scenario.BuyNetWorthFromBase = scenario.BuyNetWorth.Sub(base.BuyNetWorth)
	scenario.RentNetWorthFromBase = scenario.RentNetWorth.Sub(base.RentNetWorth)
	scenario.VerdictFlipped = scenario.Verdict != base.Verdict

	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	// Find the scenario that shifts the outcome furthest toward buying
	mostBuy := compSet.BaseResult
	for _, alt := range compSet.AlternativeResults {
		if alt.Difference.GreaterThan(mostBuy.Difference) {
			mostBuy = &alt
		}
	}

	if mostBuy != compSet.BaseResult {
		shift := mostBuy.Difference.Sub(compSet.BaseResult.Difference)
		recommendations = append(recommendations,
			"Favors Buying: "+mostBuy.ScenarioName+" shifts the outcome $"+shift.StringFixed(0)+
				" toward buying versus the base scenario")
	}

	// Find the scenario that shifts the outcome furthest toward renting
	mostRent := compSet.BaseResult
	for _, alt := range compSet.AlternativeResults {
		if alt.Difference.LessThan(mostRent.Difference) {
			mostRent = &alt
		}
	}

	if mostRent != compSet.BaseResult {
		shift := compSet.BaseResult.Difference.Sub(mostRent.Difference)
		recommendations = append(recommendations,
			"Favors Renting: "+mostRent.ScenarioName+" shifts the outcome $"+shift.StringFixed(0)+
				" toward renting versus the base scenario")
	}

	// Call out any scenario that changes the answer outright
	for _, alt := range compSet.AlternativeResults {
		if alt.VerdictFlipped {
			recommendations = append(recommendations,
				"Decision Flip: "+alt.ScenarioName+" changes the verdict from "+
					compSet.BaseResult.Verdict+" to "+alt.Verdict)
		}
	}

	return recommendations
}
