package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Buy Net Worth",
		"Rent Net Worth",
		"Difference",
		"Avg Buy Monthly",
		"Avg Rent Monthly",
		"Verdict",
		"Difference From Base",
		"Verdict Flipped",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.BuyNetWorth.StringFixed(2),
		result.RentNetWorth.StringFixed(2),
		result.Difference.StringFixed(2),
		result.AvgBuyMonthly.StringFixed(2),
		result.AvgRentMonthly.StringFixed(2),
		result.Verdict,
		result.DifferenceFromBase.StringFixed(2),
		strconv.FormatBool(result.VerdictFlipped),
	}
}
