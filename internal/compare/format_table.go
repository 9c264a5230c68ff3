package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("BUY VS RENT SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	// Column widths
	nameWidth := 25
	numWidth := 14

	// Table header
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %8s\n",
		nameWidth, "Scenario",
		numWidth, "Buy Net Worth",
		numWidth, "Rent Net Worth",
		numWidth, "Difference",
		"Verdict"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	// Base scenario row
	base := compSet.BaseResult
	sb.WriteString(tf.formatRow(base, nameWidth, numWidth, true))

	// Alternative scenarios
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Comparison details (deltas from base)
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))

			direction := "toward buying"
			if alt.DifferenceFromBase.IsNegative() {
				direction = "toward renting"
			}
			sb.WriteString(fmt.Sprintf("  Outcome Shift:    %s$%s %s\n",
				tf.deltaSymbol(alt.DifferenceFromBase),
				tf.formatDecimal(alt.DifferenceFromBase.Abs()),
				direction))

			if !alt.BuyNetWorthFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Buy Net Worth:    %s$%s\n",
					tf.deltaSymbol(alt.BuyNetWorthFromBase),
					tf.formatDecimal(alt.BuyNetWorthFromBase.Abs())))
			}

			if !alt.RentNetWorthFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Rent Net Worth:   %s$%s\n",
					tf.deltaSymbol(alt.RentNetWorthFromBase),
					tf.formatDecimal(alt.RentNetWorthFromBase.Abs())))
			}

			if alt.VerdictFlipped {
				sb.WriteString(fmt.Sprintf("  Verdict:          flips to %s\n", alt.Verdict))
			}
		}
		sb.WriteString("\n")
	}

	// Recommendations
	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %8s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, tf.formatSigned(result.BuyNetWorth),
		numWidth, tf.formatSigned(result.RentNetWorth),
		numWidth, tf.formatSigned(result.Difference),
		result.Verdict)
}

// formatSigned renders a dollar amount with its sign ahead of the symbol
func (tf *TableFormatter) formatSigned(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + tf.formatDecimal(d.Abs())
	}
	return "$" + tf.formatDecimal(d)
}

// formatDecimal formats a decimal for display (in thousands or millions)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s (%s) | ", compSet.BaseScenarioName, compSet.BaseResult.Verdict))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		shift := "="
		if alt.DifferenceFromBase.IsPositive() {
			shift = fmt.Sprintf("+$%s", tf.formatDecimal(alt.DifferenceFromBase))
		} else if alt.DifferenceFromBase.IsNegative() {
			shift = fmt.Sprintf("-$%s", tf.formatDecimal(alt.DifferenceFromBase.Abs()))
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, shift))
	}

	return sb.String()
}
