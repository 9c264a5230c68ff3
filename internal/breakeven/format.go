package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

// TableFormatter formats break-even results for the console
type TableFormatter struct{}

// Format generates a formatted block for one solved field
func (tf *TableFormatter) Format(result *BreakEvenResult, input *domain.SimulationInput) string {
	var sb strings.Builder

	label := string(result.Field)
	unit := ""
	if param, ok := domain.SweepParameterFor(result.Field); ok {
		label = param.Label
		unit = param.Unit
	}

	sb.WriteString("BREAK-EVEN ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Lever:           %s\n", label))
	sb.WriteString(fmt.Sprintf("Current Value:   %s\n", tf.formatValue(input.Get(result.Field), unit)))
	sb.WriteString(fmt.Sprintf("Break-Even At:   %s\n", tf.formatValue(result.Value, unit)))
	sb.WriteString(fmt.Sprintf("Residual Gap:    $%s\n", result.Difference.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Iterations:      %d\n", result.Iterations))
	sb.WriteString(fmt.Sprintf("Status:          %s\n", tf.formatStatus(result.Converged)))
	sb.WriteString("\n")

	return sb.String()
}

// FormatMulti formats results from solving several levers
func (tf *TableFormatter) FormatMulti(result *MultiFieldResult, input *domain.SimulationInput) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN LEVERS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	sb.WriteString(fmt.Sprintf("%-24s %18s %18s %12s\n",
		"Lever", "Break-Even At", "Current", "Iterations"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, res := range result.Results {
		label := string(res.Field)
		unit := ""
		if param, ok := domain.SweepParameterFor(res.Field); ok {
			label = param.Label
			unit = param.Unit
		}

		sb.WriteString(fmt.Sprintf("%-24s %18s %18s %12d\n",
			tf.truncate(label, 24),
			tf.formatValue(res.Value, unit),
			tf.formatValue(input.Get(res.Field), unit),
			res.Iterations))
	}
	sb.WriteString("\n")

	if len(result.NoCrossing) > 0 {
		sb.WriteString("NO CROSSING IN RANGE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, field := range result.NoCrossing {
			label := string(field)
			if param, ok := domain.SweepParameterFor(field); ok {
				label = param.Label
			}
			sb.WriteString(fmt.Sprintf("%s\n", label))
		}
		sb.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *BreakEvenResult) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// FormatMulti formats multi-lever results as JSON
func (jf *JSONFormatter) FormatMulti(result *MultiFieldResult) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Helper methods

func (tf *TableFormatter) formatStatus(converged bool) string {
	if converged {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) formatValue(v float64, unit string) string {
	switch {
	case strings.HasPrefix(unit, "$"):
		return fmt.Sprintf("$%.2f%s", v, strings.TrimPrefix(unit, "$"))
	case strings.HasPrefix(unit, "%"):
		return fmt.Sprintf("%.2f%s", v, unit)
	case unit == "years":
		return fmt.Sprintf("%.0f years", v)
	}
	return fmt.Sprintf("%.2f %s", v, unit)
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
