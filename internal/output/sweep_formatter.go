package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

// SweepFormatter renders a sensitivity sweep in a particular output format.
type SweepFormatter interface {
	FormatSweep(sweep *domain.SweepResult) (string, error)
	Name() string
}

// SweepConsoleFormatter formats a sweep as a text table with a verdict
// column and a base-case marker.
type SweepConsoleFormatter struct{}

func (scf SweepConsoleFormatter) Name() string { return "console" }

func (scf SweepConsoleFormatter) FormatSweep(sweep *domain.SweepResult) (string, error) {
	if sweep == nil || len(sweep.Points) == 0 {
		return "", fmt.Errorf("sweep has no sample points")
	}

	var buf bytes.Buffer

	label := string(sweep.Field)
	unit := ""
	if param, ok := domain.SweepParameterFor(sweep.Field); ok {
		label = param.Label
		unit = param.Unit
	}

	first := sweep.Points[0].Value
	last := sweep.Points[len(sweep.Points)-1].Value

	fmt.Fprintf(&buf, "SENSITIVITY SWEEP: %s\n", strings.ToUpper(label))
	fmt.Fprintln(&buf, strings.Repeat("=", 65))
	fmt.Fprintf(&buf, "Base Case: %s = %s\n", sweep.Field, FormatSweepValue(sweep.BaseValue, unit))
	fmt.Fprintf(&buf, "Range: %s to %s (%d samples)\n",
		FormatSweepValue(first, unit), FormatSweepValue(last, unit), len(sweep.Points))
	fmt.Fprintln(&buf)

	// Mark the sample closest to the base value.
	baseIdx := 0
	minDiff := math.Inf(1)
	for i, p := range sweep.Points {
		if d := math.Abs(p.Value - sweep.BaseValue); d < minDiff {
			minDiff = d
			baseIdx = i
		}
	}

	fmt.Fprintf(&buf, "%-24s %-18s %s\n", label, "Buy - Rent", "Verdict")
	fmt.Fprintln(&buf, strings.Repeat("-", 52))

	for i, p := range sweep.Points {
		valueStr := FormatSweepValue(p.Value, unit)
		if i == baseIdx {
			valueStr += " ← BASE"
		}
		fmt.Fprintf(&buf, "%-24s %-18s %s\n", valueStr, FormatCurrency(p.Difference), sweepVerdict(p.Difference))
	}
	fmt.Fprintln(&buf)

	scf.writeSummary(&buf, sweep, label, unit)

	return buf.String(), nil
}

// writeSummary prints the swing across the range and any verdict flips.
func (scf SweepConsoleFormatter) writeSummary(buf *bytes.Buffer, sweep *domain.SweepResult, label, unit string) {
	best := sweep.Points[0]
	worst := sweep.Points[0]
	for _, p := range sweep.Points[1:] {
		if p.Difference.GreaterThan(best.Difference) {
			best = p
		}
		if p.Difference.LessThan(worst.Difference) {
			worst = p
		}
	}

	fmt.Fprintln(buf, "SENSITIVITY:")
	fmt.Fprintf(buf, "  Best for buying:  %s = %s (%s)\n",
		label, FormatSweepValue(best.Value, unit), FormatCurrency(best.Difference))
	fmt.Fprintf(buf, "  Worst for buying: %s = %s (%s)\n",
		label, FormatSweepValue(worst.Value, unit), FormatCurrency(worst.Difference))
	fmt.Fprintf(buf, "  Swing across range: %s\n", FormatCurrency(best.Difference.Sub(worst.Difference)))

	crossings := SweepCrossings(sweep)
	if len(crossings) == 0 {
		fmt.Fprintf(buf, "  Verdict holds across the entire range.\n")
		return
	}
	for _, c := range crossings {
		fmt.Fprintf(buf, "  Verdict flips near %s = %s\n", label, FormatSweepValue(c, unit))
	}
}

// SweepCSVFormatter formats a sweep as CSV, one row per sample.
type SweepCSVFormatter struct{}

func (scf SweepCSVFormatter) Name() string { return "csv" }

func (scf SweepCSVFormatter) FormatSweep(sweep *domain.SweepResult) (string, error) {
	if sweep == nil || len(sweep.Points) == 0 {
		return "", fmt.Errorf("sweep has no sample points")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "field,value,difference,verdict\n")
	for _, p := range sweep.Points {
		fmt.Fprintf(&buf, "%s,%.4f,%s,%s\n",
			sweep.Field, p.Value, p.Difference.StringFixed(2), sweepVerdict(p.Difference))
	}
	return buf.String(), nil
}

// SweepJSONFormatter formats a sweep as indented JSON.
type SweepJSONFormatter struct{}

func (sjf SweepJSONFormatter) Name() string { return "json" }

func (sjf SweepJSONFormatter) FormatSweep(sweep *domain.SweepResult) (string, error) {
	if sweep == nil {
		return "", fmt.Errorf("nil sweep")
	}
	data, err := json.MarshalIndent(sweep, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewSweepFormatter creates a sweep formatter for the given format name.
// Unknown formats fall back to console.
func NewSweepFormatter(format string) SweepFormatter {
	switch NormalizeFormatName(format) {
	case "csv":
		return SweepCSVFormatter{}
	case "json":
		return SweepJSONFormatter{}
	default:
		return SweepConsoleFormatter{}
	}
}

// FormatSweepValue renders a sampled field value using the field's unit:
// dollar units get currency formatting, percent units a trailing %, and
// year units print as whole years.
func FormatSweepValue(v float64, unit string) string {
	switch {
	case strings.HasPrefix(unit, "$"):
		s := FormatCurrencyWhole(decimal.NewFromFloat(v))
		if suffix := strings.TrimPrefix(unit, "$"); suffix != "" {
			return s + suffix
		}
		return s
	case strings.HasPrefix(unit, "%"):
		return fmt.Sprintf("%.2f%s", v, unit)
	case unit == "years":
		return fmt.Sprintf("%d years", int(v))
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// SweepCrossings returns the interpolated field values where the
// buy-minus-rent difference changes sign between adjacent samples.
func SweepCrossings(sweep *domain.SweepResult) []float64 {
	var crossings []float64
	for i := 1; i < len(sweep.Points); i++ {
		prev, cur := sweep.Points[i-1], sweep.Points[i]
		if prev.Difference.IsZero() {
			crossings = append(crossings, prev.Value)
			continue
		}
		if prev.Difference.Sign()*cur.Difference.Sign() < 0 {
			// Linear interpolation between the two samples.
			p := prev.Difference.InexactFloat64()
			c := cur.Difference.InexactFloat64()
			t := p / (p - c)
			crossings = append(crossings, prev.Value+t*(cur.Value-prev.Value))
		}
	}
	if n := len(sweep.Points); n > 0 && sweep.Points[n-1].Difference.IsZero() {
		crossings = append(crossings, sweep.Points[n-1].Value)
	}
	return crossings
}

func sweepVerdict(difference decimal.Decimal) string {
	switch {
	case difference.IsPositive():
		return "buy"
	case difference.IsNegative():
		return "rent"
	default:
		return "even"
	}
}
