package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ReportGenerator renders a calculation result in the supported output
// formats. The generator returns content; callers decide whether it goes to
// stdout or a file.
type ReportGenerator struct{}

// NewReportGenerator creates a new report generator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// Generate renders the result in the requested format. Format aliases are
// accepted ("table" and "txt" both mean console).
func (rg *ReportGenerator) Generate(result *domain.CalculationResult, input *domain.SimulationInput, format string) ([]byte, error) {
	switch NormalizeFormatName(format) {
	case "console":
		return []byte(rg.ConsoleReport(result, input)), nil
	case "csv":
		return rg.CSVReport(result, input)
	case "json":
		return rg.JSONReport(result)
	case "pdf":
		return rg.PDFReport(result, input)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// ConsoleReport renders the full text report: scenario summary, verdict,
// side-by-side cost breakdowns, average monthly costs, and the year-by-year
// net worth table.
func (rg *ReportGenerator) ConsoleReport(result *domain.CalculationResult, input *domain.SimulationInput) string {
	var buf bytes.Buffer

	rule := strings.Repeat("=", 80)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "BUY VS RENT ANALYSIS")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Home:    %s with %s%% down at %s%% over %d years\n",
		FormatCurrencyWhole(input.HomePrice),
		input.DownPaymentPercent.String(),
		input.MortgageRate.String(),
		input.LoanTermYears)
	fmt.Fprintf(&buf, "Rent:    %s/month, rising %s%% per year\n",
		FormatCurrency(input.MonthlyRent),
		input.RentIncreaseRate.String())
	fmt.Fprintf(&buf, "Horizon: %d years, spare cash invested at %s%%\n",
		input.TimeHorizonYears,
		input.InvestmentReturn.String())
	fmt.Fprintln(&buf)

	switch {
	case result.BuyingWins():
		fmt.Fprintf(&buf, "VERDICT: BUYING wins by %s\n", FormatCurrency(result.Margin()))
	case result.Difference.IsZero():
		fmt.Fprintln(&buf, "VERDICT: DEAD EVEN")
	default:
		fmt.Fprintf(&buf, "VERDICT: RENTING wins by %s\n", FormatCurrency(result.Margin()))
	}
	fmt.Fprintln(&buf)

	rg.writeBreakdowns(&buf, result)
	rg.writeMonthlyCosts(&buf, result)
	rg.writeYearlyTable(&buf, result)

	return buf.String()
}

// writeBreakdowns prints the buy and rent totals side by side. The two
// columns have different row counts, so the shorter one is padded.
func (rg *ReportGenerator) writeBreakdowns(buf *bytes.Buffer, result *domain.CalculationResult) {
	b := result.BuyBreakdown
	r := result.RentBreakdown

	buyRows := [][2]string{
		{"Down Payment", FormatCurrency(b.DownPayment)},
		{"Closing Costs", FormatCurrency(b.ClosingCosts)},
		{"Mortgage Payments", FormatCurrency(b.TotalMortgagePayments)},
		{"  Interest", FormatCurrency(b.TotalInterestPaid)},
		{"  Principal", FormatCurrency(b.TotalPrincipalPaid)},
		{"Property Tax", FormatCurrency(b.TotalPropertyTax)},
		{"Home Insurance", FormatCurrency(b.TotalInsurance)},
		{"HOA Fees", FormatCurrency(b.TotalHOA)},
		{"Maintenance", FormatCurrency(b.TotalMaintenance)},
		{"Final Home Value", FormatCurrency(b.FinalHomeValue)},
		{"Remaining Mortgage", FormatCurrency(b.RemainingMortgage)},
		{"Selling Costs", FormatCurrency(b.SellingCosts)},
		{"Savings Invested", FormatCurrency(b.MonthlySavingsInvested)},
		{"Investment Returns", FormatCurrency(b.InvestmentReturns)},
		{"Investment Balance", FormatCurrency(b.InvestmentBalance)},
		{"NET WORTH", FormatCurrency(b.NetWorth)},
	}
	rentRows := [][2]string{
		{"Initial Investment", FormatCurrency(r.InitialInvestment)},
		{"Total Rent Paid", FormatCurrency(r.TotalRentPaid)},
		{"Renter's Insurance", FormatCurrency(r.TotalRentersInsurance)},
		{"Savings Invested", FormatCurrency(r.MonthlyCostSavings)},
		{"Investment Returns", FormatCurrency(r.InvestmentReturns)},
		{"Final Investments", FormatCurrency(r.FinalInvestmentValue)},
		{"NET WORTH", FormatCurrency(r.NetWorth)},
	}

	fmt.Fprintln(buf, "SCENARIO BREAKDOWN")
	fmt.Fprintln(buf, "==================")
	fmt.Fprintf(buf, "%-38s    %s\n", "BUYING", "RENTING")

	rows := len(buyRows)
	if len(rentRows) > rows {
		rows = len(rentRows)
	}
	for i := 0; i < rows; i++ {
		left, right := "", ""
		if i < len(buyRows) {
			left = fmt.Sprintf("%-20s %17s", buyRows[i][0]+":", buyRows[i][1])
		}
		if i < len(rentRows) {
			right = fmt.Sprintf("%-20s %17s", rentRows[i][0]+":", rentRows[i][1])
		}
		fmt.Fprintf(buf, "%-38s    %s\n", left, right)
	}
	fmt.Fprintln(buf)
}

func (rg *ReportGenerator) writeMonthlyCosts(buf *bytes.Buffer, result *domain.CalculationResult) {
	mb := result.MonthlyBreakdown
	mc := result.MonthlyComparison

	fmt.Fprintln(buf, "AVERAGE MONTHLY COSTS")
	fmt.Fprintln(buf, "=====================")
	fmt.Fprintln(buf, "Buying:")
	fmt.Fprintf(buf, "  %-16s %14s\n", "Mortgage:", FormatCurrency(mb.BuyMortgage))
	fmt.Fprintf(buf, "  %-16s %14s\n", "Property Tax:", FormatCurrency(mb.BuyPropertyTax))
	fmt.Fprintf(buf, "  %-16s %14s\n", "Insurance:", FormatCurrency(mb.BuyInsurance))
	fmt.Fprintf(buf, "  %-16s %14s\n", "HOA:", FormatCurrency(mb.BuyHOA))
	fmt.Fprintf(buf, "  %-16s %14s\n", "Maintenance:", FormatCurrency(mb.BuyMaintenance))
	fmt.Fprintf(buf, "  %-16s %14s\n", "Total:", FormatCurrency(mb.BuyTotal))
	fmt.Fprintln(buf, "Renting:")
	fmt.Fprintf(buf, "  %-16s %14s\n", "Rent:", FormatCurrency(mb.RentPayment))
	fmt.Fprintf(buf, "  %-16s %14s\n", "Insurance:", FormatCurrency(mb.RentInsurance))
	fmt.Fprintf(buf, "  %-16s %14s\n", "Total:", FormatCurrency(mb.RentTotal))

	diff := mc.AvgMonthlyDifference
	switch {
	case diff.IsPositive():
		fmt.Fprintf(buf, "Monthly Difference: %s (buying costs more per month)\n", FormatCurrency(diff))
	case diff.IsNegative():
		fmt.Fprintf(buf, "Monthly Difference: %s (renting costs more per month)\n", FormatCurrency(diff.Abs()))
	default:
		fmt.Fprintln(buf, "Monthly Difference: $0.00")
	}
	fmt.Fprintln(buf)
}

func (rg *ReportGenerator) writeYearlyTable(buf *bytes.Buffer, result *domain.CalculationResult) {
	if len(result.YearlySnapshots) == 0 {
		return
	}

	fmt.Fprintln(buf, "NET WORTH BY YEAR")
	fmt.Fprintln(buf, "=================")
	fmt.Fprintf(buf, "%4s %18s %18s %18s\n", "Year", "Buy Net Worth", "Rent Net Worth", "Difference")
	fmt.Fprintln(buf, strings.Repeat("-", 62))

	for _, snap := range result.YearlySnapshots {
		diff := snap.BuyNetWorth.Sub(snap.RentNetWorth)
		fmt.Fprintf(buf, "%4d %18s %18s %18s\n",
			snap.Year,
			FormatCurrency(snap.BuyNetWorth),
			FormatCurrency(snap.RentNetWorth),
			FormatCurrency(diff))
	}
	fmt.Fprintln(buf)
}

// CSVReport renders the yearly net worth table followed by a summary block.
// Each section carries its own header row so the file splits cleanly in a
// spreadsheet.
func (rg *ReportGenerator) CSVReport(result *domain.CalculationResult, input *domain.SimulationInput) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Year", "Buy Net Worth", "Rent Net Worth", "Difference"},
	}
	for _, snap := range result.YearlySnapshots {
		diff := snap.BuyNetWorth.Sub(snap.RentNetWorth)
		records = append(records, []string{
			strconv.Itoa(snap.Year),
			snap.BuyNetWorth.StringFixed(2),
			snap.RentNetWorth.StringFixed(2),
			diff.StringFixed(2),
		})
	}

	records = append(records,
		[]string{},
		[]string{"Metric", "Value"},
		[]string{"Home Price", input.HomePrice.StringFixed(2)},
		[]string{"Monthly Rent", input.MonthlyRent.StringFixed(2)},
		[]string{"Time Horizon Years", strconv.Itoa(input.TimeHorizonYears)},
		[]string{"Avg Monthly Cost Buy", result.MonthlyComparison.AvgBuyMonthly.StringFixed(2)},
		[]string{"Avg Monthly Cost Rent", result.MonthlyComparison.AvgRentMonthly.StringFixed(2)},
		[]string{"Buy Net Worth", result.BuyBreakdown.NetWorth.StringFixed(2)},
		[]string{"Rent Net Worth", result.RentBreakdown.NetWorth.StringFixed(2)},
		[]string{"Difference", result.Difference.StringFixed(2)},
		[]string{"Verdict", VerdictLabel(result)},
	)

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSONReport renders the full result as indented JSON.
func (rg *ReportGenerator) JSONReport(result *domain.CalculationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

// VerdictLabel is the one-word outcome for a result: "buy", "rent", or
// "even".
func VerdictLabel(result *domain.CalculationResult) string {
	if result.BuyingWins() {
		return "buy"
	}
	if result.Difference.IsZero() {
		return "even"
	}
	return "rent"
}

// NormalizeFormatName maps format aliases to their canonical names. An
// empty format means console.
func NormalizeFormatName(format string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case "", "table", "txt", "text":
		return "console"
	default:
		return f
	}
}

var (
	thousand = decimal.NewFromInt(1000)
	million  = decimal.NewFromInt(1000000)
)

// FormatCurrency formats a decimal as dollars and cents. Negative amounts
// carry the sign before the dollar symbol.
func FormatCurrency(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Neg().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}

// FormatPercent formats an annual rate for display.
func FormatPercent(rate decimal.Decimal) string {
	return rate.StringFixed(2) + "%"
}

// FormatCurrencyWhole formats a decimal as whole dollars with thousands
// separators: $1,234,568.
func FormatCurrencyWhole(amount decimal.Decimal) string {
	s := "$" + groupThousands(amount.Abs().Round(0).String())
	if amount.IsNegative() {
		return "-" + s
	}
	return s
}

// FormatCurrencyAbbrev formats large amounts compactly for chart axes and
// metric cards: $1.2M, $450K, $980.
func FormatCurrencyAbbrev(amount decimal.Decimal) string {
	abs := amount.Abs()
	var s string
	switch {
	case abs.GreaterThanOrEqual(million):
		s = "$" + abs.Div(million).StringFixed(1) + "M"
	case abs.GreaterThanOrEqual(thousand):
		s = "$" + abs.Div(thousand).StringFixed(0) + "K"
	default:
		s = "$" + abs.StringFixed(0)
	}
	if amount.IsNegative() {
		return "-" + s
	}
	return s
}

// ParseAmount parses a user-entered dollar amount. Accepts an optional
// leading $, comma grouping, and a K or M suffix: "$450,000", "450K",
// "1.2M".
func ParseAmount(s string) (decimal.Decimal, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "$")
	t = strings.ReplaceAll(t, ",", "")
	if t == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	mult := decimal.NewFromInt(1)
	switch t[len(t)-1] {
	case 'k', 'K':
		mult = thousand
		t = t[:len(t)-1]
	case 'm', 'M':
		mult = million
		t = t[:len(t)-1]
	}

	d, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d.Mul(mult), nil
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
