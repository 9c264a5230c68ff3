package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/output"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/components"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/tuistyles"
)

// ResultsModel is the results scene: verdict, key metrics, the two cost
// breakdowns and the year-by-year net worth chart.
type ResultsModel struct {
	input  *domain.SimulationInput
	result *domain.CalculationResult
	width  int
	height int
}

// NewResultsModel creates a new results scene model.
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetResults updates the displayed result.
func (m *ResultsModel) SetResults(input *domain.SimulationInput, result *domain.CalculationResult) {
	m.input = input
	m.result = result
}

// SetSize updates the scene dimensions.
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the results scene. The scene is read-only;
// parameter changes arrive via SetResults.
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	return m, nil
}

// View renders the results scene.
func (m *ResultsModel) View() string {
	if m.result == nil {
		return renderNoResultsState()
	}

	banner := components.NewVerdictBanner(m.result).WithWidth(66).Render()

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		renderResultsContext(m.input),
		"",
		banner,
		"",
		renderResultsMetrics(m.result),
		"",
		renderNetWorthChart(m.result, m.width),
		"",
		renderResultsBreakdowns(m.result),
		"",
		renderResultsHelp(),
	)

	return content
}

// renderNoResultsState renders the empty state.
func renderNoResultsState() string {
	return `No results yet.

Adjust parameters (press 'p') to run the simulation.

Press ESC to go back.`
}

// renderResultsContext summarizes the inputs behind the result.
func renderResultsContext(input *domain.SimulationInput) string {
	if input == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted)

	summary := fmt.Sprintf("%s home, %s%% down at %s%% • rent %s/mo • %d year horizon",
		output.FormatCurrencyWhole(input.HomePrice),
		input.DownPaymentPercent.String(),
		input.MortgageRate.String(),
		output.FormatCurrencyWhole(input.MonthlyRent),
		input.TimeHorizonYears)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Simulation Results"),
		subtitleStyle.Render(summary),
	)
}

// renderResultsMetrics renders the headline metric cards.
func renderResultsMetrics(result *domain.CalculationResult) string {
	cards := []*components.MetricCard{
		components.NewCurrencyCard("Buy Net Worth", result.BuyBreakdown.NetWorth).
			WithDelta(result.Difference).
			WithWidth(22),
		components.NewCurrencyCard("Rent Net Worth", result.RentBreakdown.NetWorth).
			WithDelta(result.Difference.Neg()).
			WithWidth(22),
		components.NewCurrencyCard("Avg Monthly Buy", result.MonthlyComparison.AvgBuyMonthly).
			WithDescription("all ownership costs").
			WithWidth(22),
		components.NewCurrencyCard("Avg Monthly Rent", result.MonthlyComparison.AvgRentMonthly).
			WithDescription("rent plus insurance").
			WithWidth(22),
	}

	return components.MetricGrid(cards, 4)
}

// renderNetWorthChart plots both net worth curves across the horizon.
func renderNetWorthChart(result *domain.CalculationResult, width int) string {
	snapshots := result.YearlySnapshots
	if len(snapshots) < 2 {
		return ""
	}

	buy := make([]float64, len(snapshots))
	rent := make([]float64, len(snapshots))
	labels := make([]string, len(snapshots))
	for i, snap := range snapshots {
		buy[i] = snap.BuyNetWorth.InexactFloat64()
		rent[i] = snap.RentNetWorth.InexactFloat64()
		labels[i] = fmt.Sprintf("Y%d", snap.Year)
	}

	chartWidth := width - 10
	if chartWidth < 50 {
		chartWidth = 50
	}
	if chartWidth > 90 {
		chartWidth = 90
	}

	return components.NewASCIIChart("Net Worth Over Time").
		AddSeries("Buying", buy, tuistyles.ColorChartLine1).
		AddSeries("Renting", rent, tuistyles.ColorChartLine2).
		WithLabels(labels).
		WithSize(chartWidth, 12).
		WithXAxisLabel("Year (sale assumed at each point)").
		Render()
}

// renderResultsBreakdowns renders the two cost breakdowns side by side.
func renderResultsBreakdowns(result *domain.CalculationResult) string {
	b := result.BuyBreakdown
	r := result.RentBreakdown

	buyRows := [][2]string{
		{"Down payment", output.FormatCurrency(b.DownPayment)},
		{"Closing costs", output.FormatCurrency(b.ClosingCosts)},
		{"Mortgage paid", output.FormatCurrency(b.TotalMortgagePayments)},
		{"  interest", output.FormatCurrency(b.TotalInterestPaid)},
		{"  principal", output.FormatCurrency(b.TotalPrincipalPaid)},
		{"Property tax", output.FormatCurrency(b.TotalPropertyTax)},
		{"Insurance", output.FormatCurrency(b.TotalInsurance)},
		{"HOA", output.FormatCurrency(b.TotalHOA)},
		{"Maintenance", output.FormatCurrency(b.TotalMaintenance)},
		{"Home value", output.FormatCurrency(b.FinalHomeValue)},
		{"Mortgage left", output.FormatCurrency(b.RemainingMortgage)},
		{"Selling costs", output.FormatCurrency(b.SellingCosts)},
		{"Investments", output.FormatCurrency(b.InvestmentBalance)},
	}
	rentRows := [][2]string{
		{"Initial invested", output.FormatCurrency(r.InitialInvestment)},
		{"Rent paid", output.FormatCurrency(r.TotalRentPaid)},
		{"Insurance", output.FormatCurrency(r.TotalRentersInsurance)},
		{"Savings invested", output.FormatCurrency(r.MonthlyCostSavings)},
		{"Market returns", output.FormatCurrency(r.InvestmentReturns)},
		{"Investments", output.FormatCurrency(r.FinalInvestmentValue)},
	}

	left := renderBreakdownColumn("BUYING", buyRows, b.NetWorth)
	right := renderBreakdownColumn("RENTING", rentRows, r.NetWorth)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// renderBreakdownColumn renders one bordered breakdown table.
func renderBreakdownColumn(title string, rows [][2]string, netWorth decimal.Decimal) string {
	var content strings.Builder

	content.WriteString(tuistyles.TableHeaderStyle.Render(title))
	content.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	valueStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground)

	for _, row := range rows {
		content.WriteString(labelStyle.Render(fmt.Sprintf("%-17s ", row[0])))
		content.WriteString(valueStyle.Render(fmt.Sprintf("%14s", row[1])))
		content.WriteString("\n")
	}

	content.WriteString(tuistyles.TableHighlightStyle.Render(
		fmt.Sprintf("%-17s %14s", "NET WORTH", output.FormatCurrency(netWorth))))

	return tuistyles.BorderStyle.Width(38).Render(content.String())
}

// renderResultsHelp renders keyboard shortcuts.
func renderResultsHelp() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted)

	return helpStyle.Render("p adjust parameters • s sensitivity • c compare scenarios • ESC back")
}
