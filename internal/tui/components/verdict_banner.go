package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/output"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/tuistyles"
)

// VerdictBanner renders the headline outcome of a simulation run.
type VerdictBanner struct {
	Result *domain.CalculationResult
	Width  int
}

// NewVerdictBanner creates a verdict banner for a result.
func NewVerdictBanner(result *domain.CalculationResult) *VerdictBanner {
	return &VerdictBanner{
		Result: result,
		Width:  60,
	}
}

// WithWidth sets the banner width.
func (v *VerdictBanner) WithWidth(width int) *VerdictBanner {
	v.Width = width
	return v
}

// Render returns the styled banner.
func (v *VerdictBanner) Render() string {
	if v.Result == nil {
		return tuistyles.InfoStyle.Render("No result yet")
	}

	var text string
	var color lipgloss.Color

	switch {
	case v.Result.BuyingWins():
		text = fmt.Sprintf("BUYING WINS by %s", output.FormatCurrencyWhole(v.Result.Margin()))
		color = tuistyles.ColorSuccess
	case v.Result.Difference.IsNegative():
		text = fmt.Sprintf("RENTING WINS by %s", output.FormatCurrencyWhole(v.Result.Margin()))
		color = tuistyles.ColorSecondary
	default:
		text = "DEAD EVEN"
		color = tuistyles.ColorAccent
	}

	bannerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(color).
		Padding(0, 2).
		Width(v.Width).
		Align(lipgloss.Center)

	return bannerStyle.Render(text)
}
