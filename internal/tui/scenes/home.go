package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/output"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/tuimsg"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/tuistyles"
)

// HomeModel is the home dashboard scene.
type HomeModel struct {
	config *domain.Configuration
	input  *domain.SimulationInput
	result *domain.CalculationResult
	width  int
	height int
}

// NewHomeModel creates a new home scene model.
func NewHomeModel() *HomeModel {
	return &HomeModel{}
}

// SetConfig updates the loaded scenario file.
func (m *HomeModel) SetConfig(config *domain.Configuration) {
	m.config = config
}

// SetInput updates the working input.
func (m *HomeModel) SetInput(input *domain.SimulationInput) {
	m.input = input
}

// SetResult updates the latest simulation result.
func (m *HomeModel) SetResult(result *domain.CalculationResult) {
	m.result = result
}

// SetSize updates the scene dimensions.
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the home scene. Pressing a scenario's
// number loads it as the working input; other navigation is handled by
// the parent model.
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.config != nil {
		s := keyMsg.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			idx := int(s[0] - '1')
			if idx < len(m.config.Scenarios) {
				name := m.config.Scenarios[idx].Name
				return m, func() tea.Msg {
					return tuimsg.ScenarioSelectedMsg{ScenarioName: name}
				}
			}
		}
	}
	return m, nil
}

// View renders the home dashboard.
func (m *HomeModel) View() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary).
		MarginBottom(1)
	content.WriteString(titleStyle.Render("Buy vs Rent Calculator"))
	content.WriteString("\n\n")

	content.WriteString(m.renderInputOverview())
	content.WriteString("\n\n")

	content.WriteString(m.renderScenariosOverview())
	content.WriteString("\n\n")

	content.WriteString(m.renderQuickActions())
	content.WriteString("\n\n")

	content.WriteString(m.renderTips())

	return tuistyles.BorderStyle.Render(content.String())
}

// renderInputOverview shows the working input and the latest verdict.
func (m *HomeModel) renderInputOverview() string {
	var content strings.Builder

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorSecondary).
		MarginBottom(1)
	content.WriteString(sectionStyle.Render("🏠 Working Scenario"))
	content.WriteString("\n")

	if m.input == nil {
		subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
		content.WriteString(subtleStyle.Render("  Loading..."))
		return content.String()
	}

	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	valueStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground)

	rows := []struct {
		label string
		value string
	}{
		{"Home price", fmt.Sprintf("%s (%s%% down, %s closing)",
			output.FormatCurrencyWhole(m.input.HomePrice),
			m.input.DownPaymentPercent.String(),
			output.FormatCurrencyWhole(m.input.ClosingCosts()))},
		{"Mortgage", fmt.Sprintf("%s%% over %d years", m.input.MortgageRate.String(), m.input.LoanTermYears)},
		{"Rent", fmt.Sprintf("%s/mo, rising %s%%/yr",
			output.FormatCurrencyWhole(m.input.MonthlyRent),
			m.input.RentIncreaseRate.String())},
		{"Investments", fmt.Sprintf("%s%%/yr return on freed-up cash", m.input.InvestmentReturn.String())},
		{"Horizon", fmt.Sprintf("%d year%s", m.input.TimeHorizonYears, pluralS(m.input.TimeHorizonYears))},
	}

	for _, row := range rows {
		content.WriteString(labelStyle.Render(fmt.Sprintf("  %-12s", row.label)))
		content.WriteString(valueStyle.Render(row.value))
		content.WriteString("\n")
	}

	if m.result != nil {
		content.WriteString("\n")
		content.WriteString(labelStyle.Render("  Verdict     "))
		margin := output.FormatCurrencyWhole(m.result.Margin())
		switch {
		case m.result.BuyingWins():
			style := lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess).Bold(true)
			content.WriteString(style.Render(fmt.Sprintf("BUYING wins by %s", margin)))
		case m.result.Difference.IsNegative():
			style := lipgloss.NewStyle().Foreground(tuistyles.ColorSecondary).Bold(true)
			content.WriteString(style.Render(fmt.Sprintf("RENTING wins by %s", margin)))
		default:
			style := lipgloss.NewStyle().Foreground(tuistyles.ColorAccent).Bold(true)
			content.WriteString(style.Render("DEAD EVEN"))
		}
		content.WriteString("\n")
	}

	return content.String()
}

// renderScenariosOverview lists the loaded scenario file contents.
func (m *HomeModel) renderScenariosOverview() string {
	var content strings.Builder

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorSecondary).
		MarginBottom(1)
	content.WriteString(sectionStyle.Render("📂 Loaded Scenarios"))
	content.WriteString("\n")

	subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)

	if m.config == nil || len(m.config.Scenarios) == 0 {
		content.WriteString(subtleStyle.Render("  No scenario file loaded, using built-in defaults"))
		return content.String()
	}

	nameStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary)

	displayCount := min(5, len(m.config.Scenarios))
	for i := 0; i < displayCount; i++ {
		scenario := m.config.Scenarios[i]
		content.WriteString("  ")
		content.WriteString(nameStyle.Render(fmt.Sprintf("%d. %s", i+1, scenario.Name)))
		content.WriteString(subtleStyle.Render(fmt.Sprintf(" (%s home, %s/mo rent)",
			output.FormatCurrencyAbbrev(scenario.Input.HomePrice),
			output.FormatCurrencyAbbrev(scenario.Input.MonthlyRent))))
		content.WriteString("\n")
	}

	if len(m.config.Scenarios) > 5 {
		content.WriteString(subtleStyle.Render(fmt.Sprintf("  ... and %d more",
			len(m.config.Scenarios)-5)))
		content.WriteString("\n")
	}

	content.WriteString(subtleStyle.Render("  Press a number to load that scenario"))
	content.WriteString("\n")

	return content.String()
}

// renderQuickActions shows available navigation shortcuts.
func (m *HomeModel) renderQuickActions() string {
	var content strings.Builder

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorSecondary).
		MarginBottom(1)
	content.WriteString(sectionStyle.Render("⚡ Quick Actions"))
	content.WriteString("\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorPrimary).
		Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground)

	actions := []struct {
		key  string
		desc string
	}{
		{"p", "Adjust parameters with live recalculation"},
		{"r", "View the full results breakdown"},
		{"s", "Sweep one input to find the tipping point"},
		{"c", "Compare scenarios from the loaded file"},
		{"?", "Show help"},
	}

	for _, action := range actions {
		content.WriteString("  ")
		content.WriteString(keyStyle.Render(action.key))
		content.WriteString(descStyle.Render("  " + action.desc))
		content.WriteString("\n")
	}

	return content.String()
}

// renderTips shows getting started tips.
func (m *HomeModel) renderTips() string {
	var content strings.Builder

	subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Italic(true)

	content.WriteString(subtleStyle.Render("💡 Tip: Press 'p' and nudge the mortgage rate to see the verdict move"))
	content.WriteString("\n")
	content.WriteString(subtleStyle.Render("    Press '?' at any time for help"))

	return content.String()
}

// Helper functions

func pluralS(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
