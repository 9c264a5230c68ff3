package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/compare"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/components"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/tuimsg"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/tuistyles"
)

// CompareModel is the scenario comparison scene. The first checked
// scenario becomes the base; every other checked scenario is compared
// against it.
type CompareModel struct {
	config    *domain.Configuration
	checked   map[int]bool
	cursor    int
	set       *compare.ComparisonSet
	comparing bool
	width     int
	height    int
}

// NewCompareModel creates a new compare scene model.
func NewCompareModel() *CompareModel {
	return &CompareModel{
		checked: make(map[int]bool),
	}
}

// SetConfig updates the scenario list.
func (m *CompareModel) SetConfig(config *domain.Configuration) {
	m.config = config
	m.checked = make(map[int]bool)
	m.cursor = 0
	m.set = nil
}

// SetComparison installs a finished comparison. A nil set returns the
// scene to the selection list, which is how a failed run is surfaced.
func (m *CompareModel) SetComparison(set *compare.ComparisonSet) {
	m.set = set
	m.comparing = false
}

// SetSize updates the scene dimensions.
func (m *CompareModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the compare scene.
func (m *CompareModel) Update(msg tea.Msg) (*CompareModel, tea.Cmd) {
	if m.comparing {
		return m, nil
	}
	if m.set != nil {
		return m.updateResults(msg)
	}
	return m.updateSelection(msg)
}

// updateSelection handles the checkbox list.
func (m *CompareModel) updateSelection(msg tea.Msg) (*CompareModel, tea.Cmd) {
	if m.config == nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if m.cursor < len(m.config.Scenarios)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys(" ", "x"))):
			m.checked[m.cursor] = !m.checked[m.cursor]
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			names := m.checkedNames()
			if len(names) < 2 {
				return m, nil
			}
			m.comparing = true
			return m, m.startComparisonCmd(names)

		case key.Matches(msg, key.NewBinding(key.WithKeys("c"))):
			m.checked = make(map[int]bool)
			return m, nil
		}
	}

	return m, nil
}

// updateResults handles the results view.
func (m *CompareModel) updateResults(msg tea.Msg) (*CompareModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("n"))):
			m.set = nil
			return m, nil
		}
	}
	return m, nil
}

// checkedNames returns the checked scenario names in file order, so the
// base scenario is always the earliest checked one.
func (m *CompareModel) checkedNames() []string {
	var names []string
	for idx := 0; idx < len(m.config.Scenarios); idx++ {
		if m.checked[idx] {
			names = append(names, m.config.Scenarios[idx].Name)
		}
	}
	return names
}

// startComparisonCmd asks the root model to run the comparison.
func (m *CompareModel) startComparisonCmd(names []string) tea.Cmd {
	return func() tea.Msg {
		return tuimsg.CompareRequestedMsg{
			BaseScenarioName: names[0],
			Alternatives:     names[1:],
		}
	}
}

// View renders the compare scene.
func (m *CompareModel) View() string {
	if m.comparing {
		return m.renderLoading()
	}
	if m.set != nil {
		return m.renderResults()
	}
	return m.renderSelection()
}

// renderSelection shows the scenario checkbox list.
func (m *CompareModel) renderSelection() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	content.WriteString(titleStyle.Render("Compare Scenarios"))
	content.WriteString("\n\n")

	subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)

	if m.config == nil || len(m.config.Scenarios) == 0 {
		content.WriteString(tuistyles.ErrorStyle.Render("No scenario file loaded"))
		content.WriteString("\n\n")
		content.WriteString(subtleStyle.Render("Start the app with a scenario file to compare scenarios."))
		return tuistyles.BorderStyle.Render(content.String())
	}

	content.WriteString(subtleStyle.Render(
		"↑/↓ navigate • Space/x to check • Enter to compare • c to clear"))
	content.WriteString("\n\n")

	cards := make([]*components.ScenarioCard, len(m.config.Scenarios))
	for i := range m.config.Scenarios {
		cards[i] = components.NewScenarioCardFromInput(&m.config.Scenarios[i]).
			SetChecked(m.checked[i])
	}
	content.WriteString(components.ScenarioListCompact(cards, m.cursor))
	content.WriteString("\n\n")

	names := m.checkedNames()
	warningStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorAccent)
	successStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess)
	switch {
	case len(names) == 0:
		content.WriteString(subtleStyle.Render("Check at least 2 scenarios to compare"))
	case len(names) == 1:
		content.WriteString(warningStyle.Render("Checked 1 scenario (need at least 2)"))
	default:
		content.WriteString(successStyle.Render(fmt.Sprintf(
			"Checked %d scenarios • base: %s • Press Enter to compare",
			len(names), names[0])))
	}

	return tuistyles.BorderStyle.Render(content.String())
}

// renderLoading shows progress while the comparison runs.
func (m *CompareModel) renderLoading() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	content.WriteString(titleStyle.Render("Comparing Scenarios..."))
	content.WriteString("\n\n")

	content.WriteString(fmt.Sprintf("⠋ Running %d simulations...", len(m.checkedNames())))

	return tuistyles.BorderStyle.Render(content.String())
}

// renderResults shows the finished comparison.
func (m *CompareModel) renderResults() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	content.WriteString(titleStyle.Render("Scenario Comparison"))
	content.WriteString("\n\n")

	subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString(subtleStyle.Render("Base: "))
	content.WriteString(m.set.BaseScenarioName)
	content.WriteString("\n\n")

	content.WriteString(m.renderResultsTable())

	if len(m.set.Recommendations) > 0 {
		content.WriteString("\n")
		accentStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorAccent)
		for _, rec := range m.set.Recommendations {
			content.WriteString(accentStyle.Render("• "))
			content.WriteString(rec)
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	content.WriteString(subtleStyle.Render("n for a new comparison • ESC to go back"))

	return tuistyles.BorderStyle.Render(content.String())
}

// renderResultsTable renders one row per scenario.
func (m *CompareModel) renderResultsTable() string {
	var table strings.Builder

	nameWidth := 24
	numWidth := 14

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	table.WriteString(headerStyle.Render(padRight("Scenario", nameWidth)))
	table.WriteString(headerStyle.Render(padRight("Difference", numWidth)))
	table.WriteString(headerStyle.Render(padRight("vs Base", numWidth)))
	table.WriteString(headerStyle.Render("Verdict"))
	table.WriteString("\n")
	table.WriteString(strings.Repeat("─", nameWidth+2*numWidth+12))
	table.WriteString("\n")

	table.WriteString(m.renderResultRow(m.set.BaseResult, true, nameWidth, numWidth))
	for i := range m.set.AlternativeResults {
		table.WriteString(m.renderResultRow(&m.set.AlternativeResults[i], false, nameWidth, numWidth))
	}

	return table.String()
}

// renderResultRow renders one scenario row.
func (m *CompareModel) renderResultRow(r *compare.ComparisonResult, isBase bool, nameWidth, numWidth int) string {
	var row strings.Builder

	name := truncate(r.ScenarioName, nameWidth-8)
	if isBase {
		name += " (base)"
	}
	row.WriteString(padRight(name, nameWidth))

	row.WriteString(padRight(formatCompactCurrency(r.Difference.InexactFloat64()), numWidth))

	if isBase {
		row.WriteString(padRight("", numWidth))
	} else {
		row.WriteString(padRight(formatSignedCompact(r.DifferenceFromBase), numWidth))
	}

	buyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess).Bold(true)
	rentStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSecondary).Bold(true)
	if r.Verdict == compare.VerdictBuy {
		row.WriteString(buyStyle.Render("BUY"))
	} else {
		row.WriteString(rentStyle.Render("RENT"))
	}

	if r.VerdictFlipped {
		flipStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorAccent)
		row.WriteString(flipStyle.Render(" ⚑ flips"))
	}

	row.WriteString("\n")
	return row.String()
}

// Helper functions

func padRight(s string, width int) string {
	// lipgloss.Width accounts for ANSI escape codes
	currentWidth := lipgloss.Width(s)
	if currentWidth >= width {
		return s
	}
	return s + strings.Repeat(" ", width-currentWidth)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func formatCompactCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	var s string
	switch {
	case amount >= 1000000:
		s = fmt.Sprintf("$%.2fM", amount/1000000)
	case amount >= 1000:
		s = fmt.Sprintf("$%.1fK", amount/1000)
	default:
		s = fmt.Sprintf("$%.0f", amount)
	}

	if neg {
		return "-" + s
	}
	return s
}

func formatSignedCompact(d decimal.Decimal) string {
	s := formatCompactCurrency(d.InexactFloat64())
	if d.IsPositive() {
		return "+" + s
	}
	return s
}
