package scenes

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/output"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/components"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/tuimsg"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/tuistyles"
)

// sensitivityMode tracks which stage of the sweep flow is active.
type sensitivityMode int

const (
	sensitivityPickField sensitivityMode = iota
	sensitivityRunning
	sensitivityShowCurve
)

// sensitivitySampleCount is the number of intervals per interactive sweep;
// the sweeper samples both endpoints, so the curve has one more point. An
// even count puts a sample exactly at the range midpoint.
const sensitivitySampleCount = 20

// SensitivityModel is the sensitivity analysis scene: pick a field, sweep
// it across its canonical range, and walk the resulting curve.
type SensitivityModel struct {
	input    *domain.SimulationInput
	params   []domain.SweepParameter
	selected int
	mode     sensitivityMode
	sweep    *domain.SweepResult
	cursor   int
	width    int
	height   int
}

// NewSensitivityModel creates a new sensitivity scene model.
func NewSensitivityModel() *SensitivityModel {
	return &SensitivityModel{
		params: domain.SweepParameters(),
	}
}

// SetInput updates the working input the sweep will branch from.
func (m *SensitivityModel) SetInput(input *domain.SimulationInput) {
	m.input = input
}

// SetSize updates the scene dimensions.
func (m *SensitivityModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetSweep installs a finished sweep and moves the sample cursor to the
// point closest to the base value.
func (m *SensitivityModel) SetSweep(sweep *domain.SweepResult) {
	m.sweep = sweep
	m.mode = sensitivityShowCurve
	m.cursor = 0

	best := math.Inf(1)
	for i, pt := range sweep.Points {
		d := math.Abs(pt.Value - sweep.BaseValue)
		if d < best {
			best = d
			m.cursor = i
		}
	}
}

// Update handles messages for the sensitivity scene.
func (m *SensitivityModel) Update(msg tea.Msg) (*SensitivityModel, tea.Cmd) {
	switch m.mode {
	case sensitivityPickField:
		return m.updateFieldPicker(msg)
	case sensitivityShowCurve:
		return m.updateCurve(msg)
	}
	return m, nil
}

// updateFieldPicker handles field selection.
func (m *SensitivityModel) updateFieldPicker(msg tea.Msg) (*SensitivityModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if m.selected < len(m.params)-1 {
				m.selected++
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			if m.input == nil {
				return m, nil
			}
			m.mode = sensitivityRunning
			return m, m.requestSweepCmd(m.params[m.selected])
		}
	}
	return m, nil
}

// updateCurve handles curve inspection.
func (m *SensitivityModel) updateCurve(msg tea.Msg) (*SensitivityModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("left"))):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("right"))):
			if m.sweep != nil && m.cursor < len(m.sweep.Points)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("n"))):
			m.mode = sensitivityPickField
			m.sweep = nil
			return m, nil
		}
	}
	return m, nil
}

// requestSweepCmd asks the root model to run the sweep.
func (m *SensitivityModel) requestSweepCmd(param domain.SweepParameter) tea.Cmd {
	return func() tea.Msg {
		return tuimsg.SweepRequestedMsg{
			Field:       param.Field,
			Min:         param.Min,
			Max:         param.Max,
			SampleCount: sensitivitySampleCount,
		}
	}
}

// View renders the sensitivity scene.
func (m *SensitivityModel) View() string {
	switch m.mode {
	case sensitivityRunning:
		return m.renderRunning()
	case sensitivityShowCurve:
		return m.renderCurve()
	}
	return m.renderFieldPicker()
}

// renderFieldPicker shows the sweepable field list.
func (m *SensitivityModel) renderFieldPicker() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	content.WriteString(titleStyle.Render("Sensitivity Analysis"))
	content.WriteString("\n\n")

	subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString(subtleStyle.Render(
		"Sweep one input across its range and see where the verdict flips."))
	content.WriteString("\n\n")

	if m.input == nil {
		content.WriteString(tuistyles.ErrorStyle.Render("No working input yet"))
		return tuistyles.BorderStyle.Render(content.String())
	}

	content.WriteString(subtleStyle.Render("Use ↑/↓ to navigate • Enter to sweep"))
	content.WriteString("\n\n")

	cursorStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary)
	highlightStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary).Bold(true)

	for idx, param := range m.params {
		var line strings.Builder

		if idx == m.selected {
			line.WriteString(cursorStyle.Render("❯ "))
			line.WriteString(highlightStyle.Render(fmt.Sprintf("%-24s", param.Label)))
		} else {
			line.WriteString("  ")
			line.WriteString(fmt.Sprintf("%-24s", param.Label))
		}

		current := output.FormatSweepValue(m.input.Get(param.Field), param.Unit)
		line.WriteString(fmt.Sprintf("%12s", current))
		line.WriteString(subtleStyle.Render(fmt.Sprintf("   %s to %s",
			output.FormatSweepValue(param.Min, param.Unit),
			output.FormatSweepValue(param.Max, param.Unit))))

		content.WriteString(line.String())
		content.WriteString("\n")
	}

	return tuistyles.BorderStyle.Render(content.String())
}

// renderRunning shows sweep progress.
func (m *SensitivityModel) renderRunning() string {
	var content strings.Builder

	param := m.params[m.selected]

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	content.WriteString(titleStyle.Render("Running Sweep..."))
	content.WriteString("\n\n")

	content.WriteString(fmt.Sprintf("⠋ Sweeping %s across %d samples...",
		param.Label, sensitivitySampleCount+1))

	return tuistyles.BorderStyle.Render(content.String())
}

// renderCurve shows the sweep curve with the sample cursor.
func (m *SensitivityModel) renderCurve() string {
	if m.sweep == nil || len(m.sweep.Points) == 0 {
		return tuistyles.ErrorStyle.Render("Sweep produced no samples")
	}

	param, _ := domain.SweepParameterFor(m.sweep.Field)

	diffs := make([]float64, len(m.sweep.Points))
	labels := make([]string, len(m.sweep.Points))
	for i, pt := range m.sweep.Points {
		diffs[i] = pt.Difference.InexactFloat64()
		labels[i] = sensitivityAxisLabel(pt.Value, param.Unit)
	}

	chartWidth := m.width - 10
	if chartWidth < 50 {
		chartWidth = 50
	}
	if chartWidth > 90 {
		chartWidth = 90
	}

	chart := components.NewASCIIChart(fmt.Sprintf("Buy Advantage vs %s", param.Label)).
		AddSeries("Buy minus rent net worth", diffs, tuistyles.ColorChartLine1).
		WithLabels(labels).
		WithSize(chartWidth, 12).
		WithZeroLine().
		WithMarkerAt(m.cursor).
		WithXAxisLabel("Above the dotted line buying wins, below it renting wins").
		Render()

	sampleBar := components.NewProgressBar(m.cursor+1, len(m.sweep.Points)).
		WithLabel("Sample").
		WithWidth(30).
		Render()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		chart,
		"",
		sampleBar,
		m.renderSampleReadout(param),
		"",
		m.renderCrossings(param),
		"",
		lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).
			Render("←/→ inspect samples • n new sweep • ESC back"),
	)
}

// renderSampleReadout describes the sample under the cursor.
func (m *SensitivityModel) renderSampleReadout(param domain.SweepParameter) string {
	pt := m.sweep.Points[m.cursor]

	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorForeground)
	line := fmt.Sprintf("At %s = %s: ",
		param.Label, valueStyle.Render(output.FormatSweepValue(pt.Value, param.Unit)))

	margin := output.FormatCurrencyWhole(pt.Difference.Abs())
	switch {
	case pt.Difference.IsPositive():
		style := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorSuccess)
		line += style.Render("BUYING wins by " + margin)
	case pt.Difference.IsNegative():
		style := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorSecondary)
		line += style.Render("RENTING wins by " + margin)
	default:
		style := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorAccent)
		line += style.Render("DEAD EVEN")
	}

	return line
}

// renderCrossings summarizes where the verdict flips across the range.
func (m *SensitivityModel) renderCrossings(param domain.SweepParameter) string {
	crossings := output.SweepCrossings(m.sweep)
	subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)

	if len(crossings) == 0 {
		return subtleStyle.Render("Verdict holds across the entire range.")
	}

	flipStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorAccent).Bold(true)
	parts := make([]string, len(crossings))
	for i, c := range crossings {
		parts[i] = output.FormatSweepValue(c, param.Unit)
	}
	return flipStyle.Render(fmt.Sprintf("Verdict flips near %s = %s",
		param.Label, strings.Join(parts, ", ")))
}

// sensitivityAxisLabel formats a compact X-axis label for a swept value.
func sensitivityAxisLabel(v float64, unit string) string {
	switch {
	case strings.HasPrefix(unit, "$"):
		return output.FormatCurrencyAbbrev(decimal.NewFromFloat(v))
	case strings.HasPrefix(unit, "%"):
		return strconv.FormatFloat(v, 'g', 3, 64) + "%"
	case unit == "years":
		return fmt.Sprintf("%.0fy", v)
	default:
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
}
