package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/components"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/tuimsg"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/tuistyles"
)

// ParametersModel is the parameter editing scene: one slider per
// simulation input, grouped the way the configuration file groups them.
// Every adjustment re-runs the simulation, so the results scene always
// reflects the sliders.
type ParametersModel struct {
	input   *domain.SimulationInput
	params  []domain.SweepParameter
	sliders []*components.ParameterSlider
	focused int
	width   int
	height  int
}

// NewParametersModel creates a new parameters scene model.
func NewParametersModel() *ParametersModel {
	return &ParametersModel{
		params: domain.SweepParameters(),
	}
}

// SetInput replaces the working input and rebuilds the sliders from it.
func (m *ParametersModel) SetInput(input *domain.SimulationInput) {
	if input == nil {
		return
	}
	m.input = input
	m.buildSliders()
}

// Input returns the working input.
func (m *ParametersModel) Input() *domain.SimulationInput {
	return m.input
}

// IsEditing reports whether the focused slider is in typed-entry mode.
// The root model suspends global shortcuts while a value is being typed.
func (m *ParametersModel) IsEditing() bool {
	return m.focused < len(m.sliders) && m.sliders[m.focused].IsEditing()
}

// buildSliders creates one slider per input field.
func (m *ParametersModel) buildSliders() {
	m.sliders = make([]*components.ParameterSlider, 0, len(m.params))

	for _, param := range m.params {
		format := "%.2f"
		if param.Field.IsIntegerYears() {
			format = "%.0f"
		}
		slider := components.NewParameterSlider(param.Label, m.input.Get(param.Field), param.Min, param.Max, param.Step).
			WithUnit(param.Unit).
			WithFormat(format).
			WithWidth(34).
			WithDescription(param.Description)
		m.sliders = append(m.sliders, slider)
	}

	if m.focused >= len(m.sliders) {
		m.focused = 0
	}
	if len(m.sliders) > 0 {
		m.sliders[m.focused].SetFocused(true)
	}
}

// SetSize updates the scene dimensions.
func (m *ParametersModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the parameters scene.
func (m *ParametersModel) Update(msg tea.Msg) (*ParametersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input.
func (m *ParametersModel) handleKeyPress(msg tea.KeyMsg) (*ParametersModel, tea.Cmd) {
	if len(m.sliders) == 0 {
		return m, nil
	}

	slider := m.sliders[m.focused]

	if slider.IsEditing() {
		return m.handleEditKey(msg, slider)
	}

	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("left"))):
		slider.Adjust(-1)
		return m, m.applyChanges()

	case key.Matches(msg, key.NewBinding(key.WithKeys("right"))):
		slider.Adjust(1)
		return m, m.applyChanges()

	case key.Matches(msg, key.NewBinding(key.WithKeys("shift+left"))):
		slider.Adjust(-10)
		return m, m.applyChanges()

	case key.Matches(msg, key.NewBinding(key.WithKeys("shift+right"))):
		slider.Adjust(10)
		return m, m.applyChanges()

	case key.Matches(msg, key.NewBinding(key.WithKeys("tab"))):
		m.jumpGroup(1)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("shift+tab"))):
		m.jumpGroup(-1)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("enter", "e"))):
		slider.BeginEdit()
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("d"))):
		def := domain.DefaultInput()
		m.SetInput(&def)
		return m, m.applyChanges()
	}

	// A typed digit or dollar sign opens the editor seeded with it.
	if len(msg.Runes) == 1 && isEditRune(msg.Runes[0]) {
		slider.BeginEdit()
		slider.TypeRune(msg.Runes[0])
		return m, nil
	}

	return m, nil
}

// handleEditKey routes keystrokes while a value is being typed.
func (m *ParametersModel) handleEditKey(msg tea.KeyMsg, slider *components.ParameterSlider) (*ParametersModel, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		if slider.CommitEdit() {
			return m, m.applyChanges()
		}
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
		slider.CancelEdit()
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("backspace"))):
		slider.Backspace()
		return m, nil
	}

	for _, r := range msg.Runes {
		slider.TypeRune(r)
	}
	return m, nil
}

// isEditRune reports whether a typed character should open the editor.
func isEditRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '$' || r == '-' || r == '.'
}

// moveFocus shifts slider focus by delta, clamped to the ends.
func (m *ParametersModel) moveFocus(delta int) {
	next := m.focused + delta
	if next < 0 || next >= len(m.sliders) {
		return
	}
	m.sliders[m.focused].SetFocused(false)
	m.focused = next
	m.sliders[m.focused].SetFocused(true)
}

// jumpGroup moves focus to the first slider of the next or previous
// input group.
func (m *ParametersModel) jumpGroup(direction int) {
	currentGroup := m.params[m.focused].Group

	if direction > 0 {
		for i := m.focused + 1; i < len(m.params); i++ {
			if m.params[i].Group != currentGroup {
				m.setFocus(i)
				return
			}
		}
		m.setFocus(0)
		return
	}

	// Find the first slider of the previous group.
	first := m.groupStart(m.focused)
	if first == 0 {
		m.setFocus(m.groupStart(len(m.params) - 1))
		return
	}
	m.setFocus(m.groupStart(first - 1))
}

// groupStart returns the index of the first slider in idx's group.
func (m *ParametersModel) groupStart(idx int) int {
	group := m.params[idx].Group
	for idx > 0 && m.params[idx-1].Group == group {
		idx--
	}
	return idx
}

func (m *ParametersModel) setFocus(idx int) {
	m.sliders[m.focused].SetFocused(false)
	m.focused = idx
	m.sliders[m.focused].SetFocused(true)
}

// applyChanges writes the slider values back to the input and asks the
// root model for a recalculation.
func (m *ParametersModel) applyChanges() tea.Cmd {
	if m.input == nil {
		return nil
	}

	for i, slider := range m.sliders {
		m.input.Set(m.params[i].Field, slider.Value)
	}

	input := m.input.Clone()
	return func() tea.Msg {
		return tuimsg.InputChangedMsg{Input: input}
	}
}

// View renders the parameters scene.
func (m *ParametersModel) View() string {
	if m.input == nil || len(m.sliders) == 0 {
		return renderNoInputState()
	}

	var sections []string
	sections = append(sections, renderParametersHeader())

	group := ""
	var lines []string
	flush := func() {
		if group != "" {
			sections = append(sections, renderParameterGroup(group, lines))
		}
		lines = nil
	}

	for i, param := range m.params {
		if param.Group != group {
			flush()
			group = param.Group
		}
		if i == m.focused {
			lines = append(lines, m.sliders[i].Render())
		} else {
			lines = append(lines, m.sliders[i].RenderCompact())
		}
	}
	flush()

	sections = append(sections, renderParameterHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderNoInputState renders the empty state.
func renderNoInputState() string {
	return `No working scenario loaded.

Press ESC to return home.`
}

// renderParametersHeader renders the scene title.
func renderParametersHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Italic(true)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Adjust Assumptions"),
		subtitleStyle.Render("Every change reruns the simulation"),
	)
}

// renderParameterGroup renders one group of sliders under its heading.
func renderParameterGroup(name string, lines []string) string {
	headingStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorSecondary)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headingStyle.Render(name),
		strings.Join(lines, "\n"),
	)
}

// renderParameterHelp renders keyboard shortcuts.
func renderParameterHelp() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted)

	return helpStyle.Render("↑/↓ navigate • ←/→ adjust • Shift+←/→ coarse • Enter type a value • Tab next group • d defaults • ESC back")
}
