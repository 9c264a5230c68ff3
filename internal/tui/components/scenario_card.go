package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/output"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/tuistyles"
)

// ScenarioCard displays a compact overview of one named scenario.
type ScenarioCard struct {
	Name       string
	Highlights []string // key inputs and metrics
	Verdict    string   // "buy", "rent" or "" when not yet simulated
	IsSelected bool
	IsChecked  bool // marked for comparison
	Width      int
}

// NewScenarioCard creates a new scenario card.
func NewScenarioCard(name string) *ScenarioCard {
	return &ScenarioCard{
		Name:       name,
		Highlights: []string{},
		Width:      50,
	}
}

// NewScenarioCardFromInput builds a card with the scenario's headline
// inputs as highlights.
func NewScenarioCardFromInput(scenario *domain.NamedScenario) *ScenarioCard {
	card := NewScenarioCard(scenario.Name)
	in := &scenario.Input
	card.AddHighlight(fmt.Sprintf("Home %s at %s%%",
		output.FormatCurrencyWhole(in.HomePrice), in.MortgageRate.String()))
	card.AddHighlight(fmt.Sprintf("Rent %s/mo", output.FormatCurrencyWhole(in.MonthlyRent)))
	card.AddHighlight(fmt.Sprintf("%d year horizon", in.TimeHorizonYears))
	return card
}

// AddHighlight adds a key input or metric line.
func (s *ScenarioCard) AddHighlight(highlight string) *ScenarioCard {
	s.Highlights = append(s.Highlights, highlight)
	return s
}

// WithVerdict attaches a simulated verdict badge.
func (s *ScenarioCard) WithVerdict(verdict string) *ScenarioCard {
	s.Verdict = verdict
	return s
}

// SetSelected marks the card as the cursor position.
func (s *ScenarioCard) SetSelected(selected bool) *ScenarioCard {
	s.IsSelected = selected
	return s
}

// SetChecked marks the card for comparison.
func (s *ScenarioCard) SetChecked(checked bool) *ScenarioCard {
	s.IsChecked = checked
	return s
}

// WithWidth sets the card width.
func (s *ScenarioCard) WithWidth(width int) *ScenarioCard {
	s.Width = width
	return s
}

// renderVerdictBadge renders the verdict as a colored badge.
func (s *ScenarioCard) renderVerdictBadge() string {
	switch s.Verdict {
	case "buy":
		return lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorSuccess).Render("[BUY]")
	case "rent":
		return lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorSecondary).Render("[RENT]")
	case "even":
		return lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorAccent).Render("[EVEN]")
	default:
		return ""
	}
}

// Render returns the styled scenario card.
func (s *ScenarioCard) Render() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary)
	title := titleStyle.Render(s.Name)
	if badge := s.renderVerdictBadge(); badge != "" {
		title += " " + badge
	}
	content.WriteString(title)
	content.WriteString("\n")

	if len(s.Highlights) > 0 {
		content.WriteString("\n")
		highlightStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted)
		for _, h := range s.Highlights {
			content.WriteString(highlightStyle.Render("• " + h))
			content.WriteString("\n")
		}
	}

	borderColor := tuistyles.ColorBorder
	if s.IsSelected {
		borderColor = tuistyles.ColorPrimary
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Width(s.Width)

	return cardStyle.Render(strings.TrimRight(content.String(), "\n"))
}

// RenderCompact returns a compact single-line version.
func (s *ScenarioCard) RenderCompact() string {
	var parts []string

	if s.IsChecked {
		parts = append(parts, lipgloss.NewStyle().Foreground(tuistyles.ColorAccent).Render("[x]"))
	} else {
		parts = append(parts, lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render("[ ]"))
	}

	nameStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary)
	parts = append(parts, nameStyle.Render(s.Name))

	if badge := s.renderVerdictBadge(); badge != "" {
		parts = append(parts, badge)
	}

	if len(s.Highlights) > 0 {
		highlightStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted)
		parts = append(parts, highlightStyle.Render("• "+s.Highlights[0]))
	}

	return strings.Join(parts, " ")
}

// ScenarioList renders a vertical list of scenario cards.
func ScenarioList(cards []*ScenarioCard) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No scenarios available")
	}

	rendered := make([]string, len(cards))
	for i, card := range cards {
		rendered[i] = card.Render()
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// ScenarioListCompact renders a compact selection list with a cursor.
func ScenarioListCompact(cards []*ScenarioCard, selectedIndex int) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No scenarios available")
	}

	rendered := make([]string, len(cards))
	for i, card := range cards {
		prefix := "  "
		style := tuistyles.UnselectedItemStyle

		if i == selectedIndex {
			prefix = "▸ "
			style = tuistyles.SelectedItemStyle
		}

		rendered[i] = style.Render(fmt.Sprintf("%s%s", prefix, card.RenderCompact()))
	}

	return strings.Join(rendered, "\n")
}
