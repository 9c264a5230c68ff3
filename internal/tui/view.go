package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/components"
)

// View renders the current state of the application.
func (m Model) View() string {
	if m.loading {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneParameters:
		content = m.parametersModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneSensitivity:
		content = m.sensitivityModel.View()
	case SceneCompare:
		content = m.compareModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container.
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	// Title (2) + status (1) + padding (1)
	contentHeight := m.height - 4

	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb.
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("Buy vs Rent Calculator")
	breadcrumb := SubtitleStyle.Render(m.currentScene.String())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		breadcrumb,
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts.
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("h", "home"),
		formatShortcut("p", "parameters"),
		formatShortcut("r", "results"),
		formatShortcut("s", "sensitivity"),
		formatShortcut("c", "compare"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}

	statusText := strings.Join(shortcuts, " • ")

	// Right-align the scenario count when a file is loaded
	if m.config != nil && len(m.config.Scenarios) > 0 {
		configNote := SubtitleStyle.Render(
			fmt.Sprintf("%d scenarios loaded", len(m.config.Scenarios)))
		width := m.width - lipgloss.Width(statusText) - lipgloss.Width(configNote) - 4
		statusText = statusText + strings.Repeat(" ", max(0, width)) + configNote
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description.
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderLoading renders a loading spinner and message.
func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}

	content := BorderStyle.Render(
		components.NewSpinner().WithMessage(message).Render(),
	)

	return m.renderApp(content)
}

// renderError renders an error message.
func (m Model) renderError() string {
	errorMsg := "An error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", errorMsg),
	)

	return m.renderApp(content)
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	helpText := `
Buy vs Rent Calculator

KEYBOARD SHORTCUTS:
  h        Home dashboard
  p        Parameters: adjust inputs with live recalculation
  r        Results: verdict, cost breakdowns and net worth chart
  s        Sensitivity: sweep one input and find the tipping point
  c        Compare: run scenarios from the loaded file against each other
  ?        Show this help
  ESC      Go back
  q/Ctrl+C Quit

PARAMETERS:
  ↑/↓ pick a parameter, ←/→ nudge it, Shift+←/→ for coarse steps
  Enter or a digit starts typed entry ($450,000, 450K and 6.25 all parse)
  Tab jumps between groups, d restores the defaults

SENSITIVITY:
  Enter sweeps the highlighted input across its whole range
  ←/→ walk the curve sample by sample, n starts a new sweep

COMPARE:
  Space checks scenarios, Enter compares them against the first checked
`

	return BorderStyle.Render(helpText)
}
