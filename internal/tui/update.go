package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.propagateSize()
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case ConfigLoadedMsg:
		m.config = msg.Config
		m.loading = false
		m.homeModel.SetConfig(msg.Config)
		m.compareModel.SetConfig(msg.Config)

		input := domain.DefaultInput()
		if scenario := msg.Config.DefaultScenario(); scenario != nil {
			input = scenario.Input
		}
		return m.adoptInput(&input)

	case ScenarioSelectedMsg:
		if m.config == nil {
			return m, nil
		}
		scenario := m.config.ScenarioByName(msg.ScenarioName)
		if scenario == nil {
			return m, nil
		}
		input := scenario.Input
		return m.adoptInput(&input)

	case InputChangedMsg:
		// The parameters scene already reflects the edit; adopt the
		// clone as the canonical input and recalculate.
		m.input = msg.Input
		m.homeModel.SetInput(msg.Input)
		m.sensitivityModel.SetInput(msg.Input)
		return m, m.calculateCmd(msg.Input)

	case CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.result = msg.Result
		m.homeModel.SetResult(msg.Result)
		m.resultsModel.SetResults(m.input, msg.Result)
		return m, nil

	case SweepRequestedMsg:
		if m.input == nil {
			return m, nil
		}
		return m, m.sweepCmd(msg)

	case SweepCompleteMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.sensitivityModel.SetSweep(msg.Sweep)
		return m, nil

	case CompareRequestedMsg:
		if m.config == nil {
			return m, nil
		}
		return m, m.compareCmd(msg)

	case CompareCompleteMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.compareModel.SetComparison(nil)
			return m, nil
		}
		m.compareModel.SetComparison(msg.Set)
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// adoptInput installs a new working input, pushes it into the scenes and
// kicks off a recalculation.
func (m Model) adoptInput(input *domain.SimulationInput) (tea.Model, tea.Cmd) {
	m.input = input
	m.homeModel.SetInput(input)
	m.sensitivityModel.SetInput(input)
	// The parameters scene gets its own copy so slider edits never alias
	// the canonical input.
	m.parametersModel.SetInput(input.Clone())
	m.propagateSize()
	return m, m.calculateCmd(input)
}

// propagateSize pushes the current terminal size into every scene.
func (m *Model) propagateSize() {
	contentHeight := m.height - 4
	m.homeModel.SetSize(m.width, contentHeight)
	m.parametersModel.SetSize(m.width, contentHeight)
	m.resultsModel.SetSize(m.width, contentHeight)
	m.sensitivityModel.SetSize(m.width, contentHeight)
	m.compareModel.SetSize(m.width, contentHeight)
}

// handleKeyPress processes keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While a parameter value is being typed, every key belongs to the
	// parameters scene.
	if m.currentScene == SceneParameters && m.parametersModel.IsEditing() {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateCurrentScene(msg)
	}

	// Any key dismisses the error view.
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	// Global keyboard shortcuts
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		if m.currentScene != SceneHelp {
			return m, navigateCmd(SceneHelp)
		}

	case "esc":
		if m.currentScene != SceneHome {
			target := SceneHome
			if m.previousScene != m.currentScene {
				target = m.previousScene
			}
			return m, navigateCmd(target)
		}

	case "h":
		if m.currentScene != SceneHome {
			return m, navigateCmd(SceneHome)
		}

	case "p":
		if m.currentScene != SceneParameters {
			return m, navigateCmd(SceneParameters)
		}

	case "r":
		if m.currentScene != SceneResults {
			return m, navigateCmd(SceneResults)
		}

	case "s":
		if m.currentScene != SceneSensitivity {
			return m, navigateCmd(SceneSensitivity)
		}

	case "c":
		if m.currentScene != SceneCompare {
			return m, navigateCmd(SceneCompare)
		}
	}

	// Let the current scene handle other keys
	return m.updateCurrentScene(msg)
}

// navigateCmd emits a NavigateMsg for the given scene.
func navigateCmd(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// updateCurrentScene delegates a message to the current scene's model.
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.currentScene {
	case SceneHome:
		updated, cmd := m.homeModel.Update(msg)
		m.homeModel = updated
		return m, cmd

	case SceneParameters:
		updated, cmd := m.parametersModel.Update(msg)
		m.parametersModel = updated
		return m, cmd

	case SceneResults:
		updated, cmd := m.resultsModel.Update(msg)
		m.resultsModel = updated
		return m, cmd

	case SceneSensitivity:
		updated, cmd := m.sensitivityModel.Update(msg)
		m.sensitivityModel = updated
		return m, cmd

	case SceneCompare:
		updated, cmd := m.compareModel.Update(msg)
		m.compareModel = updated
		return m, cmd
	}

	return m, nil
}
