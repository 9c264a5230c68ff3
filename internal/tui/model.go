package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/calculation"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/compare"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/config"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/scenes"
)

// Model is the root application state. It owns the working input and the
// latest result; scenes receive copies and report edits back as messages.
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Loaded scenario file, nil scenarios when running on defaults
	configPath string
	config     *domain.Configuration

	// Working state
	input  *domain.SimulationInput
	result *domain.CalculationResult

	// Engines
	engine        *calculation.Engine
	sweeper       *calculation.Sweeper
	compareEngine *compare.CompareEngine

	// Scene models
	homeModel        *scenes.HomeModel
	parametersModel  *scenes.ParametersModel
	resultsModel     *scenes.ResultsModel
	sensitivityModel *scenes.SensitivityModel
	compareModel     *scenes.CompareModel

	// Error state, cleared by the next key press
	err error

	// Loading state
	loading        bool
	loadingMessage string
}

// NewModel creates the root application model. An empty configPath
// starts the app on the built-in default input.
func NewModel(configPath string) Model {
	engine := calculation.NewEngine()

	loadingMessage := "Preparing defaults..."
	if configPath != "" {
		loadingMessage = "Loading scenario file..."
	}

	return Model{
		currentScene:     SceneHome,
		configPath:       configPath,
		engine:           engine,
		sweeper:          calculation.NewSweeper(engine),
		compareEngine:    compare.NewCompareEngine(engine),
		homeModel:        scenes.NewHomeModel(),
		parametersModel:  scenes.NewParametersModel(),
		resultsModel:     scenes.NewResultsModel(),
		sensitivityModel: scenes.NewSensitivityModel(),
		compareModel:     scenes.NewCompareModel(),
		loading:          true,
		loadingMessage:   loadingMessage,
		width:            80,
		height:           24,
	}
}

// Init loads the scenario file, or seeds an empty configuration when no
// file was given (required by the tea.Model interface).
func (m Model) Init() tea.Cmd {
	if m.configPath == "" {
		return func() tea.Msg {
			return ConfigLoadedMsg{Config: &domain.Configuration{}}
		}
	}
	return loadConfigCmd(m.configPath)
}

// loadConfigCmd loads and validates the scenario file.
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// calculateCmd runs the simulation for the given input.
func (m Model) calculateCmd(input *domain.SimulationInput) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		return CalculationCompleteMsg{Result: engine.Run(input)}
	}
}

// sweepCmd runs a sensitivity sweep branched from the working input.
func (m Model) sweepCmd(req SweepRequestedMsg) tea.Cmd {
	sweeper := m.sweeper
	input := m.input.Clone()
	return func() tea.Msg {
		sweep := sweeper.Sweep(input, req.Field, req.Min, req.Max, req.SampleCount)
		return SweepCompleteMsg{Sweep: sweep}
	}
}

// compareCmd compares the checked scenarios against the base.
func (m Model) compareCmd(req CompareRequestedMsg) tea.Cmd {
	ce := m.compareEngine
	cfg := m.config
	return func() tea.Msg {
		set, err := ce.CompareScenarios(context.Background(), cfg, req.BaseScenarioName, req.Alternatives)
		return CompareCompleteMsg{Set: set, Err: err}
	}
}

// String returns a human-readable name for a scene.
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneParameters:
		return "Parameters"
	case SceneResults:
		return "Results"
	case SceneSensitivity:
		return "Sensitivity"
	case SceneCompare:
		return "Compare"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
