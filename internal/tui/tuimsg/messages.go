// Package tuimsg holds the message types scenes emit toward the root
// model. Scenes cannot import the tui package itself without creating an
// import cycle, so the shared messages live here.
package tuimsg

import (
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/compare"
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/domain"
)

// ConfigLoadedMsg signals the scenario file has been loaded.
type ConfigLoadedMsg struct {
	Config *domain.Configuration
}

// ScenarioSelectedMsg signals the user picked a named scenario as the
// working input.
type ScenarioSelectedMsg struct {
	ScenarioName string
}

// InputChangedMsg carries the edited working input. The root model
// responds by re-running the simulation.
type InputChangedMsg struct {
	Input *domain.SimulationInput
}

// CalculationCompleteMsg signals a simulation run has finished.
type CalculationCompleteMsg struct {
	Result *domain.CalculationResult
	Err    error
}

// SweepRequestedMsg asks the root model to run a sensitivity sweep.
type SweepRequestedMsg struct {
	Field       domain.Field
	Min, Max    float64
	SampleCount int
}

// SweepCompleteMsg signals a sensitivity sweep has finished.
type SweepCompleteMsg struct {
	Sweep *domain.SweepResult
	Err   error
}

// CompareRequestedMsg asks the root model to compare the checked
// scenarios against the base.
type CompareRequestedMsg struct {
	BaseScenarioName string
	Alternatives     []string
}

// CompareCompleteMsg signals a scenario comparison has finished.
type CompareCompleteMsg struct {
	Set *compare.ComparisonSet
	Err error
}

// ErrorMsg surfaces an error to the user.
type ErrorMsg struct {
	Err error
}
