package tui

import (
	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/tuimsg"
)

// Scene identifies a screen in the TUI.
type Scene int

const (
	SceneHome Scene = iota
	SceneParameters
	SceneResults
	SceneSensitivity
	SceneCompare
	SceneHelp
)

// NavigateMsg switches to a different scene.
type NavigateMsg struct {
	Scene Scene
}

// Messages exchanged with scenes live in tuimsg so scenes can emit them
// without importing this package. Aliasing them here keeps the Update
// switch readable and guarantees both packages switch on the same types.
type (
	ConfigLoadedMsg        = tuimsg.ConfigLoadedMsg
	ScenarioSelectedMsg    = tuimsg.ScenarioSelectedMsg
	InputChangedMsg        = tuimsg.InputChangedMsg
	CalculationCompleteMsg = tuimsg.CalculationCompleteMsg
	SweepRequestedMsg      = tuimsg.SweepRequestedMsg
	SweepCompleteMsg       = tuimsg.SweepCompleteMsg
	CompareRequestedMsg    = tuimsg.CompareRequestedMsg
	CompareCompleteMsg     = tuimsg.CompareCompleteMsg
	ErrorMsg               = tuimsg.ErrorMsg
)
