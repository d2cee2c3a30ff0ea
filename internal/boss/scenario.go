package boss

import "github.com/vovakirdan/paddle-rush/internal/core"

// ScenarioFlag selects the effects a cinematic is showing.
type ScenarioFlag uint8

const (
	ScenarioWarning   ScenarioFlag = 1 << iota // flashing warning bars
	ScenarioBallEnter                          // shrinking ring around inert balls
	ScenarioSplit                              // survivor shake/rotate/exit
)

// Scenario is a timed cinematic. Its timer restarts on every phase entry
// and the owning phase leaves once Timer reaches Duration.
type Scenario struct {
	Flags    ScenarioFlag
	Base     core.Vec2 // reference position, e.g. where the survivor stood
	Warnings [2]core.Box
	Timer    float64
	Duration float64
}

// Has reports whether all bits of f are set.
func (s Scenario) Has(f ScenarioFlag) bool { return s.Flags&f == f }

// Progress returns Timer/Duration clamped to [0, 1].
func (s Scenario) Progress() float64 {
	if s.Duration <= 0 {
		return 1
	}
	return core.ClampF(s.Timer/s.Duration, 0, 1)
}

// Done reports whether the scenario has run its full duration.
func (s Scenario) Done() bool { return s.Timer >= s.Duration }

// ClearWarnings removes every warning bar.
func (s *Scenario) ClearWarnings() { s.Warnings = [2]core.Box{} }
