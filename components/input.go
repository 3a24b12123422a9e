package components

import (
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/yohamta/donburi"
)

// Edge is the transition carried by an input event.
type Edge int

const (
	EdgeDown Edge = iota
	EdgeUp
)

func (e Edge) String() string {
	if e == EdgeUp {
		return "up"
	}
	return "down"
}

// InputEvent is one discrete button transition delivered by the host.
type InputEvent struct {
	Action cfg.ActionID
	Edge   Edge
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// InputData holds the event queue the host fills between ticks and the
// per-action state derived from it. The queue is drained exactly once per tick.
type InputData struct {
	Queue []InputEvent
	// Analog horizontal axis in [-1, 1] supplied by the host.
	Axis float64

	Held         [cfg.ActionCount]bool
	JustPressed  [cfg.ActionCount]bool
	JustReleased [cfg.ActionCount]bool

	// Horizontal is Axis combined with the held move buttons, clamped to [-1, 1].
	Horizontal float64
	// AnyDown is set when at least one down edge was consumed this tick.
	AnyDown bool
}

var Input = donburi.NewComponentType[InputData]()
