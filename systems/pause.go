package systems

import (
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the simulation clock by one tick and handles the
// pause toggle. It must run after UpdateInput and before every gameplay system.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	input := getOrCreateInput(ecs)

	// The run's terminal overlays own the pause flag once shown.
	if GetAction(input, cfg.ActionPause).JustPressed && !runEnded(ecs) {
		clock.Paused = !clock.Paused
	}

	clock.Tick++
	clock.Unscaled += cfg.Physics.TickDelta
	if clock.Paused {
		clock.Delta = 0
		return
	}
	clock.Delta = cfg.Physics.TickDelta
	clock.Elapsed += clock.Delta
}

// SetPaused pauses or resumes the simulation clock.
func SetPaused(ecs *ecs.ECS, paused bool) {
	GetOrCreateClock(ecs).Paused = paused
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if clock := GetOrCreateClock(e); clock.Paused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Clock))
		components.Clock.SetValue(ent, components.ClockData{
			Delta: cfg.Physics.TickDelta,
		})
	}

	ent, _ := components.Clock.First(ecs.World)
	return components.Clock.Get(ent)
}

func runEnded(ecs *ecs.ECS) bool {
	if entry, ok := components.GameOver.First(ecs.World); ok && components.GameOver.Get(entry).Shown {
		return true
	}
	if entry, ok := components.Win.First(ecs.World); ok && components.Win.Get(entry).Shown {
		return true
	}
	return false
}
