package game

import (
	"github.com/akshatshahh/team-30/components"
	"github.com/akshatshahh/team-30/events"
	"github.com/akshatshahh/team-30/storage"
	"github.com/akshatshahh/team-30/systems"
	"github.com/akshatshahh/team-30/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RunTracker listens to gameplay events and keeps the statistics of a run.
type RunTracker struct {
	ecs   *ecs.ECS
	level string

	outcome storage.Outcome
	reason  string
	kills   int
	shots   int
	flights int
	shapes  int
}

// NewRunTracker subscribes a tracker to e's events.
func NewRunTracker(e *ecs.ECS, level string) *RunTracker {
	t := &RunTracker{ecs: e, level: level, outcome: storage.OutcomeAborted}

	events.GameOverEvent.Subscribe(e.World, func(w donburi.World, ev events.GameOver) {
		if t.outcome == storage.OutcomeAborted {
			t.outcome = storage.OutcomeGameOver
			t.reason = ev.Reason
		}
	})
	events.WinEvent.Subscribe(e.World, func(w donburi.World, ev events.Win) {
		if t.outcome == storage.OutcomeAborted {
			t.outcome = storage.OutcomeWin
		}
	})
	events.EnemyDestroyedEvent.Subscribe(e.World, func(w donburi.World, ev events.EnemyDestroyed) {
		t.kills++
	})
	events.ProjectileFiredEvent.Subscribe(e.World, func(w donburi.World, ev events.ProjectileFired) {
		t.shots++
	})
	events.FlightStartedEvent.Subscribe(e.World, func(w donburi.World, ev events.FlightStarted) {
		t.flights++
	})
	events.ShapeChangedEvent.Subscribe(e.World, func(w donburi.World, ev events.ShapeChanged) {
		t.shapes++
	})
	return t
}

// Ended reports whether a win or game over has been delivered.
func (t *RunTracker) Ended() bool {
	return t.outcome != storage.OutcomeAborted
}

// Record returns the run so far. A run still in progress is reported as aborted.
func (t *RunTracker) Record() storage.RunRecord {
	clock := systems.GetOrCreateClock(t.ecs)
	r := storage.RunRecord{
		Level:    t.level,
		Outcome:  t.outcome,
		Reason:   t.reason,
		Duration: clock.Elapsed,
		Ticks:    clock.Tick,
		Kills:    t.kills,
		Shots:    t.shots,
		Flights:  t.flights,
	}
	if entry, ok := tags.Player.First(t.ecs.World); ok {
		if shape := components.Player.Get(entry).Current(); shape != nil {
			r.Shape = shape.Name
		}
	}
	return r
}

// ShapeChanges is the number of shape switches during the run.
func (t *RunTracker) ShapeChanges() int {
	return t.shapes
}
