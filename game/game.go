// Package game assembles a playable world from a level and a set of shapes
// and advances it one tick at a time. It has no window; scenes and the
// headless simulator both drive it.
package game

import (
	"fmt"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/shared/leveldata"
	"github.com/akshatshahh/team-30/storage"
	"github.com/akshatshahh/team-30/systems"
	"github.com/akshatshahh/team-30/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a new game.
type Options struct {
	LevelName string
	Level     *leveldata.Level
	Shapes    []*cfg.ShapeConfig

	// Player overrides the player construction options. Shapes are taken
	// from the field above when left empty.
	Player *factory.PlayerOptions
}

// InputFrame is the input delivered for one tick.
type InputFrame struct {
	Axis   float64
	Events []components.InputEvent
}

// Game is one run of one level.
type Game struct {
	ECS       *ecs.ECS
	Player    *donburi.Entry
	LevelName string

	tracker *RunTracker
}

// New builds the world and registers the systems in tick order.
func New(opts Options) (*Game, error) {
	if opts.Level == nil {
		return nil, fmt.Errorf("game: no level")
	}

	playerOpts := factory.DefaultPlayerOptions(opts.Shapes)
	if opts.Player != nil {
		playerOpts = *opts.Player
		if len(playerOpts.Shapes) == 0 {
			playerOpts.Shapes = opts.Shapes
		}
	}

	e := ecs.NewECS(donburi.NewWorld())
	AddSystems(e)

	factory.CreateOverlays(e)
	player, err := factory.CreateLevel(e, opts.LevelName, opts.Level, playerOpts)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		ECS:       e,
		Player:    player,
		LevelName: opts.LevelName,
	}
	g.tracker = NewRunTracker(e, opts.LevelName)
	return g, nil
}

// AddSystems registers the simulation systems in the order one tick runs them.
func AddSystems(e *ecs.ECS) {
	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInstructions)

	// Game systems wrapped with pause checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePatrols))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerContacts))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectileContacts))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemyHits))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	// Systems that run even when paused
	e.AddSystem(systems.UpdateWin)
	e.AddSystem(systems.UpdateScreenShake)

	// The camera holds still while paused
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	e.AddSystem(systems.UpdateEvents)
}

// Tick queues frame and advances the world by one tick.
func (g *Game) Tick(frame InputFrame) {
	systems.QueueInput(g.ECS, frame.Axis, frame.Events...)
	g.ECS.Update()
}

// Ended reports whether the run reached a win or a game over.
func (g *Game) Ended() bool {
	return g.tracker.Ended()
}

// Record summarises the run so far.
func (g *Game) Record() storage.RunRecord {
	return g.tracker.Record()
}
