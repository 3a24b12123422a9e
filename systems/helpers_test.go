package systems

import (
	"testing"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/shared/leveldata"
	"github.com/akshatshahh/team-30/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Top of the floor every fixture stands on.
const floorTop = 32.0

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateOverlays(e)
	factory.CreateSpace(e, 2048, 1024, cfg.Physics.CellSize, cfg.Physics.CellSize)
	return e
}

func addFloor(e *ecs.ECS) *donburi.Entry {
	return factory.CreateGround(e, 0, 0, 2048, floorTop)
}

func testShape(name string, path cfg.FlightPath) *cfg.ShapeConfig {
	return &cfg.ShapeConfig{
		Name:                            name,
		Sprite:                          "square",
		Scale:                           math.Vec2{X: 1, Y: 1},
		ColliderSize:                    math.Vec2{X: 32, Y: 32},
		MoveSpeed:                       160,
		AirControlMultiplier:            0.5,
		JumpVelocity:                    256,
		GravityScale:                    3,
		MaxSpeed:                        384,
		FlightPath:                      path,
		SustainSeconds:                  0.5,
		StraightSpeed:                   300,
		LaunchSpeed:                     300,
		LaunchAngleDegrees:              45,
		ZeroGravityDuringStraight:       true,
		BulletSprite:                    "square_bullet",
		BulletStraightSpeed:             100,
		BulletLaunchSpeed:               100,
		BulletLifetime:                  3,
		BulletZeroGravityDuringStraight: true,
	}
}

// spawnPlayer places the player's pivot at x, y. With the test shapes a
// pivot at floorTop+16 stands on the floor.
func spawnPlayer(t *testing.T, e *ecs.ECS, x, y float64, shapes ...*cfg.ShapeConfig) *donburi.Entry {
	t.Helper()
	if len(shapes) == 0 {
		shapes = []*cfg.ShapeConfig{testShape("Square", cfg.FlightStraight)}
	}
	player, err := factory.CreatePlayer(e, x, y, factory.DefaultPlayerOptions(shapes))
	require.NoError(t, err)
	return player
}

func spawnEnemy(e *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return factory.CreateEnemy(e, leveldata.EnemySpawn{Rect: leveldata.Rect{X: x, Y: y, W: w, H: h}})
}

func down(a cfg.ActionID) components.InputEvent {
	return components.InputEvent{Action: a, Edge: components.EdgeDown}
}

func up(a cfg.ActionID) components.InputEvent {
	return components.InputEvent{Action: a, Edge: components.EdgeUp}
}

// tick runs one full simulation step in the same order the game does.
func tick(e *ecs.ECS, axis float64, evs ...components.InputEvent) {
	QueueInput(e, axis, evs...)
	UpdateInput(e)
	UpdateClock(e)
	UpdateInstructions(e)
	for _, s := range []ecs.System{
		UpdatePlayer,
		UpdatePatrols,
		UpdateProjectiles,
		UpdatePhysics,
		UpdatePlayerContacts,
		UpdateProjectileContacts,
		UpdateEnemyHits,
		UpdateEffects,
	} {
		WithGameplayChecks(s)(e)
	}
	UpdateWin(e)
	UpdateScreenShake(e)
	WithGameplayChecks(UpdateCamera)(e)
	UpdateEvents(e)
}

func objOf(e *donburi.Entry) *resolv.Object {
	return components.Object.Get(e).Object
}

func ticks(e *ecs.ECS, n int, axis float64) {
	for i := 0; i < n; i++ {
		tick(e, axis)
	}
}
