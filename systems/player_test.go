package systems

import (
	"testing"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestHorizontalMovementEases(t *testing.T) {
	e := newTestECS()
	addFloor(e)
	player := spawnPlayer(t, e, 100, floorTop+16)
	physics := components.Physics.Get(player)

	tick(e, 1)
	assert.Greater(t, physics.Velocity.X, 0.0)
	assert.Less(t, physics.Velocity.X, 160.0)

	ticks(e, 10, 1)
	assert.InDelta(t, 160, physics.Velocity.X, 1e-9)

	ticks(e, 10, 0)
	assert.InDelta(t, 0, physics.Velocity.X, 1e-9)
}

func TestAirControlIsReduced(t *testing.T) {
	e := newTestECS()
	player := spawnPlayer(t, e, 100, 800)

	ticks(e, 10, 1)
	assert.InDelta(t, 80, components.Physics.Get(player).Velocity.X, 1e-9)
}

func TestFacingFollowsInput(t *testing.T) {
	e := newTestECS()
	addFloor(e)
	player := spawnPlayer(t, e, 100, floorTop+16)
	data := components.Player.Get(player)

	tick(e, -1)
	assert.Equal(t, cfg.DirectionLeft, data.LastDirX)
	assert.True(t, components.Sprite.Get(player).FlipX)

	tick(e, 0)
	assert.Equal(t, cfg.DirectionLeft, data.LastDirX, "facing holds without input")

	tick(e, 0.5)
	assert.Equal(t, cfg.DirectionRight, data.LastDirX)
	assert.False(t, components.Sprite.Get(player).FlipX)
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	e := newTestECS()
	addFloor(e)
	grounded := spawnPlayer(t, e, 100, floorTop+16)

	tick(e, 0, down(cfg.ActionJump))
	assert.Greater(t, components.Physics.Get(grounded).Velocity.Y, 200.0)

	e2 := newTestECS()
	airborne := spawnPlayer(t, e2, 100, 600)
	tick(e2, 0, down(cfg.ActionJump))
	assert.Less(t, components.Physics.Get(airborne).Velocity.Y, 0.0)
}

func TestVerticalSpeedClamp(t *testing.T) {
	e := newTestECS()
	player := spawnPlayer(t, e, 100, 800)
	physics := components.Physics.Get(player)
	physics.Velocity.Y = -2000

	tick(e, 0)

	// Clamped by the controller, then one tick of gravity.
	gravityStep := -cfg.Physics.Gravity * physics.GravityScale * cfg.Physics.TickDelta
	assert.InDelta(t, -384-gravityStep, physics.Velocity.Y, 1e-6)
}

func TestSwitchShape(t *testing.T) {
	e := newTestECS()
	square := testShape("Square", cfg.FlightStraight)
	circle := testShape("Circle", cfg.FlightAngleDown45)
	circle.Sprite = "circle"
	circle.GravityScale = 2
	player := spawnPlayer(t, e, 100, 600, square, circle)
	data := components.Player.Get(player)

	var changes []events.ShapeChanged
	events.ShapeChangedEvent.Subscribe(e.World, func(w donburi.World, ev events.ShapeChanged) {
		changes = append(changes, ev)
	})

	tick(e, 0, down(cfg.ActionShape2), up(cfg.ActionShape2))
	assert.Equal(t, 1, data.ShapeIndex)
	assert.Equal(t, circle, data.Current())
	assert.Equal(t, 2.0, components.Physics.Get(player).GravityScale)
	assert.Equal(t, "circle", components.Sprite.Get(player).Key)

	// Unbound and current shapes are ignored.
	tick(e, 0, down(cfg.ActionShape5), up(cfg.ActionShape5))
	tick(e, 0, down(cfg.ActionShape2), up(cfg.ActionShape2))
	assert.Equal(t, 1, data.ShapeIndex)

	require.Len(t, changes, 1)
	assert.Equal(t, events.ShapeChanged{From: "Square", To: "Circle"}, changes[0])
}

func TestSwitchShapeMidFlightKeepsFlying(t *testing.T) {
	e := newTestECS()
	player := spawnPlayer(t, e, 100, 600,
		testShape("Square", cfg.FlightStraight),
		testShape("Triangle", cfg.FlightParabola))
	data := components.Player.Get(player)

	tick(e, 0, down(cfg.ActionFlight))
	require.True(t, data.IsFlying)

	tick(e, 0, down(cfg.ActionShape2), up(cfg.ActionShape2))
	assert.True(t, data.IsFlying)
	assert.Equal(t, 3.0, components.Physics.Get(player).GravityScale, "the new shape's gravity applies")
}

func TestDisabledPlayerIgnoresInput(t *testing.T) {
	e := newTestECS()
	addFloor(e)
	player := spawnPlayer(t, e, 100, floorTop+16)
	components.Player.Get(player).Enabled = false

	tick(e, 1, down(cfg.ActionJump), down(cfg.ActionFire))

	assert.Zero(t, components.Physics.Get(player).Velocity.X)
	assert.Zero(t, projectileCount(e.World))
}
