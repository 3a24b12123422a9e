package systems

import (
	"testing"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestIsGrounded(t *testing.T) {
	e := newTestECS()
	addFloor(e)

	standing := spawnPlayer(t, e, 100, floorTop+16)
	assert.True(t, IsGrounded(standing))

	airborne := spawnPlayer(t, e, 300, floorTop+200)
	assert.False(t, IsGrounded(airborne))
}

func TestIsGroundedRespectsMask(t *testing.T) {
	e := newTestECS()
	addFloor(e)

	opts := factory.DefaultPlayerOptions([]*cfg.ShapeConfig{testShape("Square", cfg.FlightStraight)})
	opts.GroundCheck.Mask = []string{"water"}
	player, err := factory.CreatePlayer(e, 100, floorTop+16, opts)
	require.NoError(t, err)

	assert.False(t, IsGrounded(player))
}

func TestIsGroundedIgnoresEnemies(t *testing.T) {
	e := newTestECS()
	spawnEnemy(e, 84, 0, 32, 32)
	player := spawnPlayer(t, e, 100, 48)

	assert.False(t, IsGrounded(player))
}

func TestIsGroundedAfterRemoval(t *testing.T) {
	e := newTestECS()
	addFloor(e)
	player := spawnPlayer(t, e, 100, floorTop+16)
	require.True(t, IsGrounded(player))

	disableBody(e, player)
	assert.False(t, IsGrounded(player), "a player outside the space senses nothing")

	DestroyEntity(e, player, 0)
	assert.False(t, IsGrounded(player))
	assert.False(t, IsGrounded(nil))
}

func TestOverlapCircleNarrowPhase(t *testing.T) {
	e := newTestECS()
	factory.CreateGround(e, 100, 0, 32, 32)
	player := spawnPlayer(t, e, 90, 56)
	body := components.Object.Get(player).Object

	// Same cells as the block's corner, but too far to touch it.
	assert.False(t, OverlapCircle(body, math.Vec2{X: 90, Y: 40}, 3, "ground"))
	assert.True(t, OverlapCircle(body, math.Vec2{X: 98, Y: 33}, 3, "ground"))
	assert.False(t, OverlapCircle(body, math.Vec2{X: 98, Y: 33}, 3, "enemy"))
}
