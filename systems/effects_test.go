package systems

import (
	"testing"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestJumpStretchSettles(t *testing.T) {
	e := newTestECS()
	addFloor(e)
	player := spawnPlayer(t, e, 100, floorTop+16)

	tick(e, 0, down(cfg.ActionJump))
	require.True(t, components.SquashStretch.Get(player).Active)
	sx, sy := drawnScale(player)
	assert.Less(t, sx, 1.0)
	assert.Greater(t, sy, 1.0)

	ticks(e, 30, 0)
	assert.False(t, components.SquashStretch.Get(player).Active)
	sx, sy = drawnScale(player)
	assert.Equal(t, 1.0, sx)
	assert.Equal(t, 1.0, sy)
}

func TestShapeSwitchFlashes(t *testing.T) {
	e := newTestECS()
	player := spawnPlayer(t, e, 100, 600,
		testShape("Square", cfg.FlightStraight),
		testShape("Circle", cfg.FlightParabola))

	tick(e, 0, down(cfg.ActionShape2), up(cfg.ActionShape2))
	assert.True(t, flashing(player))

	ticks(e, cfg.Effects.ShapeFlashTicks-1, 0)
	assert.False(t, flashing(player))
	assert.Zero(t, components.Flash.Get(player).Duration)
}

func TestTriggerFlashExtends(t *testing.T) {
	e := newTestECS()
	player := spawnPlayer(t, e, 100, 600)

	TriggerFlash(player, 3)
	TriggerFlash(player, 10)
	TriggerFlash(player, 2)
	assert.Equal(t, 10, components.Flash.Get(player).Duration)

	enemy := spawnEnemy(e, 300, 300, 20, 20)
	TriggerFlash(enemy, 5)
	assert.False(t, flashing(enemy), "enemies carry no flash")
	assert.Equal(t, 1, countFlashing(e.World))
}

func countFlashing(w donburi.World) int {
	n := 0
	components.Flash.Each(w, func(e *donburi.Entry) {
		if components.Flash.Get(e).Duration > 0 {
			n++
		}
	})
	return n
}
