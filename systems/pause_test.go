package systems

import (
	"testing"

	cfg "github.com/akshatshahh/team-30/config"
	"github.com/stretchr/testify/assert"
)

func TestPauseFreezesGameplay(t *testing.T) {
	e := newTestECS()
	addFloor(e)
	player := spawnPlayer(t, e, 100, floorTop+16)
	clock := GetOrCreateClock(e)

	tick(e, 0, down(cfg.ActionPause), up(cfg.ActionPause))
	assert.True(t, clock.Paused)
	assert.Zero(t, clock.Delta)

	x := objOf(player).X
	elapsed := clock.Elapsed
	unscaled := clock.Unscaled
	ticks(e, 10, 1)

	assert.Equal(t, x, objOf(player).X, "player must not move while paused")
	assert.Equal(t, elapsed, clock.Elapsed)
	assert.Greater(t, clock.Unscaled, unscaled)

	tick(e, 0, down(cfg.ActionPause), up(cfg.ActionPause))
	assert.False(t, clock.Paused)
	assert.InDelta(t, cfg.Physics.TickDelta, clock.Delta, 1e-12)
	ticks(e, 10, 1)
	assert.Greater(t, objOf(player).X, x)
}

func TestPauseToggleIgnoredAfterGameOver(t *testing.T) {
	e := newTestECS()
	ShowGameOver(e, "done")
	clock := GetOrCreateClock(e)
	assert.Equal(t, cfg.GameOver.PauseOnGameOver, clock.Paused)

	tick(e, 0, down(cfg.ActionPause), up(cfg.ActionPause))
	assert.Equal(t, cfg.GameOver.PauseOnGameOver, clock.Paused)
}
