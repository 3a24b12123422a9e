package systems

import (
	"testing"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/events"
	"github.com/akshatshahh/team-30/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestFinishZoneWinsOnce(t *testing.T) {
	e := newTestECS()
	addFloor(e)
	zone := factory.CreateFinishZone(e, 150, floorTop, 50, 100)
	spawnPlayer(t, e, 100, floorTop+16)

	var wins int
	events.WinEvent.Subscribe(e.World, func(w donburi.World, ev events.Win) {
		wins++
	})

	for i := 0; i < 120 && !HasWon(e); i++ {
		tick(e, 1)
	}
	require.True(t, HasWon(e))
	assert.True(t, components.FinishZone.Get(zone).Used)
	assert.False(t, components.Body.Get(zone).Enabled)
	assert.Nil(t, objOf(zone).Space)

	// Walking back and forth cannot win again.
	ticks(e, 30, -1)
	ticks(e, 30, 1)
	assert.Equal(t, 1, wins)
	assert.False(t, IsGameOver(e))
}

func TestLoseZoneEndsRun(t *testing.T) {
	e := newTestECS()
	factory.CreateLoseZone(e, 0, 0, 500, 50, "Splash!")
	player := spawnPlayer(t, e, 100, 200)

	for i := 0; i < 120 && !IsGameOver(e); i++ {
		tick(e, 0)
	}
	require.True(t, IsGameOver(e))

	entry, _ := components.GameOver.First(e.World)
	assert.Equal(t, "Splash!", components.GameOver.Get(entry).Reason)
	assert.True(t, components.Sprite.Get(player).Hidden)
	assert.False(t, components.Physics.Get(player).Simulated)
	assert.True(t, components.Player.Get(player).Enabled, "the controller stays enabled")
}

func TestLoseZoneDefaultReason(t *testing.T) {
	e := newTestECS()
	zone := factory.CreateLoseZone(e, 0, 0, 500, 50, "")
	assert.Equal(t, cfg.LoseZone.DefaultReason, components.LoseZone.Get(zone).Reason)
}
