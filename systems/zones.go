package systems

import (
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnterFinishZone wins the level the first time the player reaches zone,
// then deactivates the zone.
func EnterFinishZone(ecs *ecs.ECS, zone, player *donburi.Entry) {
	if !zone.Valid() || !player.HasComponent(tags.Player) {
		return
	}
	finish := components.FinishZone.Get(zone)
	if finish.Used {
		return
	}
	finish.Used = true
	log.Debug("finish zone reached")

	if entry, ok := components.Win.First(ecs.World); ok {
		components.Win.Get(entry).Text = cfg.Win.Text
	}
	TriggerWin(ecs)

	disableBody(ecs, zone)
}

// EnterLoseZone ends the run with the zone's reason, hides the player and
// stops simulating it.
func EnterLoseZone(ecs *ecs.ECS, zone, player *donburi.Entry) {
	if !zone.Valid() || !player.HasComponent(tags.Player) {
		return
	}
	reason := components.LoseZone.Get(zone).Reason
	log.Debug("lose zone entered", "reason", reason)

	ShowGameOver(ecs, reason)
	components.Sprite.Get(player).Hidden = true
	components.Physics.Get(player).Simulated = false
}
