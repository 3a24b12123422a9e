package systems

import (
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/events"
	"github.com/akshatshahh/team-30/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// FireProjectile spawns a projectile from the player's muzzle using the
// current shape. It returns nil when the player has nothing to fire.
func FireProjectile(ecs *ecs.ECS, e *donburi.Entry) *donburi.Entry {
	player := components.Player.Get(e)
	shape := player.Current()
	if shape == nil {
		return nil
	}
	if player.Projectile == nil {
		log.Warn("fire ignored: player has no projectile template")
		return nil
	}

	pos := MuzzlePosition(e)
	projectile := factory.CreateProjectile(ecs, pos.X, pos.Y, shape, player.LastDirX, *player.Projectile)

	events.ProjectileFiredEvent.Publish(ecs.World, events.ProjectileFired{Shape: shape.Name})
	return projectile
}

// MuzzlePosition returns where the player's projectiles spawn. A configured
// muzzle is mirrored with facing.
func MuzzlePosition(e *donburi.Entry) math.Vec2 {
	player := components.Player.Get(e)
	pivot := factory.PlayerPivot(e)
	if player.Muzzle != nil {
		return math.Vec2{
			X: pivot.X + player.Muzzle.X*player.LastDirX,
			Y: pivot.Y + player.Muzzle.Y,
		}
	}
	return math.Vec2{
		X: pivot.X + cfg.Player.MuzzleDistance*player.LastDirX,
		Y: pivot.Y,
	}
}
