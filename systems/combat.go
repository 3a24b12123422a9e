package systems

import (
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerContacts reports the bodies the player started touching this
// tick and resolves each one. Must run AFTER UpdatePhysics.
func UpdatePlayerContacts(ecs *ecs.ECS) {
	for _, e := range collect(ecs.World, tags.Player) {
		if !e.Valid() || !components.Player.Get(e).Enabled {
			continue
		}
		for _, other := range beginContacts(e) {
			// A contact earlier in this tick may have killed the player.
			if !components.Player.Get(e).Enabled {
				break
			}
			if !other.Valid() {
				continue
			}
			switch components.Body.Get(other).Class {
			case tags.ClassGround:
				EndFlight(e)
			case tags.ClassEnemy:
				HandleEnemyHit(ecs, e, other)
			case tags.ClassFinishZone:
				EnterFinishZone(ecs, other, e)
			case tags.ClassLoseZone:
				EnterLoseZone(ecs, other, e)
			}
		}
	}
}

// beginContacts refreshes e's touching set and returns the bodies that were
// not touching it last tick.
func beginContacts(e *donburi.Entry) []*donburi.Entry {
	contact := components.Contact.Get(e)
	obj := components.Object.Get(e).Object

	now := make(map[donburi.Entity]struct{})
	var entered []*donburi.Entry
	contact.Entered = contact.Entered[:0]
	for _, other := range touching(obj, cfg.Physics.ContactSkin) {
		now[other.Entity()] = struct{}{}
		if _, was := contact.Touching[other.Entity()]; !was {
			entered = append(entered, other)
			contact.Entered = append(contact.Entered, other.Entity())
		}
	}
	contact.Touching = now
	return entered
}

// HandleEnemyHit resolves a clash between the player and an enemy. A player
// flying clear of the ground destroys the enemy; otherwise the player dies.
func HandleEnemyHit(ecs *ecs.ECS, e, enemy *donburi.Entry) {
	player := components.Player.Get(e)
	if !player.Enabled {
		return
	}

	grounded := IsGrounded(e)
	airborne := !grounded && player.IsFlying
	log.Debug("enemy contact", "grounded", grounded, "flying", player.IsFlying, "airborne", airborne)

	if airborne {
		DestroyEntity(ecs, enemy, tags.ClassPlayer)
		return
	}
	KillPlayer(ecs, e, cfg.Player.EnemyHitReason)
}

// KillPlayer disables the player's collider, simulation, visual and
// controller, then shows the game over overlay. Later calls are no-ops.
func KillPlayer(ecs *ecs.ECS, e *donburi.Entry, reason string) {
	player := components.Player.Get(e)
	if !player.Enabled {
		return
	}
	log.Info("player killed", "reason", reason)

	ShowGameOver(ecs, reason)
	TriggerScreenShake(ecs, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeDuration)

	disableBody(ecs, e)
	components.Sprite.Get(e).Hidden = true
	player.Enabled = false
	player.IsFlying = false
}

// disableBody removes e from collision and stops simulating it.
func disableBody(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		removeFromSpace(ecs, components.Object.Get(e).Object)
	}
	if e.HasComponent(components.Body) {
		components.Body.Get(e).Enabled = false
	}
	if e.HasComponent(components.Physics) {
		physics := components.Physics.Get(e)
		physics.Simulated = false
		physics.ConstantVelocity = false
		physics.Velocity.X, physics.Velocity.Y = 0, 0
	}
}
