package systems

import (
	gomath "math"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/events"
	"github.com/akshatshahh/team-30/shared/gamemath"
	"github.com/akshatshahh/team-30/systems/factory"
	"github.com/akshatshahh/team-30/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs the player controller for one tick.
// Must run AFTER UpdateInput and BEFORE UpdatePhysics.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dt := GetOrCreateClock(ecs).Delta

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updatePlayer(ecs, e, input, dt)
	})
}

func updatePlayer(ecs *ecs.ECS, e *donburi.Entry, input *components.InputData, dt float64) {
	player := components.Player.Get(e)
	if !player.Enabled || player.Current() == nil {
		return
	}

	for i := range player.Shapes {
		if GetAction(input, cfg.ShapeAction(i)).JustPressed {
			SwitchShape(ecs, e, i)
		}
	}

	h := input.Horizontal
	if gomath.Abs(h) > cfg.Player.FacingThreshold {
		player.LastDirX = cfg.DirectionRight
		if h < 0 {
			player.LastDirX = cfg.DirectionLeft
		}
		components.Sprite.Get(e).FlipX = player.LastDirX < 0
	}

	shape := player.Current()
	physics := components.Physics.Get(e)
	grounded := IsGrounded(e)

	// Constant-velocity flights own horizontal velocity.
	locked := player.IsFlying && shape.FlightPath.ConstantVelocity()
	if !locked {
		speed := shape.MoveSpeed
		if !grounded {
			speed *= shape.AirControlMultiplier
		}
		physics.Velocity.X = gamemath.MoveTowards(physics.Velocity.X, h*speed, cfg.Physics.MoveEaseRate*dt)
	}
	physics.Velocity.Y = gamemath.ClampSpeed(physics.Velocity.Y, shape.MaxSpeed)

	if grounded && GetAction(input, cfg.ActionJump).JustPressed {
		physics.Velocity.Y = shape.JumpVelocity
		TriggerSquashStretch(e, cfg.Effects.JumpStretchX, cfg.Effects.JumpStretchY)
	}

	flight := GetAction(input, cfg.ActionFlight)
	if flight.JustPressed {
		StartFlight(ecs, e)
	}
	if player.IsFlying && flight.Pressed {
		SustainFlight(e, dt)
	}
	if flight.JustReleased {
		EndFlight(e)
	}

	if GetAction(input, cfg.ActionFire).JustPressed {
		FireProjectile(ecs, e)
	}
}

// SwitchShape makes shape idx current. An active flight is not cancelled.
func SwitchShape(ecs *ecs.ECS, e *donburi.Entry, idx int) {
	player := components.Player.Get(e)
	from := player.Current()
	if !factory.ApplyShape(e, idx) {
		return
	}
	to := player.Current()
	if player.IsFlying {
		components.Physics.Get(e).ConstantVelocity = to.FlightPath.ConstantVelocity()
	}
	if from != to {
		TriggerSquashStretch(e, cfg.Effects.ShapeSquashX, cfg.Effects.ShapeSquashY)
		TriggerFlash(e, cfg.Effects.ShapeFlashTicks)
		events.ShapeChangedEvent.Publish(ecs.World, events.ShapeChanged{From: from.Name, To: to.Name})
	}
}
