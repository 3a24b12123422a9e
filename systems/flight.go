package systems

import (
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/events"
	"github.com/akshatshahh/team-30/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartFlight begins a burst on the current shape's flight path.
func StartFlight(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	shape := player.Current()
	if shape == nil {
		return
	}
	physics := components.Physics.Get(e)

	player.IsFlying = true
	player.SustainTimer = 0

	traj := gamemath.ResolveFlight(shape.FlightPath, gamemath.PlayerFlightParams(shape), player.LastDirX, 0)
	switch {
	case traj.ZeroGravity:
		player.GravityBeforeFlight = physics.GravityScale
		physics.GravityScale = 0
	case shape.FlightPath == cfg.FlightParabola:
		physics.GravityScale = shape.GravityScale
	}
	physics.Velocity = traj.Velocity
	physics.ConstantVelocity = traj.Constant

	log.Debug("flight started", "shape", shape.Name, "path", shape.FlightPath, "dir", player.LastDirX)
	events.FlightStartedEvent.Publish(ecs.World, events.FlightStarted{
		Shape: shape.Name,
		Path:  shape.FlightPath.String(),
	})
}

// SustainFlight advances the burst timer by dt. Constant paths have their
// velocity re-asserted; the burst ends once the shape's sustain time is used up.
func SustainFlight(e *donburi.Entry, dt float64) {
	player := components.Player.Get(e)
	shape := player.Current()
	if shape == nil || !player.IsFlying {
		return
	}

	player.SustainTimer += dt
	traj := gamemath.ResolveFlight(shape.FlightPath, gamemath.PlayerFlightParams(shape), player.LastDirX, player.SustainTimer)
	if traj.Constant {
		components.Physics.Get(e).Velocity = traj.Velocity
	}
	if player.SustainTimer >= shape.SustainSeconds {
		EndFlight(e)
	}
}

// EndFlight stops the burst. Gravity is restored when the current shape
// suspends it for its path.
func EndFlight(e *donburi.Entry) {
	player := components.Player.Get(e)
	if !player.IsFlying {
		return
	}
	player.IsFlying = false
	physics := components.Physics.Get(e)
	physics.ConstantVelocity = false

	shape := player.Current()
	if shape == nil {
		return
	}
	if shape.FlightPath.ConstantVelocity() && shape.ZeroGravityDuringStraight {
		physics.GravityScale = player.GravityBeforeFlight
	}
}
