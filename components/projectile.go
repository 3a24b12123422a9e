package components

import (
	"github.com/akshatshahh/team-30/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ProjectileData is initialised once from the firing shape and never looks
// back at the player.
type ProjectileData struct {
	Shape               *config.ShapeConfig
	Path                config.FlightPath
	Facing              float64
	ConstantVel         math.Vec2
	MaintainConstantVel bool
	TimeLeft            float64
	DestroyOnGround     bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
