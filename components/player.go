package components

import (
	"github.com/akshatshahh/team-30/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// GroundCheck is the sensing circle under the player's feet.
type GroundCheck struct {
	Offset math.Vec2 // from the pivot, before shape scale
	Radius float64
	Mask   []string // resolv tags counted as ground
}

// ProjectileTemplate describes the body spawned when the player fires.
type ProjectileTemplate struct {
	Width           float64
	Height          float64
	DestroyOnGround bool
}

type PlayerData struct {
	Shapes     []*config.ShapeConfig
	ShapeIndex int

	IsFlying            bool
	SustainTimer        float64
	LastDirX            float64
	GravityBeforeFlight float64

	// Enabled is cleared when the player is killed; a disabled controller
	// ignores input and contacts.
	Enabled bool

	GroundCheck GroundCheck

	// Muzzle is an offset from the pivot, mirrored with facing.
	// nil spawns projectiles MuzzleDistance ahead of the pivot.
	Muzzle *math.Vec2

	// nil disables firing.
	Projectile *ProjectileTemplate
}

var Player = donburi.NewComponentType[PlayerData]()

// Current returns the active shape profile, or nil when none are configured.
func (p *PlayerData) Current() *config.ShapeConfig {
	if len(p.Shapes) == 0 {
		return nil
	}
	i := p.ShapeIndex
	if i < 0 {
		i = 0
	}
	if i >= len(p.Shapes) {
		i = len(p.Shapes) - 1
	}
	return p.Shapes[i]
}
