package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	Velocity     math.Vec2
	GravityScale float64

	// Simulated bodies are integrated and report contacts.
	Simulated bool
	// CollideWithGround bodies are blocked by ground instead of passing through it.
	CollideWithGround bool
	// ConstantVelocity is set while a constant flight path owns the velocity;
	// gravity is not integrated.
	ConstantVelocity bool

	// Object position before this tick's integration, for swept checks.
	PrevX, PrevY float64
	OnGround     bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
