package systems

import (
	gomath "math"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePatrols moves patrolling enemies back and forth between their
// endpoints, pausing briefly at each one.
func UpdatePatrols(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).Delta

	for e := range components.Patrol.Iter(ecs.World) {
		patrol := components.Patrol.Get(e)
		physics := components.Physics.Get(e)
		physics.GravityScale = 0

		if patrol.Left == nil || patrol.Right == nil {
			continue
		}

		if patrol.WaitTimer > 0 {
			patrol.WaitTimer -= dt
			physics.Velocity.X, physics.Velocity.Y = 0, 0
			continue
		}

		target := *patrol.Left
		if patrol.Dir > 0 {
			target = *patrol.Right
		}
		obj := components.Object.Get(e)
		delta := target - (obj.X + obj.W/2)

		if gomath.Abs(delta) < cfg.Patrol.ArriveEpsilon {
			patrol.Dir = -patrol.Dir
			patrol.WaitTimer = patrol.WaitAtEdge
			components.Sprite.Get(e).FlipX = patrol.Dir < 0
			continue
		}
		physics.Velocity.X = gamemath.Sign(delta) * patrol.Speed
		physics.Velocity.Y = 0
	}
}
