package systems

import (
	gomath "math"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/shared/gamemath"
	"github.com/akshatshahh/team-30/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles re-asserts constant velocities, clamps speed and counts
// down lifetimes. Must run BEFORE UpdatePhysics.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).Delta

	for _, e := range collect(ecs.World, tags.Projectile) {
		projectile := components.Projectile.Get(e)
		physics := components.Physics.Get(e)

		if projectile.MaintainConstantVel {
			physics.Velocity = projectile.ConstantVel
		}
		physics.Velocity = gamemath.ClampMagnitude(physics.Velocity, cfg.Projectile.KillSpeedClamp)

		projectile.TimeLeft -= dt
		if projectile.TimeLeft <= 0 {
			DestroyEntity(ecs, e, tags.ClassNone)
		}
	}
}

// UpdateProjectileContacts checks the path each projectile travelled this
// tick. The first enemy crossed is destroyed along with the projectile; the
// first ground crossed destroys the projectile when it is set to.
// Must run AFTER UpdatePhysics.
func UpdateProjectileContacts(ecs *ecs.ECS) {
	for _, e := range collect(ecs.World, tags.Projectile) {
		if !e.Valid() {
			continue
		}
		projectile := components.Projectile.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		hit, ok := firstContact(obj, physics.PrevX, physics.PrevY, projectile.DestroyOnGround)
		if !ok {
			continue
		}
		class := components.Body.Get(hit).Class
		if class == tags.ClassEnemy {
			DestroyEntity(ecs, hit, tags.ClassPlayerAttack)
		}
		DestroyEntity(ecs, e, class)
	}
}

// firstContact walks obj from its previous position to its current one in
// steps no longer than half a cell and returns the first enemy, or ground
// when withGround is set, that the swept box touches.
func firstContact(obj *resolv.Object, prevX, prevY float64, withGround bool) (*donburi.Entry, bool) {
	dx, dy := obj.X-prevX, obj.Y-prevY
	step := float64(cfg.Physics.CellSize) / 2
	n := int(gomath.Ceil(gomath.Hypot(dx, dy) / step))
	if n < 1 {
		n = 1
	}

	from := gamemath.Rect{X: prevX, Y: prevY, W: obj.W, H: obj.H}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		to := gamemath.Rect{X: prevX + dx*t, Y: prevY + dy*t, W: obj.W, H: obj.H}
		swept := from.Union(to)

		var ground *donburi.Entry
		offset := [][2]float64{{to.X - obj.X, to.Y - obj.Y}, {from.X - obj.X, from.Y - obj.Y}}
		for _, o := range objectsAt(obj, offset, tags.ResolvEnemy, tags.ResolvGround) {
			if !swept.Overlaps(rectOf(o)) {
				continue
			}
			switch classOf(o) {
			case tags.ClassEnemy:
				e, _ := entryOf(o)
				return e, true
			case tags.ClassGround:
				if withGround && ground == nil {
					ground, _ = entryOf(o)
				}
			}
		}
		if ground != nil {
			return ground, true
		}
		from = to
	}
	return nil, false
}
