package systems

import (
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity and velocity for every simulated body.
// Bodies that collide with ground are moved one axis at a time and stop flush
// against it; all others move freely and report contacts separately.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).Delta
	if dt <= 0 {
		return
	}

	for e := range components.Physics.Iter(ecs.World) {
		physics := components.Physics.Get(e)
		if !physics.Simulated || !e.HasComponent(components.Object) {
			continue
		}
		obj := components.Object.Get(e).Object
		if obj == nil {
			continue
		}

		physics.PrevX, physics.PrevY = obj.X, obj.Y
		if !physics.ConstantVelocity {
			physics.Velocity.Y += cfg.Physics.Gravity * physics.GravityScale * dt
		}

		dx := physics.Velocity.X * dt
		dy := physics.Velocity.Y * dt
		if physics.CollideWithGround {
			depenetrate(obj)
			moveAndCollide(obj, physics, dx, dy)
		} else {
			obj.X += dx
			obj.Y += dy
		}
		obj.Update()
	}
}

func moveAndCollide(obj *resolv.Object, physics *components.PhysicsData, dx, dy float64) {
	physics.OnGround = false

	if dx != 0 && sweepX(obj, dx) {
		physics.Velocity.X = 0
	}
	if dy != 0 && sweepY(obj, dy) {
		if dy < 0 {
			physics.OnGround = true
		}
		physics.Velocity.Y = 0
	}
}

// sweepX moves obj horizontally by dx, stopping flush against ground.
func sweepX(obj *resolv.Object, dx float64) (blocked bool) {
	target := obj.X + dx
	for _, o := range objectsAt(obj, [][2]float64{{0, 0}, {dx, 0}}, tags.ResolvGround) {
		if !overlapsY(obj, o) {
			continue
		}
		if dx > 0 && o.X >= obj.X+obj.W-contactEpsilon && o.X-obj.W < target {
			target = o.X - obj.W
			blocked = true
		}
		if dx < 0 && o.X+o.W <= obj.X+contactEpsilon && o.X+o.W > target {
			target = o.X + o.W
			blocked = true
		}
	}
	obj.X = target
	return blocked
}

// sweepY moves obj vertically by dy, stopping flush against ground.
func sweepY(obj *resolv.Object, dy float64) (blocked bool) {
	target := obj.Y + dy
	for _, o := range objectsAt(obj, [][2]float64{{0, 0}, {0, dy}}, tags.ResolvGround) {
		if !overlapsX(obj, o) {
			continue
		}
		if dy > 0 && o.Y >= obj.Y+obj.H-contactEpsilon && o.Y-obj.H < target {
			target = o.Y - obj.H
			blocked = true
		}
		if dy < 0 && o.Y+o.H <= obj.Y+contactEpsilon && o.Y+o.H > target {
			target = o.Y + o.H
			blocked = true
		}
	}
	obj.Y = target
	return blocked
}

// depenetrate lifts obj out of ground it was resized into.
func depenetrate(obj *resolv.Object) {
	for _, o := range objectsAt(obj, [][2]float64{{0, 0}}, tags.ResolvGround) {
		if !overlapsX(obj, o) || !overlapsY(obj, o) {
			continue
		}
		if top := o.Y + o.H; top-obj.Y <= obj.H/2 {
			obj.Y = top
		}
	}
}

func overlapsX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W-contactEpsilon && b.X < a.X+a.W-contactEpsilon
}

func overlapsY(a, b *resolv.Object) bool {
	return a.Y < b.Y+b.H-contactEpsilon && b.Y < a.Y+a.H-contactEpsilon
}
