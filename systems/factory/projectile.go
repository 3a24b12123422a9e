package factory

import (
	gomath "math"

	"github.com/akshatshahh/team-30/archetypes"
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/shared/gamemath"
	"github.com/akshatshahh/team-30/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a player attack centered on x, y. Its trajectory is
// resolved once from shape's bullet parameters and facing; afterwards the
// projectile no longer depends on the player.
func CreateProjectile(ecs *ecs.ECS, x, y float64, shape *cfg.ShapeConfig, facing float64, tmpl components.ProjectileTemplate) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)

	w, h := tmpl.Width, tmpl.Height
	if w <= 0 || h <= 0 {
		w, h = cfg.Projectile.Width, cfg.Projectile.Height
	}
	obj := newBody(projectile, tags.ClassPlayerAttack, x-w/2, y-h/2, w, h)

	traj := gamemath.ResolveFlight(shape.FlightPath, gamemath.BulletFlightParams(shape), facing, 0)
	if traj.Velocity.X == 0 && traj.Velocity.Y == 0 {
		traj.Velocity = math.Vec2{X: cfg.Projectile.FallbackSpeed * facing}
		traj.Constant = false
	}

	gravity := cfg.Projectile.GravityScale
	switch {
	case traj.ZeroGravity:
		gravity = 0
	case shape.FlightPath == cfg.FlightParabola:
		gravity = shape.GravityScale
	}

	data := components.ProjectileData{
		Shape:           shape,
		Path:            shape.FlightPath,
		Facing:          facing,
		TimeLeft:        gomath.Max(cfg.Projectile.MinLifetime, shape.BulletLifetime),
		DestroyOnGround: tmpl.DestroyOnGround,
	}
	if traj.Constant {
		data.ConstantVel = traj.Velocity
		data.MaintainConstantVel = true
	}
	components.Projectile.SetValue(projectile, data)

	components.Physics.SetValue(projectile, components.PhysicsData{
		Velocity:         traj.Velocity,
		GravityScale:     gravity,
		Simulated:        true,
		ConstantVelocity: traj.Constant,
		PrevX:            obj.X,
		PrevY:            obj.Y,
	})

	key := shape.BulletSprite
	if key == "" {
		key = "bullet"
	}
	sprite := components.SpriteData{
		Key:   key,
		Color: spriteColor(key),
		Scale: math.Vec2{X: 1, Y: 1},
		FlipX: facing < 0,
	}
	if v := traj.Velocity; v.X*v.X+v.Y*v.Y > 0.001 {
		sprite.Rotation = gamemath.Heading(v)
	}
	components.Sprite.SetValue(projectile, sprite)

	addToSpace(ecs, obj)
	return projectile
}
