package factory

import (
	"testing"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 1024, 1024, 16, 16)
	return e
}

func shape(name string, w, h, scale float64) *cfg.ShapeConfig {
	return &cfg.ShapeConfig{
		Name:                name,
		Sprite:              "square",
		Scale:               math.Vec2{X: scale, Y: scale},
		ColliderSize:        math.Vec2{X: w, Y: h},
		GravityScale:        scale,
		FlightPath:          cfg.FlightStraight,
		SustainSeconds:      0.5,
		StraightSpeed:       300,
		LaunchSpeed:         300,
		LaunchAngleDegrees:  45,
		BulletStraightSpeed: 200,
		BulletLaunchSpeed:   200,
		BulletLifetime:      2,
	}
}

func TestCreatePlayerValidation(t *testing.T) {
	sq := shape("Square", 32, 32, 1)
	tooMany := make([]*cfg.ShapeConfig, cfg.MaxShapes+1)
	for i := range tooMany {
		tooMany[i] = sq
	}

	tests := []struct {
		name   string
		modify func(o *PlayerOptions)
		err    error
	}{
		{"no shapes", func(o *PlayerOptions) { o.Shapes = nil }, ErrNoShapes},
		{"nil shape", func(o *PlayerOptions) { o.Shapes = []*cfg.ShapeConfig{sq, nil} }, cfg.ErrInvalidShape},
		{"too many shapes", func(o *PlayerOptions) { o.Shapes = tooMany }, cfg.ErrInvalidShape},
		{"zero radius", func(o *PlayerOptions) { o.GroundCheck.Radius = 0 }, ErrInvalidGroundCheck},
		{"empty mask", func(o *PlayerOptions) { o.GroundCheck.Mask = nil }, ErrInvalidGroundCheck},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			opts := DefaultPlayerOptions([]*cfg.ShapeConfig{sq})
			tt.modify(&opts)

			player, err := CreatePlayer(e, 100, 100, opts)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, player)
			_, spawned := components.Player.First(e.World)
			assert.False(t, spawned)
		})
	}
}

func TestCreatePlayerStartsInFirstShape(t *testing.T) {
	e := newTestECS()
	first := shape("Square", 32, 32, 1)
	first.ColliderOffset = math.Vec2{X: 0, Y: 4}
	player, err := CreatePlayer(e, 100, 200, DefaultPlayerOptions([]*cfg.ShapeConfig{first, shape("Big", 32, 32, 2)}))
	require.NoError(t, err)

	data := components.Player.Get(player)
	assert.Equal(t, 0, data.ShapeIndex)
	assert.True(t, data.Enabled)
	assert.Equal(t, cfg.DirectionRight, data.LastDirX)

	obj := components.Object.Get(player)
	assert.InDelta(t, 84, obj.X, 1e-9)
	assert.InDelta(t, 188, obj.Y, 1e-9)
	assert.Equal(t, math.Vec2{X: 100, Y: 200}, PlayerPivot(player))
	assert.NotNil(t, obj.Space)
}

func TestApplyShapeKeepsPivot(t *testing.T) {
	e := newTestECS()
	small := shape("Small", 32, 32, 1)
	big := shape("Big", 32, 16, 2)
	big.ColliderOffset = math.Vec2{X: 0, Y: 8}
	big.Sprite = "circle"
	player, err := CreatePlayer(e, 300, 300, DefaultPlayerOptions([]*cfg.ShapeConfig{small, big}))
	require.NoError(t, err)

	require.True(t, ApplyShape(player, 1))

	obj := components.Object.Get(player)
	assert.Equal(t, 64.0, obj.W)
	assert.Equal(t, 32.0, obj.H)
	assert.InDelta(t, 300, PlayerPivot(player).X, 1e-9)
	assert.InDelta(t, 300, PlayerPivot(player).Y, 1e-9)
	assert.InDelta(t, 300+16, obj.Y+obj.H/2, 1e-9, "collider offset scales with the shape")

	assert.Equal(t, 2.0, components.Physics.Get(player).GravityScale)
	sprite := components.Sprite.Get(player)
	assert.Equal(t, "circle", sprite.Key)
	assert.Equal(t, math.Vec2{X: 2, Y: 2}, sprite.Scale)

	assert.False(t, ApplyShape(player, 2))
	assert.False(t, ApplyShape(player, -1))
	assert.Equal(t, 1, components.Player.Get(player).ShapeIndex)
}

func TestGroundCheckCenterScales(t *testing.T) {
	e := newTestECS()
	opts := DefaultPlayerOptions([]*cfg.ShapeConfig{shape("Small", 32, 32, 1), shape("Big", 32, 32, 2)})
	opts.GroundCheck.Offset = math.Vec2{X: 0, Y: -16}
	player, err := CreatePlayer(e, 100, 100, opts)
	require.NoError(t, err)

	assert.Equal(t, math.Vec2{X: 100, Y: 84}, GroundCheckCenter(player))
	ApplyShape(player, 1)
	assert.Equal(t, math.Vec2{X: 100, Y: 68}, GroundCheckCenter(player))
}

func TestCreateEnemyPatrol(t *testing.T) {
	e := newTestECS()
	left, right := 10.0, 90.0

	patrolling := CreateEnemy(e, leveldata.EnemySpawn{
		Rect:        leveldata.Rect{X: 40, Y: 40, W: 20, H: 20},
		PatrolLeft:  &left,
		PatrolRight: &right,
	})
	require.True(t, patrolling.HasComponent(components.Patrol))
	patrol := components.Patrol.Get(patrolling)
	assert.Equal(t, cfg.Patrol.Speed, patrol.Speed)
	assert.Equal(t, cfg.Patrol.WaitAtEdge, patrol.WaitAtEdge)

	// Endpoints are copied from the spawn.
	left = 0
	assert.Equal(t, 10.0, *patrol.Left)

	idle := CreateEnemy(e, leveldata.EnemySpawn{Rect: leveldata.Rect{X: 200, Y: 40}, PatrolLeft: &left})
	assert.False(t, idle.HasComponent(components.Patrol))
	obj := components.Object.Get(idle)
	assert.Equal(t, cfg.Patrol.Width, obj.W)
	assert.Zero(t, components.Physics.Get(idle).GravityScale)
}

func TestCreateProjectileGravity(t *testing.T) {
	tmpl := components.ProjectileTemplate{Width: 8, Height: 8, DestroyOnGround: true}

	tests := []struct {
		name    string
		path    cfg.FlightPath
		zeroG   bool
		gravity float64
	}{
		{"straight zero gravity", cfg.FlightStraight, true, 0},
		{"straight with gravity", cfg.FlightStraight, false, cfg.Projectile.GravityScale},
		{"parabola uses shape gravity", cfg.FlightParabola, false, 3},
		{"angle down", cfg.FlightAngleDown45, false, cfg.Projectile.GravityScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			s := shape("Shape", 32, 32, 1)
			s.GravityScale = 3
			s.FlightPath = tt.path
			s.BulletZeroGravityDuringStraight = tt.zeroG

			p := CreateProjectile(e, 100, 100, s, cfg.DirectionLeft, tmpl)

			assert.Equal(t, tt.gravity, components.Physics.Get(p).GravityScale)
			assert.Less(t, components.Physics.Get(p).Velocity.X, 0.0)
			assert.True(t, components.Sprite.Get(p).FlipX)
			assert.Equal(t, 2.0, components.Projectile.Get(p).TimeLeft)
		})
	}
}

func TestCreateProjectileFallbackSpeed(t *testing.T) {
	e := newTestECS()
	s := shape("Still", 32, 32, 1)
	s.BulletStraightSpeed = 0
	s.BulletLifetime = 0

	p := CreateProjectile(e, 100, 100, s, cfg.DirectionRight, components.ProjectileTemplate{})

	assert.Equal(t, math.Vec2{X: cfg.Projectile.FallbackSpeed}, components.Physics.Get(p).Velocity)
	assert.False(t, components.Projectile.Get(p).MaintainConstantVel)
	assert.Equal(t, cfg.Projectile.MinLifetime, components.Projectile.Get(p).TimeLeft)
	obj := components.Object.Get(p)
	assert.Equal(t, cfg.Projectile.Width, obj.W)
}
