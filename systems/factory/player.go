package factory

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/akshatshahh/team-30/archetypes"
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	ErrNoShapes           = errors.New("player has no shapes")
	ErrInvalidGroundCheck = errors.New("invalid ground check")
)

// PlayerOptions is the construction-time configuration of the player.
// GroundCheck is required; Muzzle and Projectile are optional.
type PlayerOptions struct {
	Shapes      []*cfg.ShapeConfig
	GroundCheck components.GroundCheck
	Muzzle      *math.Vec2
	Projectile  *components.ProjectileTemplate
}

// DefaultPlayerOptions fills the ground check and projectile template from config.
func DefaultPlayerOptions(shapes []*cfg.ShapeConfig) PlayerOptions {
	return PlayerOptions{
		Shapes: shapes,
		GroundCheck: components.GroundCheck{
			Offset: cfg.Player.GroundCheckOffset,
			Radius: cfg.Player.GroundCheckRadius,
			Mask:   append([]string(nil), cfg.Player.GroundMask...),
		},
		Projectile: &components.ProjectileTemplate{
			Width:           cfg.Projectile.Width,
			Height:          cfg.Projectile.Height,
			DestroyOnGround: cfg.Projectile.DestroyOnGround,
		},
	}
}

func (o PlayerOptions) validate() error {
	if len(o.Shapes) == 0 {
		return ErrNoShapes
	}
	if len(o.Shapes) > cfg.MaxShapes {
		return fmt.Errorf("%w: %d shapes, at most %d", cfg.ErrInvalidShape, len(o.Shapes), cfg.MaxShapes)
	}
	for _, s := range o.Shapes {
		if s == nil {
			return fmt.Errorf("%w: nil shape", cfg.ErrInvalidShape)
		}
	}
	if o.GroundCheck.Radius <= 0 {
		return fmt.Errorf("%w: radius must be positive", ErrInvalidGroundCheck)
	}
	if len(o.GroundCheck.Mask) == 0 {
		return fmt.Errorf("%w: empty ground mask", ErrInvalidGroundCheck)
	}
	return nil
}

// CreatePlayer spawns the player with its pivot at x, y in the first shape.
func CreatePlayer(ecs *ecs.ECS, x, y float64, opts PlayerOptions) (*donburi.Entry, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	player := archetypes.Player.Spawn(ecs)

	shape := opts.Shapes[0]
	w, h := colliderSize(shape)
	cx, cy := colliderCenter(shape, x, y)
	obj := newBody(player, tags.ClassPlayer, cx-w/2, cy-h/2, w, h)

	components.Player.SetValue(player, components.PlayerData{
		Shapes:      opts.Shapes,
		ShapeIndex:  0,
		LastDirX:    cfg.DirectionRight,
		Enabled:     true,
		GroundCheck: opts.GroundCheck,
		Muzzle:      opts.Muzzle,
		Projectile:  opts.Projectile,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		GravityScale:      shape.GravityScale,
		Simulated:         true,
		CollideWithGround: true,
		PrevX:             obj.X,
		PrevY:             obj.Y,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Key:   shape.Sprite,
		Color: spriteColor(shape.Sprite),
		Scale: shape.Scale,
	})
	components.Contact.SetValue(player, components.ContactData{
		Touching: map[donburi.Entity]struct{}{},
	})

	addToSpace(ecs, obj)
	return player, nil
}

// PlayerPivot returns the player's reference position: the collider center
// minus the current shape's scaled collider offset.
func PlayerPivot(e *donburi.Entry) math.Vec2 {
	obj := components.Object.Get(e)
	shape := components.Player.Get(e).Current()
	cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
	if shape == nil {
		return math.Vec2{X: cx, Y: cy}
	}
	return math.Vec2{
		X: cx - shape.ColliderOffset.X*shape.Scale.X,
		Y: cy - shape.ColliderOffset.Y*shape.Scale.Y,
	}
}

// ApplyShape makes shape idx current and retunes gravity scale, collider
// footprint and visual scale around the unchanged pivot.
func ApplyShape(e *donburi.Entry, idx int) bool {
	player := components.Player.Get(e)
	if idx < 0 || idx >= len(player.Shapes) {
		return false
	}
	pivot := PlayerPivot(e)
	player.ShapeIndex = idx
	shape := player.Shapes[idx]

	components.Physics.Get(e).GravityScale = shape.GravityScale

	obj := components.Object.Get(e)
	w, h := colliderSize(shape)
	cx, cy := colliderCenter(shape, pivot.X, pivot.Y)
	obj.X, obj.Y = cx-w/2, cy-h/2
	obj.W, obj.H = w, h
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Update()

	sprite := components.Sprite.Get(e)
	if shape.Sprite != "" {
		sprite.Key = shape.Sprite
		sprite.Color = spriteColor(shape.Sprite)
	}
	sprite.Scale = shape.Scale
	return true
}

// GroundCheckCenter returns the world position of the player's ground sensor.
func GroundCheckCenter(e *donburi.Entry) math.Vec2 {
	player := components.Player.Get(e)
	pivot := PlayerPivot(e)
	scale := math.Vec2{X: 1, Y: 1}
	if shape := player.Current(); shape != nil {
		scale = shape.Scale
	}
	return math.Vec2{
		X: pivot.X + player.GroundCheck.Offset.X*scale.X,
		Y: pivot.Y + player.GroundCheck.Offset.Y*scale.Y,
	}
}

func colliderSize(s *cfg.ShapeConfig) (w, h float64) {
	return s.ColliderSize.X * s.Scale.X, s.ColliderSize.Y * s.Scale.Y
}

func colliderCenter(s *cfg.ShapeConfig, pivotX, pivotY float64) (x, y float64) {
	return pivotX + s.ColliderOffset.X*s.Scale.X, pivotY + s.ColliderOffset.Y*s.Scale.Y
}

var spriteColors = map[string]color.RGBA{
	"triangle":        cfg.Yellow,
	"square":          cfg.LightBlue,
	"circle":          cfg.Orange,
	"triangle_bullet": cfg.Yellow,
	"square_bullet":   cfg.LightBlue,
	"circle_bullet":   cfg.Orange,
	"enemy":           cfg.Red,
}

func spriteColor(key string) color.RGBA {
	if c, ok := spriteColors[key]; ok {
		return c
	}
	return cfg.White
}
