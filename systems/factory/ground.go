package factory

import (
	"github.com/akshatshahh/team-30/archetypes"
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateGround creates a static ground block. x, y is its bottom-left corner.
func CreateGround(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	obj := newBody(ground, tags.ClassGround, x, y, w, h)
	components.Sprite.SetValue(ground, components.SpriteData{
		Key:   "ground",
		Color: cfg.Gray,
		Scale: math.Vec2{X: 1, Y: 1},
	})

	addToSpace(ecs, obj)
	return ground
}
