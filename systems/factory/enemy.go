package factory

import (
	"github.com/akshatshahh/team-30/archetypes"
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/shared/leveldata"
	"github.com/akshatshahh/team-30/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns an enemy body. Enemies ignore gravity and pass through
// ground; a patrol is attached only when both endpoints are set.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.EnemySpawn) *donburi.Entry {
	w, h := spawn.W, spawn.H
	if w <= 0 || h <= 0 {
		w, h = cfg.Patrol.Width, cfg.Patrol.Height
	}

	var enemy *donburi.Entry
	if spawn.PatrolLeft != nil && spawn.PatrolRight != nil {
		enemy = archetypes.Enemy.Spawn(ecs, components.Patrol)
		speed := spawn.Speed
		if speed <= 0 {
			speed = cfg.Patrol.Speed
		}
		wait := spawn.WaitAtEdge
		if wait <= 0 {
			wait = cfg.Patrol.WaitAtEdge
		}
		left, right := *spawn.PatrolLeft, *spawn.PatrolRight
		components.Patrol.SetValue(enemy, components.PatrolData{
			Left:       &left,
			Right:      &right,
			Speed:      speed,
			WaitAtEdge: wait,
			Dir:        cfg.DirectionRight,
		})
	} else {
		enemy = archetypes.Enemy.Spawn(ecs)
	}

	obj := newBody(enemy, tags.ClassEnemy, spawn.X, spawn.Y, w, h)
	components.Physics.SetValue(enemy, components.PhysicsData{
		GravityScale: 0,
		Simulated:    true,
		PrevX:        obj.X,
		PrevY:        obj.Y,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		Key:   "enemy",
		Color: spriteColor("enemy"),
		Scale: math.Vec2{X: 1, Y: 1},
	})

	addToSpace(ecs, obj)
	return enemy
}
