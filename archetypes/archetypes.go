package archetypes

import (
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ground = newArchetype(
		tags.Ground,
		components.Object,
		components.Body,
		components.Sprite,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Body,
		components.Physics,
		components.Sprite,
		components.Contact,
		components.Flash,
		components.SquashStretch,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Object,
		components.Body,
		components.Physics,
		components.Sprite,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Body,
		components.Physics,
		components.Sprite,
	)
	FinishZone = newArchetype(
		tags.FinishZone,
		components.FinishZone,
		components.Object,
		components.Body,
	)
	LoseZone = newArchetype(
		tags.LoseZone,
		components.LoseZone,
		components.Object,
		components.Body,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
		components.ScreenShake,
	)
	GameOver = newArchetype(
		components.GameOver,
	)
	Win = newArchetype(
		components.Win,
	)
	Instructions = newArchetype(
		components.Instructions,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
