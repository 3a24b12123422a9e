package factory

import (
	"github.com/akshatshahh/team-30/archetypes"
	"github.com/akshatshahh/team-30/components"
	"github.com/yohamta/donburi/ecs"
)

// CreateOverlays adds the game over, win and instructions overlay singletons.
// The instructions start visible.
func CreateOverlays(ecs *ecs.ECS) {
	archetypes.GameOver.Spawn(ecs)
	archetypes.Win.Spawn(ecs)

	instructions := archetypes.Instructions.Spawn(ecs)
	components.Instructions.SetValue(instructions, components.InstructionsData{Visible: true})
}
