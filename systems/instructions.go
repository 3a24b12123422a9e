package systems

import (
	gomath "math"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInstructions hides the start-of-level instructions on the first
// meaningful input or once they have been up for AutoHideAfter seconds.
// It counts unscaled time and runs while paused.
func UpdateInstructions(ecs *ecs.ECS) {
	entry, ok := components.Instructions.First(ecs.World)
	if !ok {
		return
	}
	instructions := components.Instructions.Get(entry)
	input := getOrCreateInput(ecs)

	instructions.ShownFor += cfg.Physics.TickDelta
	if !instructions.Visible {
		return
	}

	if input.AnyDown || gomath.Abs(input.Axis) > cfg.Instructions.AxisThreshold {
		instructions.Visible = false
		return
	}
	if cfg.Instructions.AutoHideAfter > 0 && instructions.ShownFor >= cfg.Instructions.AutoHideAfter {
		instructions.Visible = false
	}
}
