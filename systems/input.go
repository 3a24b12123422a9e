package systems

import (
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// QueueInput appends button edges and sets the horizontal axis for the next
// tick. Hosts call it between ticks; UpdateInput consumes the queue.
func QueueInput(ecs *ecs.ECS, axis float64, events ...components.InputEvent) {
	input := getOrCreateInput(ecs)
	input.Axis = gamemath.ClampSpeed(axis, 1)
	input.Queue = append(input.Queue, events...)
}

// UpdateInput drains the event queue into per-action state.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	input.JustPressed = [cfg.ActionCount]bool{}
	input.JustReleased = [cfg.ActionCount]bool{}
	input.AnyDown = false

	for _, ev := range input.Queue {
		if ev.Action <= cfg.ActionNone || ev.Action >= cfg.ActionCount {
			continue
		}
		switch ev.Edge {
		case components.EdgeDown:
			input.AnyDown = true
			// A repeated down edge while held is not a new press.
			if !input.Held[ev.Action] {
				input.Held[ev.Action] = true
				input.JustPressed[ev.Action] = true
			}
		case components.EdgeUp:
			if input.Held[ev.Action] {
				input.Held[ev.Action] = false
				input.JustReleased[ev.Action] = true
			}
		}
	}
	input.Queue = input.Queue[:0]

	h := input.Axis
	if input.Held[cfg.ActionMoveRight] {
		h++
	}
	if input.Held[cfg.ActionMoveLeft] {
		h--
	}
	input.Horizontal = gamemath.ClampSpeed(h, 1)
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	if id <= cfg.ActionNone || id >= cfg.ActionCount {
		return components.ActionState{}
	}
	return components.ActionState{
		Pressed:      input.Held[id],
		JustPressed:  input.JustPressed[id],
		JustReleased: input.JustReleased[id],
	}
}
