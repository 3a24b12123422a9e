package scenes

import (
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// stickDeadZone is the gamepad stick travel ignored around center.
const stickDeadZone = 0.2

// KeyAdapter turns ebiten keyboard and gamepad state into input frames.
// An action stays held while any of its keys is down.
type KeyAdapter struct {
	held [cfg.ActionCount]bool
}

// Poll returns the edges since the previous call.
func (k *KeyAdapter) Poll() game.InputFrame {
	var frame game.InputFrame
	for id := cfg.ActionID(1); id < cfg.ActionCount; id++ {
		binding, ok := cfg.Input.Bindings[id]
		if !ok {
			continue
		}
		down := false
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				down = true
				break
			}
		}
		if down == k.held[id] {
			continue
		}
		k.held[id] = down
		edge := components.EdgeUp
		if down {
			edge = components.EdgeDown
		}
		frame.Events = append(frame.Events, components.InputEvent{Action: id, Edge: edge})
	}
	frame.Axis = gamepadAxis()
	return frame
}

func gamepadAxis() float64 {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if v > stickDeadZone || v < -stickDeadZone {
			return v
		}
	}
	return 0
}
