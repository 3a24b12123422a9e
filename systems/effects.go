package systems

import (
	"math"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the visual feedback components (flash, squash/stretch).
// Effect components are part of the entity's archetype from spawn and are
// toggled, never added mid-tick.
func UpdateEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})

	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)
		if !ss.Active {
			return
		}

		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

		threshold := 0.01
		if math.Abs(ss.ScaleX-ss.TargetX) < threshold && math.Abs(ss.ScaleY-ss.TargetY) < threshold {
			ss.Active = false
			ss.ScaleX, ss.ScaleY = ss.TargetX, ss.TargetY
		}
	})
}

// TriggerSquashStretch starts a squash/stretch on entry. Entities without the
// component are ignored.
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if !entry.HasComponent(components.SquashStretch) {
		return
	}
	components.SquashStretch.SetValue(entry, components.SquashStretchData{
		Active:    true,
		ScaleX:    scaleX,
		ScaleY:    scaleY,
		TargetX:   1.0,
		TargetY:   1.0,
		LerpSpeed: cfg.Effects.SquashLerpSpeed,
	})
}

// TriggerFlash tints entry white for duration ticks, extending a running flash.
func TriggerFlash(entry *donburi.Entry, duration int) {
	if duration <= 0 || !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Duration = max(flash.Duration, duration)
}

// drawnScale is the squash/stretch applied to e's sprite this frame.
func drawnScale(e *donburi.Entry) (sx, sy float64) {
	if !e.HasComponent(components.SquashStretch) {
		return 1, 1
	}
	ss := components.SquashStretch.Get(e)
	if !ss.Active {
		return 1, 1
	}
	return ss.ScaleX, ss.ScaleY
}

func flashing(e *donburi.Entry) bool {
	return e.HasComponent(components.Flash) && components.Flash.Get(e).Duration > 0
}
