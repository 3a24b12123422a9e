package systems

import (
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/events"
	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// TriggerWin shows the win overlay and starts its fade-in. Only the first
// call has any effect.
func TriggerWin(ecs *ecs.ECS) {
	entry, ok := components.Win.First(ecs.World)
	if !ok {
		log.Warn("no win overlay in the world")
		return
	}
	win := components.Win.Get(entry)
	if win.Shown {
		return
	}

	win.Shown = true
	if win.Text == "" {
		win.Text = cfg.Win.Text
	}
	win.Opacity = 0
	win.Fade = gween.New(0, 1, cfg.Win.FadeSeconds, ease.Linear)
	if cfg.Win.PauseOnWin {
		SetPaused(ecs, true)
	}

	clock := GetOrCreateClock(ecs)
	log.Info("level won", "elapsed", clock.Elapsed)
	events.WinEvent.Publish(ecs.World, events.Win{Elapsed: clock.Elapsed})
}

// UpdateWin advances the overlay fade on unscaled time, so it also runs
// while the clock is paused.
func UpdateWin(ecs *ecs.ECS) {
	entry, ok := components.Win.First(ecs.World)
	if !ok {
		return
	}
	win := components.Win.Get(entry)
	if !win.Shown || win.Fade == nil {
		return
	}
	opacity, finished := win.Fade.Update(float32(cfg.Physics.TickDelta))
	win.Opacity = float64(opacity)
	if finished {
		win.Opacity = 1
		win.Fade = nil
	}
}

// HasWon reports whether the win overlay is showing.
func HasWon(ecs *ecs.ECS) bool {
	entry, ok := components.Win.First(ecs.World)
	return ok && components.Win.Get(entry).Shown
}
