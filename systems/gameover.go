package systems

import (
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/events"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// ShowGameOver shows the game over overlay with reason. Only the first call
// has any effect. Without an overlay in the world it only logs a warning.
func ShowGameOver(ecs *ecs.ECS, reason string) {
	entry, ok := components.GameOver.First(ecs.World)
	if !ok {
		log.Warn("no game over overlay in the world", "reason", reason)
		return
	}
	gameOver := components.GameOver.Get(entry)
	if gameOver.Shown {
		return
	}

	gameOver.Shown = true
	gameOver.Reason = reason
	gameOver.Text = GameOverText(reason)
	if cfg.GameOver.PauseOnGameOver {
		SetPaused(ecs, true)
	}

	log.Info("game over", "reason", reason)
	events.GameOverEvent.Publish(ecs.World, events.GameOver{Reason: reason})
}

// GameOverText is the overlay text for reason.
func GameOverText(reason string) string {
	if reason == "" {
		return cfg.GameOver.Title
	}
	return cfg.GameOver.Title + "\n" + reason
}

// IsGameOver reports whether the game over overlay is showing.
func IsGameOver(ecs *ecs.ECS) bool {
	entry, ok := components.GameOver.First(ecs.World)
	return ok && components.GameOver.Get(entry).Shown
}
