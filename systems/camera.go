package systems

import (
	"math"

	"github.com/akshatshahh/team-30/components"
	"github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/tags"
	"github.com/yohamta/donburi/ecs"
	gdmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera follows the player with a little look-ahead, kept inside the
// level bounds.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if !player.Enabled {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(physics.Velocity.X) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := player.LastDirX * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := playerObject.X + playerObject.W/2 + camera.LookAheadX
	targetY := playerObject.Y + playerObject.H/2

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.CurrentLevel.Width)
	levelHeight := float64(levelData.CurrentLevel.Height)

	targetX = clampCamera(targetX, screenWidth/2, levelWidth-screenWidth/2)
	targetY = clampCamera(targetY, screenHeight/2, levelHeight-screenHeight/2)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampCamera keeps v in [lo, hi], centering when the level is smaller than the screen.
func clampCamera(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

// UpdateScreenShake advances a running shake by one tick. It counts frames
// rather than clock time, so the death shake still plays once the game over
// overlay has paused the clock.
func UpdateScreenShake(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	updateScreenShake(components.ScreenShake.Get(cameraEntry))
}

// updateScreenShake sets the view offset for the next frame. The offset is
// drawn on top of the camera position and never written into it.
func updateScreenShake(shake *components.ScreenShakeData) {
	if shake.Elapsed >= shake.Duration {
		shake.Offset = gdmath.Vec2{}
		return
	}
	shake.Elapsed++

	remaining := math.Max(0, float64(shake.Duration-shake.Elapsed)/float64(shake.Duration))
	intensity := shake.Intensity * remaining

	shake.Offset.X = math.Sin(float64(shake.Elapsed)*1.1) * intensity
	shake.Offset.Y = math.Cos(float64(shake.Elapsed)*1.3) * intensity
}

// TriggerScreenShake starts a shake unless a stronger one is already running.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || duration <= 0 || !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	if shake.Elapsed < shake.Duration && intensity <= shake.Intensity {
		return
	}
	*shake = components.ScreenShakeData{Intensity: intensity, Duration: duration}
}
