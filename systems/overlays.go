package systems

import (
	"fmt"
	"image/color"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/fonts"
	"github.com/akshatshahh/team-30/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const hudMargin = 10

// DrawHUD shows the active shape and the run timer in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	shape := player.Current()
	if shape == nil {
		return
	}
	clock := GetOrCreateClock(ecs)

	face := fonts.Regular.Get()
	line := fmt.Sprintf("[%d] %s   %.1fs", player.ShapeIndex+1, shape.Name, clock.Elapsed)
	if player.IsFlying {
		line += "   FLYING"
	}
	text.Draw(screen, line, face, hudMargin, hudMargin+face.Metrics().Ascent.Ceil(), cfg.White)

	if clock.Paused && !runEnded(ecs) {
		title := fonts.Title.Get()
		width := float64(screen.Bounds().Dx())
		text.Draw(screen, "PAUSED", title, centerTextX("PAUSED", title, width), screen.Bounds().Dy()/2, cfg.White)
	}
}

// DrawInstructions renders the start-of-level controls panel while visible.
func DrawInstructions(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Instructions.First(ecs.World)
	if !ok || !components.Instructions.Get(entry).Visible {
		return
	}

	face := fonts.Regular.Get()
	lineHeight := face.Metrics().Height.Ceil() + 4
	width := float64(screen.Bounds().Dx())
	panelH := float32(lineHeight*len(cfg.Instructions.Lines) + 2*hudMargin)
	top := float32(screen.Bounds().Dy()) - panelH - hudMargin

	vector.FillRect(screen, hudMargin, top, float32(width)-2*hudMargin, panelH, cfg.BlackOverlay, false)
	y := int(top) + hudMargin + face.Metrics().Ascent.Ceil()
	for _, line := range cfg.Instructions.Lines {
		text.Draw(screen, line, face, centerTextX(line, face, width), y, cfg.Instructions.TextColor)
		y += lineHeight
	}
}

// DrawGameOver renders the game over overlay.
func DrawGameOver(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.GameOver.First(ecs.World)
	if !ok {
		return
	}
	gameOver := components.GameOver.Get(entry)
	if !gameOver.Shown {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.BackgroundColor, false)

	title := fonts.Title.Get()
	text.Draw(screen, cfg.GameOver.Title, title, centerTextX(cfg.GameOver.Title, title, width), int(height*0.4), cfg.GameOver.TitleColor)

	msg := fonts.Bold.Get()
	text.Draw(screen, gameOver.Reason, msg, centerTextX(gameOver.Reason, msg, width), int(height*0.4)+48, cfg.White)
}

// DrawWin renders the win text, faded in by UpdateWin.
func DrawWin(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Win.First(ecs.World)
	if !ok {
		return
	}
	win := components.Win.Get(entry)
	if !win.Shown || win.Opacity <= 0 {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	bg := cfg.BlackOverlay
	bg.A = uint8(float64(bg.A) * win.Opacity)
	vector.FillRect(screen, 0, 0, float32(width), float32(height), bg, false)

	face := fonts.Title.Get()
	text.Draw(screen, win.Text, face, centerTextX(win.Text, face, width), int(height*0.45), fade(cfg.Win.TextColor, win.Opacity))
}

func fade(c color.RGBA, opacity float64) color.RGBA {
	// Premultiplied alpha.
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
