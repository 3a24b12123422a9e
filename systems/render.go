package systems

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/systems/factory"
	"github.com/akshatshahh/team-30/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	finishZoneColor = color.RGBA{R: 0, G: 255, B: 60, A: 60}
	loseZoneColor   = color.RGBA{R: 255, G: 0, B: 0, A: 40}
)

func init() {
	whiteImage.Fill(color.White)
}

// view converts world coordinates (+Y up) to screen coordinates (+Y down)
// around the camera.
type view struct {
	camX, camY float64
	halfW      float64
	halfH      float64
}

func newView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	camX, camY := camera.Position.X, camera.Position.Y
	if cameraEntry.HasComponent(components.ScreenShake) {
		offset := components.ScreenShake.Get(cameraEntry).Offset
		camX += offset.X
		camY += offset.Y
	}
	return view{
		camX:  camX,
		camY:  camY,
		halfW: float64(screen.Bounds().Dx()) / 2,
		halfH: float64(screen.Bounds().Dy()) / 2,
	}, true
}

func (v view) point(x, y float64) (float32, float32) {
	return float32(x - v.camX + v.halfW), float32(v.halfH - (y - v.camY))
}

// rect returns the screen-space top-left corner of a bottom-left anchored box.
func (v view) rect(x, y, w, h float64) (float32, float32, float32, float32) {
	sx, sy := v.point(x, y+h)
	return sx, sy, float32(w), float32(h)
}

// culled reports whether the box is entirely off-screen.
func (v view) culled(x, y, w, h float64) bool {
	padding := 64.0
	return x+w < v.camX-v.halfW-padding || x > v.camX+v.halfW+padding ||
		y+h < v.camY-v.halfH-padding || y > v.camY+v.halfH+padding
}

// DrawLevel clears the screen and draws the trigger zones.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	components.FinishZone.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if v.culled(o.X, o.Y, o.W, o.H) {
			return
		}
		x, y, w, h := v.rect(o.X, o.Y, o.W, o.H)
		vector.FillRect(screen, x, y, w, h, finishZoneColor, false)
	})
	components.LoseZone.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if v.culled(o.X, o.Y, o.W, o.H) {
			return
		}
		x, y, w, h := v.rect(o.X, o.Y, o.W, o.H)
		vector.FillRect(screen, x, y, w, h, loseZoneColor, false)
	})
}

// DrawSprites draws every visible body as a flat primitive chosen by its
// sprite key.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Hidden || !e.HasComponent(components.Object) {
			return
		}
		o := components.Object.Get(e)
		if v.culled(o.X, o.Y, o.W, o.H) {
			return
		}
		x, y, w, h := o.X, o.Y, o.W, o.H
		// Squash and stretch keep the feet in place.
		if sx, sy := drawnScale(e); sx != 1 || sy != 1 {
			x, w, h = x+w/2-w*sx/2, w*sx, h*sy
		}
		if flashing(e) {
			flashed := *sprite
			flashed.Color = cfg.White
			sprite = &flashed
		}
		drawPrimitive(screen, v, sprite, x, y, w, h)
	})
}

func drawPrimitive(screen *ebiten.Image, v view, sprite *components.SpriteData, x, y, w, h float64) {
	cx, cy := x+w/2, y+h/2
	switch {
	case strings.HasSuffix(sprite.Key, "bullet"):
		fillPolygon(screen, v, rotatedBox(cx, cy, w, h, sprite.Rotation), sprite.Color)
	case strings.HasPrefix(sprite.Key, "triangle"):
		apexX := cx
		if sprite.FlipX {
			apexX -= w / 4
		} else {
			apexX += w / 4
		}
		fillPolygon(screen, v, [][2]float64{{x, y}, {x + w, y}, {apexX, y + h}}, sprite.Color)
	case strings.HasPrefix(sprite.Key, "circle"):
		sx, sy := v.point(cx, cy)
		vector.FillCircle(screen, sx, sy, float32(math.Min(w, h)/2), sprite.Color, true)
	case sprite.Key == "enemy":
		rx, ry, rw, rh := v.rect(x, y, w, h)
		vector.FillRect(screen, rx, ry, rw, rh, sprite.Color, false)
		eyeX := cx + w/4
		if sprite.FlipX {
			eyeX = cx - w/4
		}
		ex, ey := v.point(eyeX, y+h*0.7)
		vector.FillCircle(screen, ex, ey, float32(w/8), cfg.White, true)
	default:
		rx, ry, rw, rh := v.rect(x, y, w, h)
		vector.FillRect(screen, rx, ry, rw, rh, sprite.Color, false)
	}
}

func rotatedBox(cx, cy, w, h, angle float64) [][2]float64 {
	sin, cos := math.Sincos(angle)
	corners := [][2]float64{{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}}
	for i, c := range corners {
		corners[i] = [2]float64{cx + c[0]*cos - c[1]*sin, cy + c[0]*sin + c[1]*cos}
	}
	return corners
}

// fillPolygon fills a convex world-space polygon.
func fillPolygon(screen *ebiten.Image, v view, pts [][2]float64, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	for i, p := range pts {
		x, y := v.point(p[0], p[1])
		if i == 0 {
			path.MoveTo(x, y)
			continue
		}
		path.LineTo(x, y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}

// DrawDebug outlines every collider and the player's ground check circle.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders && !cfg.Debug.DrawGroundCheck {
		return
	}
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	if cfg.Debug.DrawColliders {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			for _, obj := range components.Space.Get(spaceEntry).Objects() {
				if v.culled(obj.X, obj.Y, obj.W, obj.H) {
					continue
				}
				x, y, w, h := v.rect(obj.X, obj.Y, obj.W, obj.H)
				vector.StrokeRect(screen, x, y, w, h, 1, debugColor(classOf(obj)), false)
			}
		}
	}

	if cfg.Debug.DrawGroundCheck {
		playerEntry, ok := tags.Player.First(ecs.World)
		if !ok {
			return
		}
		player := components.Player.Get(playerEntry)
		center := factory.GroundCheckCenter(playerEntry)
		clr := cfg.Orange
		if IsGrounded(playerEntry) {
			clr = cfg.BrightGreen
		}
		x, y := v.point(center.X, center.Y)
		vector.StrokeCircle(screen, x, y, float32(player.GroundCheck.Radius), 1, clr, true)
	}
}

func debugColor(c tags.Class) color.RGBA {
	switch c {
	case tags.ClassGround:
		return cfg.Gray
	case tags.ClassPlayer:
		return cfg.LightBlue
	case tags.ClassEnemy:
		return cfg.Red
	case tags.ClassPlayerAttack:
		return cfg.Yellow
	case tags.ClassFinishZone:
		return cfg.BrightGreen
	case tags.ClassLoseZone:
		return cfg.Purple
	}
	return color.RGBA{R: 0, G: 255, B: 255, A: 255}
}
