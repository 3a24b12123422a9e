package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpriteData is what the renderer needs to draw a body. Key selects the
// primitive drawn for it.
type SpriteData struct {
	Key      string
	Color    color.RGBA
	Scale    math.Vec2
	Rotation float64
	FlipX    bool
	Hidden   bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
