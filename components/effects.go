package components

import "github.com/yohamta/donburi"

// FlashData tints a sprite white while Duration is positive
type FlashData struct {
	Duration int // ticks remaining
}

var Flash = donburi.NewComponentType[FlashData]()

// SquashStretchData tracks sprite scale deformation for jump and shape-change feel.
// It only affects drawing; the collider keeps its size.
type SquashStretchData struct {
	Active           bool
	ScaleX, ScaleY   float64 // current scale
	TargetX, TargetY float64 // lerp target (usually 1.0, 1.0)
	LerpSpeed        float64 // fraction of the remaining distance covered per tick
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
