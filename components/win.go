package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// WinData is the singleton win overlay state.
type WinData struct {
	Shown   bool
	Text    string
	Opacity float64
	Fade    *gween.Tween
}

var Win = donburi.NewComponentType[WinData]()
