package components

import "github.com/yohamta/donburi"

type InstructionsData struct {
	Visible  bool
	ShownFor float64 // unscaled seconds since the level started
}

var Instructions = donburi.NewComponentType[InstructionsData]()
