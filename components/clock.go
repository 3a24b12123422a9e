package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock. Gameplay systems read Delta from it and
// skip the tick while Paused; Unscaled keeps counting while paused.
type ClockData struct {
	Delta    float64
	Elapsed  float64
	Unscaled float64
	Tick     int
	Paused   bool
}

var Clock = donburi.NewComponentType[ClockData]()
