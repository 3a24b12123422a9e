package components

import "github.com/yohamta/donburi"

// PatrolData drives a two-point ping-pong patrol. A nil endpoint disables it.
type PatrolData struct {
	Left, Right *float64 // center x of each endpoint

	Speed      float64
	WaitAtEdge float64

	Dir       float64 // +1 heading to Right, -1 heading to Left
	WaitTimer float64
}

var Patrol = donburi.NewComponentType[PatrolData]()
