package components

import "github.com/yohamta/donburi"

type FinishZoneData struct {
	Used bool
}

var FinishZone = donburi.NewComponentType[FinishZoneData]()

type LoseZoneData struct {
	Reason string
}

var LoseZone = donburi.NewComponentType[LoseZoneData]()
