package components

import (
	"github.com/akshatshahh/team-30/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name         string
	CurrentLevel *leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()
