package components

import "github.com/yohamta/donburi"

// GameOverData is the singleton game over overlay state.
type GameOverData struct {
	Shown  bool
	Reason string
	Text   string
}

// GameOver is the component type for the game over overlay
var GameOver = donburi.NewComponentType[GameOverData]()
