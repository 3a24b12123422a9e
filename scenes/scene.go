package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the application.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// SceneChanger switches the active scene.
type SceneChanger interface {
	ChangeScene(scene Scene)
}
