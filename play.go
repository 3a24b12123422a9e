package main

import (
	"errors"
	"fmt"

	"github.com/akshatshahh/team-30/assets"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/fonts"
	"github.com/akshatshahh/team-30/scenes"
	"github.com/akshatshahh/team-30/storage"
	"github.com/akshatshahh/team-30/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagLevel         string
	flagTPS           int
	flagDrawColliders bool
	flagDrawGround    bool
	flagNoHistory     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level in a window",
	Long: `Open a window and play a level.

The level is an embedded level name or a path to a .tmx file.

Examples:
  shapeshift play
  shapeshift play --level level1 --debug-colliders
  shapeshift play --level ./my_level.tmx`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLevel, "level", assets.DefaultLevel, "Level name or .tmx path")
	cmd.Flags().IntVar(&flagTPS, "tps", cfg.C.TPS, "Ticks per second")
	cmd.Flags().BoolVar(&flagDrawColliders, "debug-colliders", false, "Outline every collider")
	cmd.Flags().BoolVar(&flagDrawGround, "debug-ground", false, "Draw the ground check circle")
	cmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record runs")
}

// App hosts the active scene for ebiten.
type App struct {
	scene scenes.Scene
}

func (a *App) ChangeScene(scene scenes.Scene) {
	a.scene = scene
}

func (a *App) Update() error {
	if err := a.scene.Update(); err != nil {
		if errors.Is(err, scenes.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

func (a *App) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagTPS <= 0 {
		return fmt.Errorf("--tps must be positive")
	}
	cfg.Debug.DrawColliders = flagDrawColliders
	cfg.Debug.DrawGroundCheck = flagDrawGround

	shapes, err := cfg.LoadShapes(flagShapesPath)
	if err != nil {
		return err
	}
	level, err := assets.LoadLevel(flagLevel)
	if err != nil {
		return err
	}
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	session := &scenes.Session{
		LevelName: level.Name,
		Level:     level,
		Shapes:    shapes,
	}

	if err := systems.InitPersistence(cfg.Storage.AppName); err == nil {
		session.Progress, _ = systems.LoadProgress()
	}

	if !flagNoHistory {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			log.Warn("run history disabled", "err", err)
		} else {
			defer store.Close()
			session.Store = store
		}
	}

	app := &App{}
	app.ChangeScene(scenes.NewWorldScene(app, session))

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetTPS(flagTPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(app); err != nil {
		return err
	}
	return nil
}
