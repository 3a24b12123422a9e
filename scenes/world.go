package scenes

import (
	"errors"
	"sync"

	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/game"
	"github.com/akshatshahh/team-30/shared/leveldata"
	"github.com/akshatshahh/team-30/storage"
	"github.com/akshatshahh/team-30/systems"
	"github.com/akshatshahh/team-30/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update when the player chooses to quit.
var ErrQuit = errors.New("quit")

// Session is what survives from one run of a level to the next.
type Session struct {
	LevelName string
	Level     *leveldata.Level
	Shapes    []*cfg.ShapeConfig

	// Store is optional; nil skips run history.
	Store    *storage.Store
	Progress *systems.SavedProgress
}

// WorldScene plays one run of the session's level.
type WorldScene struct {
	session      *Session
	sceneChanger SceneChanger

	game    *game.Game
	keys    KeyAdapter
	results *ui.ResultsUI
	quit    bool
	once    sync.Once
	err     error
}

func NewWorldScene(sc SceneChanger, session *Session) *WorldScene {
	return &WorldScene{session: session, sceneChanger: sc}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	if ws.err != nil {
		return ws.err
	}
	if ws.quit {
		return ErrQuit
	}

	if ws.results != nil {
		ws.results.Update()
		// The overlays keep animating while the results panel is up.
		ws.game.Tick(game.InputFrame{})
		return nil
	}

	ws.game.Tick(ws.keys.Poll())
	if ws.game.Ended() {
		ws.finish()
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	if ws.game == nil {
		return
	}
	ws.game.ECS.Draw(screen)
	if ws.results != nil {
		ws.results.UI.Draw(screen)
	}
}

func (ws *WorldScene) configure() {
	g, err := game.New(game.Options{
		LevelName: ws.session.LevelName,
		Level:     ws.session.Level,
		Shapes:    ws.session.Shapes,
	})
	if err != nil {
		ws.err = err
		return
	}
	AddRenderers(g)
	ws.game = g
	log.Info("level started", "level", ws.session.LevelName, "shapes", len(ws.session.Shapes))
}

// AddRenderers registers the draw systems in back-to-front order.
func AddRenderers(g *game.Game) {
	g.ECS.AddRenderer(cfg.Default, systems.DrawLevel)
	g.ECS.AddRenderer(cfg.Default, systems.DrawSprites)
	g.ECS.AddRenderer(cfg.Default, systems.DrawDebug)
	g.ECS.AddRenderer(cfg.Default, systems.DrawHUD)
	g.ECS.AddRenderer(cfg.Default, systems.DrawInstructions)
	g.ECS.AddRenderer(cfg.Default, systems.DrawGameOver)
	g.ECS.AddRenderer(cfg.Default, systems.DrawWin)
}

// finish stores the run and opens the results panel.
func (ws *WorldScene) finish() {
	run := ws.game.Record()
	var history []storage.RunRecord

	if ws.session.Store != nil {
		id, err := ws.session.Store.SaveRun(run)
		if err != nil {
			log.Warn("could not save run", "err", err)
		} else {
			run.ID = id
		}
		history, err = ws.session.Store.RecentRuns(ws.session.LevelName, 6)
		if err != nil {
			log.Warn("could not load run history", "err", err)
		}
		history = excludeRun(history, run.ID)
	}

	if ws.session.Progress != nil {
		ws.session.Progress.Record(run.Level, run.Shape, run.Outcome == storage.OutcomeWin, run.Duration)
		if err := systems.SaveProgress(ws.session.Progress); err != nil {
			log.Warn("could not save progress", "err", err)
		}
	}

	log.Info("run finished", "outcome", run.Outcome, "duration", run.Duration, "kills", run.Kills)

	ws.results = ui.NewResultsUI(
		func() { ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, ws.session)) },
		func() { ws.quit = true },
	)
	ws.results.Show(run, history)
}

func excludeRun(runs []storage.RunRecord, id int64) []storage.RunRecord {
	out := runs[:0]
	for _, r := range runs {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}
