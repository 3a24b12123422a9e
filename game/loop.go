package game

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akshatshahh/team-30/storage"
	"github.com/charmbracelet/log"
)

// InputSource supplies the input for each tick of a real-time loop.
type InputSource func(tick int) InputFrame

// Loop advances a game on a wall-clock ticker.
type Loop struct {
	game     *Game
	tickRate int
	input    InputSource
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewLoop(g *Game, tickRate int, input InputSource) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		game:     g,
		tickRate: tickRate,
		input:    input,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until the run ends, ctx is cancelled or Stop is called.
func (l *Loop) Run(ctx context.Context) storage.RunRecord {
	l.running.Store(true)
	defer l.running.Store(false)
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Info("game loop started", "tps", l.tickRate, "level", l.game.LevelName)

	tick := 0
	for {
		select {
		case <-ctx.Done():
			log.Info("game loop cancelled")
			return l.game.Record()
		case <-l.stopChan:
			log.Info("game loop stopped")
			return l.game.Record()
		case <-ticker.C:
			var frame InputFrame
			if l.input != nil {
				frame = l.input(tick)
			}
			l.game.Tick(frame)
			tick++
			if l.game.Ended() {
				return l.game.Record()
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

func (l *Loop) Running() bool {
	return l.running.Load()
}
