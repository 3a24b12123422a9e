package game

import (
	"context"
	"testing"
	"time"

	"github.com/akshatshahh/team-30/storage"
	"github.com/stretchr/testify/assert"
)

func TestLoopRunsUntilWin(t *testing.T) {
	g := newTestGame(t, corridor())
	var seen []int
	loop := NewLoop(g, 1000, func(tick int) InputFrame {
		seen = append(seen, tick)
		return InputFrame{Axis: 1}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	run := loop.Run(ctx)

	assert.Equal(t, storage.OutcomeWin, run.Outcome)
	assert.False(t, loop.Running())
	assert.Equal(t, run.Ticks, len(seen))
	assert.Equal(t, 0, seen[0])
}

func TestLoopCancel(t *testing.T) {
	g := newTestGame(t, corridor())
	loop := NewLoop(g, 0, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	run := loop.Run(ctx)

	assert.Equal(t, storage.OutcomeAborted, run.Outcome)
	assert.False(t, loop.Running())
}

func TestLoopStop(t *testing.T) {
	g := newTestGame(t, corridor())
	loop := NewLoop(g, 200, nil)

	done := make(chan storage.RunRecord)
	go func() { done <- loop.Run(context.Background()) }()

	assert.Eventually(t, loop.Running, time.Second, time.Millisecond)
	loop.Stop()
	loop.Stop()

	select {
	case run := <-done:
		assert.Equal(t, storage.OutcomeAborted, run.Outcome)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
}
