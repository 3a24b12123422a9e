package game

import (
	"testing"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "steps: [at: 1"},
		{"negative max ticks", "max_ticks: -1"},
		{"negative step", "steps:\n  - at: -3\n"},
		{"unknown action", "steps:\n  - at: 3\n    tap: [dash]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.doc))
			assert.Error(t, err)
		})
	}

	_, err := ParseScript([]byte("steps:\n  - at: 0\n    down: [warp]\n"))
	assert.ErrorIs(t, err, ErrInvalidScript)
}

func TestParseScriptDefaults(t *testing.T) {
	s, err := ParseScript([]byte("level: level1\n"))
	require.NoError(t, err)
	assert.Equal(t, "level1", s.Level)
	assert.Equal(t, DefaultMaxTicks, s.MaxTicks)
	assert.Empty(t, s.Steps)
}

func TestLoadScript(t *testing.T) {
	s, err := LoadScript("testdata/walk_right.yaml")
	require.NoError(t, err)
	assert.Equal(t, "level1", s.Level)
	assert.Equal(t, 900, s.MaxTicks)
	assert.Len(t, s.Steps, 5)

	_, err = LoadScript("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestScriptFrames(t *testing.T) {
	s, err := ParseScript([]byte(`
max_ticks: 6
steps:
  - at: 4
    axis: 0
    up: [flight]
  - at: 1
    axis: -1
    down: [flight]
  - at: 1
    tap: [jump]
`))
	require.NoError(t, err)

	var frames []InputFrame
	s.Frames(func(tick int, frame InputFrame) bool {
		assert.Equal(t, len(frames), tick)
		frames = append(frames, frame)
		return true
	})

	require.Len(t, frames, 6)
	assert.Equal(t, []float64{0, -1, -1, -1, 0, 0}, []float64{
		frames[0].Axis, frames[1].Axis, frames[2].Axis, frames[3].Axis, frames[4].Axis, frames[5].Axis,
	})
	assert.Equal(t, []components.InputEvent{
		{Action: cfg.ActionFlight, Edge: components.EdgeDown},
		{Action: cfg.ActionJump, Edge: components.EdgeDown},
		{Action: cfg.ActionJump, Edge: components.EdgeUp},
	}, frames[1].Events)
	assert.Equal(t, []components.InputEvent{
		{Action: cfg.ActionFlight, Edge: components.EdgeUp},
	}, frames[4].Events)
	assert.Empty(t, frames[2].Events)
}

func TestScriptFramesStopEarly(t *testing.T) {
	s, err := ParseScript([]byte("max_ticks: 100\n"))
	require.NoError(t, err)

	n := 0
	s.Frames(func(tick int, _ InputFrame) bool {
		n++
		return tick < 9
	})
	assert.Equal(t, 10, n)
}

func TestRunScriptStopsAtWin(t *testing.T) {
	s, err := ParseScript([]byte(`
max_ticks: 600
steps:
  - at: 0
    axis: 1
  - at: 10
    tap: [fire]
`))
	require.NoError(t, err)
	g := newTestGame(t, corridor())

	run := RunScript(g, s)

	assert.Equal(t, storage.OutcomeWin, run.Outcome)
	assert.Less(t, run.Ticks, 600)
	assert.Equal(t, 1, run.Shots)
}

func TestRunScriptTimesOut(t *testing.T) {
	s, err := ParseScript([]byte("max_ticks: 30\n"))
	require.NoError(t, err)
	g := newTestGame(t, corridor())

	run := RunScript(g, s)

	assert.Equal(t, storage.OutcomeAborted, run.Outcome)
	assert.Equal(t, 30, run.Ticks)
}
