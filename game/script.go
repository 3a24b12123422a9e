package game

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/storage"
	"gopkg.in/yaml.v3"
)

// DefaultMaxTicks bounds a scripted run that sets no limit of its own.
const DefaultMaxTicks = 60 * 60

var ErrInvalidScript = errors.New("invalid input script")

// Script is a deterministic input recording for a headless run.
type Script struct {
	Level    string       `yaml:"level"`
	Shapes   string       `yaml:"shapes"`
	MaxTicks int          `yaml:"max_ticks"`
	Steps    []ScriptStep `yaml:"steps"`
}

// ScriptStep is the input applied at tick At. Axis holds until a later step
// changes it. Tap presses and releases within the same tick.
type ScriptStep struct {
	At   int      `yaml:"at"`
	Axis *float64 `yaml:"axis"`
	Down []string `yaml:"down"`
	Up   []string `yaml:"up"`
	Tap  []string `yaml:"tap"`
}

// ParseScript decodes and validates a script document.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if s.MaxTicks < 0 {
		return nil, fmt.Errorf("%w: max_ticks must not be negative", ErrInvalidScript)
	}
	if s.MaxTicks == 0 {
		s.MaxTicks = DefaultMaxTicks
	}
	for _, step := range s.Steps {
		if step.At < 0 {
			return nil, fmt.Errorf("%w: step at tick %d", ErrInvalidScript, step.At)
		}
		for _, names := range [][]string{step.Down, step.Up, step.Tap} {
			for _, name := range names {
				if _, ok := cfg.ParseAction(name); !ok {
					return nil, fmt.Errorf("%w: unknown action %q at tick %d", ErrInvalidScript, name, step.At)
				}
			}
		}
	}
	sort.SliceStable(s.Steps, func(i, j int) bool { return s.Steps[i].At < s.Steps[j].At })
	return &s, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	return ParseScript(data)
}

// Frames expands the script into per-tick input, calling fn for every tick
// until fn returns false or MaxTicks is reached.
func (s *Script) Frames(fn func(tick int, frame InputFrame) bool) {
	axis := 0.0
	next := 0
	for tick := 0; tick < s.MaxTicks; tick++ {
		var frame InputFrame
		for next < len(s.Steps) && s.Steps[next].At == tick {
			step := s.Steps[next]
			if step.Axis != nil {
				axis = *step.Axis
			}
			frame.Events = append(frame.Events, stepEvents(step)...)
			next++
		}
		frame.Axis = axis
		if !fn(tick, frame) {
			return
		}
	}
}

func stepEvents(step ScriptStep) []components.InputEvent {
	var out []components.InputEvent
	add := func(name string, edge components.Edge) {
		if id, ok := cfg.ParseAction(name); ok {
			out = append(out, components.InputEvent{Action: id, Edge: edge})
		}
	}
	for _, name := range step.Down {
		add(name, components.EdgeDown)
	}
	for _, name := range step.Tap {
		add(name, components.EdgeDown)
		add(name, components.EdgeUp)
	}
	for _, name := range step.Up {
		add(name, components.EdgeUp)
	}
	return out
}

// RunScript plays s against g as fast as possible and returns the run record.
// The run stops at the first win or game over.
func RunScript(g *Game, s *Script) storage.RunRecord {
	s.Frames(func(_ int, frame InputFrame) bool {
		g.Tick(frame)
		return !g.Ended()
	})
	return g.Record()
}
