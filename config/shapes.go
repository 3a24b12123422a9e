package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yohamta/donburi/features/math"
	"gopkg.in/yaml.v3"
)

//go:embed shapes.yaml
var defaultShapesYAML []byte

// ErrInvalidShape is returned when a shape profile fails validation.
var ErrInvalidShape = errors.New("invalid shape profile")

// FlightPath selects the velocity law used during a flight burst or by a projectile.
type FlightPath int

const (
	FlightStraight FlightPath = iota
	FlightParabola
	FlightAngleDown45
)

var flightPathNames = [...]string{
	FlightStraight:    "straight",
	FlightParabola:    "parabola",
	FlightAngleDown45: "angle_down_45",
}

func (p FlightPath) String() string {
	if p < 0 || int(p) >= len(flightPathNames) {
		return fmt.Sprintf("FlightPath(%d)", int(p))
	}
	return flightPathNames[p]
}

// ConstantVelocity reports whether the path holds a fixed velocity for its whole burst.
func (p FlightPath) ConstantVelocity() bool {
	return p == FlightStraight || p == FlightAngleDown45
}

// ParseFlightPath parses a flight path name, case-insensitively.
func ParseFlightPath(s string) (FlightPath, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range flightPathNames {
		if name == key {
			return FlightPath(i), nil
		}
	}
	return FlightStraight, fmt.Errorf("unknown flight path %q", s)
}

func (p *FlightPath) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseFlightPath(value.Value)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p FlightPath) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

// ShapeConfig is the immutable parameter bundle for one playable form.
// Loaded once and shared by pointer; never mutate after LoadShapes returns.
type ShapeConfig struct {
	Name   string    `yaml:"name"`
	Sprite string    `yaml:"sprite"`
	Scale  math.Vec2 `yaml:"scale"`

	ColliderSize   math.Vec2 `yaml:"collider_size"`
	ColliderOffset math.Vec2 `yaml:"collider_offset"`

	// Movement
	MoveSpeed            float64 `yaml:"move_speed"`
	AirControlMultiplier float64 `yaml:"air_control_multiplier"`
	JumpVelocity         float64 `yaml:"jump_velocity"`
	GravityScale         float64 `yaml:"gravity_scale"`
	MaxSpeed             float64 `yaml:"max_speed"` // vertical clamp

	// Flight
	FlightPath                FlightPath `yaml:"flight_path"`
	SustainSeconds            float64    `yaml:"sustain_seconds"`
	StraightSpeed             float64    `yaml:"straight_speed"`
	LaunchSpeed               float64    `yaml:"launch_speed"`
	LaunchAngleDegrees        float64    `yaml:"launch_angle_degrees"`
	ZeroGravityDuringStraight bool       `yaml:"zero_gravity_during_straight"`

	// Bullets
	BulletSprite                    string  `yaml:"bullet_sprite"`
	BulletStraightSpeed             float64 `yaml:"bullet_straight_speed"`
	BulletLaunchSpeed               float64 `yaml:"bullet_launch_speed"`
	BulletLifetime                  float64 `yaml:"bullet_lifetime"`
	BulletZeroGravityDuringStraight bool    `yaml:"bullet_zero_gravity_during_straight"`
}

// Validate checks the profile for values the controller cannot work with.
func (s *ShapeConfig) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidShape)
	case s.ColliderSize.X <= 0 || s.ColliderSize.Y <= 0:
		return fmt.Errorf("%w: %s: collider size must be positive", ErrInvalidShape, s.Name)
	case s.Scale.X <= 0 || s.Scale.Y <= 0:
		return fmt.Errorf("%w: %s: scale must be positive", ErrInvalidShape, s.Name)
	case s.LaunchAngleDegrees < 0 || s.LaunchAngleDegrees > 90:
		return fmt.Errorf("%w: %s: launch angle %.1f outside [0, 90]", ErrInvalidShape, s.Name, s.LaunchAngleDegrees)
	case s.SustainSeconds <= 0:
		return fmt.Errorf("%w: %s: sustain seconds must be positive", ErrInvalidShape, s.Name)
	case s.MaxSpeed <= 0:
		return fmt.Errorf("%w: %s: max speed must be positive", ErrInvalidShape, s.Name)
	case s.FlightPath < FlightStraight || s.FlightPath > FlightAngleDown45:
		return fmt.Errorf("%w: %s: unknown flight path", ErrInvalidShape, s.Name)
	case s.MoveSpeed < 0 || s.AirControlMultiplier < 0 || s.GravityScale < 0:
		return fmt.Errorf("%w: %s: movement values must not be negative", ErrInvalidShape, s.Name)
	}
	return nil
}

// ShapeSet is the on-disk layout of a shapes file.
type ShapeSet struct {
	Shapes []ShapeConfig `yaml:"shapes"`
}

// ParseShapes decodes and validates a shapes document.
func ParseShapes(data []byte) ([]*ShapeConfig, error) {
	var set ShapeSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse shapes: %w", err)
	}
	if len(set.Shapes) == 0 {
		return nil, fmt.Errorf("%w: no shapes defined", ErrInvalidShape)
	}
	if len(set.Shapes) > MaxShapes {
		return nil, fmt.Errorf("%w: %d shapes defined, at most %d are selectable", ErrInvalidShape, len(set.Shapes), MaxShapes)
	}

	shapes := make([]*ShapeConfig, 0, len(set.Shapes))
	for i := range set.Shapes {
		s := &set.Shapes[i]
		if s.Scale.X == 0 && s.Scale.Y == 0 {
			s.Scale = math.Vec2{X: 1, Y: 1}
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// DefaultShapes returns the embedded shape profiles.
func DefaultShapes() []*ShapeConfig {
	shapes, err := ParseShapes(defaultShapesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded shapes.yaml is invalid: %v", err))
	}
	return shapes
}

// LoadShapes loads shape profiles.
// Search order: customPath -> ~/.shapeshift/shapes.yaml -> ./configs/shapes.yaml -> embedded default.
// An explicit path must exist and be valid; discovered files that fail to parse are an error too.
func LoadShapes(customPath string) ([]*ShapeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read shapes %s: %w", customPath, err)
		}
		shapes, err := ParseShapes(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", customPath, err)
		}
		return shapes, nil
	}

	for _, path := range []string{userConfigPath("shapes.yaml"), filepath.Join("configs", "shapes.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		shapes, err := ParseShapes(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return shapes, nil
	}

	return DefaultShapes(), nil
}

func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "."+Storage.AppName, name)
}
