package gamemath

import (
	gomath "math"
	"testing"

	"github.com/akshatshahh/team-30/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestResolveFlightScenarios(t *testing.T) {
	tests := []struct {
		name     string
		path     config.FlightPath
		params   FlightParams
		facing   float64
		want     math.Vec2
		constant bool
		zeroG    bool
	}{
		{
			name:   "parabola 60 degrees facing right",
			path:   config.FlightParabola,
			params: FlightParams{LaunchSpeed: 10, LaunchAngleDegrees: 60, ZeroGravity: true},
			facing: 1,
			want:   math.Vec2{X: 5.0, Y: 8.66},
		},
		{
			name:     "angle down 45 facing left",
			path:     config.FlightAngleDown45,
			params:   FlightParams{StraightSpeed: 10, ZeroGravity: true},
			facing:   -1,
			want:     math.Vec2{X: -7.07, Y: -7.07},
			constant: true,
			zeroG:    true,
		},
		{
			name:     "straight facing left keeps gravity",
			path:     config.FlightStraight,
			params:   FlightParams{StraightSpeed: 12},
			facing:   -1,
			want:     math.Vec2{X: -12, Y: 0},
			constant: true,
		},
		{
			name:   "parabola flat launch",
			path:   config.FlightParabola,
			params: FlightParams{LaunchSpeed: 4, LaunchAngleDegrees: 0},
			facing: -1,
			want:   math.Vec2{X: -4, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveFlight(tt.path, tt.params, tt.facing, 0)
			assert.InDelta(t, tt.want.X, got.Velocity.X, 0.01)
			assert.InDelta(t, tt.want.Y, got.Velocity.Y, 0.01)
			assert.Equal(t, tt.constant, got.Constant)
			assert.Equal(t, tt.zeroG, got.ZeroGravity)
		})
	}
}

func TestResolveFlightIsPure(t *testing.T) {
	p := FlightParams{StraightSpeed: 7, LaunchSpeed: 9, LaunchAngleDegrees: 33, Gravity: -30}
	for _, path := range []config.FlightPath{config.FlightStraight, config.FlightParabola, config.FlightAngleDown45} {
		a := ResolveFlight(path, p, 1, 0.4)
		b := ResolveFlight(path, p, 1, 0.4)
		assert.Equal(t, a, b, path.String())
	}
}

func TestConstantPathsIgnoreElapsed(t *testing.T) {
	p := FlightParams{StraightSpeed: 10, Gravity: -300}
	for _, path := range []config.FlightPath{config.FlightStraight, config.FlightAngleDown45} {
		start := ResolveFlight(path, p, 1, 0)
		for _, elapsed := range []float64{0.1, 0.5, 2} {
			got := ResolveFlight(path, p, 1, elapsed)
			assert.Equal(t, start.Velocity, got.Velocity)
			assert.InDelta(t, 10, Length(got.Velocity), 1e-9)
		}
	}
}

func TestParabolaArc(t *testing.T) {
	p := FlightParams{LaunchSpeed: 10, LaunchAngleDegrees: 45, Gravity: -9.81}
	prev := ResolveFlight(config.FlightParabola, p, 1, 0)
	for step := 1; step <= 20; step++ {
		cur := ResolveFlight(config.FlightParabola, p, 1, float64(step)*0.05)
		assert.InDelta(t, prev.Velocity.X, cur.Velocity.X, 1e-9, "horizontal component is invariant")
		assert.Less(t, cur.Velocity.Y, prev.Velocity.Y, "vertical component decreases")
		prev = cur
	}
}

func TestFlightParamsFromShape(t *testing.T) {
	s := &config.ShapeConfig{
		StraightSpeed:                   1,
		LaunchSpeed:                     2,
		LaunchAngleDegrees:              30,
		ZeroGravityDuringStraight:       true,
		BulletStraightSpeed:             3,
		BulletLaunchSpeed:               4,
		BulletZeroGravityDuringStraight: false,
	}
	assert.Equal(t, FlightParams{StraightSpeed: 1, LaunchSpeed: 2, LaunchAngleDegrees: 30, ZeroGravity: true}, PlayerFlightParams(s))
	assert.Equal(t, FlightParams{StraightSpeed: 3, LaunchSpeed: 4, LaunchAngleDegrees: 30}, BulletFlightParams(s))
}

func TestHeading(t *testing.T) {
	assert.InDelta(t, 0, Heading(math.Vec2{X: 1}), 1e-9)
	assert.InDelta(t, gomath.Pi, Heading(math.Vec2{X: -1}), 1e-9)
	assert.InDelta(t, -gomath.Pi/4, Heading(math.Vec2{X: 1, Y: -1}), 1e-9)
}
