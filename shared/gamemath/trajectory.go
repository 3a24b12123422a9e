package gamemath

import (
	gomath "math"

	"github.com/akshatshahh/team-30/config"
	"github.com/yohamta/donburi/features/math"
)

const halfSqrt2 = gomath.Sqrt2 / 2

// FlightParams are the speeds a trajectory is resolved from. The player and
// its projectiles read different fields of the same shape profile.
type FlightParams struct {
	StraightSpeed      float64
	LaunchSpeed        float64
	LaunchAngleDegrees float64
	ZeroGravity        bool

	// Effective vertical acceleration (negative is down), used to advance
	// parabolic paths past their launch instant.
	Gravity float64
}

// Trajectory is the resolved velocity law at one instant.
type Trajectory struct {
	Velocity math.Vec2
	// Constant paths must be re-asserted every tick.
	Constant bool
	// ZeroGravity asks the caller to suspend gravity for the burst.
	ZeroGravity bool
}

// PlayerFlightParams reads the flight fields of a shape profile.
func PlayerFlightParams(s *config.ShapeConfig) FlightParams {
	return FlightParams{
		StraightSpeed:      s.StraightSpeed,
		LaunchSpeed:        s.LaunchSpeed,
		LaunchAngleDegrees: s.LaunchAngleDegrees,
		ZeroGravity:        s.ZeroGravityDuringStraight,
	}
}

// BulletFlightParams reads the bullet fields of a shape profile.
// Bullets reuse the profile's launch angle.
func BulletFlightParams(s *config.ShapeConfig) FlightParams {
	return FlightParams{
		StraightSpeed:      s.BulletStraightSpeed,
		LaunchSpeed:        s.BulletLaunchSpeed,
		LaunchAngleDegrees: s.LaunchAngleDegrees,
		ZeroGravity:        s.BulletZeroGravityDuringStraight,
	}
}

// ResolveFlight returns the velocity for path at elapsed seconds after launch.
// facing is -1 or +1. It is a pure function of its arguments.
func ResolveFlight(path config.FlightPath, p FlightParams, facing, elapsed float64) Trajectory {
	switch path {
	case config.FlightStraight:
		return Trajectory{
			Velocity:    math.Vec2{X: facing * p.StraightSpeed, Y: 0},
			Constant:    true,
			ZeroGravity: p.ZeroGravity,
		}
	case config.FlightParabola:
		rad := p.LaunchAngleDegrees * gomath.Pi / 180
		return Trajectory{
			Velocity: math.Vec2{
				X: gomath.Cos(rad) * p.LaunchSpeed * facing,
				Y: gomath.Sin(rad)*p.LaunchSpeed + p.Gravity*elapsed,
			},
		}
	default:
		return Trajectory{
			Velocity:    math.Vec2{X: facing * halfSqrt2 * p.StraightSpeed, Y: -halfSqrt2 * p.StraightSpeed},
			Constant:    true,
			ZeroGravity: p.ZeroGravity,
		}
	}
}

// Heading returns the angle of v in radians.
func Heading(v math.Vec2) float64 {
	return gomath.Atan2(v.Y, v.X)
}
