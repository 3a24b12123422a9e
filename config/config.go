package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Default is the only render/system layer used by the game.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// PhysicsConfig contains physics-related configuration values.
// World units are pixels with +Y pointing up.
type PhysicsConfig struct {
	UnitScale float64 // pixels per design unit
	Gravity   float64 // px/s^2, multiplied by each body's gravity scale
	TickDelta float64 // seconds advanced per simulation tick

	// Horizontal velocity easing toward the input target (px/s per second)
	MoveEaseRate float64

	// Distance within which two bodies are still considered in contact
	ContactSkin float64

	// resolv space cell size
	CellSize int
}

// PlayerConfig contains player controller configuration values
type PlayerConfig struct {
	GroundCheckOffset math.Vec2 // relative to the pivot, multiplied by the shape scale
	GroundCheckRadius float64
	GroundMask        []string // resolv tags counted as ground

	MuzzleDistance  float64 // fallback spawn distance ahead of the pivot when no muzzle is set
	FacingThreshold float64 // minimum |axis| to update facing
	EnemyHitReason  string
}

// ProjectileConfig contains projectile configuration values
type ProjectileConfig struct {
	Width           float64
	Height          float64
	KillSpeedClamp  float64
	MinLifetime     float64
	DestroyOnGround bool
	GravityScale    float64 // used unless the flight path overrides it

	// Horizontal speed used when a shape's bullet trajectory resolves to zero
	FallbackSpeed float64
}

// PatrolConfig contains enemy patrol configuration values
type PatrolConfig struct {
	Speed         float64
	WaitAtEdge    float64
	ArriveEpsilon float64
	Width         float64
	Height        float64
}

// GameOverConfig contains game over overlay configuration values
type GameOverConfig struct {
	Title           string
	PauseOnGameOver bool
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
}

// WinConfig contains win overlay configuration values
type WinConfig struct {
	Text        string
	PauseOnWin  bool
	FadeSeconds float32
	TextColor   color.RGBA
}

// LoseZoneConfig contains lose zone configuration values
type LoseZoneConfig struct {
	DefaultReason string
}

// InstructionsConfig contains the start-of-level instructions overlay values
type InstructionsConfig struct {
	Lines         []string
	AutoHideAfter float64 // seconds of unscaled time, 0 disables
	AxisThreshold float64
	TextColor     color.RGBA
}

// StorageConfig contains save data and run history locations
type StorageConfig struct {
	AppName string
	DBPath  string
}

// CameraConfig contains camera follow configuration values
type CameraConfig struct {
	FollowSmoothing         float64
	LookAheadDistanceX      float64
	LookAheadSmoothing      float64
	LookAheadSpeedThreshold float64

	ShakeIntensity float64 // pixels
	ShakeDuration  int     // ticks
}

// EffectsConfig contains the visual feedback values
type EffectsConfig struct {
	SquashLerpSpeed float64
	JumpStretchX    float64
	JumpStretchY    float64
	ShapeSquashX    float64
	ShapeSquashY    float64
	ShapeFlashTicks int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawColliders   bool
	DrawGroundCheck bool
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Projectile ProjectileConfig
var Patrol PatrolConfig
var GameOver GameOverConfig
var Win WinConfig
var LoseZone LoseZoneConfig
var Instructions InstructionsConfig
var Storage StorageConfig
var Camera CameraConfig
var Effects EffectsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Sky          = color.RGBA{R: 24, G: 26, B: 38, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
		Title:  "Shapeshift",
	}

	unit := 32.0

	Physics = PhysicsConfig{
		UnitScale:    unit,
		Gravity:      -9.81 * unit,
		TickDelta:    1.0 / 60.0,
		MoveEaseRate: 100 * unit,
		ContactSkin:  1.0,
		CellSize:     16,
	}

	Player = PlayerConfig{
		GroundCheckOffset: math.Vec2{X: 0, Y: -0.5 * unit},
		GroundCheckRadius: 0.1 * unit,
		GroundMask:        []string{"ground"},
		MuzzleDistance:    0.5 * unit,
		FacingThreshold:   0.01,
		EnemyHitReason:    "Hit an enemy!",
	}

	Projectile = ProjectileConfig{
		Width:           0.3 * unit,
		Height:          0.3 * unit,
		KillSpeedClamp:  50 * unit,
		MinLifetime:     0.1,
		DestroyOnGround: true,
		GravityScale:    1,
		FallbackSpeed:   10 * unit,
	}

	Patrol = PatrolConfig{
		Speed:         2 * unit,
		WaitAtEdge:    0.2,
		ArriveEpsilon: 0.05 * unit,
		Width:         0.9 * unit,
		Height:        0.9 * unit,
	}

	GameOver = GameOverConfig{
		Title:           "GAME OVER",
		PauseOnGameOver: true,
		BackgroundColor: BlackOverlay,
		TitleColor:      LightRed,
	}

	Win = WinConfig{
		Text:        "CONGRATULATIONS!",
		PauseOnWin:  false,
		FadeSeconds: 0.6,
		TextColor:   BrightGreen,
	}

	LoseZone = LoseZoneConfig{
		DefaultReason: "You fell!",
	}

	Instructions = InstructionsConfig{
		Lines: []string{
			"A/D or arrows to move, W/Up to jump",
			"1/2/3 to change shape",
			"Hold SPACE to fly, F to fire",
			"Hit enemies only while flying!",
		},
		AutoHideAfter: 6,
		AxisThreshold: 0.01,
		TextColor:     White,
	}

	Storage = StorageConfig{
		AppName: "shapeshift",
		DBPath:  "~/.shapeshift/runs.db",
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      2 * unit,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.5 * unit,
		ShakeIntensity:          6,
		ShakeDuration:           12,
	}

	Effects = EffectsConfig{
		SquashLerpSpeed: 0.2,
		JumpStretchX:    0.8,
		JumpStretchY:    1.25,
		ShapeSquashX:    1.3,
		ShapeSquashY:    0.7,
		ShapeFlashTicks: 6,
	}

	Debug = DebugConfig{
		DrawColliders:   false,
		DrawGroundCheck: false,
	}
}
