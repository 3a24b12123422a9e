// Package leveldata provides TMX level parsing.
// It has no dependencies on ebitengine, donburi or resolv.
// All coordinates are converted to world space: pixels, origin at the
// bottom-left of the map, +Y up.
package leveldata

// Level holds everything the game needs to populate a world from a TMX file.
type Level struct {
	Name        string
	Width       int
	Height      int
	Ground      []Rect
	Enemies     []EnemySpawn
	FinishZones []Rect
	LoseZones   []LoseZone
	PlayerSpawn Point
}

// Rect is an axis-aligned box anchored at its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Point is a world-space position.
type Point struct {
	X, Y float64
}

// EnemySpawn is an enemy body plus its optional patrol endpoints.
// Endpoints are the x coordinate the enemy's center travels to.
type EnemySpawn struct {
	Rect
	PatrolLeft  *float64
	PatrolRight *float64
	Speed       float64 // 0 uses the configured default
	WaitAtEdge  float64 // 0 uses the configured default
}

// LoseZone is a trigger area that ends the run with Reason.
type LoseZone struct {
	Rect
	Reason string
}
