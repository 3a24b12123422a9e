package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionFlight
	ActionFire
	ActionPause
	ActionShape1
	ActionShape2
	ActionShape3
	ActionShape4
	ActionShape5
	ActionShape6
	ActionShape7
	ActionShape8
	ActionShape9
	ActionCount // Must be last - used for array sizing
)

// MaxShapes is the number of shape-select actions.
const MaxShapes = int(ActionShape9-ActionShape1) + 1

// ShapeAction returns the shape-select action for a zero-based shape index.
func ShapeAction(i int) ActionID {
	if i < 0 || i >= MaxShapes {
		return ActionNone
	}
	return ActionShape1 + ActionID(i)
}

var actionNames = map[ActionID]string{
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionJump:      "jump",
	ActionFlight:    "flight",
	ActionFire:      "fire",
	ActionPause:     "pause",
	ActionShape1:    "shape1",
	ActionShape2:    "shape2",
	ActionShape3:    "shape3",
	ActionShape4:    "shape4",
	ActionShape5:    "shape5",
	ActionShape6:    "shape6",
	ActionShape7:    "shape7",
	ActionShape8:    "shape8",
	ActionShape9:    "shape9",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction maps a script/action name back to its ActionID.
func ParseAction(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name {
			return id, true
		}
	}
	return ActionNone, false
}

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}},
			ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}},
			ActionJump:      {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}},
			ActionFlight:    {Keys: []ebiten.Key{ebiten.KeySpace}},
			ActionFire:      {Keys: []ebiten.Key{ebiten.KeyF}},
			ActionPause:     {Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}},
			ActionShape1:    {Keys: []ebiten.Key{ebiten.KeyDigit1}},
			ActionShape2:    {Keys: []ebiten.Key{ebiten.KeyDigit2}},
			ActionShape3:    {Keys: []ebiten.Key{ebiten.KeyDigit3}},
			ActionShape4:    {Keys: []ebiten.Key{ebiten.KeyDigit4}},
			ActionShape5:    {Keys: []ebiten.Key{ebiten.KeyDigit5}},
			ActionShape6:    {Keys: []ebiten.Key{ebiten.KeyDigit6}},
			ActionShape7:    {Keys: []ebiten.Key{ebiten.KeyDigit7}},
			ActionShape8:    {Keys: []ebiten.Key{ebiten.KeyDigit8}},
			ActionShape9:    {Keys: []ebiten.Key{ebiten.KeyDigit9}},
		},
	}
}
