package systems

import (
	"github.com/akshatshahh/team-30/components"
	"github.com/akshatshahh/team-30/systems/factory"
	"github.com/akshatshahh/team-30/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// IsGrounded reports whether the player's ground sensor overlaps a body
// carrying one of the sensor's mask tags. The space is queried on every call.
func IsGrounded(e *donburi.Entry) bool {
	if e == nil || !e.Valid() || !e.HasComponent(components.Player) {
		return false
	}
	player := components.Player.Get(e)
	gc := player.GroundCheck
	if gc.Radius <= 0 || len(gc.Mask) == 0 {
		return false
	}
	obj := components.Object.Get(e).Object
	if obj == nil || obj.Space == nil {
		return false
	}
	return OverlapCircle(obj, factory.GroundCheckCenter(e), gc.Radius, gc.Mask...)
}

// OverlapCircle reports whether a circle overlaps any object near anchor that
// carries one of resolvTags. anchor must be registered in a space.
func OverlapCircle(anchor *resolv.Object, center math.Vec2, radius float64, resolvTags ...string) bool {
	// Shift the anchor's own box onto the circle for the cell lookup.
	dx := center.X - (anchor.X + anchor.W/2)
	dy := center.Y - (anchor.Y + anchor.H/2)
	candidates := objectsAt(anchor, [][2]float64{{0, 0}, {dx, dy}}, resolvTags...)

	circle := resolv.NewCircle(center.X, center.Y, radius)
	for _, o := range candidates {
		if _, ok := entryOf(o); ok && classOf(o) == tags.ClassNone {
			continue
		}
		rect := resolv.NewRectangle(o.X, o.Y, o.W, o.H)
		if circle.Intersection(0, 0, rect) != nil {
			return true
		}
	}
	return false
}
