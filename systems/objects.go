package systems

import (
	"sort"

	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/events"
	"github.com/akshatshahh/team-30/shared/gamemath"
	"github.com/akshatshahh/team-30/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Overlaps closer than this are treated as touching, not intersecting.
const contactEpsilon = 1e-6

// DestroyEntity removes e's collision object from the space and then e itself.
// Destroying an already destroyed entity is a no-op. cause is the class of
// the body responsible.
func DestroyEntity(ecs *ecs.ECS, e *donburi.Entry, cause tags.Class) {
	if e == nil || !e.Valid() {
		return
	}

	class := tags.ClassNone
	if e.HasComponent(components.Body) {
		class = components.Body.Get(e).Class
	}
	if e.HasComponent(components.Object) {
		removeFromSpace(ecs, components.Object.Get(e).Object)
	}

	if class == tags.ClassEnemy {
		log.Debug("enemy destroyed", "cause", cause)
		events.EnemyDestroyedEvent.Publish(ecs.World, events.EnemyDestroyed{Cause: cause.String()})
		TriggerScreenShake(ecs, cfg.Camera.ShakeIntensity/2, cfg.Camera.ShakeDuration)
	}
	ecs.World.Remove(e.Entity())
}

func removeFromSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if obj == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(obj)
	}
}

// collect snapshots the entries carrying c so callers can remove
// entities while walking them.
func collect[T any](world donburi.World, c *donburi.ComponentType[T]) []*donburi.Entry {
	var entries []*donburi.Entry
	for e := range c.Iter(world) {
		entries = append(entries, e)
	}
	return entries
}

// nearbyObjects returns the objects in the cells around obj, grown by margin
// on every side. Cell checks are coarse; callers narrow the result.
func nearbyObjects(obj *resolv.Object, margin float64, resolvTags ...string) []*resolv.Object {
	offsets := [][2]float64{{0, 0}, {margin, 0}, {-margin, 0}, {0, margin}, {0, -margin}}
	return objectsAt(obj, offsets, resolvTags...)
}

func objectsAt(obj *resolv.Object, offsets [][2]float64, resolvTags ...string) []*resolv.Object {
	seen := map[*resolv.Object]struct{}{}
	var found []*resolv.Object
	add := func(check *resolv.Collision) {
		if check == nil {
			return
		}
		for _, o := range check.Objects {
			if o == obj {
				continue
			}
			if _, ok := seen[o]; ok {
				continue
			}
			seen[o] = struct{}{}
			found = append(found, o)
		}
	}
	for _, off := range offsets {
		if len(resolvTags) == 0 {
			add(obj.Check(off[0], off[1]))
			continue
		}
		// One check per tag: a multi-tag check only matches objects carrying all of them.
		for _, tag := range resolvTags {
			add(obj.Check(off[0], off[1], tag))
		}
	}
	return found
}

// entryOf returns the live entity linked to a collision object.
func entryOf(o *resolv.Object) (*donburi.Entry, bool) {
	e, ok := o.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() {
		return nil, false
	}
	return e, true
}

// classOf returns the class of the body linked to o.
func classOf(o *resolv.Object) tags.Class {
	e, ok := entryOf(o)
	if !ok || !e.HasComponent(components.Body) {
		return tags.ClassNone
	}
	body := components.Body.Get(e)
	if !body.Enabled {
		return tags.ClassNone
	}
	return body.Class
}

func rectOf(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// touching returns the enabled bodies within skin of obj, ground first and
// otherwise in spawn order.
func touching(obj *resolv.Object, skin float64) []*donburi.Entry {
	self := rectOf(obj).Grow(skin)
	var out []*donburi.Entry
	for _, o := range nearbyObjects(obj, skin) {
		if classOf(o) == tags.ClassNone {
			continue
		}
		if !self.Overlaps(rectOf(o)) {
			continue
		}
		e, _ := entryOf(o)
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := components.Body.Get(out[i]).Class, components.Body.Get(out[j]).Class
		if (ci == tags.ClassGround) != (cj == tags.ClassGround) {
			return ci == tags.ClassGround
		}
		return out[i].Entity().Id() < out[j].Entity().Id()
	})
	return out
}
