package factory

import (
	"github.com/akshatshahh/team-30/archetypes"
	"github.com/akshatshahh/team-30/components"
	"github.com/akshatshahh/team-30/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the world's collision space, if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// newBody builds the collision object for a body of class c and links it to e.
func newBody(e *donburi.Entry, c tags.Class, x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, c.ResolvTag())
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e

	components.Object.SetValue(e, components.ObjectData{Object: obj})
	components.Body.SetValue(e, components.BodyData{
		Class:   c,
		Owner:   e.Entity(),
		Enabled: true,
	})
	return obj
}
