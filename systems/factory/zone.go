package factory

import (
	"github.com/akshatshahh/team-30/archetypes"
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFinishZone creates the trigger area that wins the level
func CreateFinishZone(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	zone := archetypes.FinishZone.Spawn(ecs)

	obj := newBody(zone, tags.ClassFinishZone, x, y, w, h)
	components.FinishZone.SetValue(zone, components.FinishZoneData{Used: false})

	addToSpace(ecs, obj)
	return zone
}

// CreateLoseZone creates an invisible trigger area that ends the run with reason
func CreateLoseZone(ecs *ecs.ECS, x, y, w, h float64, reason string) *donburi.Entry {
	zone := archetypes.LoseZone.Spawn(ecs)

	if reason == "" {
		reason = cfg.LoseZone.DefaultReason
	}
	obj := newBody(zone, tags.ClassLoseZone, x, y, w, h)
	components.LoseZone.SetValue(zone, components.LoseZoneData{Reason: reason})

	addToSpace(ecs, obj)
	return zone
}
