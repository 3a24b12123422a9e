package components

import (
	"github.com/akshatshahh/team-30/tags"
	"github.com/yohamta/donburi"
)

// BodyData classifies a simulated body. Class is fixed at spawn; Owner is
// the entity that is destroyed when this body is hit.
type BodyData struct {
	Class   tags.Class
	Owner   donburi.Entity
	Enabled bool
}

var Body = donburi.NewComponentType[BodyData]()
