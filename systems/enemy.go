package systems

import (
	"github.com/akshatshahh/team-30/components"
	"github.com/akshatshahh/team-30/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemyHits destroys every enemy overlapped by a player attack.
func UpdateEnemyHits(ecs *ecs.ECS) {
	for _, e := range collect(ecs.World, tags.Enemy) {
		if !e.Valid() {
			continue
		}
		obj := components.Object.Get(e).Object
		self := rectOf(obj)
		for _, o := range nearbyObjects(obj, 0, tags.ResolvPlayerAttack) {
			if classOf(o) != tags.ClassPlayerAttack || !self.Overlaps(rectOf(o)) {
				continue
			}
			DestroyEntity(ecs, e, tags.ClassPlayerAttack)
			break
		}
	}
}
