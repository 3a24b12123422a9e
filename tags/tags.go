package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Ground     = donburi.NewTag().SetName("Ground")
	Projectile = donburi.NewTag().SetName("Projectile")
	FinishZone = donburi.NewTag().SetName("FinishZone")
	LoseZone   = donburi.NewTag().SetName("LoseZone")
)

// Resolv tags for physics collision
const (
	ResolvGround       = "ground"
	ResolvPlayer       = "player"
	ResolvEnemy        = "enemy"
	ResolvPlayerAttack = "player_attack"
	ResolvFinishZone   = "finish_zone"
	ResolvLoseZone     = "lose_zone"
)

// Class is the gameplay classification a body carries for its whole life.
// Contact handling switches on it instead of inspecting tags at runtime.
type Class int

const (
	ClassNone Class = iota
	ClassPlayer
	ClassEnemy
	ClassGround
	ClassPlayerAttack
	ClassFinishZone
	ClassLoseZone
)

var classNames = [...]string{
	ClassNone:         "none",
	ClassPlayer:       "player",
	ClassEnemy:        "enemy",
	ClassGround:       "ground",
	ClassPlayerAttack: "player_attack",
	ClassFinishZone:   "finish_zone",
	ClassLoseZone:     "lose_zone",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// ResolvTag returns the resolv tag objects of this class are registered with.
func (c Class) ResolvTag() string {
	switch c {
	case ClassPlayer:
		return ResolvPlayer
	case ClassEnemy:
		return ResolvEnemy
	case ClassGround:
		return ResolvGround
	case ClassPlayerAttack:
		return ResolvPlayerAttack
	case ClassFinishZone:
		return ResolvFinishZone
	case ClassLoseZone:
		return ResolvLoseZone
	}
	return ""
}
