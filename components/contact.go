package components

import "github.com/yohamta/donburi"

// ContactData tracks which bodies a simulated body is touching so contact
// handlers only fire on the tick a contact begins.
type ContactData struct {
	Touching map[donburi.Entity]struct{}
	Entered  []donburi.Entity
}

var Contact = donburi.NewComponentType[ContactData]()
