// Package events declares the gameplay notifications published on the
// world's event bus. Systems publish; the host subscribes.
package events

import (
	"github.com/yohamta/donburi/features/events"
)

type GameOver struct {
	Reason string
}

type Win struct {
	Elapsed float64
}

// EnemyDestroyed is published once per enemy; Cause is the class of the
// body that destroyed it.
type EnemyDestroyed struct {
	Cause string
}

type ProjectileFired struct {
	Shape string
}

type ShapeChanged struct {
	From, To string
}

type FlightStarted struct {
	Shape string
	Path  string
}

var (
	GameOverEvent        = events.NewEventType[GameOver]()
	WinEvent             = events.NewEventType[Win]()
	EnemyDestroyedEvent  = events.NewEventType[EnemyDestroyed]()
	ProjectileFiredEvent = events.NewEventType[ProjectileFired]()
	ShapeChangedEvent    = events.NewEventType[ShapeChanged]()
	FlightStartedEvent   = events.NewEventType[FlightStarted]()
)
