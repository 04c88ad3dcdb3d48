package ecs

import (
	"github.com/phanxgames/pinpoint"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PopupEventType is the Donburi event type for pinpoint popup events.
var PopupEventType = events.NewEventType[pinpoint.PopupEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Popup events are published to PopupEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) pinpoint.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitPopupEvent(event pinpoint.PopupEvent) {
	PopupEventType.Publish(s.world, event)
}
