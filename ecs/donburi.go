// Package ecs provides ECS adapters for easel.
package ecs

import (
	"github.com/phanxgames/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InvalidationEventType is the Donburi event type for easel invalidations.
// Subscribe to this in your ECS systems to learn which nodes need redrawing.
var InvalidationEventType = events.NewEventType[easel.InvalidationRecord]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Invalidations are published to InvalidationEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) easel.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(record easel.InvalidationRecord) {
	InvalidationEventType.Publish(s.world, record)
}
