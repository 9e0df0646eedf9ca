package ecs

import (
	"github.com/phanxgames/chisel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CellEventType is the Donburi event type for chisel cell events.
// Subscribe to this in your ECS systems to react to carves, exposures,
// island flashes, and reveals.
var CellEventType = events.NewEventType[chisel.CellEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Cell events are published to CellEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) chisel.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitCellEvent(event chisel.CellEvent) {
	CellEventType.Publish(s.world, event)
}
