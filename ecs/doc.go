// Package ecs provides ECS adapters for chisel's cell event stream.
//
// The primary adapter is [NewDonburiStore], which bridges chisel cell
// events (carve, expose, flash, reveal) into a [Donburi] world as typed
// events. Subscribe to [CellEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	sim.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
