package ecs

import (
	"testing"

	"github.com/phanxgames/chisel"

	"github.com/yohamta/donburi"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitCellEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []chisel.CellEvent
	CellEventType.Subscribe(world, func(w donburi.World, e chisel.CellEvent) {
		received = append(received, e)
	})

	store.EmitCellEvent(chisel.CellEvent{Type: chisel.EventCarved, X: 3, Y: 7})
	store.EmitCellEvent(chisel.CellEvent{Type: chisel.EventRevealed, X: 4, Y: 7})

	// Events are queued until processed.
	CellEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != chisel.EventCarved || e0.X != 3 || e0.Y != 7 {
		t.Errorf("event 0: %+v", e0)
	}
	e1 := received[1]
	if e1.Type != chisel.EventRevealed || e1.X != 4 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_AsSimulationSink(t *testing.T) {
	world := donburi.NewWorld()

	var carves int
	CellEventType.Subscribe(world, func(w donburi.World, e chisel.CellEvent) {
		if e.Type == chisel.EventCarved {
			carves++
		}
	})

	bitmap, err := chisel.NewBitmap(6, 6, nil)
	if err != nil {
		t.Fatal(err)
	}
	params := chisel.DefaultParams()
	params.Seed = 11
	sim, err := chisel.NewSimulation(bitmap, params)
	if err != nil {
		t.Fatal(err)
	}
	sim.SetEventSink(NewDonburiStore(world))

	for i := 0; i < 200 && !sim.IsComplete(); i++ {
		sim.AdvanceFrame()
	}
	CellEventType.ProcessEvents(world)

	if carves == 0 {
		t.Error("expected carve events to reach the Donburi world")
	}
}
