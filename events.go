package chisel

// CellEventType identifies a kind of cell presentation event.
//
// Events carry everything a renderer needs to keep cosmetic overlay state
// (carve fades, island flashes, reveal colors) without the simulation ever
// storing a color itself.
type CellEventType uint8

const (
	EventCarved   CellEventType = iota // a carveable cell was carved open
	EventExposed                        // a protected cell gained a carved orthogonal neighbor
	EventFlash                          // an island cell began its completion flash
	EventRevealed                       // a protected island cell finished its reveal
)

// CellEvent reports a presentation-relevant change to a single cell.
// Events are produced during AdvanceFrame and drained by the renderer.
type CellEvent struct {
	Type CellEventType
	X, Y int
}

// EventSink receives cell events as they are emitted, in addition to the
// per-frame queue drained via [Simulation.DrainEvents]. Used for optional
// ECS integration; see the ecs sub-package.
type EventSink interface {
	EmitCellEvent(event CellEvent)
}
