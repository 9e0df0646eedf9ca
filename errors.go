package chisel

import "fmt"

// GridError reports malformed grid input or an illegal cell state
// transition. Callers must not retry the failed operation without
// correcting the request.
type GridError struct {
	Op     string // operation that failed: "bitmap", "build", "set state"
	X, Y   int    // cell coordinates, or -1 when no single cell is involved
	Reason string
}

func (e *GridError) Error() string {
	if e.X < 0 && e.Y < 0 {
		return fmt.Sprintf("grid %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("grid %s at (%d, %d): %s", e.Op, e.X, e.Y, e.Reason)
}

// BallError reports invalid kinematic parameters at ball construction or
// a ball whose state has become non-finite during simulation.
type BallError struct {
	ID     int
	Reason string
}

func (e *BallError) Error() string {
	return fmt.Sprintf("ball %d: %s", e.ID, e.Reason)
}

// RayCastError reports out-of-domain inputs to the ray/square routines,
// such as non-finite endpoints.
type RayCastError struct {
	Reason string
}

func (e *RayCastError) Error() string {
	return "ray cast: " + e.Reason
}
