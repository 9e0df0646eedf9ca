package chisel

import (
	"fmt"
	"math/rand/v2"
	"os"
)

// FrameStats summarizes one frame of simulation for the host loop.
type FrameStats struct {
	BallsUpdated       int // active balls advanced this frame
	BallsCarved        int // carve collisions resolved this frame
	BallsBounced       int // bounce responses this frame (carves included)
	CarveableRemaining int // carveable cells left after this frame
}

// Simulation owns everything for one carving run: the grid, the
// active-ball collection, the islands, the random source, and the
// per-frame event queue. Nothing is shared between independent runs.
//
// All methods must be called from a single goroutine; the entire frame
// executes synchronously inside AdvanceFrame, so between calls the grid
// and ball collection are always self-consistent for an external reader.
type Simulation struct {
	grid    *Grid
	balls   []Ball
	islands []*Island
	params  Params
	rng     *rand.Rand
	events  []CellEvent
	sink    EventSink
	nextID  int
	frame   int
	debug   bool
}

// NewSimulation builds the grid from bitmap, reclassifies isolated
// pockets, computes islands on the pre-carve topology, and spawns the
// initial ball population.
func NewSimulation(bitmap *Bitmap, params Params) (*Simulation, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	grid, err := NewGrid(bitmap, params.Padding)
	if err != nil {
		return nil, err
	}
	grid.MarkIsolatedCarveable()

	seed := params.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	s := &Simulation{
		grid:   grid,
		params: params,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
	// Island topology is static: it is computed on the original
	// classification, before any carving.
	s.islands = FindIslands(grid)
	grid.notify = s.record

	s.balls = make([]Ball, 0, params.BallCount)
	for len(s.balls) < params.BallCount {
		s.balls = append(s.balls, s.spawn())
	}
	return s, nil
}

// spawn creates one ball at a random edge cell.
func (s *Simulation) spawn() Ball {
	s.nextID++
	speed := baseBallSpeed * s.params.SpeedMultiplier
	return spawnBall(s.grid, s.nextID, speed, s.params.BallDiameter, s.rng)
}

// AdvanceFrame runs one frame: every active ball is advanced through
// sub-stepped collision detection, inactive balls are culled, the
// population is topped back up, and island animations progress.
//
// A fault in a single ball deactivates that ball and never aborts the
// frame for the others.
func (s *Simulation) AdvanceFrame() FrameStats {
	if s.events != nil {
		s.events = s.events[:0]
	}
	var stats FrameStats

	for i := range s.balls {
		b := &s.balls[i]
		if !b.Active {
			continue
		}
		carved, bounced, err := s.advanceBall(b)
		if err != nil {
			b.Active = false
			if s.debug {
				fmt.Fprintf(os.Stderr, "[chisel] frame %d: ball deactivated: %v\n", s.frame, err)
			}
			continue
		}
		stats.BallsUpdated++
		stats.BallsCarved += carved
		stats.BallsBounced += bounced
	}

	// Cull inactive balls with swap-removal, then top the population
	// back up at the edge.
	i := 0
	for i < len(s.balls) {
		if !s.balls[i].Active {
			last := len(s.balls) - 1
			s.balls[i] = s.balls[last]
			s.balls = s.balls[:last]
			continue
		}
		i++
	}
	for len(s.balls) < s.params.BallCount {
		s.balls = append(s.balls, s.spawn())
	}

	s.updateIslands()

	stats.CarveableRemaining = s.grid.CarveableCount()
	s.frame++
	if s.debug {
		s.debugLog(stats)
	}
	return stats
}

// IsComplete reports whether every carveable cell has been carved. The
// decision to stop calling AdvanceFrame belongs to the host loop.
func (s *Simulation) IsComplete() bool {
	return s.grid.carveable == 0
}

// Grid returns the simulation's grid for read-only rendering access.
func (s *Simulation) Grid() *Grid {
	return s.grid
}

// Balls returns the live active-ball collection. The slice is reordered
// and resized by AdvanceFrame; it is valid to read between frames only.
func (s *Simulation) Balls() []Ball {
	return s.balls
}

// Islands returns the islands computed at build time.
func (s *Simulation) Islands() []*Island {
	return s.islands
}

// Frame returns the number of frames advanced so far.
func (s *Simulation) Frame() int {
	return s.frame
}

// DrainEvents returns the cell events from the most recent frame and
// resets the queue. Each AdvanceFrame discards the previous frame's
// undrained events, so headless runs never accumulate them; renderers
// call this once per frame to update their overlay state.
func (s *Simulation) DrainEvents() []CellEvent {
	ev := s.events
	s.events = nil
	return ev
}

// SetEventSink forwards every cell event to sink as it is emitted, in
// addition to the DrainEvents queue. Pass nil to detach.
func (s *Simulation) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebug toggles per-frame stats logging to stderr.
func (s *Simulation) SetDebug(enabled bool) {
	s.debug = enabled
}

func (s *Simulation) record(ev CellEvent) {
	s.events = append(s.events, ev)
	if s.sink != nil {
		s.sink.EmitCellEvent(ev)
	}
}
