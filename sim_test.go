package chisel

import (
	"testing"
)

func newTestBitmap(t *testing.T, width, height int, protected [][2]int) *Bitmap {
	t.Helper()
	bm, err := NewBitmap(width, height, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range protected {
		bm.Set(p[0], p[1], true)
	}
	return bm
}

func testParams(seed uint64) Params {
	p := DefaultParams()
	p.BallCount = 10
	p.Seed = seed
	return p
}

func TestNewSimulation(t *testing.T) {
	bm := newTestBitmap(t, 6, 6, nil)
	s, err := NewSimulation(bm, testParams(7))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(s.Balls()); got != 10 {
		t.Errorf("initial population = %d, want 10", got)
	}
	if got := s.Grid().CarveableCount(); got != 36 {
		t.Errorf("carveable count = %d, want 36", got)
	}
	if len(s.Islands()) != 0 {
		t.Errorf("open grid produced %d islands", len(s.Islands()))
	}
	if s.IsComplete() {
		t.Error("fresh simulation should not be complete")
	}
}

func TestNewSimulationValidation(t *testing.T) {
	bm := newTestBitmap(t, 4, 4, nil)

	p := testParams(1)
	p.BallCount = 0
	if _, err := NewSimulation(bm, p); err == nil {
		t.Error("expected an error for zero ball count")
	}

	p = testParams(1)
	p.DeviationAngle = 90
	if _, err := NewSimulation(bm, p); err == nil {
		t.Error("expected an error for out-of-range deviation")
	}

	if _, err := NewSimulation(nil, testParams(1)); err == nil {
		t.Error("expected an error for a nil bitmap")
	}
}

func TestAdvanceFramePopulation(t *testing.T) {
	bm := newTestBitmap(t, 6, 6, nil)
	s, err := NewSimulation(bm, testParams(3))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 200; i++ {
		stats := s.AdvanceFrame()
		if got := len(s.Balls()); got != 10 {
			t.Fatalf("frame %d: population = %d, want 10", i, got)
		}
		if stats.BallsUpdated > 10 {
			t.Fatalf("frame %d: updated %d balls out of 10", i, stats.BallsUpdated)
		}
		for _, b := range s.Balls() {
			if !b.Active {
				t.Fatalf("frame %d: inactive ball %d survived the cull", i, b.ID)
			}
		}
	}
	if s.Frame() != 200 {
		t.Errorf("frame counter = %d, want 200", s.Frame())
	}
}

func TestDrainEvents(t *testing.T) {
	bm := newTestBitmap(t, 6, 6, nil)
	s, err := NewSimulation(bm, testParams(5))
	if err != nil {
		t.Fatal(err)
	}

	// Run until a frame carves something, then drain that frame's queue.
	carvedFrame := false
	for i := 0; i < 2000; i++ {
		if stats := s.AdvanceFrame(); stats.BallsCarved > 0 {
			carvedFrame = true
			break
		}
	}
	if !carvedFrame {
		t.Fatal("no carving frame in 2000 frames")
	}
	ev := s.DrainEvents()
	if len(ev) == 0 {
		t.Fatal("carving frame produced no events")
	}
	g := s.Grid()
	for _, e := range ev {
		if !g.InBounds(e.X, e.Y) {
			t.Errorf("event %+v outside the grid", e)
		}
	}
	if got := s.DrainEvents(); len(got) != 0 {
		t.Errorf("second drain returned %d events, want 0", len(got))
	}
}

type recordingSink struct {
	events []CellEvent
}

func (r *recordingSink) EmitCellEvent(ev CellEvent) {
	r.events = append(r.events, ev)
}

func TestEventSink(t *testing.T) {
	bm := newTestBitmap(t, 6, 6, nil)
	s, err := NewSimulation(bm, testParams(5))
	if err != nil {
		t.Fatal(err)
	}
	sink := &recordingSink{}
	s.SetEventSink(sink)

	for i := 0; i < 2000 && len(sink.events) == 0; i++ {
		s.AdvanceFrame()
	}
	if len(sink.events) == 0 {
		t.Fatal("sink received no events in 2000 frames")
	}
	for _, ev := range sink.events {
		if ev.Type != EventCarved && ev.Type != EventExposed {
			t.Fatalf("unexpected event type %v on an open grid", ev.Type)
		}
	}
}

func TestSimulationDeterminism(t *testing.T) {
	build := func() *Simulation {
		bm := newTestBitmap(t, 8, 8, [][2]int{{3, 3}, {4, 3}, {3, 4}, {4, 4}})
		s, err := NewSimulation(bm, testParams(42))
		if err != nil {
			t.Fatal(err)
		}
		return s
	}
	a, b := build(), build()

	for i := 0; i < 300; i++ {
		sa, sb := a.AdvanceFrame(), b.AdvanceFrame()
		if sa != sb {
			t.Fatalf("frame %d: stats diverged: %+v vs %+v", i, sa, sb)
		}
	}
	ba, bb := a.Balls(), b.Balls()
	if len(ba) != len(bb) {
		t.Fatalf("populations diverged: %d vs %d", len(ba), len(bb))
	}
	for i := range ba {
		if ba[i] != bb[i] {
			t.Fatalf("ball %d diverged: %+v vs %+v", i, ba[i], bb[i])
		}
	}
}

func TestSimulationRunsToCompletion(t *testing.T) {
	bm := newTestBitmap(t, 10, 10, nil)
	p := testParams(11)
	p.Padding = 2
	s, err := NewSimulation(bm, p)
	if err != nil {
		t.Fatal(err)
	}
	if g := s.Grid(); g.Width != 14 || g.Height != 14 {
		t.Fatalf("grid = %dx%d, want 14x14", g.Width, g.Height)
	}
	if len(s.Islands()) != 0 {
		t.Fatalf("open grid produced %d islands", len(s.Islands()))
	}
	for i := 0; i < 200000 && !s.IsComplete(); i++ {
		s.AdvanceFrame()
	}
	if !s.IsComplete() {
		t.Fatalf("not complete after 200000 frames, %d cells left",
			s.Grid().CarveableCount())
	}
	if got := s.Grid().CarveableCount(); got != 0 {
		t.Errorf("carveable count = %d at completion", got)
	}
}

func TestSimulationRevealsProtectedShape(t *testing.T) {
	protected := [][2]int{{3, 2}, {3, 3}, {3, 4}, {3, 5}}
	bm := newTestBitmap(t, 8, 8, protected)
	s, err := NewSimulation(bm, testParams(13))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Islands()) != 1 {
		t.Fatalf("island count = %d, want 1", len(s.Islands()))
	}

	for i := 0; i < 200000 && !s.IsComplete(); i++ {
		s.AdvanceFrame()
	}
	if !s.IsComplete() {
		t.Fatal("run never completed")
	}
	for i := 0; i < 100 && !s.Islands()[0].Completed; i++ {
		s.AdvanceFrame()
	}
	if !s.Islands()[0].Completed {
		t.Error("island never completed after the boundary was carved")
	}

	// The text shape survives carving untouched.
	g := s.Grid()
	for _, p := range protected {
		c := g.Cell(p[0]+g.Padding, p[1]+g.Padding)
		if c.State != CellProtected {
			t.Errorf("protected cell (%d, %d) ended as %v", c.X, c.Y, c.State)
		}
	}
}
