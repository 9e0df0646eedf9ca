package chisel

import "math"

// Cell is one grid unit. Identity (X, Y) is fixed at build time; State is
// the only mutable field and may change exactly once, from CellCarveable
// to CellCarved. Cells are owned by their Grid and never relocated.
type Cell struct {
	X, Y  int
	State CellState
}

// Grid is the rectangular cell container for one carving run. The outer
// Padding rings are CellEdge; interior cells derive from the source
// bitmap (true → CellProtected, false → CellCarveable).
type Grid struct {
	Width, Height int // total size including padding rings
	Padding       int

	cells     []Cell
	carveable int   // remaining CellCarveable cells
	edgeCells []int // indices of CellEdge cells, for ball spawning

	// notify receives presentation events from state changes. Nil until
	// a Simulation takes ownership of the grid.
	notify func(CellEvent)
}

// NewGrid builds a grid from bitmap plus padding rings of edge cells.
// The result is (bitmap.Width+2*padding) × (bitmap.Height+2*padding).
func NewGrid(bitmap *Bitmap, padding int) (*Grid, error) {
	if bitmap == nil {
		return nil, &GridError{Op: "build", X: -1, Y: -1, Reason: "nil bitmap"}
	}
	if bitmap.Width <= 0 || bitmap.Height <= 0 {
		return nil, &GridError{Op: "build", X: -1, Y: -1,
			Reason: "bitmap dimensions must be positive"}
	}
	if len(bitmap.Pixels) != bitmap.Width*bitmap.Height {
		return nil, &GridError{Op: "build", X: -1, Y: -1,
			Reason: "bitmap pixel count does not match its dimensions"}
	}
	if padding < 0 {
		return nil, &GridError{Op: "build", X: -1, Y: -1,
			Reason: "padding must be non-negative"}
	}

	g := &Grid{
		Width:   bitmap.Width + 2*padding,
		Height:  bitmap.Height + 2*padding,
		Padding: padding,
	}
	g.cells = make([]Cell, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := &g.cells[y*g.Width+x]
			c.X, c.Y = x, y
			switch {
			case x < padding || y < padding ||
				x >= g.Width-padding || y >= g.Height-padding:
				c.State = CellEdge
				g.edgeCells = append(g.edgeCells, y*g.Width+x)
			case bitmap.At(x-padding, y-padding):
				c.State = CellProtected
			default:
				c.State = CellCarveable
				g.carveable++
			}
		}
	}
	return g, nil
}

// Cell returns the cell at (x, y), or nil when out of bounds.
func (g *Grid) Cell(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[y*g.Width+x]
}

// InBounds reports whether (x, y) is a valid cell coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// cellAtPoint returns the cell containing the continuous point p, or nil
// when p lies outside the grid.
func (g *Grid) cellAtPoint(p Vec2) *Cell {
	return g.Cell(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// containsPoint reports whether the continuous point p lies inside the
// grid's area.
func (g *Grid) containsPoint(p Vec2) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < float64(g.Width) && p.Y < float64(g.Height)
}

// cellRect returns the unit square occupied by c.
func cellRect(c *Cell) Rect {
	return Rect{X: float64(c.X), Y: float64(c.Y), Width: 1, Height: 1}
}

// CarveableCount returns the number of cells still waiting to be carved.
func (g *Grid) CarveableCount() int {
	return g.carveable
}

// SetState transitions the cell at (x, y) to newState. The only legal
// transition is CellCarveable → CellCarved; anything else, including
// repeating a carve on an already-carved cell, fails with a *GridError.
//
// Carving a cell emits an EventCarved event and an EventExposed event for each
// orthogonally adjacent protected cell, so renderers can tint the newly
// uncovered text outline. The exposure is purely cosmetic bookkeeping.
func (g *Grid) SetState(x, y int, newState CellState) error {
	c := g.Cell(x, y)
	if c == nil {
		return &GridError{Op: "set state", X: x, Y: y, Reason: "out of bounds"}
	}
	if c.State != CellCarveable || newState != CellCarved {
		return &GridError{Op: "set state", X: x, Y: y,
			Reason: "illegal transition " + c.State.String() + " → " + newState.String()}
	}

	c.State = CellCarved
	g.carveable--
	g.emit(CellEvent{Type: EventCarved, X: x, Y: y})
	for _, d := range orthogonal {
		if n := g.Cell(x+d[0], y+d[1]); n != nil && n.State == CellProtected {
			g.emit(CellEvent{Type: EventExposed, X: n.X, Y: n.Y})
		}
	}
	return nil
}

func (g *Grid) emit(ev CellEvent) {
	if g.notify != nil {
		g.notify(ev)
	}
}

// MarkIsolatedCarveable reclassifies carveable cells whose orthogonal
// neighbors are all protected as protected themselves, and returns how
// many cells were reclassified. Such single-cell pockets can never be
// reached by a ball and would otherwise block completion detection.
// Run once after NewGrid, before simulation starts.
func (g *Grid) MarkIsolatedCarveable() int {
	marked := 0
	for i := range g.cells {
		c := &g.cells[i]
		if c.State != CellCarveable {
			continue
		}
		isolated := true
		for _, d := range orthogonal {
			n := g.Cell(c.X+d[0], c.Y+d[1])
			if n == nil || n.State != CellProtected {
				isolated = false
				break
			}
		}
		if isolated {
			c.State = CellProtected
			g.carveable--
			marked++
		}
	}
	return marked
}

// isOuterRing reports whether (x, y) lies on the outermost cell ring.
// Only outer-ring edge cells collide; edge cells on inner padding rings
// are pass-through.
func (g *Grid) isOuterRing(x, y int) bool {
	return x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1
}

// collidable reports whether c can stop a moving ball: carveable and
// protected cells always do, edge cells only on the outermost ring.
func (g *Grid) collidable(c *Cell) bool {
	switch c.State {
	case CellCarveable, CellProtected:
		return true
	case CellEdge:
		return g.isOuterRing(c.X, c.Y)
	default:
		return false
	}
}
