package chisel

import "sort"

// orthogonal is the 4-neighborhood used for adjacency, reachability, and
// island extraction.
var orthogonal = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Island is a maximal 4-connected pocket of carveable and protected cells
// that balls cannot reach from the grid boundary through background
// cells. The protected text shape itself always forms (part of) an
// island, which is how the final staged reveal of the text happens.
//
// Islands are computed once after grid build, on the pre-carve topology:
// carving never creates new islands, it only shrinks their boundaries.
type Island struct {
	Cells     []*Cell // member cells, unreachable from the boundary
	Boundary  []*Cell // carveable cells outside the island, adjacent to it
	Completed bool

	// Completion animation cursor, live while resolving.
	sorted     []*Cell
	animIndex  int
	flashFrame int
	animating  bool
}

// FindReachableCells flood-fills from every edge cell through carveable
// cells and returns a per-cell reachability table indexed y*Width+x.
// Protected cells block the fill. Intended to run against the
// post-build, pre-carve state.
func FindReachableCells(g *Grid) []bool {
	reachable := make([]bool, len(g.cells))
	queue := make([]int, 0, len(g.edgeCells))
	for _, idx := range g.edgeCells {
		reachable[idx] = true
		queue = append(queue, idx)
	}
	for len(queue) > 0 {
		c := &g.cells[queue[0]]
		queue = queue[1:]
		for _, d := range orthogonal {
			n := g.Cell(c.X+d[0], c.Y+d[1])
			if n == nil {
				continue
			}
			ni := n.Y*g.Width + n.X
			if reachable[ni] {
				continue
			}
			if n.State == CellCarveable || n.State == CellEdge {
				reachable[ni] = true
				queue = append(queue, ni)
			}
		}
	}
	return reachable
}

// FindIslands groups every unreachable non-edge cell into 4-connected
// islands and computes each island's boundary. Call after
// [Grid.MarkIsolatedCarveable] so the classification the islands see is
// final.
func FindIslands(g *Grid) []*Island {
	reachable := FindReachableCells(g)
	visited := make([]bool, len(g.cells))
	var islands []*Island

	for i := range g.cells {
		if visited[i] || reachable[i] {
			continue
		}
		c := &g.cells[i]
		if c.State != CellCarveable && c.State != CellProtected {
			continue
		}

		il := &Island{}
		visited[i] = true
		stack := []int{i}
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			cc := &g.cells[idx]
			il.Cells = append(il.Cells, cc)
			for _, d := range orthogonal {
				n := g.Cell(cc.X+d[0], cc.Y+d[1])
				if n == nil || n.State == CellEdge {
					continue
				}
				ni := n.Y*g.Width + n.X
				if visited[ni] || reachable[ni] {
					continue
				}
				visited[ni] = true
				stack = append(stack, ni)
			}
		}
		il.findBoundary(g)
		islands = append(islands, il)
	}
	return islands
}

// findBoundary collects the carveable cells outside the island that touch
// it. Carving all of them opens the island to ball traffic.
func (il *Island) findBoundary(g *Grid) {
	member := make(map[*Cell]bool, len(il.Cells))
	for _, c := range il.Cells {
		member[c] = true
	}
	seen := make(map[*Cell]bool)
	for _, c := range il.Cells {
		for _, d := range orthogonal {
			n := g.Cell(c.X+d[0], c.Y+d[1])
			if n == nil || member[n] || seen[n] {
				continue
			}
			if n.State == CellCarveable {
				seen[n] = true
				il.Boundary = append(il.Boundary, n)
			}
		}
	}
}

// BoundaryCarved reports whether no boundary cell remains carveable, i.e.
// the island is fully open to the rest of the grid.
func (il *Island) BoundaryCarved() bool {
	for _, c := range il.Boundary {
		if c.State == CellCarveable {
			return false
		}
	}
	return true
}

// Animating reports whether the island's completion animation is running.
func (il *Island) Animating() bool {
	return il.animating
}

// startAnimation sorts the island's cells top-to-bottom, left-to-right
// and arms the animation cursor. The first step runs on the next frame.
func (il *Island) startAnimation() {
	il.sorted = make([]*Cell, len(il.Cells))
	copy(il.sorted, il.Cells)
	sort.Slice(il.sorted, func(a, b int) bool {
		if il.sorted[a].Y != il.sorted[b].Y {
			return il.sorted[a].Y < il.sorted[b].Y
		}
		return il.sorted[a].X < il.sorted[b].X
	})
	il.animIndex = 0
	il.flashFrame = 0
	il.animating = true
}

// updateIslands advances every non-completed island by one frame: islands
// mid-animation step their cursor, the rest start animating once their
// boundary has been fully carved.
func (s *Simulation) updateIslands() {
	for _, il := range s.islands {
		if il.Completed {
			continue
		}
		if il.animating {
			s.advanceIslandAnimation(il)
			continue
		}
		if il.BoundaryCarved() {
			il.startAnimation()
		}
	}
}

// advanceIslandAnimation runs one frame of the staged completion reveal:
// each cell flashes for flashHoldFrames frames, then resolves on the
// following frame. A protected cell resolves to its reveal overlay; a
// carveable cell is carved open. Already-carved cells are skipped
// immediately. One cell resolves per frame at most.
func (s *Simulation) advanceIslandAnimation(il *Island) {
	for il.animIndex < len(il.sorted) {
		c := il.sorted[il.animIndex]
		if c.State == CellCarved {
			il.animIndex++
			il.flashFrame = 0
			continue
		}
		if il.flashFrame == 0 {
			s.record(CellEvent{Type: EventFlash, X: c.X, Y: c.Y})
		}
		if il.flashFrame < flashHoldFrames {
			il.flashFrame++
			return
		}
		switch c.State {
		case CellProtected:
			s.record(CellEvent{Type: EventRevealed, X: c.X, Y: c.Y})
		case CellCarveable:
			// Still carveable by construction of the cursor; the
			// transition cannot fail.
			_ = s.grid.SetState(c.X, c.Y, CellCarved)
		}
		il.animIndex++
		il.flashFrame = 0
		return
	}
	il.Completed = true
	il.animating = false
}
