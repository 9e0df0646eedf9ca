package chisel

import (
	"fmt"
	"io"
	"os"
)

// DumpGrid writes an ASCII snapshot of g's cell states to w, one row per
// line: '+' edge, '#' protected, '.' carveable, ' ' carved. Useful when
// debugging headless runs and in scripted test dumps.
func DumpGrid(w io.Writer, g *Grid) {
	row := make([]byte, g.Width+1)
	row[g.Width] = '\n'
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch g.cells[y*g.Width+x].State {
			case CellEdge:
				row[x] = '+'
			case CellProtected:
				row[x] = '#'
			case CellCarveable:
				row[x] = '.'
			default:
				row[x] = ' '
			}
		}
		_, _ = w.Write(row)
	}
}

// debugLog prints per-frame counters to stderr. Only called when the
// simulation's debug flag is set.
func (s *Simulation) debugLog(stats FrameStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[chisel] frame %d | balls: %d | carved: %d | bounced: %d | carveable left: %d\n",
		s.frame, stats.BallsUpdated, stats.BallsCarved, stats.BallsBounced,
		stats.CarveableRemaining)
}
