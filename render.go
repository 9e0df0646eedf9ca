package chisel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer paints a simulation's grid, overlays, and balls onto an
// ebiten image. It owns all cosmetic state (a Presentation fed from the
// simulation's event stream); the simulation itself stays renderer-free.
type Renderer struct {
	// CellSize is the width of one grid cell in pixels.
	CellSize float64

	// Palette for the base cell states. Carved cells show Background.
	Background     Color
	CarveableColor Color
	ProtectedColor Color
	EdgeColor      Color
	BallColor      Color

	presentation *Presentation
}

// NewRenderer creates a renderer with the default palette.
func NewRenderer(cellSize float64) *Renderer {
	return &Renderer{
		CellSize:       cellSize,
		Background:     Color{0.07, 0.07, 0.1, 1},
		CarveableColor: Color{0.36, 0.42, 0.66, 1},
		ProtectedColor: Color{0.92, 0.93, 0.96, 1},
		EdgeColor:      Color{0.16, 0.17, 0.24, 1},
		BallColor:      Color{1, 0.78, 0.25, 1},
		presentation:   NewPresentation(),
	}
}

// Presentation exposes the renderer's overlay state for palette tuning.
func (r *Renderer) Presentation() *Presentation {
	return r.presentation
}

// Update drains the simulation's cell events into the overlay map and
// advances overlay tweens by dt seconds. Call once per frame, after
// Simulation.AdvanceFrame.
func (r *Renderer) Update(sim *Simulation, dt float64) {
	r.presentation.Apply(sim.DrainEvents())
	r.presentation.Step(float32(dt))
}

// Draw renders the grid and balls to screen. Safe to call between
// frames: the simulation guarantees a self-consistent snapshot.
func (r *Renderer) Draw(screen *ebiten.Image, sim *Simulation) {
	screen.Fill(r.Background.toRGBA())

	g := sim.Grid()
	cs := float32(r.CellSize)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.Cell(x, y)
			var base Color
			switch c.State {
			case CellCarveable:
				base = r.CarveableColor
			case CellProtected:
				base = r.ProtectedColor
			case CellEdge:
				base = r.EdgeColor
			default:
				base = r.Background
			}
			px, py := float32(x)*cs, float32(y)*cs
			vector.DrawFilledRect(screen, px, py, cs, cs, base.toRGBA(), false)
			if ov, ok := r.presentation.Overlay(x, y); ok {
				vector.DrawFilledRect(screen, px, py, cs, cs, ov.toRGBA(), false)
			}
		}
	}

	ballColor := r.BallColor.toRGBA()
	for _, b := range sim.Balls() {
		if !b.Active {
			continue
		}
		cx := float32(b.Pos.X * r.CellSize)
		cy := float32(b.Pos.Y * r.CellSize)
		radius := float32(b.Diameter / 2 * r.CellSize)
		vector.DrawFilledCircle(screen, cx, cy, radius, ballColor, true)
	}
}

// toRGBA converts to ebiten's premultiplied 8-bit color.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RunConfig configures the Run host loop.
type RunConfig struct {
	Title    string
	CellSize float64 // pixels per cell; 8 when zero
	ShowFPS  bool
	Debug    bool // per-frame stats on stderr
}

// game adapts a simulation and renderer to the ebiten game loop.
type game struct {
	sim      *Simulation
	renderer *Renderer
	cfg      RunConfig
	stats    FrameStats
}

func (g *game) Update() error {
	g.stats = g.sim.AdvanceFrame()
	g.renderer.Update(g.sim, 1.0/float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f\nballs: %d\nleft: %d",
			ebiten.ActualFPS(), g.stats.BallsUpdated, g.stats.CarveableRemaining))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.sim.Grid()
	return int(float64(grid.Width) * g.renderer.CellSize),
		int(float64(grid.Height) * g.renderer.CellSize)
}

// Run opens a window sized to the simulation's grid and drives it with
// ebiten's game loop until the window is closed. The run keeps animating
// after completion; closing the window is the only stop condition.
func Run(sim *Simulation, cfg RunConfig) error {
	if cfg.CellSize <= 0 {
		cfg.CellSize = 8
	}
	sim.SetDebug(cfg.Debug)

	renderer := NewRenderer(cfg.CellSize)
	grid := sim.Grid()
	ebiten.SetWindowSize(
		int(float64(grid.Width)*cfg.CellSize),
		int(float64(grid.Height)*cfg.CellSize))
	if cfg.Title == "" {
		cfg.Title = "chisel"
	}
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(&game{sim: sim, renderer: renderer, cfg: cfg})
}
