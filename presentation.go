package chisel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Color represents an RGBA color with components in [0, 1]. Not
// premultiplied.
type Color struct {
	R, G, B, A float64
}

type overlayKind uint8

const (
	overlayCarve    overlayKind = iota // fading ghost of a freshly carved cell
	overlayExposed                     // tint on a protected cell next to a carve
	overlayFlash                       // island completion flash
	overlayRevealed                    // terminal reveal color on protected cells
)

// overlay is one cell's cosmetic state. alpha is nil for static overlays.
type overlay struct {
	kind  overlayKind
	color Color
	alpha *gween.Tween
	a     float32
}

// Presentation is the renderer-owned overlay map, fed by the cell events
// the simulation emits. It keeps cosmetic color state strictly outside
// the simulation: cells only ever carry their 4-value carving state.
//
// Feed each frame's drained events to Apply, then advance tweens with
// Step and read colors back with Overlay while drawing.
type Presentation struct {
	overlays map[[2]int]*overlay

	// Palette. Change before the first Apply for a custom look.
	CarveFade   Color // fade-out ghost over freshly carved cells
	ExposedTint Color // protected cells uncovered by a neighboring carve
	FlashColor  Color // island cells mid-flash
	RevealColor Color // protected island cells after their reveal
}

// NewPresentation returns a Presentation with the default palette.
func NewPresentation() *Presentation {
	return &Presentation{
		overlays:    make(map[[2]int]*overlay),
		CarveFade:   Color{0.36, 0.42, 0.66, 1},
		ExposedTint: Color{0.95, 0.62, 0.32, 1},
		FlashColor:  Color{1, 0.86, 0.35, 1},
		RevealColor: Color{0.45, 0.9, 0.6, 1},
	}
}

// Apply folds one frame's cell events into the overlay map. Later events
// for the same cell replace earlier overlays.
func (p *Presentation) Apply(events []CellEvent) {
	for _, ev := range events {
		key := [2]int{ev.X, ev.Y}
		switch ev.Type {
		case EventCarved:
			p.overlays[key] = &overlay{
				kind:  overlayCarve,
				color: p.CarveFade,
				alpha: gween.New(1, 0, 0.4, ease.OutQuad),
				a:     1,
			}
		case EventExposed:
			// Never downgrade a reveal back to an exposure tint.
			if o, ok := p.overlays[key]; ok && o.kind == overlayRevealed {
				continue
			}
			p.overlays[key] = &overlay{kind: overlayExposed, color: p.ExposedTint, a: 1}
		case EventFlash:
			p.overlays[key] = &overlay{
				kind:  overlayFlash,
				color: p.FlashColor,
				alpha: gween.New(1, 0.35, 0.25, ease.OutQuad),
				a:     1,
			}
		case EventRevealed:
			p.overlays[key] = &overlay{kind: overlayRevealed, color: p.RevealColor, a: 1}
		}
	}
}

// Step advances overlay tweens by dt seconds. Carve fades are removed
// once fully transparent; everything else persists until replaced.
func (p *Presentation) Step(dt float32) {
	for key, o := range p.overlays {
		if o.alpha == nil {
			continue
		}
		v, finished := o.alpha.Update(dt)
		o.a = v
		if finished && o.kind == overlayCarve {
			delete(p.overlays, key)
		}
	}
}

// Overlay returns the current overlay color for the cell at (x, y). The
// second return value is false when the cell has no overlay.
func (p *Presentation) Overlay(x, y int) (Color, bool) {
	o, ok := p.overlays[[2]int{x, y}]
	if !ok {
		return Color{}, false
	}
	c := o.color
	c.A *= float64(o.a)
	return c, true
}

// OverlayCount returns the number of live overlays.
func (p *Presentation) OverlayCount() int {
	return len(p.overlays)
}
