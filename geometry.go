package chisel

import (
	"math"
	"math/rand/v2"
)

// Intersection describes where a finite ray segment first strikes a cell
// square.
type Intersection struct {
	Point  Vec2    // the hit point on the square's boundary
	Normal Vec2    // unit surface normal at the hit point
	T      float64 // parametric distance along the segment, in [0, 1]
	Side   Side
}

// IntersectRaySquare tests the finite segment from start to end against
// all four edges of square and returns the intersection with the smallest
// non-negative parametric distance. The second return value is false when
// the segment misses the square entirely.
//
// A hit within cornerEpsilon of a square corner is tagged SideCorner and
// its normal is the normalized vector from the square's center to the hit
// point, giving a diagonal reflection instead of an axis-aligned one.
//
// The function is pure and deterministic: it is the single source of
// truth for which surface a moving ball struck.
func IntersectRaySquare(start, end Vec2, square Rect) (Intersection, bool) {
	dx := end.X - start.X
	dy := end.Y - start.Y

	best := Intersection{T: math.Inf(1)}
	found := false

	// Vertical edges.
	if dx != 0 {
		for _, e := range [2]struct {
			x    float64
			side Side
			n    Vec2
		}{
			{square.X, SideLeft, Vec2{-1, 0}},
			{square.X + square.Width, SideRight, Vec2{1, 0}},
		} {
			t := (e.x - start.X) / dx
			if t < 0 || t > 1 || t >= best.T {
				continue
			}
			y := start.Y + t*dy
			if y < square.Y || y > square.Y+square.Height {
				continue
			}
			best = Intersection{Point: Vec2{e.x, y}, Normal: e.n, T: t, Side: e.side}
			found = true
		}
	}

	// Horizontal edges.
	if dy != 0 {
		for _, e := range [2]struct {
			y    float64
			side Side
			n    Vec2
		}{
			{square.Y, SideTop, Vec2{0, -1}},
			{square.Y + square.Height, SideBottom, Vec2{0, 1}},
		} {
			t := (e.y - start.Y) / dy
			if t < 0 || t > 1 || t >= best.T {
				continue
			}
			x := start.X + t*dx
			if x < square.X || x > square.X+square.Width {
				continue
			}
			best = Intersection{Point: Vec2{x, e.y}, Normal: e.n, T: t, Side: e.side}
			found = true
		}
	}

	if !found {
		return Intersection{}, false
	}

	// Corner hits reflect diagonally, away from the square's center.
	for _, corner := range [4]Vec2{
		{square.X, square.Y},
		{square.X + square.Width, square.Y},
		{square.X, square.Y + square.Height},
		{square.X + square.Width, square.Y + square.Height},
	} {
		if best.Point.Sub(corner).Length() < cornerEpsilon {
			best.Side = SideCorner
			if n := best.Point.Sub(square.Center()).Normalize(); n.Length() > 0 {
				best.Normal = n
			}
			break
		}
	}
	return best, true
}

// Reflect returns v specularly reflected about the unit normal n:
// v' = v - 2(v·n)n. When jitter is positive and rng is non-nil, a bounded
// random offset in [-jitter, jitter] is added to each component to break
// up resonant bounce loops. Pass jitter 0 (or a nil rng) for the pure
// specular result.
func Reflect(v, n Vec2, jitter float64, rng *rand.Rand) Vec2 {
	d := 2 * v.Dot(n)
	out := Vec2{v.X - d*n.X, v.Y - d*n.Y}
	if jitter > 0 && rng != nil {
		out.X += (rng.Float64()*2 - 1) * jitter
		out.Y += (rng.Float64()*2 - 1) * jitter
	}
	return out
}

// validateRay checks ray endpoints for out-of-domain values.
func validateRay(start, end Vec2) error {
	for _, f := range [4]float64{start.X, start.Y, end.X, end.Y} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return &RayCastError{Reason: "non-finite ray endpoint"}
		}
	}
	return nil
}
