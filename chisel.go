package chisel

import "math"

// Vec2 is a 2D vector used for positions, velocities, and directions
// throughout the API. Coordinates are in grid units: one cell is one unit,
// with the origin at the top-left and Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns the component-wise difference of v and other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// CellState is the carving state of a single grid cell.
//
// The only legal transition is CellCarveable → CellCarved; the other three
// states are terminal from the moment the grid is built.
type CellState uint8

const (
	CellCarveable CellState = iota // background, waiting to be carved open
	CellProtected                  // part of the text shape, never carved
	CellCarved                     // former background, carved open by a ball
	CellEdge                       // padding ring surrounding the image interior
)

// String returns a short name for the state, for logs and grid dumps.
func (s CellState) String() string {
	switch s {
	case CellCarveable:
		return "carveable"
	case CellProtected:
		return "protected"
	case CellCarved:
		return "carved"
	case CellEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// Side identifies which surface of a cell a ray struck.
type Side uint8

const (
	SideLeft   Side = iota // vertical edge at the cell's minimum X
	SideRight              // vertical edge at the cell's maximum X
	SideTop                // horizontal edge at the cell's minimum Y
	SideBottom             // horizontal edge at the cell's maximum Y
	SideCorner             // hit point within cornerEpsilon of a cell corner
)

const (
	// maxSafeDistance is the longest motion a ball may take in a single
	// sub-step: half a cell edge, so a moving ball can never skip over a
	// one-cell-thick wall between checks. Kept constant regardless of the
	// configured speed multiplier.
	maxSafeDistance = 0.5

	// collisionEpsilon is the offset applied along the surface normal when
	// resolving a collision, so the ball ends up just outside the struck
	// cell instead of exactly on (or inside) its boundary.
	collisionEpsilon = 1e-6

	// cornerEpsilon is the distance from a cell corner within which an
	// intersection is treated as a corner hit and reflected diagonally.
	cornerEpsilon = 0.01

	// baseBallSpeed is the unscaled ball speed in grid units per frame.
	// Multiplied by Params.SpeedMultiplier at spawn time.
	baseBallSpeed = 0.25

	// bounceRayLength bounds the planner's search rays, in grid units.
	bounceRayLength = 5.0

	// bounceRayStep is the sampling interval the planner walks along a
	// search ray when looking for the first collidable cell.
	bounceRayStep = 0.1

	// flashHoldFrames is how many frames an island cell flashes before it
	// resolves on the following frame.
	flashHoldFrames = 3
)
