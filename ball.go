package chisel

import (
	"math"
	"math/rand/v2"
)

// Ball is one small moving body. Position is continuous, in grid units;
// the ball is treated as a point for collision purposes and Diameter is
// used by renderers only.
//
// Balls are value-owned by their Simulation: the slice returned by
// [Simulation.Balls] is the live collection and is reordered as inactive
// balls are culled.
type Ball struct {
	ID       int
	Pos      Vec2
	Vel      Vec2
	Diameter float64
	Active   bool
}

// NewBall validates kinematic parameters and returns a ball ready to be
// advanced. Fails with a *BallError on a non-positive diameter or
// non-finite position/velocity.
func NewBall(id int, pos, vel Vec2, diameter float64) (Ball, error) {
	if diameter <= 0 {
		return Ball{}, &BallError{ID: id, Reason: "diameter must be positive"}
	}
	for _, f := range [4]float64{pos.X, pos.Y, vel.X, vel.Y} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Ball{}, &BallError{ID: id, Reason: "non-finite kinematics"}
		}
	}
	return Ball{ID: id, Pos: pos, Vel: vel, Diameter: diameter, Active: true}, nil
}

// Speed returns the ball's current speed in grid units per frame.
func (b *Ball) Speed() float64 {
	return b.Vel.Length()
}

// spawnBall creates an active ball at the center of a random edge cell
// with a random unit direction scaled by speed.
func spawnBall(g *Grid, id int, speed, diameter float64, rng *rand.Rand) Ball {
	idx := g.edgeCells[rng.IntN(len(g.edgeCells))]
	c := &g.cells[idx]
	angle := rng.Float64() * 2 * math.Pi
	return Ball{
		ID:       id,
		Pos:      Vec2{float64(c.X) + 0.5, float64(c.Y) + 0.5},
		Vel:      Vec2{math.Cos(angle), math.Sin(angle)}.Scale(speed),
		Diameter: diameter,
		Active:   true,
	}
}
