package chisel

import "math"

// CollisionResult describes a predicted collision within one sub-step.
// It is produced and consumed inside a single frame and never persisted.
type CollisionResult struct {
	Cell   *Cell
	Point  Vec2
	Normal Vec2
	Side   Side
	Carve  bool // carve the struck cell before bouncing
}

// advanceBall moves one ball through one frame of sub-stepped motion.
//
// When the frame's movement distance exceeds maxSafeDistance, the
// velocity is divided into equal sub-steps so the ball cannot tunnel
// through a one-cell-thick wall. Each sub-step performs a pre-motion
// check: if the candidate position lands in a collidable cell, a ray is
// cast from the current position against the current cell's 3×3
// neighborhood and the nearest intersection wins. Sub-stepping stops at
// the first collision or when the ball leaves the grid (deactivation).
//
// The returned error reports a ball fault; the driver deactivates the
// ball and continues the frame for the rest.
func (s *Simulation) advanceBall(b *Ball) (carved, bounced int, err error) {
	if rayErr := validateRay(b.Pos, b.Pos.Add(b.Vel)); rayErr != nil {
		return 0, 0, &BallError{ID: b.ID, Reason: rayErr.Error()}
	}

	dist := b.Vel.Length()
	steps := 1
	if dist > maxSafeDistance {
		steps = int(math.Ceil(dist / maxSafeDistance))
	}
	stepVel := b.Vel.Scale(1 / float64(steps))

	for i := 0; i < steps; i++ {
		cand := b.Pos.Add(stepVel)
		if !s.grid.containsPoint(cand) {
			b.Active = false
			return carved, bounced, nil
		}
		res, hit := s.findCollision(b.Pos, cand)
		if !hit {
			b.Pos = cand
			continue
		}

		// Resolve just outside the struck surface to prevent
		// re-penetration on the next step.
		b.Pos = res.Point.Add(res.Normal.Scale(collisionEpsilon))
		if res.Carve {
			if stateErr := s.grid.SetState(res.Cell.X, res.Cell.Y, CellCarved); stateErr != nil {
				return carved, bounced, stateErr
			}
			carved++
		}
		s.planBounce(b, res.Normal)
		bounced++
		break
	}
	return carved, bounced, nil
}

// findCollision performs the pre-motion check for one sub-step from start
// to cand. It reports no collision when the candidate cell is open
// (carved, or an inner-ring edge cell); otherwise it casts the motion
// segment against every collidable cell in the current cell's 3×3
// neighborhood and keeps the nearest intersection.
//
// Cells that contain the start point are skipped: a ball inside a cell
// cannot collide with that cell from within, which also lets balls leave
// the edge cell they spawned in.
func (s *Simulation) findCollision(start, cand Vec2) (CollisionResult, bool) {
	candCell := s.grid.cellAtPoint(cand)
	if candCell == nil || !s.grid.collidable(candCell) {
		return CollisionResult{}, false
	}
	cur := s.grid.cellAtPoint(start)
	if cur == nil {
		return CollisionResult{}, false
	}

	var best CollisionResult
	bestT := math.Inf(1)
	found := false
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c := s.grid.Cell(cur.X+dx, cur.Y+dy)
			if c == nil || !s.grid.collidable(c) {
				continue
			}
			r := cellRect(c)
			if r.Contains(start.X, start.Y) {
				continue
			}
			hit, ok := IntersectRaySquare(start, cand, r)
			if !ok || hit.T >= bestT {
				continue
			}
			bestT = hit.T
			best = CollisionResult{
				Cell:   c,
				Point:  hit.Point,
				Normal: hit.Normal,
				Side:   hit.Side,
				Carve:  c.State == CellCarveable,
			}
			found = true
		}
	}
	return best, found
}
