package chisel

import "math"

// planBounce assigns b a new velocity after a collision with surface
// normal n, biasing the outgoing direction toward unfinished work.
//
// Starting from the specular reflection, candidate angles deviate outward
// in 1° increments, alternating +deviation and -deviation up to the
// configured bound. The first candidate whose bounded ray meets a
// carveable cell before anything else is used verbatim as the new
// direction. When nothing carveable is in range, a uniformly random angle
// within the deviation bound is used instead; the return value reports
// whether an aimed ("optimal") angle was found.
func (s *Simulation) planBounce(b *Ball, normal Vec2) bool {
	speed := b.Vel.Length()
	reflected := Reflect(b.Vel, normal, s.params.BounceJitter, s.rng)
	base := math.Atan2(reflected.Y, reflected.X)
	maxDev := int(s.params.DeviationAngle)

	for dev := 0; dev <= maxDev; dev++ {
		for _, sign := range [2]float64{1, -1} {
			if dev == 0 && sign < 0 {
				continue
			}
			angle := base + sign*float64(dev)*math.Pi/180
			if c, ok := s.castToCell(b.Pos, angle); ok && c.State == CellCarveable {
				b.Vel = Vec2{math.Cos(angle), math.Sin(angle)}.Scale(speed)
				return true
			}
		}
	}

	maxRad := s.params.DeviationAngle * math.Pi / 180
	angle := base + (s.rng.Float64()*2-1)*maxRad
	b.Vel = Vec2{math.Cos(angle), math.Sin(angle)}.Scale(speed)
	return false
}

// castToCell walks a bounded ray from pos in the given direction and
// returns the first collidable cell it meets. The cell containing pos is
// skipped, as are open cells (carved, inner edge rings).
func (s *Simulation) castToCell(pos Vec2, angle float64) (*Cell, bool) {
	dir := Vec2{math.Cos(angle), math.Sin(angle)}
	startCell := s.grid.cellAtPoint(pos)
	for t := bounceRayStep; t <= bounceRayLength; t += bounceRayStep {
		c := s.grid.cellAtPoint(pos.Add(dir.Scale(t)))
		if c == nil {
			return nil, false
		}
		if c == startCell {
			continue
		}
		if s.grid.collidable(c) {
			return c, true
		}
	}
	return nil, false
}
