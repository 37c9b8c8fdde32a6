package backdrop

import "math"

// Kinematics holds the per-frame force model applied to every point.
// Distances are in pixels, speeds in pixels per frame.
type Kinematics struct {
	// ProximityRadius is the distance below which a point reacts to the
	// cursor. The bound is exclusive.
	ProximityRadius float64
	// TeleportRadius is the distance below which a point jumps to the
	// nearest viewport edge instead of being pushed.
	TeleportRadius float64
	// TeleportSpeed is the speed a teleported point leaves the edge with.
	TeleportSpeed float64
	// RepelGain scales the push applied inside ProximityRadius.
	RepelGain float64
	// Friction multiplies velocity once per frame.
	Friction float64
	// Jitter is the half-width of the uniform random drift added to each
	// velocity axis per frame.
	Jitter float64
	// MinSpeed is the per-axis velocity floor.
	MinSpeed float64
}

// DefaultKinematics returns the stock force model.
func DefaultKinematics() Kinematics {
	return Kinematics{
		ProximityRadius: 120,
		TeleportRadius:  30,
		TeleportSpeed:   3,
		RepelGain:       250,
		Friction:        0.995,
		Jitter:          0.005,
		MinSpeed:        0.08,
	}
}

// withDefaults fills non-positive fields from DefaultKinematics.
func (k Kinematics) withDefaults() Kinematics {
	d := DefaultKinematics()
	if k.ProximityRadius <= 0 {
		k.ProximityRadius = d.ProximityRadius
	}
	if k.TeleportRadius <= 0 {
		k.TeleportRadius = d.TeleportRadius
	}
	if k.TeleportSpeed <= 0 {
		k.TeleportSpeed = d.TeleportSpeed
	}
	if k.RepelGain <= 0 {
		k.RepelGain = d.RepelGain
	}
	if k.Friction <= 0 {
		k.Friction = d.Friction
	}
	if k.Jitter <= 0 {
		k.Jitter = d.Jitter
	}
	if k.MinSpeed <= 0 {
		k.MinSpeed = d.MinSpeed
	}
	return k
}

// Step advances every point in s by one frame against s.Cursor. Non-positive
// fields of k take their DefaultKinematics values.
func (k Kinematics) Step(s *Scene, rng Rand) {
	k = k.withDefaults()
	cur := s.Cursor
	for i := range s.Branches {
		pts := s.Branches[i].Points
		for j := range pts {
			k.stepPoint(&pts[j], cur, s.Width, s.Height, rng)
		}
	}
}

// StepPoint advances a single point by one frame inside a width x height
// viewport. Non-positive fields of k take their DefaultKinematics values.
func (k Kinematics) StepPoint(p *Point, cur CursorState, width, height float64, rng Rand) {
	k.withDefaults().stepPoint(p, cur, width, height, rng)
}

func (k Kinematics) stepPoint(p *Point, cur CursorState, width, height float64, rng Rand) {
	k.flinch(p, cur, width, height)

	// Points are free to drift off-screen; nothing clamps them here.
	p.X += p.VX
	p.Y += p.VY
	p.VX *= k.Friction
	p.VY *= k.Friction

	jitter := Symmetric(k.Jitter)
	p.VX += jitter.Random(rng)
	p.VY += jitter.Random(rng)

	p.VX = k.floor(p.VX, rng)
	p.VY = k.floor(p.VY, rng)
}

// flinch applies the cursor response: a teleport to the nearest edge when the
// cursor is very close, a velocity impulse when it is merely near.
func (k Kinematics) flinch(p *Point, cur CursorState, width, height float64) {
	dx := p.X - cur.X
	dy := p.Y - cur.Y
	dist := math.Max(math.Hypot(dx, dy), 1)
	if dist >= k.ProximityRadius {
		return
	}

	if dist < k.TeleportRadius {
		p.X, p.Y = edgeTarget(p.X, p.Y, dx, dy, width, height)
		if dx == 0 && dy == 0 {
			// No direction to flee along; edgeTarget lands on the top edge.
			p.VX, p.VY = 0, -k.TeleportSpeed
			return
		}
		p.VX = dx / dist * k.TeleportSpeed
		p.VY = dy / dist * k.TeleportSpeed
		return
	}

	force := (k.ProximityRadius - dist) / k.ProximityRadius * k.RepelGain
	p.VX += dx / dist * force
	p.VY += dy / dist * force
}

// edgeTarget returns the viewport edge point a teleported point lands on.
// The dominant displacement axis picks the edge; the other coordinate is
// projected along (dx, dy) and clamped to [1, dim-1].
func edgeTarget(x, y, dx, dy, width, height float64) (float64, float64) {
	if math.Abs(dx) > math.Abs(dy) {
		tx := 1.0
		if dx > 0 {
			tx = width - 1
		}
		ty := y + dy*(width/math.Abs(dx))
		return tx, clamp(ty, 1, height-1)
	}

	ty := 1.0
	if dy > 0 {
		ty = height - 1
	}
	tx := x
	if dy != 0 {
		tx = x + dx*(height/math.Abs(dy))
	}
	return clamp(tx, 1, width-1), ty
}

// floor lifts a velocity component whose magnitude fell below MinSpeed back to
// MinSpeed in a random direction.
func (k Kinematics) floor(v float64, rng Rand) float64 {
	if math.Abs(v) >= k.MinSpeed {
		return v
	}
	if rng.Float64() > 0.5 {
		return k.MinSpeed
	}
	return -k.MinSpeed
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
