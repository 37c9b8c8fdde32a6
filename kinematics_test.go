package backdrop

import (
	"math"
	"testing"
)

func TestDefaultKinematics(t *testing.T) {
	k := DefaultKinematics()
	if k.ProximityRadius != 120 || k.TeleportRadius != 30 || k.TeleportSpeed != 3 {
		t.Errorf("unexpected radii/speed: %+v", k)
	}
	if k.RepelGain != 250 || k.Friction != 0.995 || k.Jitter != 0.005 || k.MinSpeed != 0.08 {
		t.Errorf("unexpected force model: %+v", k)
	}
}

func TestStepVelocityFloorHolds(t *testing.T) {
	k := DefaultKinematics()
	rng := NewRand(1)
	s := NewScene(800, 600, DefaultSceneConfig(), rng)

	for frame := 0; frame < 600; frame++ {
		// Sweep the cursor back and forth across the viewport.
		x := math.Mod(float64(frame)*7, 800)
		s.Cursor.Move(x, 300+200*math.Sin(float64(frame)/20))
		if frame%50 == 49 {
			s.Cursor.Leave()
		}
		k.Step(s, rng)

		for i, b := range s.Branches {
			for j, p := range b.Points {
				if math.Abs(p.VX) < k.MinSpeed || math.Abs(p.VY) < k.MinSpeed {
					t.Fatalf("frame %d branch %d point %d velocity (%v, %v) below floor", frame, i, j, p.VX, p.VY)
				}
				if math.IsNaN(p.X) || math.IsNaN(p.Y) {
					t.Fatalf("frame %d branch %d point %d position is NaN", frame, i, j)
				}
			}
		}
	}
}

func TestStepKeepsPointCounts(t *testing.T) {
	k := DefaultKinematics()
	rng := NewRand(4)
	s := NewScene(800, 600, DefaultSceneConfig(), rng)
	s.Cursor.Move(400, 300)
	for i := 0; i < 100; i++ {
		k.Step(s, rng)
	}
	if len(s.Branches) != 7 || s.PointCount() != 42 {
		t.Errorf("got %d branches / %d points, want 7 / 42", len(s.Branches), s.PointCount())
	}
}

func TestFlinchTeleportsToEdge(t *testing.T) {
	k := DefaultKinematics()
	tests := []struct {
		name   string
		p      Point
		cursor CursorState
		wantX  float64
		wantY  float64
	}{
		{"right edge, clamped top", Point{X: 410, Y: 300}, CursorState{400, 305}, 799, 1},
		{"left edge", Point{X: 395, Y: 300}, CursorState{400, 300}, 1, 300},
		{"bottom edge", Point{X: 400, Y: 310}, CursorState{400, 300}, 400, 599},
		{"top edge, projected", Point{X: 402, Y: 290}, CursorState{400, 300}, 522, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			dx, dy := p.X-tt.cursor.X, p.Y-tt.cursor.Y
			k.flinch(&p, tt.cursor, 800, 600)

			if !approx(p.X, tt.wantX, 1e-9) || !approx(p.Y, tt.wantY, 1e-9) {
				t.Errorf("position = (%v, %v), want (%v, %v)", p.X, p.Y, tt.wantX, tt.wantY)
			}
			if p.X < 1 || p.X > 799 || p.Y < 1 || p.Y > 599 {
				t.Errorf("position (%v, %v) outside [1, dim-1]", p.X, p.Y)
			}
			onEdge := p.X == 1 || p.X == 799 || p.Y == 1 || p.Y == 599
			if !onEdge {
				t.Errorf("position (%v, %v) not on an edge", p.X, p.Y)
			}
			if !approx(math.Hypot(p.VX, p.VY), k.TeleportSpeed, 1e-9) {
				t.Errorf("speed = %v, want %v", math.Hypot(p.VX, p.VY), k.TeleportSpeed)
			}
			dist := math.Hypot(dx, dy)
			if !approx(p.VX, dx/dist*3, 1e-9) || !approx(p.VY, dy/dist*3, 1e-9) {
				t.Errorf("velocity (%v, %v) not along displacement (%v, %v)", p.VX, p.VY, dx, dy)
			}
			away := p.VX*(p.X-tt.cursor.X) + p.VY*(p.Y-tt.cursor.Y)
			if away <= 0 {
				t.Errorf("velocity (%v, %v) does not point away from cursor", p.VX, p.VY)
			}
		})
	}
}

func TestStepPointTeleportMovesAway(t *testing.T) {
	k := DefaultKinematics()
	cur := CursorState{400, 305}
	p := Point{X: 410, Y: 300}
	k.StepPoint(&p, cur, 800, 600, NewRand(2))

	// Landed on (799, 1), then integrated one step at TeleportSpeed.
	if d := math.Hypot(p.X-799, p.Y-1); !approx(d, k.TeleportSpeed, 1e-9) {
		t.Errorf("distance from landing point = %v, want %v", d, k.TeleportSpeed)
	}
	if p.VX*(p.X-cur.X)+p.VY*(p.Y-cur.Y) <= 0 {
		t.Errorf("velocity (%v, %v) does not point away from cursor", p.VX, p.VY)
	}
}

func TestStepPointPartialKinematicsKeepsFloor(t *testing.T) {
	k := Kinematics{ProximityRadius: 200}
	p := Point{X: 400, Y: 300, VX: 1, VY: 1}
	k.StepPoint(&p, OffscreenCursor, 800, 600, NewRand(3))
	if math.Abs(p.VX) < 0.08 || math.Abs(p.VY) < 0.08 {
		t.Errorf("velocity (%v, %v) below the default floor", p.VX, p.VY)
	}
	if !approx(p.X, 401, 1e-12) || !approx(p.Y, 301, 1e-12) {
		t.Errorf("position = (%v, %v), want (401, 301)", p.X, p.Y)
	}
}

func TestKinematicsWithDefaults(t *testing.T) {
	k := Kinematics{ProximityRadius: 200, Friction: 0.9}.withDefaults()
	d := DefaultKinematics()
	if k.ProximityRadius != 200 || k.Friction != 0.9 {
		t.Errorf("explicit fields overwritten: %+v", k)
	}
	if k.MinSpeed != d.MinSpeed || k.Jitter != d.Jitter || k.TeleportRadius != d.TeleportRadius {
		t.Errorf("zero fields not defaulted: %+v", k)
	}
}

func TestFlinchPointOnCursorMovesAway(t *testing.T) {
	k := DefaultKinematics()
	for seed := uint64(0); seed < 50; seed++ {
		cur := CursorState{400, 300}
		p := Point{X: 400, Y: 300}
		k.StepPoint(&p, cur, 800, 600, NewRand(seed))
		if p.VX*(p.X-cur.X)+p.VY*(p.Y-cur.Y) <= 0 {
			t.Fatalf("seed %d: velocity (%v, %v) at (%v, %v) does not point away from cursor",
				seed, p.VX, p.VY, p.X, p.Y)
		}
	}
}

func TestFlinchPointOnCursor(t *testing.T) {
	k := DefaultKinematics()
	p := Point{X: 400, Y: 300}
	k.StepPoint(&p, CursorState{400, 300}, 800, 600, midRand)
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.VX) || math.IsNaN(p.VY) {
		t.Fatalf("NaN after step: %+v", p)
	}
	if math.Abs(p.VX) < k.MinSpeed || math.Abs(p.VY) < k.MinSpeed {
		t.Errorf("velocity (%v, %v) below floor", p.VX, p.VY)
	}
}

func TestFlinchBoundaryIsExclusive(t *testing.T) {
	k := DefaultKinematics()
	p := Point{X: 520, Y: 300, VX: 0.1, VY: -0.2}
	k.flinch(&p, CursorState{400, 300}, 800, 600)
	if p.VX != 0.1 || p.VY != -0.2 || p.X != 520 || p.Y != 300 {
		t.Errorf("point at exactly ProximityRadius was affected: %+v", p)
	}
}

func TestFlinchJustInsideBoundary(t *testing.T) {
	k := DefaultKinematics()
	p := Point{X: 519, Y: 300}
	k.flinch(&p, CursorState{400, 300}, 800, 600)
	want := 1.0 / 120 * 250
	if !approx(p.VX, want, 1e-9) || p.VY != 0 {
		t.Errorf("velocity = (%v, %v), want (%v, 0)", p.VX, p.VY, want)
	}
}

func TestFlinchRepelStrength(t *testing.T) {
	k := DefaultKinematics()
	p := Point{X: 400, Y: 360}
	k.flinch(&p, CursorState{400, 300}, 800, 600)
	// dist 60: (120-60)/120 * 250 straight down.
	if p.VX != 0 || !approx(p.VY, 125, 1e-9) {
		t.Errorf("velocity = (%v, %v), want (0, 125)", p.VX, p.VY)
	}
	if p.X != 400 || p.Y != 360 {
		t.Error("repulsion must not move the point directly")
	}
}

func TestStepIdleScenario(t *testing.T) {
	k := DefaultKinematics()
	s := &Scene{
		Width:  800,
		Height: 600,
		Cursor: OffscreenCursor,
		Branches: []Branch{{
			Origin: Vec2{400, 300},
			Points: []Point{{X: 400, Y: 300}},
		}},
	}
	k.Step(s, NewRand(8))

	p := s.Branches[0].Points[0]
	if p.X != 400 || p.Y != 300 {
		t.Errorf("position = (%v, %v), want (400, 300)", p.X, p.Y)
	}
	// Jitter alone cannot reach the floor, so both axes were lifted to it.
	if !approx(math.Abs(p.VX), k.MinSpeed, 1e-12) || !approx(math.Abs(p.VY), k.MinSpeed, 1e-12) {
		t.Errorf("velocity = (%v, %v), want magnitude %v on each axis", p.VX, p.VY, k.MinSpeed)
	}
}

func TestStepFrictionAndIntegration(t *testing.T) {
	k := DefaultKinematics()
	p := Point{X: 100, Y: 100, VX: 1, VY: -2}
	k.StepPoint(&p, OffscreenCursor, 800, 600, midRand)
	if p.X != 101 || p.Y != 98 {
		t.Errorf("position = (%v, %v), want (101, 98)", p.X, p.Y)
	}
	if !approx(p.VX, 0.995, 1e-12) || !approx(p.VY, -1.99, 1e-12) {
		t.Errorf("velocity = (%v, %v), want (0.995, -1.99)", p.VX, p.VY)
	}
}

func TestStepJitterBounded(t *testing.T) {
	k := DefaultKinematics()
	rng := NewRand(12)
	for i := 0; i < 1000; i++ {
		p := Point{X: 100, Y: 100, VX: 1, VY: 1}
		k.StepPoint(&p, OffscreenCursor, 800, 600, rng)
		if math.Abs(p.VX-0.995) > k.Jitter+1e-12 || math.Abs(p.VY-0.995) > k.Jitter+1e-12 {
			t.Fatalf("jitter out of range: (%v, %v)", p.VX, p.VY)
		}
	}
}

func TestStepPointsDriftOffscreen(t *testing.T) {
	k := DefaultKinematics()
	p := Point{X: -50, Y: 700, VX: -1, VY: 1}
	k.StepPoint(&p, OffscreenCursor, 800, 600, midRand)
	if p.X != -51 || p.Y != 701 {
		t.Errorf("position = (%v, %v), want (-51, 701); points must not be clamped", p.X, p.Y)
	}
}

func TestFloorSign(t *testing.T) {
	k := DefaultKinematics()
	if got := k.floor(0, fixedRand{f: 0.9}); got != k.MinSpeed {
		t.Errorf("floor(0) with high draw = %v, want %v", got, k.MinSpeed)
	}
	if got := k.floor(0.01, fixedRand{f: 0.1}); got != -k.MinSpeed {
		t.Errorf("floor(0.01) with low draw = %v, want %v", got, -k.MinSpeed)
	}
	if got := k.floor(-0.5, fixedRand{f: 0.9}); got != -0.5 {
		t.Errorf("floor(-0.5) = %v, want unchanged", got)
	}
}

func TestEdgeTargetClampsPerpendicular(t *testing.T) {
	x, y := edgeTarget(700, 590, 20, 15, 800, 600)
	if x != 799 {
		t.Errorf("x = %v, want 799", x)
	}
	if y != 599 {
		t.Errorf("y = %v, want clamped to 599", y)
	}
}
