package backdrop

// fixedRand returns the same Float64 every call and a fixed IntN index.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) IntN(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

// midRand makes every symmetric draw exactly zero and every sign draw negative.
var midRand = fixedRand{f: 0.5}

func approx(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
