package backdrop

// Point is one vertex of a branch. Velocity is in pixels per frame.
type Point struct {
	X, Y   float64
	VX, VY float64
}

// Branch is a polyline starting at Origin and running through Points in order.
// The number of points is fixed at creation.
type Branch struct {
	Origin Vec2
	Points []Point
	Color  Swatch
}

// Scene holds every branch, the viewport size and the cursor the points
// flinch away from.
type Scene struct {
	Branches []Branch
	Cursor   CursorState
	Width    float64
	Height   float64
}

// SceneConfig controls how NewScene lays out branches.
type SceneConfig struct {
	// BranchCount is the number of branches. Default 7.
	BranchCount int
	// PointsPerBranch is the number of points per branch. Default 6.
	PointsPerBranch int
	// StepRange is the maximum random-walk offset per axis between
	// consecutive points, in pixels. Default 60.
	StepRange float64
	// InitialSpeed bounds the starting velocity per axis, in pixels per
	// frame. Default 0.35.
	InitialSpeed float64
	// Palette is the set of branch colors. Default DefaultPalette.
	Palette Palette
}

// DefaultSceneConfig returns the stock branch layout.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		BranchCount:     7,
		PointsPerBranch: 6,
		StepRange:       60,
		InitialSpeed:    0.35,
		Palette:         MustParsePalette(DefaultPalette),
	}
}

// withDefaults fills zero fields from DefaultSceneConfig.
func (c SceneConfig) withDefaults() SceneConfig {
	d := DefaultSceneConfig()
	if c.BranchCount <= 0 {
		c.BranchCount = d.BranchCount
	}
	if c.PointsPerBranch <= 0 {
		c.PointsPerBranch = d.PointsPerBranch
	}
	if c.StepRange <= 0 {
		c.StepRange = d.StepRange
	}
	if c.InitialSpeed <= 0 {
		c.InitialSpeed = d.InitialSpeed
	}
	if len(c.Palette) == 0 {
		c.Palette = d.Palette
	}
	return c
}

// NewScene builds cfg.BranchCount branches inside a width x height viewport.
// Each branch starts at a random origin and walks cfg.PointsPerBranch steps of
// at most cfg.StepRange per axis. The cursor starts off-screen.
func NewScene(width, height float64, cfg SceneConfig, rng Rand) *Scene {
	cfg = cfg.withDefaults()
	step := Symmetric(cfg.StepRange)
	speed := Symmetric(cfg.InitialSpeed)

	s := &Scene{
		Branches: make([]Branch, 0, cfg.BranchCount),
		Cursor:   OffscreenCursor,
		Width:    width,
		Height:   height,
	}
	for i := 0; i < cfg.BranchCount; i++ {
		x := rng.Float64() * width
		y := rng.Float64() * height
		points := make([]Point, cfg.PointsPerBranch)
		px, py := x, y
		for j := range points {
			px += step.Random(rng)
			py += step.Random(rng)
			points[j] = Point{
				X:  px,
				Y:  py,
				VX: speed.Random(rng),
				VY: speed.Random(rng),
			}
		}
		s.Branches = append(s.Branches, Branch{
			Origin: Vec2{X: x, Y: y},
			Points: points,
			Color:  cfg.Palette.Pick(rng),
		})
	}
	return s
}

// Resize updates the viewport size. Existing points are left where they are.
func (s *Scene) Resize(width, height float64) {
	s.Width = width
	s.Height = height
}

// Bounds returns the viewport as a Rect.
func (s *Scene) Bounds() Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// PointCount returns the total number of points across all branches.
func (s *Scene) PointCount() int {
	n := 0
	for i := range s.Branches {
		n += len(s.Branches[i].Points)
	}
	return n
}

// SegmentCount returns the number of line segments drawn per frame.
func (s *Scene) SegmentCount() int {
	// Each point is joined to its predecessor, the first one to the origin.
	return s.PointCount()
}

// Polyline returns the branch vertices in drawing order: the origin followed
// by every point. The slice is appended to buf.
func (b *Branch) Polyline(buf []Vec2) []Vec2 {
	buf = append(buf, b.Origin)
	for _, p := range b.Points {
		buf = append(buf, Vec2{X: p.X, Y: p.Y})
	}
	return buf
}
