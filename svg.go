package backdrop

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// errWriter remembers the first write error so the SVG encoder, which does
// not report errors, can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG writes the current frame of s as a standalone SVG document. Each
// branch becomes one polyline; the glow is an SVG gaussian blur merged under
// the stroke.
func WriteSVG(w io.Writer, s *Scene, st Style) error {
	st = st.withDefaults()
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	width := max(int(math.Ceil(s.Width)), 1)
	height := max(int(math.Ceil(s.Height)), 1)
	canvas.Start(width, height)
	canvas.Title("branch lines")

	filter := ""
	if st.GlowRadius > 0 {
		canvas.Def()
		canvas.Filter("glow", `x="-50%" y="-50%" width="200%" height="200%"`)
		sigma := float64(st.GlowRadius) / 2
		canvas.FeGaussianBlur(svg.Filterspec{In: "SourceGraphic", Result: "blur"}, sigma, sigma)
		canvas.FeMerge([]string{"blur", "SourceGraphic"})
		canvas.Fend()
		canvas.DefEnd()
		filter = ` filter="url(#glow)"`
	}

	canvas.Gstyle(fmt.Sprintf("fill:none;stroke-width:%g;stroke-linejoin:round;stroke-linecap:round;opacity:%g",
		st.LineWidth, clamp01(st.Opacity)))
	var verts []Vec2
	for i := range s.Branches {
		b := &s.Branches[i]
		verts = b.Polyline(verts[:0])
		xs := make([]int, len(verts))
		ys := make([]int, len(verts))
		for j, v := range verts {
			xs[j] = int(math.Round(v.X))
			ys[j] = int(math.Round(v.Y))
		}
		canvas.Polyline(xs, ys, fmt.Sprintf(`stroke="%s" stroke-opacity="%g"%s`,
			b.Color.Color.Hex(), clamp01(st.LineAlpha), filter))
	}
	canvas.Gend()
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}
