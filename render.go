package backdrop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Style controls how branches are painted.
type Style struct {
	// LineWidth is the stroke width in pixels. Default 4.
	LineWidth float64
	// LineAlpha is the stroke opacity. Default 0.85.
	LineAlpha float64
	// GlowRadius is the blur radius of the colored halo around each stroke.
	// Zero disables the glow. Default 12.
	GlowRadius int
	// Opacity is the opacity the whole canvas is composited with. Default 0.7.
	Opacity float64
}

// DefaultStyle returns the stock look.
func DefaultStyle() Style {
	return Style{
		LineWidth:  4,
		LineAlpha:  0.85,
		GlowRadius: 12,
		Opacity:    0.7,
	}
}

// withDefaults fills non-positive LineWidth, LineAlpha and Opacity from
// DefaultStyle. GlowRadius is kept as given since zero disables the glow; a
// zero Style is DefaultStyle.
func (st Style) withDefaults() Style {
	d := DefaultStyle()
	if st == (Style{}) {
		return d
	}
	if st.LineWidth <= 0 {
		st.LineWidth = d.LineWidth
	}
	if st.LineAlpha <= 0 {
		st.LineAlpha = d.LineAlpha
	}
	if st.Opacity <= 0 {
		st.Opacity = d.Opacity
	}
	return st
}

// Renderer redraws every branch of a Scene into an offscreen canvas and
// composites it onto the screen.
type Renderer struct {
	style  Style
	canvas *Canvas
	glow   *Canvas
	blur   *blurFilter
	verts  []Vec2
}

// NewRenderer creates a renderer for a w x h viewport.
func NewRenderer(w, h int, style Style) *Renderer {
	style = style.withDefaults()
	r := &Renderer{
		style:  style,
		canvas: NewCanvas(w, h),
	}
	if style.GlowRadius > 0 {
		r.glow = NewCanvas(w, h)
		r.blur = newBlurFilter(style.GlowRadius)
	}
	return r
}

// Style returns a pointer to the renderer's style for live tuning.
// GlowRadius changes take effect only through NewRenderer.
func (r *Renderer) Style() *Style {
	return &r.style
}

// Canvas returns the offscreen canvas holding the last drawn frame.
func (r *Renderer) Canvas() *Canvas {
	return r.canvas
}

// Resize keeps the offscreen canvases in step with the viewport.
func (r *Renderer) Resize(w, h int) {
	r.canvas.Resize(w, h)
	if r.glow != nil {
		r.glow.Resize(w, h)
	}
}

// Draw clears the canvas, repaints every branch and composites the result
// onto screen at opacity.
func (r *Renderer) Draw(screen *ebiten.Image, s *Scene, opacity float64) {
	r.Paint(s)
	// Strokes are painted opaque so that joins do not double up; the stroke
	// alpha is applied once here.
	r.canvas.DrawTo(screen, opacity*r.style.LineAlpha)
}

// Paint redraws the scene into the offscreen canvas without compositing it.
func (r *Renderer) Paint(s *Scene) {
	r.canvas.Clear()
	width := float32(r.style.LineWidth)

	if r.glow != nil {
		r.glow.Clear()
		for i := range s.Branches {
			b := &s.Branches[i]
			r.verts = b.Polyline(r.verts[:0])
			strokePolyline(r.glow.Image(), r.verts, width, b.Color.Color)
		}
		r.blur.Apply(r.glow.Image(), r.canvas.Image())
	}

	for i := range s.Branches {
		b := &s.Branches[i]
		r.verts = b.Polyline(r.verts[:0])
		strokePolyline(r.canvas.Image(), r.verts, width, b.Color.Color)
	}
}

// Dispose releases the renderer's images.
func (r *Renderer) Dispose() {
	r.canvas.Dispose()
	if r.glow != nil {
		r.glow.Dispose()
		r.blur.dispose()
	}
}

// strokePolyline draws connected segments through verts with round joins.
func strokePolyline(dst *ebiten.Image, verts []Vec2, width float32, c Color) {
	if len(verts) < 2 {
		return
	}
	clr := c.toRGBA()
	for i := 1; i < len(verts); i++ {
		a, b := verts[i-1], verts[i]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
	// Fill the gaps between consecutive segments.
	for i := 1; i < len(verts)-1; i++ {
		v := verts[i]
		vector.DrawFilledCircle(dst, float32(v.X), float32(v.Y), width/2, clr, true)
	}
}
