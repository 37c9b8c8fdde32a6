package backdrop

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// jointSides is the polygon resolution used for round joins.
const jointSides = 12

// Snapshot paints the scene into a new transparent RGBA image the size of the
// viewport, without the GPU. The result matches what Draw composites: opaque
// strokes scaled by Opacity*LineAlpha, with a faint halo standing in for the
// glow.
func Snapshot(s *Scene, st Style) *image.RGBA {
	st = st.withDefaults()
	w := max(int(math.Ceil(s.Width)), 1)
	h := max(int(math.Ceil(s.Height)), 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	Rasterize(dst, s, st)
	scaleAlpha(dst, clamp01(st.Opacity*st.LineAlpha))
	return dst
}

// Rasterize strokes every branch into dst with opaque colors. Pixels outside
// dst's bounds are clipped.
func Rasterize(dst *image.RGBA, s *Scene, st Style) {
	st = st.withDefaults()
	z := &vector.Rasterizer{}
	var verts []Vec2

	if st.GlowRadius > 0 {
		halo := st.LineWidth + float64(st.GlowRadius)
		for i := range s.Branches {
			b := &s.Branches[i]
			verts = b.Polyline(verts[:0])
			fillPolyline(z, dst, verts, halo, b.Color.Color.WithAlpha(0.2))
		}
	}
	for i := range s.Branches {
		b := &s.Branches[i]
		verts = b.Polyline(verts[:0])
		fillPolyline(z, dst, verts, st.LineWidth, b.Color.Color)
	}
}

// fillPolyline draws each segment as a quad plus a round join at every
// interior vertex. Every shape is rasterized on its own so overlapping shapes
// composite instead of cancelling.
func fillPolyline(z *vector.Rasterizer, dst *image.RGBA, verts []Vec2, width float64, c Color) {
	if len(verts) < 2 || width <= 0 {
		return
	}
	src := image.NewUniform(color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	})
	half := width / 2
	for i := 1; i < len(verts); i++ {
		fillShape(z, dst, src, segmentQuad(verts[i-1], verts[i], half))
	}
	for i := 1; i < len(verts)-1; i++ {
		fillShape(z, dst, src, disc(verts[i], half))
	}
}

// fillShape rasterizes one closed polygon over the part of dst it covers.
func fillShape(z *vector.Rasterizer, dst *image.RGBA, src image.Image, poly []Vec2) {
	if len(poly) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range poly {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(dst.Bounds())
	if box.Empty() {
		return
	}

	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	z.Reset(box.Dx(), box.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(poly[0].X-ox), float32(poly[0].Y-oy))
	for _, p := range poly[1:] {
		z.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	z.ClosePath()
	z.Draw(dst, box, src, image.Point{})
}

// segmentQuad returns the rectangle of half-width half around segment a-b.
func segmentQuad(a, b Vec2, half float64) []Vec2 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil
	}
	nx, ny := -dy/l*half, dx/l*half
	return []Vec2{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	}
}

// disc approximates a circle of radius r around c.
func disc(c Vec2, r float64) []Vec2 {
	poly := make([]Vec2, jointSides)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / jointSides
		poly[i] = Vec2{c.X + math.Cos(a)*r, c.Y + math.Sin(a)*r}
	}
	return poly
}

// scaleAlpha multiplies every premultiplied pixel of img by a.
func scaleAlpha(img *image.RGBA, a float64) {
	if a >= 1 {
		return
	}
	for i := range img.Pix {
		img.Pix[i] = uint8(float64(img.Pix[i])*a + 0.5)
	}
}
