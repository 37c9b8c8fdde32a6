package backdrop

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is a persistent offscreen image sized to the viewport. Branches are
// drawn into it each frame and it is then composited onto the screen at the
// configured opacity.
type Canvas struct {
	image *ebiten.Image
	w, h  int
}

// NewCanvas creates a canvas of the given size. Sizes below 1 are raised to 1.
func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 1), max(h, 1)
	return &Canvas{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image for direct manipulation.
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.w
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.h
}

// Clear fills the canvas with transparent black.
func (c *Canvas) Clear() {
	c.image.Clear()
}

// Resize reallocates the backing image when the size changes. Contents are
// discarded; the next frame redraws everything anyway.
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if w == c.w && h == c.h {
		return
	}
	if c.image != nil {
		c.image.Deallocate()
	}
	c.image = ebiten.NewImage(w, h)
	c.w = w
	c.h = h
}

// DrawTo composites the canvas onto dst scaled by alpha.
func (c *Canvas) DrawTo(dst *ebiten.Image, alpha float64) {
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	dst.DrawImage(c.image, &op)
}

// Dispose releases the underlying image. The canvas should not be used after
// calling Dispose.
func (c *Canvas) Dispose() {
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
}
