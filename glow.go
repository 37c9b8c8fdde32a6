package backdrop

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// blurFilter applies a Kawase iterative blur using downscale/upscale passes.
// No Kage shader needed: bilinear filtering during DrawImage does the work.
// It stands in for a canvas shadowBlur keyed to the stroke color.
type blurFilter struct {
	Radius int
	temps  []*ebiten.Image
	imgOp  ebiten.DrawImageOptions
}

// newBlurFilter creates a blur filter with the given radius (in pixels).
func newBlurFilter(radius int) *blurFilter {
	if radius < 0 {
		radius = 0
	}
	return &blurFilter{Radius: radius}
}

// passes returns the number of downscale passes for the radius: log2(radius),
// minimum 1.
func (f *blurFilter) passes() int {
	if f.Radius <= 0 {
		return 0
	}
	return max(int(math.Ceil(math.Log2(float64(f.Radius)))), 1)
}

// Apply renders a blurred copy of src into dst. dst is drawn over, not cleared.
func (f *blurFilter) Apply(src, dst *ebiten.Image) {
	op := &f.imgOp
	passes := f.passes()
	if passes == 0 {
		op.GeoM.Reset()
		op.ColorScale.Reset()
		op.Filter = ebiten.FilterNearest
		dst.DrawImage(src, op)
		return
	}

	for len(f.temps) < passes {
		f.temps = append(f.temps, nil)
	}
	for i := passes; i < len(f.temps); i++ {
		if f.temps[i] != nil {
			f.temps[i].Deallocate()
			f.temps[i] = nil
		}
	}
	f.temps = f.temps[:passes]

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	// Downscale: each pass halves the size.
	current := src
	for i := 0; i < passes; i++ {
		w = max(w/2, 1)
		h = max(h/2, 1)
		if f.temps[i] == nil || f.temps[i].Bounds().Dx() != w || f.temps[i].Bounds().Dy() != h {
			if f.temps[i] != nil {
				f.temps[i].Deallocate()
			}
			f.temps[i] = ebiten.NewImage(w, h)
		} else {
			f.temps[i].Clear()
		}
		f.scaleInto(current, f.temps[i])
		current = f.temps[i]
	}

	// Upscale back through the chain.
	for i := passes - 2; i >= 0; i-- {
		f.temps[i].Clear()
		f.scaleInto(current, f.temps[i])
		current = f.temps[i]
	}

	f.scaleInto(current, dst)
}

// scaleInto draws src stretched over the full bounds of dst with linear
// filtering.
func (f *blurFilter) scaleInto(src, dst *ebiten.Image) {
	op := &f.imgOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	sw := float64(src.Bounds().Dx())
	sh := float64(src.Bounds().Dy())
	tw := float64(dst.Bounds().Dx())
	th := float64(dst.Bounds().Dy())
	op.GeoM.Scale(tw/sw, th/sh)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}

// dispose releases the intermediate images.
func (f *blurFilter) dispose() {
	for i, img := range f.temps {
		if img != nil {
			img.Deallocate()
			f.temps[i] = nil
		}
	}
	f.temps = f.temps[:0]
}
