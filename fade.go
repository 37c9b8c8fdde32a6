package backdrop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fade animates the canvas opacity from one value to another.
// Users of Background never touch it directly; Config.FadeIn enables it.
type fade struct {
	tween *gween.Tween
	value float64
	done  bool
}

// newFade creates a fade from `from` to `to` over duration seconds.
func newFade(from, to float64, duration float32, fn ease.TweenFunc) *fade {
	return &fade{
		tween: gween.New(float32(from), float32(to), duration, fn),
		value: from,
	}
}

// update advances the fade by dt seconds.
func (f *fade) update(dt float32) {
	if f.done {
		return
	}
	v, finished := f.tween.Update(dt)
	f.value = float64(v)
	f.done = finished
}
