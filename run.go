package backdrop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size. Zero keeps the
	// Background's viewport size.
	Width, Height int
	// Resizable lets the user resize the window; the canvas follows.
	Resizable bool
	// Transparent clears the window to transparent so the backdrop can sit
	// over other content.
	Transparent bool
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
}

// Run opens a window and drives b at the display refresh rate until the
// window is closed. It attaches the real cursor as b's pointer source.
func Run(b *Background, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = int(b.scene.Width), int(b.scene.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.ShowFPS {
		b.fps = newFPSOverlay()
	}
	b.pointerSource = ebiten.CursorPosition
	b.focusSource = ebiten.IsFocused

	opts := &ebiten.RunGameOptions{ScreenTransparent: cfg.Transparent}
	if err := ebiten.RunGameWithOptions(b, opts); err != nil {
		return fmt.Errorf("run backdrop: %w", err)
	}
	return nil
}
