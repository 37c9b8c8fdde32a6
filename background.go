package backdrop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Config controls a Background.
type Config struct {
	// Width and Height are the initial viewport size in pixels.
	Width, Height int
	// Seed seeds the random source when Rand is nil.
	Seed uint64
	// Rand overrides the random source. Optional.
	Rand Rand
	// Scene controls branch layout. Zero fields take defaults.
	Scene SceneConfig
	// Kinematics is the force model. Zero fields take defaults.
	Kinematics Kinematics
	// Style controls painting. Zero fields other than GlowRadius take
	// defaults; the zero value means DefaultStyle.
	Style Style
	// FadeIn, when positive, fades the canvas in from transparent over this
	// many seconds.
	FadeIn float32
	// ScreenshotDir is where Screenshot writes PNG files. Default "screenshots".
	ScreenshotDir string
}

// DefaultConfig returns the stock configuration for an 800x600 viewport.
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        600,
		Scene:         DefaultSceneConfig(),
		Kinematics:    DefaultKinematics(),
		Style:         DefaultStyle(),
		ScreenshotDir: "screenshots",
	}
}

// Background is the animated branch-line backdrop. It implements ebiten.Game:
// Update advances the simulation one frame, Draw repaints it and Layout keeps
// the canvas sized to the window.
type Background struct {
	scene    *Scene
	kin      Kinematics
	rng      Rand
	renderer *Renderer
	fade     *fade
	frame    uint64

	// ScreenshotDir is the directory screenshots are written to.
	ScreenshotDir string

	handlers      handlerRegistry
	pointer       pointerState
	pointerSource func() (int, int)
	focusSource   func() bool
	injectQueue   []syntheticPointerEvent

	screenshotQueue []string
	testRunner      *TestRunner
	fps             *fpsOverlay

	debug bool
	stats frameStats
}

// NewBackground builds the scene, the renderer and the cursor subscription.
func NewBackground(cfg Config) *Background {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		d := DefaultConfig()
		cfg.Width, cfg.Height = d.Width, d.Height
	}
	cfg.Kinematics = cfg.Kinematics.withDefaults()
	cfg.Style = cfg.Style.withDefaults()
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	rng := cfg.Rand
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}

	b := &Background{
		scene:         NewScene(float64(cfg.Width), float64(cfg.Height), cfg.Scene, rng),
		kin:           cfg.Kinematics,
		rng:           rng,
		renderer:      NewRenderer(cfg.Width, cfg.Height, cfg.Style),
		ScreenshotDir: cfg.ScreenshotDir,
	}
	if cfg.FadeIn > 0 {
		b.fade = newFade(0, cfg.Style.Opacity, cfg.FadeIn, ease.OutQuad)
	}

	b.OnPointerMove(func(ctx PointerContext) {
		b.scene.Cursor.Move(ctx.X, ctx.Y)
	})
	b.OnPointerLeave(func(PointerContext) {
		b.scene.Cursor.Leave()
	})
	return b
}

// Scene returns the simulated scene.
func (b *Background) Scene() *Scene {
	return b.scene
}

// Renderer returns the renderer.
func (b *Background) Renderer() *Renderer {
	return b.renderer
}

// Kinematics returns a pointer to the force model for live tuning.
func (b *Background) Kinematics() *Kinematics {
	return &b.kin
}

// Frame returns the number of kinematics steps taken so far.
func (b *Background) Frame() uint64 {
	return b.frame
}

// Opacity returns the opacity the canvas is currently composited with.
func (b *Background) Opacity() float64 {
	if b.fade != nil {
		return b.fade.value
	}
	return b.renderer.style.Opacity
}

// Tick advances every point by exactly one step against the current cursor.
// It does not touch input, fades or rendering.
func (b *Background) Tick() {
	var t0 time.Time
	if b.debug {
		t0 = time.Now()
	}
	b.kin.Step(b.scene, b.rng)
	b.frame++
	if b.debug {
		b.stats.stepTime = time.Since(t0)
	}
}

// Update runs one frame: scripted steps, pointer input, the fade and one
// kinematics step.
func (b *Background) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if b.testRunner != nil {
		b.testRunner.step(b)
	}
	b.processInput()
	if b.fade != nil {
		b.fade.update(dt)
	}
	if b.fps != nil {
		b.fps.update(float64(dt))
	}
	b.Tick()
	return nil
}

// Draw repaints every branch and composites the canvas onto screen.
func (b *Background) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if b.debug {
		t0 = time.Now()
	}

	b.renderer.Draw(screen, b.scene, b.Opacity())

	if b.debug {
		b.stats.drawTime = time.Since(t0)
		b.stats.branches = len(b.scene.Branches)
		b.stats.segments = b.scene.SegmentCount()
		b.debugLog(b.stats)
	}
	if b.fps != nil {
		b.fps.draw(screen)
	}
	b.flushScreenshots(screen)
}

// Layout reports the canvas size and resizes it to follow the window.
func (b *Background) Layout(outsideWidth, outsideHeight int) (int, int) {
	b.Resize(outsideWidth, outsideHeight)
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// Resize syncs the canvas to a new viewport size. Points keep their positions.
func (b *Background) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if float64(w) == b.scene.Width && float64(h) == b.scene.Height {
		return
	}
	b.scene.Resize(float64(w), float64(h))
	b.renderer.Resize(w, h)
}

// SetDebugMode enables or disables per-frame timing logs on stderr.
func (b *Background) SetDebugMode(enabled bool) {
	b.debug = enabled
}
