package backdrop

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot asks for the next rendered frame to be saved as
// ScreenshotDir/<timestamp>_<label>.png. Capture happens at the end of Draw,
// so calling it from Update or a pointer callback is fine.
func (b *Background) Screenshot(label string) {
	b.screenshotQueue = append(b.screenshotQueue, label)
}

// flushScreenshots writes one PNG per queued label. Failures are logged and
// the queue is always cleared.
func (b *Background) flushScreenshots(screen *ebiten.Image) {
	if len(b.screenshotQueue) == 0 {
		return
	}
	labels := b.screenshotQueue
	b.screenshotQueue = b.screenshotQueue[:0]

	size := screen.Bounds().Size()
	pixels := make([]byte, 4*size.X*size.Y)
	screen.ReadPixels(pixels)
	frame := unpremultiply(pixels, size.X, size.Y)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		name := stamp + "_" + sanitizeLabel(label) + ".png"
		if err := writePNG(filepath.Join(b.ScreenshotDir, name), frame); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[backdrop] screenshot: %v\n", err)
		}
	}
}

// SavePNG rasterizes s in software and writes it to path, creating parent
// directories as needed. It needs no window.
func SavePNG(path string, s *Scene, st Style) error {
	return writePNG(path, Snapshot(s, st))
}

// unpremultiply turns ReadPixels output into straight-alpha pixels.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	n := min(len(pixels), len(img.Pix))
	copy(img.Pix, pixels[:n])
	for i := 0; i+3 < n; i += 4 {
		a := int(img.Pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := i; c < i+3; c++ {
			img.Pix[c] = uint8(min(int(img.Pix[c])*255/a, 255))
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', maps everything else to
// '_', and names empty labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
