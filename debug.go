package backdrop

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and geometry counts.
// Only populated when debug mode is on.
type frameStats struct {
	stepTime time.Duration
	drawTime time.Duration
	branches int
	segments int
}

// debugLog prints timing and geometry stats to stderr.
func (b *Background) debugLog(stats frameStats) {
	if !b.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[backdrop] frame %d | step: %v | draw: %v | total: %v\n",
		b.frame, stats.stepTime, stats.drawTime, stats.stepTime+stats.drawTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[backdrop] branches: %d | segments: %d | cursor: %s\n",
		stats.branches, stats.segments, describeCursor(b.scene.Cursor))
}

func describeCursor(c CursorState) string {
	if c.Offscreen() {
		return "off-screen"
	}
	return fmt.Sprintf("(%.0f, %.0f)", c.X, c.Y)
}
