package backdrop

// CursorState is the last known pointer position in screen pixels.
type CursorState struct {
	X, Y float64
}

// OffscreenCursor is the cursor position used when no pointer is over the
// canvas. It is far enough away that no point is ever repelled by it.
var OffscreenCursor = CursorState{X: -1000, Y: -1000}

// Move records a new pointer position.
func (c *CursorState) Move(x, y float64) {
	c.X = x
	c.Y = y
}

// Leave resets the cursor to OffscreenCursor.
func (c *CursorState) Leave() {
	*c = OffscreenCursor
}

// Offscreen reports whether the cursor is at the off-screen sentinel.
func (c CursorState) Offscreen() bool {
	return c == OffscreenCursor
}
