package backdrop

// syntheticPointerEvent is a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	x, y  float64
	leave bool
}

// InjectMove queues a pointer move to (x, y). The event is consumed on the
// next Update and replaces real cursor input for that frame. Positions outside
// the viewport behave like the pointer leaving the canvas.
func (b *Background) InjectMove(x, y float64) {
	b.injectQueue = append(b.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectLeave queues the pointer leaving the canvas.
func (b *Background) InjectLeave() {
	b.injectQueue = append(b.injectQueue, syntheticPointerEvent{leave: true})
}

// InjectPath queues moves along a straight line from (fromX, fromY) to
// (toX, toY), one per frame, over the given number of frames. Minimum 2.
func (b *Background) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		b.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed.
func (b *Background) processInjectedInput() bool {
	if len(b.injectQueue) == 0 {
		return false
	}
	evt := b.injectQueue[0]
	copy(b.injectQueue, b.injectQueue[1:])
	b.injectQueue = b.injectQueue[:len(b.injectQueue)-1]

	if evt.leave {
		b.processPointer(0, 0, false)
		return true
	}
	b.processPointer(evt.x, evt.y, b.scene.Bounds().Contains(evt.x, evt.y))
	return true
}
