package backdrop

// EventType identifies a kind of pointer event.
type EventType uint8

const (
	EventPointerMove  EventType = iota // fires when the pointer moves over the canvas
	EventPointerLeave                  // fires when the pointer leaves the canvas
)

// PointerContext carries the pointer position for a pointer event. For
// EventPointerLeave it holds the last position seen inside the canvas.
type PointerContext struct {
	X, Y float64
}

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	pointerMove  []pointerHandler
	pointerLeave []pointerHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered pointer callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerMove:
		h.reg.pointerMove = removePointerHandler(h.reg.pointerMove, h.id)
	case EventPointerLeave:
		h.reg.pointerLeave = removePointerHandler(h.reg.pointerLeave, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i, h := range s {
		if h.id == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func (r *handlerRegistry) add(event EventType, fn func(PointerContext)) CallbackHandle {
	r.nextID++
	h := pointerHandler{id: r.nextID, fn: fn}
	switch event {
	case EventPointerMove:
		r.pointerMove = append(r.pointerMove, h)
	case EventPointerLeave:
		r.pointerLeave = append(r.pointerLeave, h)
	}
	return CallbackHandle{id: h.id, reg: r, event: event}
}

// OnPointerMove registers a callback fired whenever the pointer moves over the
// canvas (or enters it).
func (b *Background) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return b.handlers.add(EventPointerMove, fn)
}

// OnPointerLeave registers a callback fired when the pointer leaves the canvas.
func (b *Background) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return b.handlers.add(EventPointerLeave, fn)
}

// pointerState tracks whether the pointer was over the canvas last frame.
type pointerState struct {
	inside bool
	x, y   float64
}

// processInput is called from Update. Injected events take priority; the
// real cursor is polled only when a pointer source is attached (see Run).
// Losing window focus counts as the pointer leaving, since the host keeps
// reporting the last in-window position after the cursor has gone.
func (b *Background) processInput() {
	if b.processInjectedInput() {
		return
	}
	if b.pointerSource == nil {
		return
	}
	if b.focusSource != nil && !b.focusSource() {
		b.processPointer(0, 0, false)
		return
	}
	mx, my := b.pointerSource()
	x, y := float64(mx), float64(my)
	b.processPointer(x, y, b.scene.Bounds().Contains(x, y))
}

// processPointer turns a polled position into move/leave events.
func (b *Background) processPointer(x, y float64, inside bool) {
	prev := b.pointer
	if !inside {
		if prev.inside {
			b.pointer.inside = false
			b.firePointerLeave(PointerContext{X: prev.x, Y: prev.y})
		}
		return
	}
	b.pointer = pointerState{inside: true, x: x, y: y}
	if !prev.inside || prev.x != x || prev.y != y {
		b.firePointerMove(PointerContext{X: x, Y: y})
	}
}

func (b *Background) firePointerMove(ctx PointerContext) {
	for _, h := range b.handlers.pointerMove {
		h.fn(ctx)
	}
}

func (b *Background) firePointerLeave(ctx PointerContext) {
	for _, h := range b.handlers.pointerLeave {
		h.fn(ctx)
	}
}
