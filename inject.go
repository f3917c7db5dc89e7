package hover

// syntheticPointerEvent represents a single injected pointer frame.
// Screen coordinates are converted to a ray through the pointer's camera,
// identical to real cursor input. hasRay events bypass the camera.
type syntheticPointerEvent struct {
	screenX, screenY float64
	ray              Ray
	hasRay           bool
	click            bool
}

// InjectMove queues a cursor position in screen coordinates. The event is
// consumed by the next Poll.
func (p *Pointer) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{screenX: x, screenY: y})
}

// InjectClick queues a cursor position with the click button pressed.
// Consumes one frame.
func (p *Pointer) InjectClick(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, click: true})
}

// InjectRay queues a world space ray, skipping the camera entirely.
func (p *Pointer) InjectRay(r Ray) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{ray: r, hasRay: true})
}

// InjectSweep queues a cursor sweep from (fromX, fromY) to (toX, toY) over
// the given number of frames, both ends included. Minimum frames is 2.
func (p *Pointer) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Pending returns the number of injected events not yet consumed.
func (p *Pointer) Pending() int {
	return len(p.injectQueue)
}

func (p *Pointer) popInjected() (syntheticPointerEvent, bool) {
	if len(p.injectQueue) == 0 {
		return syntheticPointerEvent{}, false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]
	return evt, true
}
