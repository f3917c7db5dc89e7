package hover

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer is the per-frame pointer ray source. Each call to Poll reads the
// mouse through ebiten, unless synthetic events have been injected, in which
// case one injected event is consumed instead.
type Pointer struct {
	Camera *Camera
	// Button is the mouse button that counts as a click.
	Button ebiten.MouseButton

	injectQueue []syntheticPointerEvent
	ray         Ray
	screenX     float64
	screenY     float64
}

// NewPointer creates a pointer that casts rays through cam.
func NewPointer(cam *Camera) *Pointer {
	return &Pointer{Camera: cam, Button: ebiten.MouseButtonLeft}
}

// Poll refreshes the pointer ray for this frame and reports whether the
// click button was pressed this frame. Call it once per tick from
// ebiten.Game.Update.
func (p *Pointer) Poll() (Ray, bool) {
	if evt, ok := p.popInjected(); ok {
		return p.apply(evt)
	}

	mx, my := ebiten.CursorPosition()
	p.screenX, p.screenY = float64(mx), float64(my)
	p.ray = p.Camera.ScreenToRay(p.screenX, p.screenY)
	return p.ray, inpututil.IsMouseButtonJustPressed(p.Button)
}

// Ray returns the ray computed by the last Poll.
func (p *Pointer) Ray() Ray {
	return p.ray
}

// ScreenPosition returns the screen coordinates used by the last Poll. For
// injected rays it keeps the previous value.
func (p *Pointer) ScreenPosition() (float64, float64) {
	return p.screenX, p.screenY
}

// apply converts an injected event exactly like real cursor input.
func (p *Pointer) apply(evt syntheticPointerEvent) (Ray, bool) {
	if evt.hasRay {
		p.ray = evt.ray
		return p.ray, evt.click
	}
	p.screenX, p.screenY = evt.screenX, evt.screenY
	p.ray = p.Camera.ScreenToRay(evt.screenX, evt.screenY)
	return p.ray, evt.click
}
