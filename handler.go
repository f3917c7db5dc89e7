package hover

import "github.com/hajimehoshi/ebiten/v2"

// Clickable reacts to a discrete click on an object. It is invoked
// synchronously by Dispatch once the clicked object has been resolved.
type Clickable interface {
	OnClick(id EntityID, w World)
}

// Hoverable is an object that can occupy the hovered slot.
//
// OnHoverStart and OnHoverStop may change the implementation's own state but
// must not touch other objects or the hovered slot, which belongs to
// HoverSystem. BoundingBox must be a pure accessor.
type Hoverable interface {
	OnHoverStart(id EntityID, w World)
	OnHoverStop(id EntityID, w World)
	BoundingBox() Shape
}

// ClickFunc adapts a plain function to Clickable.
type ClickFunc func(id EntityID, w World)

// OnClick calls f(id, w).
func (f ClickFunc) OnClick(id EntityID, w World) {
	f(id, w)
}

// NoEffectHover is a Hoverable that only carries a bounding volume.
// Embed it in other handlers to inherit no-op callbacks.
type NoEffectHover struct {
	Shape Shape
}

// NewNoEffectHover returns a handler that participates in hit testing only.
func NewNoEffectHover(shape Shape) *NoEffectHover {
	return &NoEffectHover{Shape: shape}
}

// OnHoverStart does nothing.
func (h *NoEffectHover) OnHoverStart(EntityID, World) {}

// OnHoverStop does nothing.
func (h *NoEffectHover) OnHoverStop(EntityID, World) {}

// BoundingBox returns the handler's shape.
func (h *NoEffectHover) BoundingBox() Shape {
	return h.Shape
}

// TextureSwapHover points Current at Hovered while the object is hovered and
// back at Normal when the pointer leaves. Renderers read Current.
type TextureSwapHover struct {
	NoEffectHover
	Normal  *ebiten.Image
	Hovered *ebiten.Image
	Current *ebiten.Image
}

// NewTextureSwapHover creates a texture swapping handler showing normal.
func NewTextureSwapHover(shape Shape, normal, hovered *ebiten.Image) *TextureSwapHover {
	return &TextureSwapHover{
		NoEffectHover: NoEffectHover{Shape: shape},
		Normal:        normal,
		Hovered:       hovered,
		Current:       normal,
	}
}

// OnHoverStart shows the hovered texture.
func (h *TextureSwapHover) OnHoverStart(EntityID, World) {
	h.Current = h.Hovered
}

// OnHoverStop restores the normal texture.
func (h *TextureSwapHover) OnHoverStop(EntityID, World) {
	h.Current = h.Normal
}

// HoverFuncs is a Hoverable assembled from optional callbacks. Nil callbacks
// are skipped.
type HoverFuncs struct {
	Shape   Shape
	OnStart func(id EntityID, w World)
	OnStop  func(id EntityID, w World)
}

// OnHoverStart calls OnStart if set.
func (h *HoverFuncs) OnHoverStart(id EntityID, w World) {
	if h.OnStart != nil {
		h.OnStart(id, w)
	}
}

// OnHoverStop calls OnStop if set.
func (h *HoverFuncs) OnHoverStop(id EntityID, w World) {
	if h.OnStop != nil {
		h.OnStop(id, w)
	}
}

// BoundingBox returns the handler's shape.
func (h *HoverFuncs) BoundingBox() Shape {
	return h.Shape
}
