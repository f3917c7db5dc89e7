package hover

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const defaultHighlightDuration = 0.15 // seconds

// HighlightHover fades Level towards 1 while hovered and back to 0 after the
// pointer leaves. Renderers use Level to blend an outline or tint.
//
// There is no global animation manager; callers advance the fade with
// Update(dt) once per frame.
type HighlightHover struct {
	NoEffectHover
	Level    float64
	Duration float32
	Ease     ease.TweenFunc

	tween *gween.Tween
	done  bool
}

// NewHighlightHover creates a highlight handler with the default fade
// duration and an out-quad curve.
func NewHighlightHover(shape Shape) *HighlightHover {
	return &HighlightHover{
		NoEffectHover: NoEffectHover{Shape: shape},
		Duration:      defaultHighlightDuration,
		Ease:          ease.OutQuad,
		done:          true,
	}
}

// OnHoverStart begins fading in from the current level.
func (h *HighlightHover) OnHoverStart(EntityID, World) {
	h.fadeTo(1)
}

// OnHoverStop begins fading out from the current level.
func (h *HighlightHover) OnHoverStop(EntityID, World) {
	h.fadeTo(0)
}

// Done reports whether the last fade has finished.
func (h *HighlightHover) Done() bool {
	return h.done
}

// Update advances the fade by dt seconds and writes the result to Level.
func (h *HighlightHover) Update(dt float32) {
	if h.done || h.tween == nil {
		return
	}
	val, finished := h.tween.Update(dt)
	h.Level = float64(val)
	h.done = finished
}

func (h *HighlightHover) fadeTo(target float64) {
	fn := h.Ease
	if fn == nil {
		fn = ease.Linear
	}
	h.tween = gween.New(float32(h.Level), float32(target), h.Duration, fn)
	h.done = false
}
