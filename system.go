package hover

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// HoverSystem owns the hovered slot: at most one object is hovered at any
// time. Each frame it resolves the nearest object under the pointer and, if
// that differs from the slot, emits a stop event for the old object and a
// start event for the new one.
//
// HoverSystem is meant to be driven from a single game loop. Hovered may be
// called from any goroutine, including from inside hover callbacks.
type HoverSystem struct {
	picker Picker
	events EventQueue
	sink   EventSink
	logger *zap.Logger
	debug  bool

	stepMu sync.Mutex

	slotMu   sync.RWMutex
	hovered  EntityID
	hovering bool
}

// NewHoverSystem creates a system with an empty slot and the default picker.
func NewHoverSystem() *HoverSystem {
	return &HoverSystem{
		picker: DefaultPicker(),
		logger: zap.NewNop(),
	}
}

// Picker returns the picker used by Update.
func (s *HoverSystem) Picker() Picker {
	return s.picker
}

// SetPicker replaces the picker used by Update.
func (s *HoverSystem) SetPicker(p Picker) {
	s.stepMu.Lock()
	s.picker = p
	s.stepMu.Unlock()
}

// Events returns the system's transition event queue.
func (s *HoverSystem) Events() *EventQueue {
	return &s.events
}

// SetEventSink sets the optional ECS bridge. Pass nil to detach it.
func (s *HoverSystem) SetEventSink(sink EventSink) {
	s.stepMu.Lock()
	s.sink = sink
	s.stepMu.Unlock()
}

// Hovered returns the currently hovered object, or false if the pointer is
// over nothing.
func (s *HoverSystem) Hovered() (EntityID, bool) {
	s.slotMu.RLock()
	defer s.slotMu.RUnlock()
	return s.hovered, s.hovering
}

// Reset empties the hovered slot without emitting events or invoking
// callbacks. Use it when the whole scene is torn down.
func (s *HoverSystem) Reset() {
	s.stepMu.Lock()
	defer s.stepMu.Unlock()
	s.setHovered(0, false)
}

// Update runs one frame: Step, then Flush of the event queue so subscribers
// see this frame's transitions in order.
func (s *HoverSystem) Update(ray Ray, reg Registry, w World) {
	s.Step(ray, reg, w)
	s.events.Flush()
}

// Step resolves the object under ray, applies the transition rule and
// queues transition events without delivering them.
//
// When the hovered object changes, OnHoverStop of the old object runs before
// OnHoverStart of the new one, and the stop event is queued before the start
// event. Events are queued and sent to the sink only after both callbacks
// have returned. If the old object is no longer in reg its stop event is still emitted, but
// no callback runs since its handler is gone. Panics from callbacks or from
// a corrupt transform propagate to the caller and leave both the slot and
// the event queue unchanged.
func (s *HoverSystem) Step(ray Ray, reg Registry, w World) {
	s.stepMu.Lock()
	defer s.stepMu.Unlock()

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	prev, hadPrev := s.Hovered()
	var prevHandler Hoverable
	var stats pickStats

	hit, found := s.picker.pick(ray, reg, func(id EntityID, h Hoverable) {
		if hadPrev && id == prev {
			prevHandler = h
		}
	}, &stats)

	changed := found != hadPrev || (found && hit.ID != prev)
	if changed {
		// Events are held back until every callback has returned, so a
		// panicking callback commits neither the slot nor its events.
		pending := make([]HoverEvent, 0, 2)
		if hadPrev {
			pending = append(pending, HoverEvent{Entering: false, Target: prev})
			if prevHandler != nil {
				prevHandler.OnHoverStop(prev, w)
			}
		}
		if found {
			pending = append(pending, HoverEvent{Entering: true, Target: hit.ID})
			hit.Handler.OnHoverStart(hit.ID, w)
		}
		for _, e := range pending {
			s.emit(e)
		}
		s.setHovered(hit.ID, found)
	}

	if s.debug {
		s.debugLog(stepStats{
			pickStats: stats,
			changed:   changed,
			elapsed:   time.Since(t0),
		})
	}
}

// emit queues e and forwards it to the sink, if any.
func (s *HoverSystem) emit(e HoverEvent) {
	s.logger.Debug("hover transition",
		zap.Uint64("entity", uint64(e.Target)),
		zap.Bool("entering", e.Entering))
	s.events.Publish(e)
	if s.sink != nil {
		s.sink.EmitHoverEvent(e)
	}
}

func (s *HoverSystem) setHovered(id EntityID, ok bool) {
	if !ok {
		id = 0
	}
	s.slotMu.Lock()
	s.hovered = id
	s.hovering = ok
	s.slotMu.Unlock()
}
