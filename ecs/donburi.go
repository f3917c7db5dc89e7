package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/hover"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// HoverData holds an entity's hover handler.
type HoverData struct {
	Handler hover.Hoverable
}

// ClickData holds an entity's click handler.
type ClickData struct {
	Handler hover.Clickable
}

// TransformData holds an entity's rigid world transform.
type TransformData struct {
	World mgl64.Mat4
}

var (
	// Hover marks an entity as a hover candidate.
	Hover = donburi.NewComponentType[HoverData]()
	// Click marks an entity as clickable.
	Click = donburi.NewComponentType[ClickData]()
	// Transform is the world transform read by the picker.
	Transform = donburi.NewComponentType[TransformData]()
)

// HoverEventType is the Donburi event type for hover transitions.
// Subscribe to this in your ECS systems to receive enter/leave events.
var HoverEventType = events.NewEventType[hover.HoverEvent]()

// Registry exposes a Donburi world to the hover core. Entities with both
// Hover and Transform are hover candidates; entities with Click can receive
// dispatched clicks.
type Registry struct {
	world      donburi.World
	hoverables *donburi.Query
}

var (
	_ hover.Registry    = (*Registry)(nil)
	_ hover.ClickSource = (*Registry)(nil)
)

// NewRegistry creates a registry over world.
func NewRegistry(world donburi.World) *Registry {
	return &Registry{
		world:      world,
		hoverables: donburi.NewQuery(filter.Contains(Hover, Transform)),
	}
}

// World returns the underlying Donburi world.
func (r *Registry) World() donburi.World {
	return r.world
}

// EachHoverable yields every hover candidate in query order. Entities whose
// Hover component has no handler are skipped.
func (r *Registry) EachHoverable(fn func(hover.EntityID, hover.Hoverable, mgl64.Mat4)) {
	r.hoverables.Each(r.world, func(entry *donburi.Entry) {
		h := Hover.Get(entry)
		if h.Handler == nil {
			return
		}
		fn(hover.EntityID(entry.Entity()), h.Handler, Transform.Get(entry).World)
	})
}

// Clickable returns the click handler of id, if the entity is alive and has
// one.
func (r *Registry) Clickable(id hover.EntityID) (hover.Clickable, bool) {
	e := donburi.Entity(id)
	if !r.world.Valid(e) {
		return nil, false
	}
	entry := r.world.Entry(e)
	if !entry.HasComponent(Click) {
		return nil, false
	}
	c := Click.Get(entry).Handler
	return c, c != nil
}

// SpawnHoverable creates an entity with a hover handler at transform.
func SpawnHoverable(world donburi.World, h hover.Hoverable, transform mgl64.Mat4) donburi.Entity {
	e := world.Create(Hover, Transform)
	entry := world.Entry(e)
	Hover.SetValue(entry, HoverData{Handler: h})
	Transform.SetValue(entry, TransformData{World: transform})
	return e
}

// AddClickable attaches a click handler to an existing entity.
func AddClickable(world donburi.World, e donburi.Entity, c hover.Clickable) {
	entry := world.Entry(e)
	if entry.HasComponent(Click) {
		Click.SetValue(entry, ClickData{Handler: c})
		return
	}
	donburi.Add(entry, Click, &ClickData{Handler: c})
}

// SetTransform moves an entity.
func SetTransform(world donburi.World, e donburi.Entity, transform mgl64.Mat4) {
	Transform.SetValue(world.Entry(e), TransformData{World: transform})
}

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Hover transitions are published to HoverEventType and can be consumed
// with Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) hover.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitHoverEvent(event hover.HoverEvent) {
	HoverEventType.Publish(s.world, event)
}
