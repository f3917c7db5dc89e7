// Package ecs provides ECS adapters for hover's picking and transition
// events.
//
// [NewRegistry] turns a [Donburi] world into a hover.Registry and
// hover.ClickSource: entities carrying the [Hover] and [Transform]
// components take part in picking, entities carrying [Click] receive
// dispatched clicks. [NewDonburiSink] republishes hover transitions as typed
// Donburi events. Subscribe to [HoverEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	reg := ecs.NewRegistry(world)
//	sys := hover.NewHoverSystem()
//	sys.SetEventSink(ecs.NewDonburiSink(world))
//	// each tick:
//	sys.Update(ray, reg, world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
