package hover

import "github.com/go-gl/mathgl/mgl64"

// EntityID is an opaque handle identifying a scene participant. The hover
// core never owns objects; it only compares and reports their handles.
type EntityID uint64

// World is the context handed to interaction callbacks. With the ECS
// adapter it is the donburi.World the entity lives in.
type World = any

// HoverEvent is emitted once per hovered-slot change.
// Entering is true for the object the pointer moved onto and false for the
// object it left.
type HoverEvent struct {
	Entering bool
	Target   EntityID
}

// Ray is a half-line in world space. Distances reported by the picker are
// measured in units of Direction, so callers normally pass a unit vector.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// HalfExtents returns half the box size along each axis.
func (b AABB) HalfExtents() mgl64.Vec3 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// Center returns the midpoint of the box.
func (b AABB) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// ContainsPoint reports whether p lies inside the box. Points on a face are
// considered inside.
func (b AABB) ContainsPoint(p mgl64.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}
