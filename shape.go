package hover

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Shape is a convex bounding volume used for pointer hit testing.
//
// Shapes are defined in local space centered on their origin. LineInterval
// clips the infinite line origin + t*dir against the shape and returns the
// entering and exiting parameters (tEnter <= tExit). Parameters may be
// negative; the sign policy is applied by CastRay.
type Shape interface {
	AABB(iso Isometry) AABB
	LineInterval(origin, dir mgl64.Vec3) (tEnter, tExit float64, ok bool)
}

// CastRay returns the closest intersection distance between ray and s
// placed at iso.
//
// With allowBehind false only the forward half of the ray counts, and a ray
// starting inside the shape reports its exit distance. With allowBehind true
// the whole line counts and the result is the magnitude of the nearest
// surface crossing, on whichever side of the origin it lies.
func CastRay(s Shape, iso Isometry, ray Ray, allowBehind bool) (float64, bool) {
	o := iso.InverseTransformPoint(ray.Origin)
	d := iso.InverseTransformVector(ray.Direction)

	t0, t1, ok := s.LineInterval(o, d)
	if !ok {
		return 0, false
	}

	if !allowBehind {
		if t1 < 0 {
			return 0, false
		}
		if t0 >= 0 {
			return t0, true
		}
		return t1, true
	}

	switch {
	case t0 >= 0:
		return t0, true
	case t1 <= 0:
		return -t1, true
	default:
		return math.Min(-t0, t1), true
	}
}

// --- Ball ---

// Ball is a sphere centered on the local origin.
type Ball struct {
	Radius float64
}

// AABB returns the world bounds of the ball at iso.
func (b Ball) AABB(iso Isometry) AABB {
	r := mgl64.Vec3{b.Radius, b.Radius, b.Radius}
	return AABB{Min: iso.Translation.Sub(r), Max: iso.Translation.Add(r)}
}

// LineInterval solves |o + t*d|^2 = r^2.
func (b Ball) LineInterval(o, d mgl64.Vec3) (float64, float64, bool) {
	return sphereInterval(o, d, b.Radius)
}

func sphereInterval(o, d mgl64.Vec3, radius float64) (float64, float64, bool) {
	a := d.Dot(d)
	if a == 0 {
		return 0, 0, false
	}
	halfB := o.Dot(d)
	c := o.Dot(o) - radius*radius

	disc := halfB*halfB - a*c
	if disc < 0 {
		return 0, 0, false
	}
	sqrtD := math.Sqrt(disc)
	return (-halfB - sqrtD) / a, (-halfB + sqrtD) / a, true
}

// --- Cuboid ---

// Cuboid is a box centered on the local origin. HalfExtents holds half the
// size along each local axis.
type Cuboid struct {
	HalfExtents mgl64.Vec3
}

// AABB returns the world bounds of the cuboid at iso.
func (c Cuboid) AABB(iso Isometry) AABB {
	m := iso.Rotation.Mat4().Mat3()
	he := c.HalfExtents
	var ext mgl64.Vec3
	for row := 0; row < 3; row++ {
		ext[row] = math.Abs(m.At(row, 0))*he[0] +
			math.Abs(m.At(row, 1))*he[1] +
			math.Abs(m.At(row, 2))*he[2]
	}
	return AABB{Min: iso.Translation.Sub(ext), Max: iso.Translation.Add(ext)}
}

// LineInterval clips the line against the three slabs of the box.
func (c Cuboid) LineInterval(o, d mgl64.Vec3) (float64, float64, bool) {
	return slabInterval(o, d, c.HalfExtents.Mul(-1), c.HalfExtents)
}

func slabInterval(o, d, lo, hi mgl64.Vec3) (float64, float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			// Parallel to this slab: inside it everywhere or nowhere.
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return 0, 0, false
			}
			continue
		}
		inv := 1 / d[axis]
		t1 := (lo[axis] - o[axis]) * inv
		t2 := (hi[axis] - o[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, 0, false
		}
	}

	// A zero direction that sits inside the box never crosses its surface.
	if math.IsInf(tMin, 0) || math.IsInf(tMax, 0) {
		return 0, 0, false
	}
	return tMin, tMax, true
}

// --- Capsule ---

// Capsule is a segment from (0, -HalfHeight, 0) to (0, HalfHeight, 0) swept
// by a sphere of Radius. Total height is 2*(HalfHeight+Radius).
type Capsule struct {
	HalfHeight float64
	Radius     float64
}

// AABB returns the world bounds of the capsule at iso.
func (c Capsule) AABB(iso Isometry) AABB {
	axis := iso.Rotation.Rotate(mgl64.Vec3{0, c.HalfHeight, 0})
	ext := mgl64.Vec3{
		math.Abs(axis.X()) + c.Radius,
		math.Abs(axis.Y()) + c.Radius,
		math.Abs(axis.Z()) + c.Radius,
	}
	return AABB{Min: iso.Translation.Sub(ext), Max: iso.Translation.Add(ext)}
}

// LineInterval returns the hull of the body cylinder and cap sphere
// intervals. The capsule is convex, so their union is already an interval.
func (c Capsule) LineInterval(o, d mgl64.Vec3) (float64, float64, bool) {
	tMin := math.Inf(1)
	tMax := math.Inf(-1)
	hit := false

	merge := func(t0, t1 float64) {
		hit = true
		tMin = math.Min(tMin, t0)
		tMax = math.Max(tMax, t1)
	}

	if t0, t1, ok := c.bodyInterval(o, d); ok {
		merge(t0, t1)
	}
	top := mgl64.Vec3{0, c.HalfHeight, 0}
	if t0, t1, ok := sphereInterval(o.Sub(top), d, c.Radius); ok {
		merge(t0, t1)
	}
	if t0, t1, ok := sphereInterval(o.Add(top), d, c.Radius); ok {
		merge(t0, t1)
	}

	if !hit {
		return 0, 0, false
	}
	return tMin, tMax, true
}

// bodyInterval clips the line against the finite cylinder between the caps.
// Lines parallel to the axis are left to the cap spheres.
func (c Capsule) bodyInterval(o, d mgl64.Vec3) (float64, float64, bool) {
	a := d.X()*d.X() + d.Z()*d.Z()
	if a == 0 {
		return 0, 0, false
	}
	halfB := o.X()*d.X() + o.Z()*d.Z()
	cc := o.X()*o.X() + o.Z()*o.Z() - c.Radius*c.Radius
	disc := halfB*halfB - a*cc
	if disc < 0 {
		return 0, 0, false
	}
	sqrtD := math.Sqrt(disc)
	t0 := (-halfB - sqrtD) / a
	t1 := (-halfB + sqrtD) / a

	h := c.HalfHeight
	if d.Y() == 0 {
		if o.Y() < -h || o.Y() > h {
			return 0, 0, false
		}
		return t0, t1, true
	}
	ty0 := (-h - o.Y()) / d.Y()
	ty1 := (h - o.Y()) / d.Y()
	if ty0 > ty1 {
		ty0, ty1 = ty1, ty0
	}
	t0 = math.Max(t0, ty0)
	t1 = math.Min(t1, ty1)
	if t0 > t1 {
		return 0, 0, false
	}
	return t0, t1, true
}
