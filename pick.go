package hover

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Registry yields the hoverable objects of the current frame.
//
// EachHoverable must call fn once per object, in a stable order: the picker
// breaks exact distance ties in favor of the object yielded first. The
// handler is passed by reference so hover callbacks can update it in place.
type Registry interface {
	EachHoverable(fn func(id EntityID, h Hoverable, transform mgl64.Mat4))
}

// Candidate is one entry of a CandidateList.
type Candidate struct {
	ID        EntityID
	Handler   Hoverable
	Transform mgl64.Mat4
}

// CandidateList is a Registry backed by a slice, for scenes that keep their
// own object list instead of an ECS.
type CandidateList []Candidate

// EachHoverable yields candidates in slice order.
func (l CandidateList) EachHoverable(fn func(EntityID, Hoverable, mgl64.Mat4)) {
	for i := range l {
		fn(l[i].ID, l[i].Handler, l[i].Transform)
	}
}

// Hit is the nearest object under the pointer.
type Hit struct {
	ID       EntityID
	Handler  Hoverable
	Distance float64
}

// Picker finds the object nearest to the pointer along a ray.
type Picker struct {
	// AllowBehind counts intersections behind the ray origin as hits,
	// measured by their distance from the origin.
	AllowBehind bool
	// CenterOnBounds raises every shape by its half height so the hit volume
	// sits on the object's visual middle rather than on its feet.
	CenterOnBounds bool
}

// DefaultPicker returns the picker used by HoverSystem unless configured
// otherwise: permissive sign policy, shapes centered on their bounds.
func DefaultPicker() Picker {
	return Picker{AllowBehind: true, CenterOnBounds: true}
}

// Pick tests every candidate in reg against ray and returns the nearest one.
// Returns false if nothing is hit. Panics if a candidate's transform is not
// a rigid transform.
func (p Picker) Pick(ray Ray, reg Registry) (Hit, bool) {
	var st pickStats
	return p.pick(ray, reg, nil, &st)
}

// pickStats counts work done by one pick for debug logging.
type pickStats struct {
	candidates int
	hits       int
}

// pick is Pick with an optional visitor that sees every candidate before it
// is tested. HoverSystem uses it to find the previously hovered handler
// within the same pass.
func (p Picker) pick(ray Ray, reg Registry, visit func(EntityID, Hoverable), st *pickStats) (Hit, bool) {
	var best Hit
	found := false

	reg.EachHoverable(func(id EntityID, h Hoverable, transform mgl64.Mat4) {
		st.candidates++
		if visit != nil {
			visit(id, h)
		}

		dist, ok := p.test(ray, id, h, transform)
		if !ok || dist <= 0 {
			return
		}
		st.hits++
		// Strict comparison: on an exact tie the earlier candidate stays.
		if !found || dist < best.Distance {
			best = Hit{ID: id, Handler: h, Distance: dist}
			found = true
		}
	})

	return best, found
}

// test casts ray against one candidate's shape at its hit-test anchor.
func (p Picker) test(ray Ray, id EntityID, h Hoverable, transform mgl64.Mat4) (float64, bool) {
	if h == nil {
		return 0, false
	}
	shape := h.BoundingBox()
	if shape == nil {
		return 0, false
	}

	anchor, err := IsometryFromMat4(transform)
	if err != nil {
		panic(fmt.Sprintf("hover: entity %d: %v", id, err))
	}
	if p.CenterOnBounds {
		halfY := shape.AABB(IdentityIsometry()).HalfExtents().Y()
		anchor = anchor.AppendTranslation(mgl64.Vec3{0, halfY, 0})
	}

	return CastRay(shape, anchor, ray, p.AllowBehind)
}
