package hover

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// rayZ points down -Z from z=0 at the given height.
func rayZ(x, y float64) Ray {
	return Ray{Origin: mgl64.Vec3{x, y, 0}, Direction: mgl64.Vec3{0, 0, -1}}
}

func ballAt(id EntityID, radius float64, pos mgl64.Vec3) Candidate {
	return Candidate{
		ID:        id,
		Handler:   NewNoEffectHover(Ball{Radius: radius}),
		Transform: mgl64.Translate3D(pos.X(), pos.Y(), pos.Z()),
	}
}

func TestPick_Empty(t *testing.T) {
	if _, ok := DefaultPicker().Pick(rayZ(0, 0), CandidateList{}); ok {
		t.Error("empty registry should hit nothing")
	}
}

func TestPick_NearestOfMany(t *testing.T) {
	p := Picker{AllowBehind: false}
	reg := CandidateList{
		ballAt(1, 1, mgl64.Vec3{0, 0, -20}), // 19
		ballAt(2, 1, mgl64.Vec3{0, 0, -8}),  // 7
		ballAt(3, 2, mgl64.Vec3{0, 0, -12}), // 10
		ballAt(4, 1, mgl64.Vec3{5, 0, -3}),  // miss
	}
	hit, ok := p.Pick(rayZ(0, 0), reg)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.ID != 2 {
		t.Errorf("hit %d, want 2", hit.ID)
	}
	if !near(hit.Distance, 7) {
		t.Errorf("distance = %v, want 7", hit.Distance)
	}
	if hit.Handler != reg[1].Handler {
		t.Error("hit handler should be the candidate's handler")
	}
}

func TestPick_DisjointMisses(t *testing.T) {
	reg := CandidateList{
		ballAt(1, 1, mgl64.Vec3{3, 0, -5}),
		ballAt(2, 1, mgl64.Vec3{-3, 0, -5}),
		ballAt(3, 1, mgl64.Vec3{0, 4, -5}),
	}
	if hit, ok := (Picker{}).Pick(rayZ(0, 0), reg); ok {
		t.Errorf("expected no hit, got %d", hit.ID)
	}
}

func TestPick_SphereAtDistanceTwo(t *testing.T) {
	reg := CandidateList{
		ballAt(1, 1, mgl64.Vec3{0, 0, -3}), // A: enters at z=-2
		ballAt(2, 1, mgl64.Vec3{10, 0, -3}),
	}
	hit, ok := (Picker{}).Pick(rayZ(0, 0), reg)
	if !ok || hit.ID != 1 {
		t.Fatalf("Pick = (%d, %v), want A", hit.ID, ok)
	}
	if !near(hit.Distance, 2) {
		t.Errorf("distance = %v, want 2", hit.Distance)
	}
}

func TestPick_TieKeepsFirst(t *testing.T) {
	// A ball and a cube of the same size at the same spot: both are entered
	// at exactly 5.0.
	ball := Candidate{ID: 1, Handler: NewNoEffectHover(Ball{Radius: 1}), Transform: mgl64.Translate3D(0, 0, -6)}
	cube := Candidate{ID: 2, Handler: NewNoEffectHover(Cuboid{HalfExtents: mgl64.Vec3{1, 1, 1}}), Transform: mgl64.Translate3D(0, 0, -6)}

	p := Picker{}
	for i := 0; i < 3; i++ {
		hit, ok := p.Pick(rayZ(0, 0), CandidateList{ball, cube})
		if !ok || hit.ID != 1 || hit.Distance != 5 {
			t.Fatalf("run %d: Pick = (%d, %v, %v), want (1, 5)", i, hit.ID, hit.Distance, ok)
		}
	}

	hit, _ := p.Pick(rayZ(0, 0), CandidateList{cube, ball})
	if hit.ID != 2 {
		t.Errorf("reversed order: hit %d, want 2", hit.ID)
	}
}

func TestPick_TieKeepsFirstDefaultPicker(t *testing.T) {
	// Same tie under the policy HoverSystem runs: both volumes are raised by
	// their half height of 1, so a ray at y=1 still enters both at 5.0.
	ball := Candidate{ID: 1, Handler: NewNoEffectHover(Ball{Radius: 1}), Transform: mgl64.Translate3D(0, 0, -6)}
	cube := Candidate{ID: 2, Handler: NewNoEffectHover(Cuboid{HalfExtents: mgl64.Vec3{1, 1, 1}}), Transform: mgl64.Translate3D(0, 0, -6)}

	tests := []struct {
		name string
		reg  CandidateList
		want EntityID
	}{
		{"ball first", CandidateList{ball, cube}, 1},
		{"cube first", CandidateList{cube, ball}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				hit, ok := DefaultPicker().Pick(rayZ(0, 1), tt.reg)
				if !ok || hit.ID != tt.want || !near(hit.Distance, 5) {
					t.Fatalf("run %d: Pick = (%d, %v, %v), want (%d, 5)", i, hit.ID, hit.Distance, ok, tt.want)
				}
			}
		})
	}
}

func TestPick_VerticalOffset(t *testing.T) {
	// Unit ball with its base at y=0. Centered, its middle is at y=1.
	reg := CandidateList{ballAt(1, 1, mgl64.Vec3{0, 0, -5})}

	centered := Picker{CenterOnBounds: true}
	raw := Picker{CenterOnBounds: false}

	if _, ok := centered.Pick(rayZ(0, 1.9), reg); !ok {
		t.Error("centered: ray at y=1.9 should hit")
	}
	if _, ok := raw.Pick(rayZ(0, 1.9), reg); ok {
		t.Error("raw: ray at y=1.9 should miss")
	}
	if _, ok := centered.Pick(rayZ(0, -0.5), reg); ok {
		t.Error("centered: ray at y=-0.5 should miss")
	}
	if _, ok := raw.Pick(rayZ(0, -0.5), reg); !ok {
		t.Error("raw: ray at y=-0.5 should hit")
	}

	hit, _ := centered.Pick(rayZ(0, 1), reg)
	if !near(hit.Distance, 4) {
		t.Errorf("centered distance through middle = %v, want 4", hit.Distance)
	}
}

func TestPick_VerticalOffsetIgnoresRotation(t *testing.T) {
	// Offset comes from identity-placement bounds and is applied along world
	// Y, so a lying capsule is still raised by its upright half height.
	capsule := Capsule{HalfHeight: 1, Radius: 0.5}
	lying := mgl64.HomogRotate3DZ(math.Pi / 2)
	reg := CandidateList{{ID: 1, Handler: NewNoEffectHover(capsule), Transform: mgl64.Translate3D(0, 0, -5).Mul4(lying)}}

	hit, ok := (Picker{CenterOnBounds: true}).Pick(rayZ(0, 1.5), reg)
	if !ok {
		t.Fatal("expected hit through raised capsule")
	}
	if !near(hit.Distance, 4.5) {
		t.Errorf("distance = %v, want 4.5", hit.Distance)
	}
}

func TestPick_BehindOrigin(t *testing.T) {
	reg := CandidateList{
		ballAt(1, 1, mgl64.Vec3{0, 0, 4}),  // behind, 3 away
		ballAt(2, 1, mgl64.Vec3{0, 0, -9}), // in front, 8 away
	}
	hit, ok := (Picker{AllowBehind: true}).Pick(rayZ(0, 0), reg)
	if !ok || hit.ID != 1 {
		t.Errorf("permissive: Pick = (%d, %v), want 1", hit.ID, ok)
	}
	hit, ok = (Picker{AllowBehind: false}).Pick(rayZ(0, 0), reg)
	if !ok || hit.ID != 2 {
		t.Errorf("forward only: Pick = (%d, %v), want 2", hit.ID, ok)
	}
}

func TestPick_NilShapeSkipped(t *testing.T) {
	reg := CandidateList{{ID: 1, Handler: &NoEffectHover{}, Transform: mgl64.Ident4()}}
	if _, ok := DefaultPicker().Pick(rayZ(0, 0), reg); ok {
		t.Error("handler without shape should not be hit")
	}
}

func TestPick_CorruptTransformPanics(t *testing.T) {
	reg := CandidateList{
		ballAt(1, 1, mgl64.Vec3{0, 0, -5}),
		{ID: 2, Handler: NewNoEffectHover(Ball{Radius: 1}), Transform: mgl64.Scale3D(2, 2, 2)},
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for scaled transform")
		}
		msg, _ := r.(string)
		if msg == "" {
			t.Errorf("panic value = %v, want descriptive string", r)
		}
	}()
	DefaultPicker().Pick(rayZ(0, 0), reg)
}

func TestPick_ZeroMatrixPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero matrix")
		}
	}()
	DefaultPicker().Pick(rayZ(0, 0), CandidateList{{ID: 1, Handler: NewNoEffectHover(Ball{Radius: 1})}})
}

func TestPick_Stats(t *testing.T) {
	reg := CandidateList{
		ballAt(1, 1, mgl64.Vec3{0, 0, -5}),
		ballAt(2, 1, mgl64.Vec3{0, 0, -9}),
		ballAt(3, 1, mgl64.Vec3{9, 0, -5}),
	}
	var st pickStats
	(Picker{}).pick(rayZ(0, 0), reg, nil, &st)
	if st.candidates != 3 || st.hits != 2 {
		t.Errorf("stats = %+v, want 3 candidates, 2 hits", st)
	}
}
