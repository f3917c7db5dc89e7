package hover

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// rigidEpsilon is the tolerance used when deciding whether a matrix is a
// rotation plus translation. Loose enough for float32 scene data.
const rigidEpsilon = 1e-5

var (
	// ErrNonFinite is returned when a transform contains NaN or Inf.
	ErrNonFinite = errors.New("hover: transform has non-finite components")
	// ErrNotRigid is returned when a transform carries scale, shear,
	// reflection or a projective row.
	ErrNotRigid = errors.New("hover: transform is not rigid")
)

// Isometry is a rigid placement: a rotation followed by a translation.
type Isometry struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

// IdentityIsometry returns the placement that leaves points unchanged.
func IdentityIsometry() Isometry {
	return Isometry{Rotation: mgl64.QuatIdent()}
}

// NewIsometry builds a placement from a translation and a rotation. The
// rotation is normalized.
func NewIsometry(translation mgl64.Vec3, rotation mgl64.Quat) Isometry {
	return Isometry{Translation: translation, Rotation: rotation.Normalize()}
}

// IsometryFromMat4 converts a world matrix into a rigid placement.
// It fails if the matrix is not finite, has a bottom row other than
// (0, 0, 0, 1), or its upper 3x3 block is not a proper rotation.
func IsometryFromMat4(m mgl64.Mat4) (Isometry, error) {
	for i, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Isometry{}, fmt.Errorf("%w (element %d)", ErrNonFinite, i)
		}
	}

	if !mgl64.FloatEqualThreshold(m.At(3, 0), 0, rigidEpsilon) ||
		!mgl64.FloatEqualThreshold(m.At(3, 1), 0, rigidEpsilon) ||
		!mgl64.FloatEqualThreshold(m.At(3, 2), 0, rigidEpsilon) ||
		!mgl64.FloatEqualThreshold(m.At(3, 3), 1, rigidEpsilon) {
		return Isometry{}, fmt.Errorf("%w: projective bottom row", ErrNotRigid)
	}

	r := m.Mat3()
	// R^T * R == I rules out scale and shear; det == +1 rules out mirroring.
	if !r.Transpose().Mul3(r).ApproxEqualThreshold(mgl64.Ident3(), rigidEpsilon) {
		return Isometry{}, fmt.Errorf("%w: scaled or sheared basis", ErrNotRigid)
	}
	if r.Det() < 0 {
		return Isometry{}, fmt.Errorf("%w: reflected basis", ErrNotRigid)
	}

	return Isometry{
		Translation: m.Col(3).Vec3(),
		Rotation:    mgl64.Mat4ToQuat(m).Normalize(),
	}, nil
}

// MustIsometry is like IsometryFromMat4 but panics on failure.
func MustIsometry(m mgl64.Mat4) Isometry {
	iso, err := IsometryFromMat4(m)
	if err != nil {
		panic(err)
	}
	return iso
}

// AppendTranslation returns the placement followed by a world-space
// translation by v.
func (i Isometry) AppendTranslation(v mgl64.Vec3) Isometry {
	i.Translation = i.Translation.Add(v)
	return i
}

// TransformPoint maps a local point into world space.
func (i Isometry) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return i.Rotation.Rotate(p).Add(i.Translation)
}

// InverseTransformPoint maps a world point into local space.
func (i Isometry) InverseTransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return i.Rotation.Inverse().Rotate(p.Sub(i.Translation))
}

// InverseTransformVector maps a world direction into local space. Length is
// preserved.
func (i Isometry) InverseTransformVector(v mgl64.Vec3) mgl64.Vec3 {
	return i.Rotation.Inverse().Rotate(v)
}

// Mat4 returns the homogeneous matrix of the placement.
func (i Isometry) Mat4() mgl64.Mat4 {
	t := i.Translation
	return mgl64.Translate3D(t.X(), t.Y(), t.Z()).Mul4(i.Rotation.Mat4())
}
