package hover

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	defaultFovY = math.Pi / 3
	defaultNear = 0.1
	defaultFar  = 1000.0
)

// Camera is a perspective camera used to turn screen coordinates into world
// space pointer rays. Width and Height are the viewport size in pixels.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
	FovY   float64 // vertical field of view, radians
	Near   float64
	Far    float64
	Width  int
	Height int
}

// NewCamera creates a camera looking from eye at target with +Y up and
// default lens settings.
func NewCamera(eye, target mgl64.Vec3, width, height int) *Camera {
	return &Camera{
		Eye:    eye,
		Target: target,
		Up:     mgl64.Vec3{0, 1, 0},
		FovY:   defaultFovY,
		Near:   defaultNear,
		Far:    defaultFar,
		Width:  width,
		Height: height,
	}
}

// SetViewport updates the viewport size, e.g. from ebiten's Layout.
func (c *Camera) SetViewport(width, height int) {
	c.Width = width
	c.Height = height
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() mgl64.Mat4 {
	aspect := 1.0
	if c.Height > 0 {
		aspect = float64(c.Width) / float64(c.Height)
	}
	return mgl64.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ScreenToRay returns the world space ray through the pixel (sx, sy). The
// origin lies on the near plane and the direction is normalized. Screen
// coordinates have their origin at the top-left with Y increasing downward.
func (c *Camera) ScreenToRay(sx, sy float64) Ray {
	w, h := float64(c.Width), float64(c.Height)
	if w <= 0 || h <= 0 {
		return Ray{Origin: c.Eye, Direction: c.Target.Sub(c.Eye).Normalize()}
	}

	ndcX := 2*sx/w - 1
	ndcY := 1 - 2*sy/h

	inv := c.Projection().Mul4(c.View()).Inv()
	near := unproject(inv, ndcX, ndcY, -1)
	far := unproject(inv, ndcX, ndcY, 1)

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// WorldToScreen projects p to pixel coordinates. visible is false for points
// behind the camera.
func (c *Camera) WorldToScreen(p mgl64.Vec3) (x, y float64, visible bool) {
	clip := c.Projection().Mul4(c.View()).Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	x = (ndcX + 1) / 2 * float64(c.Width)
	y = (1 - ndcY) / 2 * float64(c.Height)
	return x, y, true
}

func unproject(inv mgl64.Mat4, x, y, z float64) mgl64.Vec3 {
	v := inv.Mul4x1(mgl64.Vec4{x, y, z, 1})
	if v.W() != 0 {
		return v.Vec3().Mul(1 / v.W())
	}
	return v.Vec3()
}
