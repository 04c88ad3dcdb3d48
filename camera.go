package pinpoint

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera that maps world positions to a screen
// viewport and screen positions back to pick rays.
type Camera struct {
	Eye    Vec3
	Target Vec3
	Up     Vec3

	// FovY is the vertical field of view in radians.
	FovY      float64
	Near, Far float64

	// Viewport is the screen rectangle the camera renders into.
	Viewport Rect

	viewProj    mgl64.Mat4
	invViewProj mgl64.Mat4
	dirty       bool
}

// NewCamera creates a camera at (0, 0, 10) looking at the origin.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Eye:      Vec3{0, 0, 10},
		Up:       Vec3{0, 1, 0},
		FovY:     math.Pi / 4,
		Near:     0.1,
		Far:      1000,
		Viewport: viewport,
		dirty:    true,
	}
}

// LookAt moves the camera to eye and points it at target.
func (c *Camera) LookAt(eye, target Vec3) {
	c.Eye = eye
	c.Target = target
	c.dirty = true
}

// SetViewport changes the screen rectangle.
func (c *Camera) SetViewport(r Rect) {
	c.Viewport = r
	c.dirty = true
}

// MarkDirty forces the matrices to be recomputed on next use. Call it after
// setting fields directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// computeViewProj recomputes the combined view-projection matrix if dirty.
func (c *Camera) computeViewProj() mgl64.Mat4 {
	if !c.dirty {
		return c.viewProj
	}
	aspect := 1.0
	if c.Viewport.Height > 0 {
		aspect = c.Viewport.Width / c.Viewport.Height
	}
	proj := mgl64.Perspective(c.FovY, aspect, c.Near, c.Far)
	view := mgl64.LookAtV(c.Eye, c.Target, c.Up)
	c.viewProj = proj.Mul4(view)
	c.invViewProj = invertTransform(c.viewProj)
	c.dirty = false
	return c.viewProj
}

// WorldToScreen projects a world-space point to screen coordinates.
// ok is false when the point lies behind the camera or outside the depth
// range.
func (c *Camera) WorldToScreen(p Vec3) (sx, sy float64, ok bool) {
	clip := c.computeViewProj().Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, false
	}
	vp := c.Viewport
	sx = vp.X + (ndc.X()+1)/2*vp.Width
	sy = vp.Y + (1-ndc.Y())/2*vp.Height
	return sx, sy, true
}

// ScreenRay returns the world-space pick ray through a screen point. The
// origin lies on the near plane and dir is normalized.
func (c *Camera) ScreenRay(sx, sy float64) (origin, dir Vec3) {
	c.computeViewProj()
	vp := c.Viewport
	nx, ny := 0.0, 0.0
	if vp.Width > 0 {
		nx = (sx-vp.X)/vp.Width*2 - 1
	}
	if vp.Height > 0 {
		ny = 1 - (sy-vp.Y)/vp.Height*2
	}
	near := unproject(c.invViewProj, nx, ny, -1)
	far := unproject(c.invViewProj, nx, ny, 1)
	return near, far.Sub(near).Normalize()
}

func unproject(inv mgl64.Mat4, x, y, z float64) Vec3 {
	v := inv.Mul4x1(mgl64.Vec4{x, y, z, 1})
	if v.W() == 0 {
		return v.Vec3()
	}
	return v.Vec3().Mul(1 / v.W())
}
