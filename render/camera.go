package render

import (
	"github.com/lixenwraith/stage2d/vmath"
)

// Camera is a 2D orthographic camera over the world plane. It owns
// the projection/view matrices handed to the render backend and the
// screen/world coordinate conversions the input layer uses.
type Camera struct {
	position  vmath.Vec2
	viewport  vmath.Vec2
	orthoSize float64
	near, far float64

	projection vmath.Mat4
	view       vmath.Mat4
	dirty      bool
}

// NewCamera creates an orthographic camera centered on the origin for
// a viewport of the given size in world units
func NewCamera(viewportWidth, viewportHeight float64) *Camera {
	c := &Camera{
		viewport:  vmath.Vec2{X: viewportWidth, Y: viewportHeight},
		orthoSize: 1,
		near:      -1,
		far:       1,
		dirty:     true,
	}
	c.update()
	return c
}

// SetPosition moves the camera center
func (c *Camera) SetPosition(p vmath.Vec2) {
	c.position = p
	c.dirty = true
}

// Position returns the camera center
func (c *Camera) Position() vmath.Vec2 {
	return c.position
}

// Translate moves the camera by a delta
func (c *Camera) Translate(d vmath.Vec2) {
	c.position = c.position.Add(d)
	c.dirty = true
}

// SetViewportSize resizes the visible region
func (c *Camera) SetViewportSize(width, height float64) {
	c.viewport = vmath.Vec2{X: width, Y: height}
	c.dirty = true
}

// SetOrthoSize scales the visible region around its center; larger
// values zoom out
func (c *Camera) SetOrthoSize(size float64) {
	c.orthoSize = size
	c.dirty = true
}

// Projection returns the orthographic projection matrix
func (c *Camera) Projection() vmath.Mat4 {
	if c.dirty {
		c.update()
	}
	return c.projection
}

// View returns the view matrix for the current camera position
func (c *Camera) View() vmath.Mat4 {
	if c.dirty {
		c.update()
	}
	return c.view
}

// ScreenToWorld converts viewport coordinates to world coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) vmath.Vec2 {
	return vmath.Vec2{
		X: (sx - c.viewport.X*0.5) + c.position.X,
		Y: (sy - c.viewport.Y*0.5) + c.position.Y,
	}
}

// WorldToScreen converts world coordinates to viewport coordinates
func (c *Camera) WorldToScreen(wx, wy float64) vmath.Vec2 {
	return vmath.Vec2{
		X: (wx - c.position.X) + c.viewport.X*0.5,
		Y: (wy - c.position.Y) + c.viewport.Y*0.5,
	}
}

func (c *Camera) update() {
	halfW := c.viewport.X * 0.5 * c.orthoSize
	halfH := c.viewport.Y * 0.5 * c.orthoSize
	c.projection = vmath.Mat4Orthographic(-halfW, halfW, -halfH, halfH, c.near, c.far)

	eye := vmath.Vec3{X: c.position.X, Y: c.position.Y, Z: 0}
	target := vmath.Vec3{X: c.position.X, Y: c.position.Y, Z: -1}
	c.view = vmath.Mat4LookAt(eye, target, vmath.Vec3Up)
	c.dirty = false
}
