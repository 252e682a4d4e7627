package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinFovy = 1
	MaxFovy = 100

	// MinNear and MaxFar bound the clip planes; near and far stay
	// at least ClipGap apart.
	MinNear = 0.1
	MaxFar  = 20
	ClipGap = 0.1

	// WheelSensitivity divides the wheel delta before it scales fovy.
	WheelSensitivity = 1000

	// MaxEyeCoord and MaxUpCoord bound each component edited from the panel.
	MaxEyeCoord = 10
	MaxUpCoord  = 1
)

// Camera is a look-at camera with a perspective projection. Angles are in degrees.
type Camera struct {
	Eye    mgl32.Vec3
	At     mgl32.Vec3
	Up     mgl32.Vec3
	Fovy   float32
	Near   float32
	Far    float32
	Aspect float32
}

func DefaultCamera() Camera {
	return Camera{
		Eye:    mgl32.Vec3{0, 1, 5},
		At:     mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Fovy:   45,
		Near:   0.1,
		Far:    20,
		Aspect: 1,
	}
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fovy), c.Aspect, c.Near, c.Far)
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.At, c.Up)
}

// Resize updates the aspect ratio for a framebuffer of width×height and
// returns the new projection. A zero height (minimized window) is ignored.
func (c *Camera) Resize(width, height int) mgl32.Mat4 {
	if width > 0 && height > 0 {
		c.Aspect = float32(width) / float32(height)
	}
	return c.Projection()
}

// Orbit rotates the eye around At for a pointer drag of (dx, dy) pixels.
// The rotation angle is the drag length in degrees and its screen-space
// axis is (-dy, -dx, 0), expressed in camera space by conjugating with the
// view matrix. Both the eye offset and the up vector rotate as directions,
// so the distance to At never changes. Returns false for a zero drag.
func (c *Camera) Orbit(dx, dy float32) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	angle := float32(math.Hypot(float64(dx), float64(dy)))
	axis := mgl32.Vec3{-dy, -dx, 0}.Normalize()
	rotation := mgl32.HomogRotate3D(mgl32.DegToRad(angle), axis)

	view := c.View()
	inCamera := view.Inv().Mul4(rotation).Mul4(view)

	offset := c.Eye.Sub(c.At).Vec4(0)
	up := c.Up.Vec4(0)

	c.Eye = c.At.Add(inCamera.Mul4x1(offset).Vec3())
	c.Up = inCamera.Mul4x1(up).Vec3()
	return true
}

// Zoom scales fovy by a browser-style wheel delta (positive = away from
// the user) and clamps the result to [MinFovy, MaxFovy].
func (c *Camera) Zoom(deltaY float64) {
	factor := 1 - deltaY/WheelSensitivity
	fovy := float64(c.Fovy) / factor
	if math.IsNaN(fovy) {
		return
	}
	c.Fovy = float32(math.Max(MinFovy, math.Min(MaxFovy, fovy)))
}

// SetFovy clamps to [MinFovy, MaxFovy].
func (c *Camera) SetFovy(v float32) {
	c.Fovy = clamp(v, MinFovy, MaxFovy)
}

// SetNear keeps near in [MinNear, Far-ClipGap].
func (c *Camera) SetNear(v float32) {
	c.Near = clamp(v, MinNear, c.Far-ClipGap)
}

// SetFar keeps far in [Near+ClipGap, MaxFar].
func (c *Camera) SetFar(v float32) {
	c.Far = clamp(v, c.Near+ClipGap, MaxFar)
}

// SetEyeCoord sets one eye component, clamped to ±MaxEyeCoord.
func (c *Camera) SetEyeCoord(i int, v float32) {
	c.Eye[i] = clamp(v, -MaxEyeCoord, MaxEyeCoord)
}

// SetUpCoord sets one up-vector component, clamped to ±MaxUpCoord. A
// change that would leave a zero up vector is ignored.
func (c *Camera) SetUpCoord(i int, v float32) {
	up := c.Up
	up[i] = clamp(v, -MaxUpCoord, MaxUpCoord)
	if up.Len() == 0 {
		return
	}
	c.Up = up
}
