package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Color is a normalized RGBA color used for clear colors and HUD text.
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorRed   = Color{1, 0, 0, 1}
)

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// RGB is an 8-bit color triple as edited in the panel. Each channel is 0–255.
type RGB [3]uint8

// Scaled maps the channels into [0,1] for upload to the shading stage.
func (c RGB) Scaled() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c[0]) / 255,
		float32(c[1]) / 255,
		float32(c[2]) / 255,
	}
}

// Add shifts one channel by delta, saturating at 0 and 255.
func (c RGB) Add(channel int, delta int) RGB {
	v := int(c[channel]) + delta
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	c[channel] = uint8(v)
	return c
}

// Vertex is the interleaved layout uploaded to the GPU: location 0 position, location 1 normal.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}
