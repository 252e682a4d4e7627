package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"phong-viewer/core"
)

// Axis is the world axis a rotating light orbits around.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis accepts "X", "Y" or "Z".
func ParseAxis(s string) (Axis, error) {
	for _, a := range []Axis{AxisX, AxisY, AxisZ} {
		if a.String() == s {
			return a, nil
		}
	}
	return AxisX, fmt.Errorf("unknown axis %q", s)
}

// Next cycles X → Y → Z → X.
func (a Axis) Next(step int) Axis {
	return Axis(((int(a)+step)%3 + 3) % 3)
}

const (
	MinLightCoord = -2
	MaxLightCoord = 2
	MinSpeed      = 0
	MaxSpeed      = 200
)

// Light is a point or directional light. Position is what the user edits;
// WorldPosition is recomputed every frame from the rotated marker transform
// and is what the shader sees while the light rotates.
type Light struct {
	ID            int
	Position      mgl32.Vec3
	WorldPosition mgl32.Vec3
	Ambient       core.RGB
	Diffuse       core.RGB
	Specular      core.RGB
	Directional   bool
	Active        bool
	Rotating      bool
	Axis          Axis
	Speed         float32

	// Angle is accumulated rotation time in seconds; the applied rotation
	// is Angle*Speed degrees.
	Angle float64
}

// NewLight returns a light with the default grey intensities.
func NewLight(position mgl32.Vec3) *Light {
	return &Light{
		Position:      position,
		WorldPosition: position,
		Ambient:       core.RGB{75, 75, 75},
		Diffuse:       core.RGB{175, 175, 175},
		Specular:      core.RGB{255, 255, 255},
		Active:        true,
		Axis:          AxisX,
		Speed:         20,
	}
}

// ShadedPosition is the position uploaded to the shading stage.
func (l *Light) ShadedPosition() mgl32.Vec3 {
	if l.Rotating {
		return l.WorldPosition
	}
	return l.Position
}

// RotationDegrees is Angle*Speed wrapped into [0, 360).
func (l *Light) RotationDegrees() float32 {
	deg := math.Mod(l.Angle*float64(l.Speed), 360)
	if deg < 0 {
		deg += 360
	}
	return float32(deg)
}

// Advance moves the rotation accumulator forward by step seconds, or
// resets it when the light is not rotating.
func (l *Light) Advance(step float64) {
	if !l.Rotating {
		l.Angle = 0
		return
	}
	l.Angle += step
}

// SetCoord clamps one position component to the panel range.
func (l *Light) SetCoord(i int, v float32) {
	l.Position[i] = clamp(v, MinLightCoord, MaxLightCoord)
}

func (l *Light) SetSpeed(v float32) {
	l.Speed = clamp(v, MinSpeed, MaxSpeed)
}

// Clone returns a detached copy.
func (l *Light) Clone() *Light {
	c := *l
	return &c
}
