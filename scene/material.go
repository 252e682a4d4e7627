package scene

import (
	"fmt"

	"phong-viewer/core"
)

// ObjectKind selects which primitive is drawn above the floor.
type ObjectKind int

const (
	Sphere ObjectKind = iota
	Cube
	Pyramid
	Torus
	Cylinder
)

// ObjectKinds lists every selectable primitive in panel order.
var ObjectKinds = []ObjectKind{Sphere, Cube, Pyramid, Torus, Cylinder}

func (k ObjectKind) String() string {
	switch k {
	case Sphere:
		return "Sphere"
	case Cube:
		return "Cube"
	case Pyramid:
		return "Pyramid"
	case Torus:
		return "Torus"
	case Cylinder:
		return "Cylinder"
	}
	return fmt.Sprintf("ObjectKind(%d)", int(k))
}

// ParseObjectKind is the inverse of String, case-sensitive.
func ParseObjectKind(s string) (ObjectKind, error) {
	for _, k := range ObjectKinds {
		if k.String() == s {
			return k, nil
		}
	}
	return Sphere, fmt.Errorf("unknown object %q", s)
}

// Next cycles through ObjectKinds, wrapping in both directions.
func (k ObjectKind) Next(step int) ObjectKind {
	n := len(ObjectKinds)
	return ObjectKind(((int(k)+step)%n + n) % n)
}

const (
	MinShininess = 1
	MaxShininess = 100
)

// Material holds Phong reflection coefficients as 0–255 color triples.
type Material struct {
	Object    ObjectKind
	Ka        core.RGB
	Kd        core.RGB
	Ks        core.RGB
	Shininess float32
}

// DefaultMaterial is the blue sphere shown at startup.
func DefaultMaterial() Material {
	return Material{
		Object:    Sphere,
		Ka:        core.RGB{0, 0, 30},
		Kd:        core.RGB{0, 15, 255},
		Ks:        core.RGB{255, 255, 255},
		Shininess: 50,
	}
}

// FloorMaterial is fixed; the panel never edits it.
var FloorMaterial = Material{
	Object:    Cube,
	Ka:        core.RGB{40, 0, 0},
	Kd:        core.RGB{100, 0, 0},
	Ks:        core.RGB{255, 255, 255},
	Shininess: 50,
}

// SetShininess clamps to [MinShininess, MaxShininess].
func (m *Material) SetShininess(v float32) {
	m.Shininess = clamp(v, MinShininess, MaxShininess)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
