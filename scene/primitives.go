package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Tessellation used for the curved primitives.
const (
	SphereSegments = 32
	SphereRings    = 16
	TorusMajor     = 32
	TorusMinor     = 16
	CylinderSides  = 32
)

// All primitives fit the unit cube centered at the origin and wind
// counter-clockwise when seen from outside.

// Primitive builds the mesh drawn for kind.
func Primitive(kind ObjectKind) *Mesh {
	switch kind {
	case Cube:
		return CreateCube(1)
	case Pyramid:
		return CreatePyramid(1, 1)
	case Torus:
		return CreateTorus(0.35, 0.15, TorusMajor, TorusMinor)
	case Cylinder:
		return CreateCylinder(0.5, 1, CylinderSides)
	default:
		return CreateSphere(0.5, SphereSegments, SphereRings)
	}
}

// CreateSphere generates a UV sphere.
func CreateSphere(radius float32, segments, rings int) *Mesh {
	segments = max(segments, 3)
	rings = max(rings, 2)

	var b builder
	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * math.Pi / float64(rings)
		sinPhi, cosPhi := math.Sincos(phi)
		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) * 2 * math.Pi / float64(segments)
			sinTheta, cosTheta := math.Sincos(theta)
			n := mgl32.Vec3{float32(sinPhi * cosTheta), float32(cosPhi), float32(sinPhi * sinTheta)}
			b.vertex(n.Mul(radius), n)
		}
	}
	stride := uint32(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			cur := uint32(ring)*stride + uint32(seg)
			next := cur + stride
			b.triangle(cur, cur+1, next)
			b.triangle(cur+1, next+1, next)
		}
	}
	return b.mesh("Sphere")
}

// CreateCube generates a cube with flat-shaded faces.
func CreateCube(size float32) *Mesh {
	s := size / 2
	x := mgl32.Vec3{s, 0, 0}
	y := mgl32.Vec3{0, s, 0}
	z := mgl32.Vec3{0, 0, s}

	var b builder
	b.quad(z, x, y)
	b.quad(z.Mul(-1), x.Mul(-1), y)
	b.quad(x, z.Mul(-1), y)
	b.quad(x.Mul(-1), z, y)
	b.quad(y, x, z.Mul(-1))
	b.quad(y.Mul(-1), x, z)
	return b.mesh("Cube")
}

// CreatePyramid generates a square-based pyramid with its base at -height/2.
func CreatePyramid(width, height float32) *Mesh {
	w, h := width/2, height/2
	base := [4]mgl32.Vec3{
		{-w, -h, -w},
		{w, -h, -w},
		{w, -h, w},
		{-w, -h, w},
	}
	tip := mgl32.Vec3{0, h, 0}

	var b builder
	b.flat(base[0], base[1], base[2])
	b.flat(base[0], base[2], base[3])
	for i := range base {
		b.flat(base[i], tip, base[(i+1)%4])
	}
	return b.mesh("Pyramid")
}

// CreateTorus generates a torus around the Y axis.
func CreateTorus(majorRadius, minorRadius float32, majorSegments, minorSegments int) *Mesh {
	majorSegments = max(majorSegments, 3)
	minorSegments = max(minorSegments, 3)

	var b builder
	for i := 0; i <= majorSegments; i++ {
		theta := float64(i) * 2 * math.Pi / float64(majorSegments)
		sinTheta, cosTheta := math.Sincos(theta)
		for j := 0; j <= minorSegments; j++ {
			phi := float64(j) * 2 * math.Pi / float64(minorSegments)
			sinPhi, cosPhi := math.Sincos(phi)
			ring := float64(majorRadius) + float64(minorRadius)*cosPhi
			p := mgl32.Vec3{float32(ring * cosTheta), float32(float64(minorRadius) * sinPhi), float32(ring * sinTheta)}
			n := mgl32.Vec3{float32(cosPhi * cosTheta), float32(sinPhi), float32(cosPhi * sinTheta)}
			b.vertex(p, n)
		}
	}
	stride := uint32(minorSegments + 1)
	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			cur := uint32(i)*stride + uint32(j)
			next := cur + stride
			b.triangle(cur, cur+1, next)
			b.triangle(cur+1, next+1, next)
		}
	}
	return b.mesh("Torus")
}

// CreateCylinder generates a capped cylinder around the Y axis.
func CreateCylinder(radius, height float32, segments int) *Mesh {
	segments = max(segments, 3)
	h := height / 2
	up := mgl32.Vec3{0, 1, 0}
	down := mgl32.Vec3{0, -1, 0}

	rim := make([]mgl32.Vec3, segments+1)
	for i := range rim {
		sin, cos := math.Sincos(float64(i) * 2 * math.Pi / float64(segments))
		rim[i] = mgl32.Vec3{float32(cos), 0, float32(sin)}
	}

	var b builder
	for _, n := range rim {
		p := n.Mul(radius)
		b.vertex(p.Sub(up.Mul(h)), n)
		b.vertex(p.Add(up.Mul(h)), n)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		b.triangle(base, base+1, base+2)
		b.triangle(base+2, base+1, base+3)
	}

	top := b.vertex(up.Mul(h), up)
	for i := 0; i < segments; i++ {
		v1 := b.vertex(rim[i].Mul(radius).Add(up.Mul(h)), up)
		v2 := b.vertex(rim[i+1].Mul(radius).Add(up.Mul(h)), up)
		b.triangle(top, v2, v1)
	}
	bottom := b.vertex(down.Mul(h), down)
	for i := 0; i < segments; i++ {
		v1 := b.vertex(rim[i].Mul(radius).Add(down.Mul(h)), down)
		v2 := b.vertex(rim[i+1].Mul(radius).Add(down.Mul(h)), down)
		b.triangle(bottom, v1, v2)
	}
	return b.mesh("Cylinder")
}
