package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"phong-viewer/core"
)

// Mesh holds CPU-side vertex/index data for one primitive.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32
}

func NewMesh(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	return &Mesh{Name: name, Vertices: vertices, Indices: indices}
}

// TriangleCount is len(Indices)/3.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Edges returns the unique triangle edges as LINES index pairs, in first-seen
// order. Edges between vertices at the same position (seams) are kept once.
func (m *Mesh) Edges() []uint32 {
	type edge struct{ a, b uint32 }
	canonical := m.weldPositions()
	seen := make(map[edge]bool, len(m.Indices))
	lines := make([]uint32, 0, len(m.Indices)*2)
	for t := 0; t+2 < len(m.Indices); t += 3 {
		tri := [3]uint32{m.Indices[t], m.Indices[t+1], m.Indices[t+2]}
		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			ca, cb := canonical[a], canonical[b]
			if ca == cb {
				continue
			}
			if ca > cb {
				ca, cb = cb, ca
			}
			e := edge{ca, cb}
			if seen[e] {
				continue
			}
			seen[e] = true
			lines = append(lines, a, b)
		}
	}
	return lines
}

// weldPositions maps every vertex index to the lowest index sharing its position.
func (m *Mesh) weldPositions() []uint32 {
	first := make(map[mgl32.Vec3]uint32, len(m.Vertices))
	out := make([]uint32, len(m.Vertices))
	for i, v := range m.Vertices {
		if j, ok := first[v.Position]; ok {
			out[i] = j
			continue
		}
		first[v.Position] = uint32(i)
		out[i] = uint32(i)
	}
	return out
}

// builder accumulates vertices and indices for the generators below.
type builder struct {
	vertices []core.Vertex
	indices  []uint32
}

func (b *builder) vertex(position, normal mgl32.Vec3) uint32 {
	b.vertices = append(b.vertices, core.Vertex{Position: position, Normal: normal})
	return uint32(len(b.vertices) - 1)
}

func (b *builder) triangle(i0, i1, i2 uint32) {
	b.indices = append(b.indices, i0, i1, i2)
}

// flat appends a counter-clockwise triangle with its face normal.
func (b *builder) flat(p0, p1, p2 mgl32.Vec3) {
	n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	b.triangle(b.vertex(p0, n), b.vertex(p1, n), b.vertex(p2, n))
}

// quad appends a square face centered at c with normal u×v, spanning ±u and ±v.
func (b *builder) quad(c, u, v mgl32.Vec3) {
	n := u.Cross(v).Normalize()
	i0 := b.vertex(c.Sub(u).Sub(v), n)
	i1 := b.vertex(c.Add(u).Sub(v), n)
	i2 := b.vertex(c.Add(u).Add(v), n)
	i3 := b.vertex(c.Sub(u).Add(v), n)
	b.triangle(i0, i1, i2)
	b.triangle(i0, i2, i3)
}

func (b *builder) mesh(name string) *Mesh {
	return NewMesh(name, b.vertices, b.indices)
}
