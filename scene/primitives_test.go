package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitivesWindOutward(t *testing.T) {
	for _, kind := range ObjectKinds {
		m := Primitive(kind)
		require.NotEmpty(t, m.Indices, kind.String())
		require.Zero(t, len(m.Indices)%3, kind.String())

		for tri := 0; tri < m.TriangleCount(); tri++ {
			a := m.Vertices[m.Indices[tri*3]]
			b := m.Vertices[m.Indices[tri*3+1]]
			c := m.Vertices[m.Indices[tri*3+2]]
			face := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
			if face.Len() < 1e-9 {
				// Degenerate pole triangles on the sphere.
				continue
			}
			assert.GreaterOrEqual(t, face.Dot(a.Normal), float32(0),
				"%s triangle %d faces inward", kind, tri)
		}
	}
}

func TestPrimitivesFitUnitCube(t *testing.T) {
	for _, kind := range ObjectKinds {
		for _, v := range Primitive(kind).Vertices {
			for i := 0; i < 3; i++ {
				assert.LessOrEqual(t, v.Position[i], float32(0.5)+1e-5, kind.String())
				assert.GreaterOrEqual(t, v.Position[i], float32(-0.5)-1e-5, kind.String())
			}
			assert.InDelta(t, 1, v.Normal.Len(), 1e-4, kind.String())
		}
	}
}

func TestCubeEdges(t *testing.T) {
	edges := CreateCube(1).Edges()
	// 12 box edges plus one diagonal per face.
	assert.Len(t, edges, (12+6)*2)
}

func TestEdgesAreUnique(t *testing.T) {
	m := CreateSphere(0.5, 8, 4)
	edges := m.Edges()
	require.Zero(t, len(edges)%2)

	seen := map[[2]uint32]bool{}
	for i := 0; i < len(edges); i += 2 {
		a, b := edges[i], edges[i+1]
		assert.NotEqual(t, m.Vertices[a].Position, m.Vertices[b].Position)
		if a > b {
			a, b = b, a
		}
		assert.False(t, seen[[2]uint32{a, b}], "edge %d-%d repeated", a, b)
		seen[[2]uint32{a, b}] = true
	}
}
