package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStackIsIdentity(t *testing.T) {
	s := NewStack()
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, mgl32.Ident4(), s.Top())
}

func TestPopOnBaseFails(t *testing.T) {
	s := NewStack()
	err := s.Pop()
	require.ErrorIs(t, err, ErrStackUnderflow)
	assert.Equal(t, 1, s.Depth())
}

func TestScopedRestoresTop(t *testing.T) {
	s := NewStack()
	base := mgl32.Translate3D(1, 2, 3)
	s.Load(base)

	s.Scoped(func() {
		s.Scale(mgl32.Vec3{2, 2, 2})
		assert.Equal(t, 2, s.Depth())
		assert.NotEqual(t, base, s.Top())
	})

	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, base, s.Top())
}

func TestScopedPopsOnPanic(t *testing.T) {
	s := NewStack()
	assert.Panics(t, func() {
		s.Scoped(func() {
			s.Translate(mgl32.Vec3{1, 0, 0})
			panic("draw failed")
		})
	})
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, mgl32.Ident4(), s.Top())
}

func TestRightMultiplicationOrder(t *testing.T) {
	// Translate then scale: the scale applies to the vertex first.
	s := NewStack()
	s.Translate(mgl32.Vec3{1, 0, 0})
	s.Scale(mgl32.Vec3{2, 2, 2})

	p := s.Top().Mul4x1(mgl32.Vec4{1, 1, 1, 1}).Vec3()
	assert.InDeltaSlice(t, []float32{3, 2, 2}, p[:], 1e-6)
}

func TestRotateYDegrees(t *testing.T) {
	s := NewStack()
	s.RotateY(90)
	p := s.Top().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assert.InDeltaSlice(t, []float32{0, 0, -1}, p[:], 1e-6)
}
