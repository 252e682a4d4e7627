// Package transform provides the model-view matrix stack used while
// traversing the scene each frame.
package transform

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl32/matstack"
)

// ErrStackUnderflow is returned when Pop would remove the base matrix.
var ErrStackUnderflow = errors.New("transform: pop would empty the matrix stack")

// Stack is a LIFO of model-view matrices. The top is the current transform;
// every Mul-style call right-multiplies into it, so the last transform
// applied is the first one a vertex sees.
type Stack struct {
	ms *matstack.MatStack
}

// NewStack returns a stack holding a single identity matrix.
func NewStack() *Stack {
	return &Stack{ms: matstack.NewMatStack()}
}

// Load replaces the top matrix.
func (s *Stack) Load(m mgl32.Mat4) {
	s.ms.Load(m)
}

// Top returns the current model-view matrix.
func (s *Stack) Top() mgl32.Mat4 {
	return s.ms.Peek()
}

// Depth reports how many matrices are on the stack; 1 when balanced.
func (s *Stack) Depth() int {
	return len(*s.ms)
}

func (s *Stack) Push() {
	s.ms.Push()
}

func (s *Stack) Pop() error {
	if len(*s.ms) <= 1 {
		return ErrStackUnderflow
	}
	return s.ms.Pop()
}

// Scoped runs fn between a push and a pop. The pop happens even if fn panics.
func (s *Stack) Scoped(fn func()) {
	s.Push()
	defer func() {
		if err := s.Pop(); err != nil {
			panic(err)
		}
	}()
	fn()
}

// Mul right-multiplies m into the top matrix.
func (s *Stack) Mul(m mgl32.Mat4) {
	s.ms.RightMul(m)
}

func (s *Stack) Translate(v mgl32.Vec3) {
	s.Mul(mgl32.Translate3D(v[0], v[1], v[2]))
}

func (s *Stack) Scale(v mgl32.Vec3) {
	s.Mul(mgl32.Scale3D(v[0], v[1], v[2]))
}

// RotateX, RotateY and RotateZ take degrees.
func (s *Stack) RotateX(deg float32) {
	s.Mul(mgl32.HomogRotate3DX(mgl32.DegToRad(deg)))
}

func (s *Stack) RotateY(deg float32) {
	s.Mul(mgl32.HomogRotate3DY(mgl32.DegToRad(deg)))
}

func (s *Stack) RotateZ(deg float32) {
	s.Mul(mgl32.HomogRotate3DZ(mgl32.DegToRad(deg)))
}
