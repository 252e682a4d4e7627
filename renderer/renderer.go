package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"phong-viewer/core"
	"phong-viewer/scene"
	"phong-viewer/transform"
)

var (
	// FloorSize is the floor slab's scale; its top face sits just under the
	// object's unit cube.
	FloorSize   = mgl32.Vec3{3, 0.1, 3}
	FloorOffset = mgl32.Vec3{0, -FloorSize.Y()/2 - 0.5, 0}

	// MarkerSize scales the unit sphere drawn at each light.
	MarkerSize = mgl32.Vec3{0.05, 0.05, 0.05}
)

// textCmd is a queued DrawText call, flushed in Present().
type textCmd struct {
	text  string
	x, y  int
	scale float32
	color core.Color
}

// Renderer draws one frame of a scene.State through a Device.
type Renderer struct {
	device Device
	stack  *transform.Stack

	// Per-frame stats (populated during Render)
	lastDraws  int
	lastLights int

	textQueue []textCmd
}

func NewRenderer(device Device) *Renderer {
	return &Renderer{
		device: device,
		stack:  transform.NewStack(),
	}
}

// Render draws the floor, the object and the light markers, advancing each
// rotating light by step seconds. It also decays the max-lights warning.
func (r *Renderer) Render(s *scene.State, step float64) error {
	if s == nil {
		return errors.New("no scene state")
	}
	if len(s.Lights) > scene.MaxLights {
		return fmt.Errorf("%d lights exceed the shader limit of %d", len(s.Lights), scene.MaxLights)
	}
	r.lastDraws = 0
	r.lastLights = len(s.Lights)

	d := r.device
	d.SetDepthTest(s.Options.DepthTest)
	d.SetBackfaceCulling(s.Options.BackfaceCulling)
	d.Clear(s.Background())

	s.Warning.Decay()

	proj := s.Camera.Projection()
	view := s.Camera.View()

	// ── Shaded pass ───────────────────────────────────────────────────────────
	u := d.UseProgram(Shaded)
	u.SetMat4(UniformProjection, proj)
	u.SetMat4(UniformView, view)
	u.SetMat4(UniformViewNormals, normalMatrix(view))
	uploadLights(u, s.Lights)

	r.stack.Load(view)
	r.stack.Scoped(func() {
		r.stack.Translate(FloorOffset)
		r.stack.Scale(FloorSize)
		r.drawShaded(u, scene.FloorMaterial, scene.Cube)
	})
	r.stack.Scoped(func() {
		r.drawShaded(u, s.Material, s.Material.Object)
	})

	// ── Light markers ─────────────────────────────────────────────────────────
	m := d.UseProgram(Marker)
	m.SetMat4(UniformProjection, proj)
	viewInv := view.Inv()
	for _, l := range s.Lights {
		r.stack.Scoped(func() {
			r.drawLight(m, l, s.Options.ShowLights, step)
			l.WorldPosition = viewInv.Mul4(r.stack.Top()).Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		})
	}
	return nil
}

func (r *Renderer) drawShaded(u Uniforms, mat scene.Material, kind scene.ObjectKind) {
	u.SetVec3(UniformKa, mat.Ka.Scaled())
	u.SetVec3(UniformKd, mat.Kd.Scaled())
	u.SetVec3(UniformKs, mat.Ks.Scaled())
	u.SetFloat(UniformShininess, mat.Shininess)
	r.uploadModelView(u)
	r.device.Draw(kind, Triangles)
	r.lastDraws++
}

// drawLight applies the light's orbit and position to the stack top and draws
// its marker. A rotating light uses its current angle, then advances it.
func (r *Renderer) drawLight(u Uniforms, l *scene.Light, show bool, step float64) {
	if l.Rotating {
		deg := l.RotationDegrees()
		switch l.Axis {
		case scene.AxisX:
			r.stack.RotateX(deg)
		case scene.AxisY:
			r.stack.RotateY(deg)
		case scene.AxisZ:
			r.stack.RotateZ(deg)
		}
	}
	l.Advance(step)

	r.stack.Translate(l.Position)
	r.stack.Scale(MarkerSize)
	r.uploadModelView(u)
	u.SetVec3(UniformMarkerColor, l.Specular.Scaled())
	if show {
		r.device.Draw(scene.Sphere, Lines)
		r.lastDraws++
	}
}

func (r *Renderer) uploadModelView(u Uniforms) {
	mv := r.stack.Top()
	u.SetMat4(UniformModelView, mv)
	u.SetMat4(UniformNormals, normalMatrix(mv))
}

func uploadLights(u Uniforms, lights []*scene.Light) {
	u.SetInt(UniformNumLights, int32(len(lights)))
	for i, l := range lights {
		u.SetVec3(LightUniform(i, "pos"), l.ShadedPosition())
		u.SetVec3(LightUniform(i, "Ia"), l.Ambient.Scaled())
		u.SetVec3(LightUniform(i, "Id"), l.Diffuse.Scaled())
		u.SetVec3(LightUniform(i, "Is"), l.Specular.Scaled())
		u.SetBool(LightUniform(i, "isDirectional"), l.Directional)
		u.SetBool(LightUniform(i, "isActive"), l.Active)
	}
}

// normalMatrix is the inverse transpose of m.
func normalMatrix(m mgl32.Mat4) mgl32.Mat4 {
	return m.Inv().Transpose()
}

// Resize updates the viewport and the camera's aspect ratio.
func (r *Renderer) Resize(s *scene.State, width, height int) {
	r.device.SetViewport(width, height)
	s.Camera.Resize(width, height)
}

// DrawText queues a text string to be drawn at screen position (x, y) in the
// next Present() call. scale=1 draws the font at its native size.
func (r *Renderer) DrawText(text string, x, y int, scale float32, color core.Color) {
	r.textQueue = append(r.textQueue, textCmd{text: text, x: x, y: y, scale: scale, color: color})
}

// Present flushes queued text on top of the frame. The caller swaps buffers.
func (r *Renderer) Present() {
	for _, cmd := range r.textQueue {
		r.device.DrawText(cmd.text, cmd.x, cmd.y, cmd.scale, cmd.color)
	}
	r.textQueue = r.textQueue[:0]
}

// DrawStats returns stats from the most recent Render call.
func (r *Renderer) DrawStats() (draws, lights int) {
	return r.lastDraws, r.lastLights
}
