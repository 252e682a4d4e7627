package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"phong-viewer/core"
	"phong-viewer/scene"
)

// Topology selects how a mesh's indices are assembled.
type Topology int

const (
	Triangles Topology = iota
	Lines
)

func (t Topology) String() string {
	if t == Lines {
		return "Lines"
	}
	return "Triangles"
}

// Program identifies one of the two shader programs.
type Program int

const (
	// Shaded is the Phong program used for the floor and the object.
	Shaded Program = iota
	// Marker draws the unlit light markers.
	Marker
)

func (p Program) String() string {
	if p == Marker {
		return "Marker"
	}
	return "Shaded"
}

// Uniforms sets uniforms on the program returned by Device.UseProgram.
// Names the program does not declare are ignored.
type Uniforms interface {
	SetInt(name string, v int32)
	SetBool(name string, v bool)
	SetFloat(name string, v float32)
	SetVec3(name string, v mgl32.Vec3)
	SetMat4(name string, m mgl32.Mat4)
}

// Device is the slice of the graphics backend the frame renderer needs.
// internal/opengl implements it on top of an OpenGL 4.1 context.
type Device interface {
	SetViewport(width, height int)
	SetDepthTest(enabled bool)
	SetBackfaceCulling(enabled bool)
	Clear(color core.Color)
	UseProgram(p Program) Uniforms
	// Draw renders the GPU mesh for kind, uploaded once at startup.
	Draw(kind scene.ObjectKind, topology Topology)
	// DrawText overlays text at pixel (x, y) from the top-left corner.
	DrawText(text string, x, y int, scale float32, color core.Color)
}

const (
	UniformProjection  = "mProjection"
	UniformView        = "mView"
	UniformViewNormals = "mViewNormals"
	UniformModelView   = "mModelView"
	UniformNormals     = "mNormals"
	UniformNumLights   = "uNLights"
	UniformMarkerColor = "uLightIs"

	UniformKa        = "uMaterial.Ka"
	UniformKd        = "uMaterial.Kd"
	UniformKs        = "uMaterial.Ks"
	UniformShininess = "uMaterial.shininess"
)

// LightUniform names field of the i-th entry in the uLight array.
func LightUniform(i int, field string) string {
	return fmt.Sprintf("uLight[%d].%s", i, field)
}

// LightFields are the members of the shader's light struct.
var LightFields = []string{"pos", "Ia", "Id", "Is", "isDirectional", "isActive"}
