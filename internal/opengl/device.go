package opengl

import (
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"phong-viewer/core"
	"phong-viewer/renderer"
	"phong-viewer/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh. The same
// vertex buffer is drawn either through the triangle indices or through the
// deduplicated edge indices.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	LineEBO    uint32
	IndexCount int32
	LineCount  int32
}

// Device is the OpenGL implementation of renderer.Device.
type Device struct {
	programs map[renderer.Program]*program
	meshes   map[scene.ObjectKind]*GPUMesh
	text     *textRenderer

	viewportW int32
	viewportH int32
}

var _ renderer.Device = (*Device)(nil)

// NewDevice initialises OpenGL, builds both programs and uploads every
// primitive. Must be called after the GLFW window context is made current.
func NewDevice(width, height int) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	slog.Info("opengl ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	d := &Device{
		programs: make(map[renderer.Program]*program),
		meshes:   make(map[scene.ObjectKind]*GPUMesh),
	}
	for _, p := range []renderer.Program{renderer.Shaded, renderer.Marker} {
		src := renderer.Sources(p)
		id, err := newProgram(src.Vertex, src.Fragment)
		if err != nil {
			d.Destroy()
			return nil, fmt.Errorf("%s shader: %w", p, err)
		}
		d.programs[p] = &program{id: id, locs: make(map[string]int32)}
		slog.Debug("shader program linked", "program", p.String(), "id", id)
	}

	for _, kind := range scene.ObjectKinds {
		mesh := scene.Primitive(kind)
		d.meshes[kind] = upload(mesh)
		slog.Debug("mesh uploaded", "mesh", mesh.Name,
			"vertices", len(mesh.Vertices), "triangles", mesh.TriangleCount())
	}

	text, err := newTextRenderer()
	if err != nil {
		d.Destroy()
		return nil, fmt.Errorf("text overlay: %w", err)
	}
	d.text = text

	gl.DepthFunc(gl.LESS)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	d.SetViewport(width, height)
	return d, nil
}

// ── Viewport & state ──────────────────────────────────────────────────────────

func (d *Device) SetViewport(width, height int) {
	d.viewportW = int32(width)
	d.viewportH = int32(height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) SetDepthTest(enabled bool) {
	setCap(gl.DEPTH_TEST, enabled)
}

func (d *Device) SetBackfaceCulling(enabled bool) {
	setCap(gl.CULL_FACE, enabled)
}

func (d *Device) Clear(c core.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func setCap(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// ── Programs & uniforms ───────────────────────────────────────────────────────

func (d *Device) UseProgram(p renderer.Program) renderer.Uniforms {
	prog := d.programs[p]
	gl.UseProgram(prog.id)
	return prog
}

// program caches uniform locations by name; -1 marks names the linker dropped.
type program struct {
	id   uint32
	locs map[string]int32
}

func (p *program) location(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locs[name] = loc
	return loc
}

func (p *program) SetInt(name string, v int32) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

func (p *program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

func (p *program) SetFloat(name string, v float32) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

func (p *program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (p *program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

// ── Draw ──────────────────────────────────────────────────────────────────────

// Draw renders the uploaded primitive for kind with the current program.
func (d *Device) Draw(kind scene.ObjectKind, topology renderer.Topology) {
	gpu, ok := d.meshes[kind]
	if !ok {
		return
	}
	gl.BindVertexArray(gpu.VAO)
	if topology == renderer.Lines {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.LineEBO)
		gl.DrawElements(gl.LINES, gpu.LineCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// DrawText renders a string with its top-left corner at pixel (x, y).
func (d *Device) DrawText(text string, x, y int, scale float32, color core.Color) {
	if d.text == nil || text == "" {
		return
	}
	d.text.draw(text, x, y, scale, color, d.viewportW, d.viewportH)
}

// ── Resource management ───────────────────────────────────────────────────────

// Destroy releases all GPU resources.
func (d *Device) Destroy() {
	for kind, gpu := range d.meshes {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		gl.DeleteBuffers(1, &gpu.EBO)
		gl.DeleteBuffers(1, &gpu.LineEBO)
		delete(d.meshes, kind)
	}
	for p, prog := range d.programs {
		gl.DeleteProgram(prog.id)
		delete(d.programs, p)
	}
	if d.text != nil {
		d.text.destroy()
		d.text = nil
	}
}

// ── Internal helpers ──────────────────────────────────────────────────────────

// upload creates the VAO, vertex buffer and both index buffers for mesh.
func upload(mesh *scene.Mesh) *GPUMesh {
	stride := int32(unsafe.Sizeof(core.Vertex{}))
	edges := mesh.Edges()

	gpu := &GPUMesh{
		IndexCount: int32(len(mesh.Indices)),
		LineCount:  int32(len(edges)),
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Position))))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Normal))))

	gpu.LineEBO = indexBuffer(edges)
	gpu.EBO = indexBuffer(mesh.Indices)

	gl.BindVertexArray(0)
	return gpu
}

// indexBuffer uploads indices and leaves the buffer bound to the current VAO.
func indexBuffer(indices []uint32) uint32 {
	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	if len(indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}
	return ebo
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link failed: %v", log)
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
