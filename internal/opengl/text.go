package opengl

import (
	"fmt"
	"image"
	"log/slog"
	"math"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"phong-viewer/core"
)

// maxCachedLines bounds the rasterized-line cache; the whole cache is
// dropped when it fills up.
const maxCachedLines = 128

var textFace font.Face = basicfont.Face7x13

// LineHeight is the pixel height of one overlay line at scale 1.
func LineHeight() int {
	return textFace.Metrics().Height.Ceil()
}

// rasterizeText draws text in white onto a transparent image sized to fit it,
// enlarged by an integer scale with nearest-neighbour sampling.
func rasterizeText(text string, scale int) *image.RGBA {
	scale = max(scale, 1)
	m := textFace.Metrics()
	w := font.MeasureString(textFace, text).Ceil()
	h := m.Height.Ceil()
	if w == 0 || h == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: textFace,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(text)
	if scale == 1 {
		return img
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	return scaled
}

type lineTexture struct {
	id   uint32
	w, h int
}

type textKey struct {
	text  string
	scale int
}

// textRenderer draws cached single-line textures as screen-space quads.
type textRenderer struct {
	program  uint32
	vao, vbo uint32

	projLoc  int32
	rectLoc  int32
	colorLoc int32
	texLoc   int32

	cache map[textKey]*lineTexture
}

const textVertSrc = `#version 410 core
layout(location = 0) in vec2 corner;

uniform mat4 uProjection;
uniform vec4 uRect;

out vec2 vUV;

void main() {
    vUV = corner;
    gl_Position = uProjection * vec4(uRect.xy + corner * uRect.zw, 0.0, 1.0);
}
` + "\x00"

const textFragSrc = `#version 410 core
in vec2 vUV;

uniform sampler2D uGlyphs;
uniform vec4 uColor;

out vec4 FragColor;

void main() {
    FragColor = vec4(uColor.rgb, uColor.a * texture(uGlyphs, vUV).a);
}
` + "\x00"

func newTextRenderer() (*textRenderer, error) {
	prog, err := newProgram(textVertSrc, textFragSrc)
	if err != nil {
		return nil, fmt.Errorf("text shader: %w", err)
	}
	t := &textRenderer{
		program:  prog,
		projLoc:  gl.GetUniformLocation(prog, gl.Str("uProjection\x00")),
		rectLoc:  gl.GetUniformLocation(prog, gl.Str("uRect\x00")),
		colorLoc: gl.GetUniformLocation(prog, gl.Str("uColor\x00")),
		texLoc:   gl.GetUniformLocation(prog, gl.Str("uGlyphs\x00")),
		cache:    make(map[textKey]*lineTexture),
	}

	corners := []float32{0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1}
	gl.GenVertexArrays(1, &t.vao)
	gl.GenBuffers(1, &t.vbo)
	gl.BindVertexArray(t.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(corners)*4, gl.Ptr(corners), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 8, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return t, nil
}

func (t *textRenderer) line(text string, scale int) *lineTexture {
	key := textKey{text, scale}
	if lt, ok := t.cache[key]; ok {
		return lt
	}
	if len(t.cache) >= maxCachedLines {
		t.flush()
	}
	img := rasterizeText(text, scale)
	id, err := uploadRGBA(img)
	if err != nil {
		slog.Warn("text upload failed", "text", text, "err", err)
		return nil
	}
	lt := &lineTexture{id: id, w: img.Bounds().Dx(), h: img.Bounds().Dy()}
	t.cache[key] = lt
	return lt
}

func (t *textRenderer) draw(text string, x, y int, scale float32, color core.Color, screenW, screenH int32) {
	lt := t.line(text, int(math.Round(float64(scale))))
	if lt == nil {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	proj := mgl32.Ortho2D(0, float32(screenW), float32(screenH), 0)
	gl.UseProgram(t.program)
	gl.UniformMatrix4fv(t.projLoc, 1, false, &proj[0])
	gl.Uniform4f(t.rectLoc, float32(x), float32(y), float32(lt.w), float32(lt.h))
	gl.Uniform4f(t.colorLoc, color.R, color.G, color.B, color.A)
	gl.Uniform1i(t.texLoc, 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, lt.id)
	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.Disable(gl.BLEND)
}

func (t *textRenderer) flush() {
	for key, lt := range t.cache {
		deleteTexture(&lt.id)
		delete(t.cache, key)
	}
}

func (t *textRenderer) destroy() {
	t.flush()
	gl.DeleteVertexArrays(1, &t.vao)
	gl.DeleteBuffers(1, &t.vbo)
	gl.DeleteProgram(t.program)
}
