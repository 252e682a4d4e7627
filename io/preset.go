package io

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"phong-viewer/core"
	"phong-viewer/scene"
)

// PresetVersion is written into every saved preset.
const PresetVersion = "1"

// ErrTooManyLights is returned when a preset holds more lights than the
// shaded program supports.
var ErrTooManyLights = errors.New("preset has too many lights")

// Preset is the YAML form of a viewer scene: everything the panel edits.
type Preset struct {
	Version  string       `yaml:"version"`
	Name     string       `yaml:"name,omitempty"`
	Camera   CameraData   `yaml:"camera"`
	Options  OptionsData  `yaml:"options"`
	Material MaterialData `yaml:"material"`
	Lights   []LightData  `yaml:"lights"`
}

// CameraData stores camera state
type CameraData struct {
	Eye  [3]float32 `yaml:"eye"`
	At   [3]float32 `yaml:"at"`
	Up   [3]float32 `yaml:"up"`
	Fovy float32    `yaml:"fovy"`
	Near float32    `yaml:"near"`
	Far  float32    `yaml:"far"`
}

type OptionsData struct {
	BackfaceCulling bool `yaml:"backface_culling"`
	DepthTest       bool `yaml:"depth_test"`
	ShowLights      bool `yaml:"show_lights"`
}

// MaterialData stores the object and its Phong coefficients (0-255 channels).
type MaterialData struct {
	Object    string  `yaml:"object"`
	Ka        [3]int  `yaml:"ka"`
	Kd        [3]int  `yaml:"kd"`
	Ks        [3]int  `yaml:"ks"`
	Shininess float32 `yaml:"shininess"`
}

// LightData stores light state
type LightData struct {
	Position    [3]float32 `yaml:"position"`
	Ambient     [3]int     `yaml:"ambient"`
	Diffuse     [3]int     `yaml:"diffuse"`
	Specular    [3]int     `yaml:"specular"`
	Directional bool       `yaml:"directional"`
	Active      bool       `yaml:"active"`
	Rotating    bool       `yaml:"rotating"`
	Axis        string     `yaml:"axis"`
	Speed       float32    `yaml:"speed"`
}

// Save writes p to path as YAML.
func Save(path string, p *Preset) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preset: %w", err)
	}
	return nil
}

// Load reads and validates a preset file.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset: %w", err)
	}
	p := &Preset{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preset %s: %w", path, err)
	}
	return p, nil
}

// Default is the preset matching the startup scene.
func Default() *Preset {
	p := FromState(scene.NewDefaultState())
	p.Name = "default"
	return p
}

// FromState captures the editable parts of s.
func FromState(s *scene.State) *Preset {
	c := s.Camera
	p := &Preset{
		Version: PresetVersion,
		Camera: CameraData{
			Eye:  c.Eye,
			At:   c.At,
			Up:   c.Up,
			Fovy: c.Fovy,
			Near: c.Near,
			Far:  c.Far,
		},
		Options: OptionsData{
			BackfaceCulling: s.Options.BackfaceCulling,
			DepthTest:       s.Options.DepthTest,
			ShowLights:      s.Options.ShowLights,
		},
		Material: MaterialData{
			Object:    s.Material.Object.String(),
			Ka:        rgbToArray(s.Material.Ka),
			Kd:        rgbToArray(s.Material.Kd),
			Ks:        rgbToArray(s.Material.Ks),
			Shininess: s.Material.Shininess,
		},
		Lights: make([]LightData, 0, len(s.Lights)),
	}
	for _, l := range s.Lights {
		p.Lights = append(p.Lights, LightData{
			Position:    l.Position,
			Ambient:     rgbToArray(l.Ambient),
			Diffuse:     rgbToArray(l.Diffuse),
			Specular:    rgbToArray(l.Specular),
			Directional: l.Directional,
			Active:      l.Active,
			Rotating:    l.Rotating,
			Axis:        l.Axis.String(),
			Speed:       l.Speed,
		})
	}
	return p
}

// Validate checks the fields Apply cannot clamp: enum names and light count.
func (p *Preset) Validate() error {
	if len(p.Lights) > scene.MaxLights {
		return fmt.Errorf("%w: %d > %d", ErrTooManyLights, len(p.Lights), scene.MaxLights)
	}
	if _, err := scene.ParseObjectKind(p.Material.Object); err != nil {
		return err
	}
	for i, l := range p.Lights {
		if _, err := scene.ParseAxis(l.Axis); err != nil {
			return fmt.Errorf("light %d: %w", i+1, err)
		}
	}
	return nil
}

// Apply replaces the camera, options, material and lights of s. Numeric
// fields are clamped to the panel ranges; the aspect ratio is kept.
func (p *Preset) Apply(s *scene.State) error {
	if err := p.Validate(); err != nil {
		return err
	}
	object, _ := scene.ParseObjectKind(p.Material.Object)

	cam := s.Camera
	cam.Eye = p.Camera.Eye
	cam.At = p.Camera.At
	cam.Up = p.Camera.Up
	if cam.Up.Len() == 0 {
		cam.Up = scene.DefaultCamera().Up
	}
	cam.Near, cam.Far = scene.MinNear, scene.MaxFar
	cam.SetFar(p.Camera.Far)
	cam.SetNear(p.Camera.Near)
	cam.SetFar(p.Camera.Far)
	cam.SetFovy(p.Camera.Fovy)

	mat := scene.Material{
		Object: object,
		Ka:     arrayToRGB(p.Material.Ka),
		Kd:     arrayToRGB(p.Material.Kd),
		Ks:     arrayToRGB(p.Material.Ks),
	}
	mat.SetShininess(p.Material.Shininess)

	lights := make([]*scene.Light, 0, len(p.Lights))
	for _, ld := range p.Lights {
		l := scene.NewLight(mgl32.Vec3{})
		for i, v := range ld.Position {
			l.SetCoord(i, v)
		}
		l.WorldPosition = l.Position
		l.Ambient = arrayToRGB(ld.Ambient)
		l.Diffuse = arrayToRGB(ld.Diffuse)
		l.Specular = arrayToRGB(ld.Specular)
		l.Directional = ld.Directional
		l.Active = ld.Active
		l.Rotating = ld.Rotating
		l.Axis, _ = scene.ParseAxis(ld.Axis)
		l.SetSpeed(ld.Speed)
		lights = append(lights, l)
	}

	s.Camera = cam
	s.Options = scene.Options{
		BackfaceCulling: p.Options.BackfaceCulling,
		DepthTest:       p.Options.DepthTest,
		ShowLights:      p.Options.ShowLights,
	}
	s.Material = mat
	for len(s.Lights) > 0 {
		s.RemoveLight()
	}
	for _, l := range lights {
		s.AppendLight(l)
	}
	return nil
}

// --- Helper conversions ---

func rgbToArray(c core.RGB) [3]int {
	return [3]int{int(c[0]), int(c[1]), int(c[2])}
}

// arrayToRGB clamps each channel into 0-255.
func arrayToRGB(a [3]int) core.RGB {
	var c core.RGB
	for i, v := range a {
		c = c.Add(i, v)
	}
	return c
}
