package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phong-viewer/core"
	"phong-viewer/scene"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := scene.NewDefaultState()
	s.Camera.Fovy = 30
	s.Options.ShowLights = false
	s.Material.Object = scene.Pyramid
	s.Lights[1].Rotating = true
	s.Lights[1].Axis = scene.AxisZ
	s.Lights[2].Specular = core.RGB{1, 2, 3}

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, Save(path, FromState(s)))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FromState(s), p)

	restored := scene.NewState()
	require.NoError(t, p.Apply(restored))
	assert.Equal(t, s.Camera, restored.Camera)
	assert.Equal(t, s.Options, restored.Options)
	assert.Equal(t, s.Material, restored.Material)
	require.Len(t, restored.Lights, 3)
	for i := range s.Lights {
		want, got := *s.Lights[i], *restored.Lights[i]
		assert.Equal(t, want.Position, got.Position)
		assert.Equal(t, want.Specular, got.Specular)
		assert.Equal(t, want.Rotating, got.Rotating)
		assert.Equal(t, want.Axis, got.Axis)
	}
}

func TestDefaultMatchesStartup(t *testing.T) {
	p := Default()
	assert.Equal(t, "Sphere", p.Material.Object)
	assert.Len(t, p.Lights, 3)
	assert.Equal(t, [3]int{75, 75, 75}, p.Lights[0].Ambient)
	assert.Equal(t, PresetVersion, p.Version)
}

func TestApplyReplacesLightsWithFreshIDs(t *testing.T) {
	s := scene.NewDefaultState()
	_, _ = s.AddLight(scene.NewLightPosition)
	p := Default()
	p.Lights = p.Lights[:1]

	require.NoError(t, p.Apply(s))
	require.Len(t, s.Lights, 1)
	assert.Equal(t, 5, s.Lights[0].ID)
}

func TestApplyClamps(t *testing.T) {
	p := Default()
	p.Camera.Fovy = 500
	p.Camera.Near = 30
	p.Camera.Far = 50
	p.Material.Ka = [3]int{-4, 300, 12}
	p.Material.Shininess = 0
	p.Lights[0].Position = [3]float32{9, -9, 1}
	p.Lights[0].Speed = 900

	s := scene.NewState()
	require.NoError(t, p.Apply(s))
	assert.Equal(t, float32(scene.MaxFovy), s.Camera.Fovy)
	assert.Equal(t, float32(scene.MaxFar), s.Camera.Far)
	assert.Less(t, s.Camera.Near, s.Camera.Far)
	assert.Equal(t, core.RGB{0, 255, 12}, s.Material.Ka)
	assert.Equal(t, float32(scene.MinShininess), s.Material.Shininess)
	assert.Equal(t, mgl32.Vec3{2, -2, 1}, s.Lights[0].Position)
	assert.Equal(t, float32(scene.MaxSpeed), s.Lights[0].Speed)
}

func TestApplyKeepsAspect(t *testing.T) {
	s := scene.NewState()
	s.Camera.Resize(200, 100)
	require.NoError(t, Default().Apply(s))
	assert.Equal(t, float32(2), s.Camera.Aspect)
}

func TestValidate(t *testing.T) {
	p := Default()
	for len(p.Lights) <= scene.MaxLights {
		p.Lights = append(p.Lights, p.Lights[0])
	}
	assert.ErrorIs(t, p.Validate(), ErrTooManyLights)

	p = Default()
	p.Material.Object = "Teapot"
	assert.Error(t, p.Validate())

	p = Default()
	p.Lights[2].Axis = "W"
	assert.ErrorContains(t, p.Validate(), "light 3")

	s := scene.NewDefaultState()
	before := s.Snapshot()
	assert.Error(t, p.Apply(s))
	assert.Equal(t, before.Material, s.Material, "failed apply leaves state alone")
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read preset")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("camera: [unterminated"), 0644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse preset")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("material:\n  object: Teapot\n"), 0644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "invalid preset")
}

func TestApplyZeroUpFallsBack(t *testing.T) {
	p := Default()
	p.Camera.Up = [3]float32{}

	s := scene.NewState()
	s.Camera.Up = mgl32.Vec3{1, 0, 0}
	require.NoError(t, p.Apply(s))
	assert.Equal(t, scene.DefaultCamera().Up, s.Camera.Up)
}
