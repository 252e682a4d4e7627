package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phong-viewer/core"
	"phong-viewer/scene"
)

func TestEditorMouseAndResize(t *testing.T) {
	s := scene.NewDefaultState()
	e := NewEditor(DefaultConfig())
	var viewport [2]int
	e.Viewport = func(w, h int) { viewport = [2]int{w, h} }

	e.HandleMouseButton(core.MouseRight, true, 0, 0)
	e.Update(s)
	assert.False(t, s.Dragging, "only the left button orbits")

	eye := s.Camera.Eye
	e.HandleMouseButton(core.MouseLeft, true, 10, 10)
	e.Orbit.PointerMove(30, 10)
	e.HandleResize(640, 320)
	assert.Equal(t, 3, e.Update(s))
	assert.True(t, s.Dragging)
	assert.NotEqual(t, eye, s.Camera.Eye)
	assert.Equal(t, float32(2), s.Camera.Aspect)
	assert.Equal(t, [2]int{640, 320}, viewport)

	e.HandleMouseButton(core.MouseLeft, false, 30, 10)
	e.Update(s)
	assert.False(t, s.Dragging)
	assert.Equal(t, "Ready", e.StatusText, "interaction does not touch the status line")
}

func TestEditorEscapeQuits(t *testing.T) {
	e := NewEditor(DefaultConfig())
	quit := false
	e.Quit = func() { quit = true }
	e.HandleKey(core.KeyEscape, core.Modifiers{})
	assert.True(t, quit)
}

func TestEditorStatusText(t *testing.T) {
	s := scene.NewDefaultState()
	e := NewEditor(DefaultConfig())

	e.HandleKey(core.KeyA, core.Modifiers{})
	e.Update(s)
	assert.Equal(t, "Add Light", e.StatusText)

	e.HandleKey(core.KeyE, core.Modifiers{})
	e.Update(s)
	assert.Equal(t, "Add Light", e.StatusText, "a no-op keeps the last status")

	for len(s.Lights) < scene.MaxLights {
		_, err := s.AddLight(scene.NewLightPosition)
		require.NoError(t, err)
	}
	e.HandleKey(core.KeyA, core.Modifiers{})
	e.Update(s)
	assert.Contains(t, e.StatusText, scene.ErrMaxLights.Error())
}

func TestEditorOverlay(t *testing.T) {
	s := scene.NewDefaultState()
	e := NewEditor(DefaultConfig())
	e.Update(s)

	lines := e.Overlay(s)
	require.Len(t, lines, len(e.Panel.Rows())+1)
	assert.Equal(t, "Ready | lights 3/7 | fovy 45", lines[0].Text)

	for len(s.Lights) < scene.MaxLights {
		_, _ = s.AddLight(scene.NewLightPosition)
	}
	_, err := s.AddLight(scene.NewLightPosition)
	require.ErrorIs(t, err, scene.ErrMaxLights)
	s.Warning.Decay()
	e.Update(s)

	lines = e.Overlay(s)
	last := lines[len(lines)-1]
	assert.Equal(t, scene.MaxLightsMessage, last.Text)
	assert.Equal(t, core.ColorRed.WithAlpha(last.Color.A), last.Color)
	assert.InDelta(t, 1-scene.WarningDecay, last.Color.A, 1e-6)
}
