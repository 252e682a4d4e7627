package editor

import (
	"errors"
	"fmt"

	"phong-viewer/core"
	"phong-viewer/scene"
)

// OverlayLine is one line of HUD text.
type OverlayLine struct {
	Text  string
	Color core.Color
}

// Editor is the interaction layer: window events become commands, the
// queue applies them once per frame and the panel mirrors the result.
type Editor struct {
	History *History
	Queue   *Queue
	Orbit   *Orbit
	Panel   *Panel

	// Viewport is called with the new framebuffer size when a resize is applied.
	Viewport func(width, height int)
	// Quit is called on Escape.
	Quit func()

	// Status info
	StatusText string
}

// Config holds the editor knobs exposed as command-line flags.
type Config struct {
	WheelStep  float64
	PresetPath string
	UndoDepth  int
}

func DefaultConfig() Config {
	return Config{WheelStep: DefaultWheelStep, UndoDepth: 100}
}

// NewEditor initializes a new editor instance
func NewEditor(cfg Config) *Editor {
	if cfg.UndoDepth <= 0 {
		cfg.UndoDepth = 100
	}
	history := NewHistory(cfg.UndoDepth)
	queue := NewQueue(history)
	e := &Editor{
		History:    history,
		Queue:      queue,
		Orbit:      NewOrbit(queue, cfg.WheelStep),
		Panel:      NewPanel(queue, history, cfg.PresetPath),
		StatusText: "Ready",
	}
	queue.OnApplied = e.status
	return e
}

// Attach routes the window callbacks into the editor.
func (e *Editor) Attach(w *core.Window) {
	w.SetMouseButtonCallback(e.HandleMouseButton)
	w.SetCursorCallback(e.Orbit.PointerMove)
	w.SetScrollCallback(func(_, yoff float64) { e.Orbit.Scroll(yoff) })
	w.SetKeyCallback(e.HandleKey)
	w.SetResizeCallback(e.HandleResize)
}

func (e *Editor) HandleMouseButton(button int, pressed bool, x, y float64) {
	if button != core.MouseLeft {
		return
	}
	if pressed {
		e.Orbit.PointerDown(x, y)
	} else {
		e.Orbit.PointerUp()
	}
}

func (e *Editor) HandleKey(key int, mods core.Modifiers) {
	if key == core.KeyEscape {
		if e.Quit != nil {
			e.Quit()
		}
		return
	}
	e.Panel.HandleKey(key, mods)
}

func (e *Editor) HandleResize(width, height int) {
	e.Queue.Post(ResizeCommand{Width: width, Height: height, Viewport: e.Viewport})
}

// Update applies the commands posted since the last frame and refreshes
// the panel rows.
func (e *Editor) Update(s *scene.State) int {
	applied := e.Queue.Flush(s)
	e.Panel.Sync(s)
	return applied
}

func (e *Editor) status(cmd Command, err error) {
	switch cmd.(type) {
	case OrbitCommand, ZoomCommand, DragCommand, ResizeCommand:
		return
	}
	switch {
	case err == nil:
		e.StatusText = cmd.Description()
	case errors.Is(err, ErrNoChange):
	default:
		e.StatusText = fmt.Sprintf("%s: %v", cmd.Description(), err)
	}
}

// Overlay returns the HUD text for this frame: the status line, the panel
// and the max-lights warning while it is still visible.
func (e *Editor) Overlay(s *scene.State) []OverlayLine {
	lines := make([]OverlayLine, 0, len(e.Panel.Rows())+3)
	lines = append(lines, OverlayLine{
		Text:  fmt.Sprintf("%s | lights %d/%d | fovy %.0f", e.StatusText, len(s.Lights), scene.MaxLights, s.Camera.Fovy),
		Color: core.ColorWhite,
	})
	for _, text := range e.Panel.Lines() {
		lines = append(lines, OverlayLine{Text: text, Color: core.ColorWhite})
	}
	if s.Warning.Visible() {
		lines = append(lines, OverlayLine{Text: s.Warning.Text, Color: core.ColorRed.WithAlpha(s.Warning.Opacity)})
	}
	return lines
}
