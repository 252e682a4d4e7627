package editor

import (
	"log/slog"

	sceneio "phong-viewer/io"
	"phong-viewer/scene"
)

// SavePresetCommand writes the current scene to Path.
type SavePresetCommand struct {
	Path string
}

func (c SavePresetCommand) Execute(s *scene.State) error {
	if err := sceneio.Save(c.Path, sceneio.FromState(s)); err != nil {
		return err
	}
	slog.Info("preset saved", "path", c.Path, "lights", len(s.Lights))
	return nil
}

func (c SavePresetCommand) Description() string { return "Save " + c.Path }

// LoadPresetCommand replaces the scene with the preset at Path. The file
// is read once; redo reapplies the same contents.
type LoadPresetCommand struct {
	Path   string
	preset *sceneio.Preset
	before *scene.State
}

func (c *LoadPresetCommand) Execute(s *scene.State) error {
	if c.preset == nil {
		p, err := sceneio.Load(c.Path)
		if err != nil {
			return err
		}
		c.preset = p
	}
	c.before = s.Snapshot()
	if err := c.preset.Apply(s); err != nil {
		return err
	}
	slog.Info("preset loaded", "path", c.Path, "lights", len(s.Lights))
	return nil
}

func (c *LoadPresetCommand) Undo(s *scene.State) {
	if c.before == nil {
		return
	}
	aspect, dragging, warning := s.Camera.Aspect, s.Dragging, s.Warning
	s.Restore(c.before)
	s.Camera.Aspect, s.Dragging, s.Warning = aspect, dragging, warning
}

func (c *LoadPresetCommand) Description() string { return "Load " + c.Path }
