package editor

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"phong-viewer/scene"
)

var (
	// ErrNoChange reports a command that left the state as it was. It is
	// not recorded in the history.
	ErrNoChange = errors.New("nothing to change")
	// ErrStaleTarget reports an edit aimed at a light that no longer exists.
	ErrStaleTarget = errors.New("edit target no longer exists")
)

// Command is a state change applied at the per-frame update boundary.
type Command interface {
	Execute(s *scene.State) error
	Description() string
}

// Undoable commands are recorded in the History.
type Undoable interface {
	Command
	Undo(s *scene.State)
}

// History manages undo/redo stacks
type History struct {
	undoStack []Undoable
	redoStack []Undoable
	maxDepth  int
}

// NewHistory creates a new history with the given max undo depth
func NewHistory(maxDepth int) *History {
	return &History{
		undoStack: make([]Undoable, 0, maxDepth),
		redoStack: make([]Undoable, 0, maxDepth),
		maxDepth:  maxDepth,
	}
}

// Do executes a command and, if it succeeded and can be undone, pushes it
// to the undo stack.
func (h *History) Do(s *scene.State, cmd Command) error {
	if err := cmd.Execute(s); err != nil {
		return err
	}
	u, ok := cmd.(Undoable)
	if !ok {
		return nil
	}
	h.undoStack = append(h.undoStack, u)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[1:]
	}
	// Clear redo stack on new action
	h.redoStack = h.redoStack[:0]
	return nil
}

// Undo reverts the last action
func (h *History) Undo(s *scene.State) (Undoable, bool) {
	if len(h.undoStack) == 0 {
		return nil, false
	}
	cmd := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	cmd.Undo(s)
	h.redoStack = append(h.redoStack, cmd)
	return cmd, true
}

// Redo reapplies the last undone action. A redo that fails (for example
// because the light limit was reached meanwhile) is dropped.
func (h *History) Redo(s *scene.State) (Undoable, error) {
	if len(h.redoStack) == 0 {
		return nil, ErrNoChange
	}
	cmd := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	if err := cmd.Execute(s); err != nil {
		return cmd, err
	}
	h.undoStack = append(h.undoStack, cmd)
	return cmd, nil
}

// CanUndo returns whether there are actions to undo
func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

// CanRedo returns whether there are actions to redo
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// Clear wipes all undo/redo history
func (h *History) Clear() {
	h.undoStack = h.undoStack[:0]
	h.redoStack = h.redoStack[:0]
}

// --- Field edits ---

// editCommand applies edit to the value target resolves and remembers the
// before and after values. keep copies fields that must survive an undo or
// redo (runtime state such as a light's rotation) from the live value.
type editCommand[T comparable] struct {
	desc   string
	target func(s *scene.State) *T
	edit   func(*T)
	keep   func(live, restored *T)

	before, after T
	done          bool
}

func (c *editCommand[T]) Execute(s *scene.State) error {
	p := c.target(s)
	if p == nil {
		return ErrStaleTarget
	}
	if c.done {
		c.restore(p, c.after)
		return nil
	}
	c.before = *p
	c.edit(p)
	c.after = *p
	if c.before == c.after {
		return ErrNoChange
	}
	c.done = true
	return nil
}

func (c *editCommand[T]) Undo(s *scene.State) {
	if p := c.target(s); p != nil {
		c.restore(p, c.before)
	}
}

func (c *editCommand[T]) restore(p *T, v T) {
	if c.keep != nil {
		c.keep(p, &v)
	}
	*p = v
}

func (c *editCommand[T]) Description() string { return c.desc }

// EditCamera changes camera fields. Undo and redo only touch the fields the
// edit changed, so orbiting and zooming in between survive; the aspect
// ratio follows the window and is never rolled back.
func EditCamera(desc string, edit func(*scene.Camera)) Undoable {
	c := &editCommand[scene.Camera]{
		desc:   desc,
		target: func(s *scene.State) *scene.Camera { return &s.Camera },
		edit:   edit,
	}
	c.keep = func(live, restored *scene.Camera) {
		*restored = mergeCamera(*live, *restored, c.before, c.after)
	}
	return c
}

// mergeCamera returns live with the fields that differ between before and
// after taken from v.
func mergeCamera(live, v, before, after scene.Camera) scene.Camera {
	if before.Eye != after.Eye {
		live.Eye = v.Eye
	}
	if before.At != after.At {
		live.At = v.At
	}
	if before.Up != after.Up {
		live.Up = v.Up
	}
	if before.Fovy != after.Fovy {
		live.Fovy = v.Fovy
	}
	if before.Near != after.Near {
		live.Near = v.Near
	}
	if before.Far != after.Far {
		live.Far = v.Far
	}
	return live
}

func EditOptions(desc string, edit func(*scene.Options)) Undoable {
	return &editCommand[scene.Options]{
		desc:   desc,
		target: func(s *scene.State) *scene.Options { return &s.Options },
		edit:   edit,
	}
}

func EditMaterial(desc string, edit func(*scene.Material)) Undoable {
	return &editCommand[scene.Material]{
		desc:   desc,
		target: func(s *scene.State) *scene.Material { return &s.Material },
		edit:   edit,
	}
}

// EditLight changes the light with the given ID. Rotation progress is not
// part of the edit.
func EditLight(id int, desc string, edit func(*scene.Light)) Undoable {
	return &editCommand[scene.Light]{
		desc: desc,
		target: func(s *scene.State) *scene.Light {
			_, l := s.LightByID(id)
			return l
		},
		edit: edit,
		keep: func(live, restored *scene.Light) {
			restored.Angle = live.Angle
			restored.WorldPosition = live.WorldPosition
		},
	}
}

// --- Light set ---

// AddLightCommand appends a default light; redo re-adds the same light.
type AddLightCommand struct {
	Position mgl32.Vec3
	added    *scene.Light
}

func NewAddLightCommand(position mgl32.Vec3) *AddLightCommand {
	return &AddLightCommand{Position: position}
}

func (c *AddLightCommand) Execute(s *scene.State) error {
	if c.added == nil {
		l, err := s.AddLight(c.Position)
		if err != nil {
			return err
		}
		c.added = l
		return nil
	}
	if len(s.Lights) >= scene.MaxLights {
		s.Warning.Arm(scene.MaxLightsMessage)
		return scene.ErrMaxLights
	}
	s.AppendLight(c.added)
	return nil
}

func (c *AddLightCommand) Undo(s *scene.State) {
	removeByID(s, c.added.ID)
}

func (c *AddLightCommand) Description() string { return "Add Light" }

// RemoveLightCommand pops the most recent light; undo puts it back.
type RemoveLightCommand struct {
	removed *scene.Light
}

func NewRemoveLightCommand() *RemoveLightCommand { return &RemoveLightCommand{} }

func (c *RemoveLightCommand) Execute(s *scene.State) error {
	l, ok := s.RemoveLight()
	if !ok {
		return ErrNoChange
	}
	c.removed = l
	return nil
}

func (c *RemoveLightCommand) Undo(s *scene.State) {
	if c.removed != nil {
		s.AppendLight(c.removed)
	}
}

func (c *RemoveLightCommand) Description() string { return "Remove Light" }

// removeByID removes one light wherever it sits, keeping the order of the rest.
func removeByID(s *scene.State, id int) {
	i, _ := s.LightByID(id)
	if i < 0 {
		return
	}
	s.Lights = append(s.Lights[:i], s.Lights[i+1:]...)
}

// EasterEggCommand runs State.EasterEgg; undo restores lights and material.
type EasterEggCommand struct {
	lights   []scene.Light
	material scene.Material
}

func NewEasterEggCommand() *EasterEggCommand { return &EasterEggCommand{} }

func (c *EasterEggCommand) Execute(s *scene.State) error {
	c.lights = c.lights[:0]
	for _, l := range s.Lights {
		c.lights = append(c.lights, *l)
	}
	c.material = s.Material
	if !s.EasterEgg() {
		return ErrNoChange
	}
	return nil
}

func (c *EasterEggCommand) Undo(s *scene.State) {
	for _, saved := range c.lights {
		if _, l := s.LightByID(saved.ID); l != nil {
			*l = saved
		}
	}
	s.Material = c.material
}

func (c *EasterEggCommand) Description() string { return "Easter Egg" }

// --- Interaction (not undoable) ---

// OrbitCommand rotates the camera for a pointer drag of (DX, DY) pixels.
type OrbitCommand struct {
	DX, DY float32
}

func (c OrbitCommand) Execute(s *scene.State) error {
	if !s.Camera.Orbit(c.DX, c.DY) {
		return ErrNoChange
	}
	return nil
}

func (c OrbitCommand) Description() string {
	return fmt.Sprintf("Orbit (%.0f, %.0f)", c.DX, c.DY)
}

// ZoomCommand applies a wheel delta to the field of view.
type ZoomCommand struct {
	DeltaY float64
}

func (c ZoomCommand) Execute(s *scene.State) error {
	s.Camera.Zoom(c.DeltaY)
	return nil
}

func (c ZoomCommand) Description() string { return fmt.Sprintf("Zoom %.0f", c.DeltaY) }

// DragCommand switches the interaction background on or off.
type DragCommand struct {
	Active bool
}

func (c DragCommand) Execute(s *scene.State) error {
	s.Dragging = c.Active
	return nil
}

func (c DragCommand) Description() string {
	if c.Active {
		return "Drag start"
	}
	return "Drag end"
}

// ResizeCommand updates the aspect ratio and, through Viewport, the backend.
type ResizeCommand struct {
	Width, Height int
	Viewport      func(width, height int)
}

func (c ResizeCommand) Execute(s *scene.State) error {
	if c.Width <= 0 || c.Height <= 0 {
		return ErrNoChange
	}
	s.Camera.Resize(c.Width, c.Height)
	if c.Viewport != nil {
		c.Viewport(c.Width, c.Height)
	}
	return nil
}

func (c ResizeCommand) Description() string {
	return fmt.Sprintf("Resize %dx%d", c.Width, c.Height)
}
