package scene

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"phong-viewer/core"
)

// MaxLights is the size of the light uniform array in the shaded program.
const MaxLights = 7

// ErrMaxLights is returned by AddLight when the scene is full.
var ErrMaxLights = errors.New("maximum lights reached")

// MaxLightsMessage is shown while the warning fades.
const MaxLightsMessage = "MAXIMUM LIGHTS REACHED!"

var (
	// IdleBackground and DragBackground are the clear colors outside and
	// during a pointer drag.
	IdleBackground = core.Color{R: 20.0 / 255, G: 20.0 / 255, B: 20.0 / 255, A: 1}
	DragBackground = core.ColorBlack
)

// DefaultLightPositions are the three lights created at startup.
var DefaultLightPositions = []mgl32.Vec3{
	{-1.5, 0.6, 0},
	{0, 0.6, 1.5},
	{1.5, 0.6, 0},
}

// NewLightPosition is where the "add light" action places a light.
var NewLightPosition = mgl32.Vec3{0, 1, 0}

// Options are the global render toggles.
type Options struct {
	BackfaceCulling bool
	DepthTest       bool
	ShowLights      bool
}

func DefaultOptions() Options {
	return Options{BackfaceCulling: true, DepthTest: true, ShowLights: true}
}

// Warning is a transient message whose opacity decays linearly to zero.
type Warning struct {
	Text    string
	Opacity float32
}

// WarningDecay is the opacity lost per frame.
const WarningDecay = 0.004

// Arm shows text at full opacity.
func (w *Warning) Arm(text string) {
	w.Text = text
	w.Opacity = 1
}

// Decay lowers the opacity by one frame's worth, stopping at zero.
func (w *Warning) Decay() {
	if w.Opacity <= 0 {
		return
	}
	w.Opacity -= WarningDecay
	if w.Opacity < 0 {
		w.Opacity = 0
	}
}

func (w *Warning) Visible() bool {
	return w.Opacity > 0
}

// State is everything the panel edits and the renderer reads.
type State struct {
	Camera   Camera
	Options  Options
	Material Material
	Lights   []*Light
	Warning  Warning

	// Dragging is set while the pointer button is held over the view.
	Dragging bool

	nextLightID int
}

// NewState returns the default scene with no lights.
func NewState() *State {
	return &State{
		Camera:   DefaultCamera(),
		Options:  DefaultOptions(),
		Material: DefaultMaterial(),
		Lights:   make([]*Light, 0, MaxLights),
	}
}

// NewDefaultState returns the startup scene: defaults plus the three
// DefaultLightPositions lights.
func NewDefaultState() *State {
	s := NewState()
	for _, p := range DefaultLightPositions {
		_, _ = s.AddLight(p)
	}
	return s
}

// Background is the clear color for the current interaction state.
func (s *State) Background() core.Color {
	if s.Dragging {
		return DragBackground
	}
	return IdleBackground
}

// AddLight appends a default light at position. When the scene already
// holds MaxLights it arms the warning and returns ErrMaxLights.
func (s *State) AddLight(position mgl32.Vec3) (*Light, error) {
	if len(s.Lights) >= MaxLights {
		s.Warning.Arm(MaxLightsMessage)
		return nil, ErrMaxLights
	}
	l := NewLight(position)
	s.AppendLight(l)
	return l, nil
}

// AppendLight adds an existing light, assigning it an ID if it has none.
// It does not enforce MaxLights; callers restoring a removed light rely on
// the slot it freed.
func (s *State) AppendLight(l *Light) {
	if l.ID == 0 {
		s.nextLightID++
		l.ID = s.nextLightID
	} else if l.ID > s.nextLightID {
		s.nextLightID = l.ID
	}
	s.Lights = append(s.Lights, l)
}

// RemoveLight pops the most recently added light. ok is false when there
// are no lights.
func (s *State) RemoveLight() (removed *Light, ok bool) {
	n := len(s.Lights)
	if n == 0 {
		return nil, false
	}
	removed = s.Lights[n-1]
	s.Lights[n-1] = nil
	s.Lights = s.Lights[:n-1]
	return removed, true
}

// LightByID finds a light by its stable ID.
func (s *State) LightByID(id int) (index int, l *Light) {
	for i, l := range s.Lights {
		if l.ID == id {
			return i, l
		}
	}
	return -1, nil
}

// EasterEgg turns exactly three lights into a red/green/blue ring spinning
// around a torus. It reports whether it fired.
func (s *State) EasterEgg() bool {
	if len(s.Lights) != 3 {
		return false
	}
	specular := []core.RGB{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}}
	n := len(s.Lights)
	for i, l := range s.Lights {
		l.Position = mgl32.Vec3{0, 0.6, 1.5}
		l.Rotating = true
		l.Axis = AxisY
		l.Speed = 200
		l.Angle = float64(i) * 360 / float64(n)
		l.Specular = specular[i%3]
	}
	s.Material.Object = Torus
	s.Material.Shininess = 1
	return true
}

// Snapshot returns a deep copy, used by undoable commands.
func (s *State) Snapshot() *State {
	c := *s
	c.Lights = make([]*Light, len(s.Lights), MaxLights)
	for i, l := range s.Lights {
		c.Lights[i] = l.Clone()
	}
	return &c
}

// Restore copies snap back into s in place.
func (s *State) Restore(snap *State) {
	*s = *snap.Snapshot()
}
