package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phong-viewer/core"
	"phong-viewer/scene"
)

type panelFixture struct {
	s *scene.State
	h *History
	q *Queue
	p *Panel
}

func newPanelFixture(t *testing.T) *panelFixture {
	t.Helper()
	f := &panelFixture{s: scene.NewDefaultState(), h: NewHistory(50)}
	f.q = NewQueue(f.h)
	f.p = NewPanel(f.q, f.h, "")
	f.p.Sync(f.s)
	return f
}

// press sends a key and applies whatever it posted, like one frame.
func (f *panelFixture) press(key int, mods core.Modifiers) bool {
	used := f.p.HandleKey(key, mods)
	f.q.Flush(f.s)
	f.p.Sync(f.s)
	return used
}

func (f *panelFixture) selectRow(t *testing.T, key string) {
	t.Helper()
	for i, r := range f.p.Rows() {
		if r.Key == key {
			f.p.cursor = i
			return
		}
	}
	require.Failf(t, "row not found", "%q", key)
}

func (f *panelFixture) row(key string) (Row, bool) {
	for _, r := range f.p.Rows() {
		if r.Key == key {
			return r, true
		}
	}
	return Row{}, false
}

var (
	noMods = core.Modifiers{}
	shift  = core.Modifiers{Shift: true}
	ctrl   = core.Modifiers{Control: true}
)

func TestPanelLightFoldersFollowLights(t *testing.T) {
	f := newPanelFixture(t)
	for i, l := range f.s.Lights {
		folder := f.p.LightFolder(l.ID)
		require.NotNil(t, folder)
		assert.Equal(t, []string{"Light 1", "Light 2", "Light 3"}[i], folder.Title)
	}

	f.press(core.KeyR, noMods)
	assert.Nil(t, f.p.LightFolder(3))
	_, ok := f.row("light.3")
	assert.False(t, ok)

	f.press(core.KeyA, noMods)
	require.Len(t, f.s.Lights, 3)
	folder := f.p.LightFolder(4)
	require.NotNil(t, folder)
	assert.Equal(t, "Light 3", folder.Title)
}

func TestPanelClosedFoldersHideRows(t *testing.T) {
	f := newPanelFixture(t)
	_, ok := f.row("options.depth")
	assert.False(t, ok)

	f.selectRow(t, "options")
	f.press(core.KeyRight, noMods)
	_, ok = f.row("options.depth")
	assert.True(t, ok)

	f.selectRow(t, "light.2")
	f.press(core.KeyEnter, noMods)
	r, ok := f.row("light.2.speed")
	require.True(t, ok)
	assert.Equal(t, 2, r.Depth)
	assert.Equal(t, "20", r.Value)

	f.selectRow(t, "light.2")
	f.press(core.KeyLeft, noMods)
	_, ok = f.row("light.2.speed")
	assert.False(t, ok)
}

func TestPanelAdjustNumber(t *testing.T) {
	f := newPanelFixture(t)
	f.selectRow(t, "camera.fovy")

	f.press(core.KeyRight, noMods)
	assert.Equal(t, float32(46), f.s.Camera.Fovy)
	f.press(core.KeyRight, shift)
	assert.Equal(t, float32(56), f.s.Camera.Fovy)
	for i := 0; i < 20; i++ {
		f.press(core.KeyRight, shift)
	}
	assert.Equal(t, float32(scene.MaxFovy), f.s.Camera.Fovy)

	r, _ := f.row("camera.fovy")
	assert.Equal(t, "100", r.Value)
	assert.Equal(t, "camera.fovy", f.p.Rows()[f.p.Cursor()].Key)
}

func TestPanelMaterialColor(t *testing.T) {
	f := newPanelFixture(t)
	f.selectRow(t, "material.kd.1")
	f.press(core.KeyLeft, shift)
	assert.Equal(t, core.RGB{0, 5, 255}, f.s.Material.Kd)
	f.press(core.KeyLeft, shift)
	assert.Equal(t, core.RGB{0, 0, 255}, f.s.Material.Kd)
}

func TestPanelToggleAndChoice(t *testing.T) {
	f := newPanelFixture(t)
	f.selectRow(t, "light.1")
	f.press(core.KeyRight, noMods)

	f.selectRow(t, "light.1.rotating")
	f.press(core.KeySpace, noMods)
	assert.True(t, f.s.Lights[0].Rotating)

	f.selectRow(t, "light.1.axis")
	f.press(core.KeyLeft, noMods)
	assert.Equal(t, scene.AxisZ, f.s.Lights[0].Axis)

	f.selectRow(t, "object.kind")
	f.press(core.KeyRight, noMods)
	assert.Equal(t, scene.Cube, f.s.Material.Object)
}

func TestPanelObjectShortcuts(t *testing.T) {
	f := newPanelFixture(t)
	f.press(core.Key4, noMods)
	assert.Equal(t, scene.Torus, f.s.Material.Object)
	f.press(core.Key1, noMods)
	assert.Equal(t, scene.Sphere, f.s.Material.Object)
}

func TestPanelLightShortcuts(t *testing.T) {
	f := newPanelFixture(t)
	f.press(core.KeyE, noMods)
	assert.Equal(t, scene.Torus, f.s.Material.Object)
	assert.True(t, f.s.Lights[2].Rotating)

	for i := 0; i < 5; i++ {
		f.press(core.KeyA, noMods)
	}
	assert.Len(t, f.s.Lights, scene.MaxLights)
	assert.True(t, f.s.Warning.Visible())
}

func TestPanelUndoRedoKeys(t *testing.T) {
	f := newPanelFixture(t)
	f.selectRow(t, "material.shininess")
	f.press(core.KeyRight, shift)
	assert.Equal(t, float32(60), f.s.Material.Shininess)

	f.press(core.KeyZ, ctrl)
	assert.Equal(t, float32(50), f.s.Material.Shininess)
	f.press(core.KeyY, ctrl)
	assert.Equal(t, float32(60), f.s.Material.Shininess)
	f.press(core.KeyZ, ctrl)
	f.press(core.KeyZ, core.Modifiers{Control: true, Shift: true})
	assert.Equal(t, float32(60), f.s.Material.Shininess)

	assert.False(t, f.p.HandleKey(core.KeyA, ctrl))
}

func TestPanelCursorFollowsRowKey(t *testing.T) {
	f := newPanelFixture(t)
	f.selectRow(t, "object.kind")

	f.press(core.KeyA, noMods)
	assert.Equal(t, "object.kind", f.p.Rows()[f.p.Cursor()].Key)

	f.selectRow(t, "light.4")
	f.press(core.KeyR, noMods)
	assert.Less(t, f.p.Cursor(), len(f.p.Rows()))
}

func TestPanelNavigation(t *testing.T) {
	f := newPanelFixture(t)
	n := len(f.p.Rows())
	assert.Zero(t, f.p.Cursor())

	f.press(core.KeyUp, noMods)
	assert.Equal(t, n-1, f.p.Cursor(), "wraps around")
	f.press(core.KeyDown, noMods)
	assert.Zero(t, f.p.Cursor())
	f.press(core.KeyPageDown, noMods)
	assert.Equal(t, 10, f.p.Cursor())

	f.p.cursor = 0
	f.press(core.KeyTab, noMods)
	assert.Equal(t, "camera", f.p.Rows()[f.p.Cursor()].Key)
	f.press(core.KeyTab, noMods)
	assert.Equal(t, "camera.eye", f.p.Rows()[f.p.Cursor()].Key)
	f.press(core.KeyTab, shift)
	assert.Equal(t, "camera", f.p.Rows()[f.p.Cursor()].Key)
}

func TestPanelReadOnlyRows(t *testing.T) {
	f := newPanelFixture(t)
	f.selectRow(t, "camera.at")
	f.press(core.KeyRight, noMods)
	f.selectRow(t, "camera.at.x")
	before := f.s.Camera

	f.press(core.KeyRight, noMods)
	f.press(core.KeyEnter, noMods)
	assert.Equal(t, before, f.s.Camera)
	assert.False(t, f.h.CanUndo())
}

func TestPanelHide(t *testing.T) {
	f := newPanelFixture(t)
	assert.Greater(t, len(f.p.Lines()), 1)

	f.press(core.KeyH, noMods)
	assert.True(t, f.p.Hidden)
	assert.Equal(t, []string{"[H] show panel"}, f.p.Lines())
	assert.False(t, f.p.HandleKey(core.KeyDown, noMods))

	// Shortcuts still work while hidden.
	f.press(core.KeyR, noMods)
	assert.Len(t, f.s.Lights, 2)
}

func TestPanelLines(t *testing.T) {
	f := newPanelFixture(t)
	lines := f.p.Lines()
	require.Len(t, lines, len(f.p.Rows()))
	assert.Equal(t, "> [+] Options", lines[0])

	f.selectRow(t, "camera.fovy")
	lines = f.p.Lines()
	assert.Equal(t, ">   fovy: 45", lines[f.p.Cursor()])

	f.selectRow(t, "object.kind")
	assert.Equal(t, ">   Object: < Sphere >", f.p.Lines()[f.p.Cursor()])
	f.selectRow(t, "lights.add")
	assert.Equal(t, ">   ( Add Light )", f.p.Lines()[f.p.Cursor()])
}

func TestPanelPresetKeysNeedPath(t *testing.T) {
	f := newPanelFixture(t)
	assert.False(t, f.p.HandleKey(core.KeyF5, noMods))
	assert.False(t, f.p.HandleKey(core.KeyF9, noMods))
	_, ok := f.row("preset")
	assert.False(t, ok)
}
