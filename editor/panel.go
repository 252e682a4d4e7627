package editor

import (
	"fmt"
	"strings"

	"phong-viewer/core"
	"phong-viewer/scene"
)

// RowKind is how a panel row is drawn and what keys do to it.
type RowKind int

const (
	RowFolder RowKind = iota
	RowNumber
	RowToggle
	RowChoice
	RowButton
	RowInfo
)

// Folder is a collapsible group of rows.
type Folder struct {
	Title string
	Open  bool
}

// Row is one line of the panel. adjust handles Left/Right (steps is
// negative for Left and ten times larger with Shift); press handles
// Enter/Space.
type Row struct {
	Key   string
	Label string
	Value string
	Depth int
	Kind  RowKind

	folder *Folder
	adjust func(steps int) Command
	press  func() Command
}

// Panel is the keyboard-driven parameter panel. It mirrors the scene
// state into rows every frame and posts a command for every edit.
type Panel struct {
	queue   *Queue
	history *History

	// PresetPath is where F5 saves and F9 loads; empty disables both.
	PresetPath string
	Hidden     bool

	folders map[string]*Folder
	lights  map[int]*Folder
	rows    []Row
	cursor  int
}

func NewPanel(q *Queue, h *History, presetPath string) *Panel {
	folder := func(title string, open bool) *Folder { return &Folder{Title: title, Open: open} }
	return &Panel{
		queue:      q,
		history:    h,
		PresetPath: presetPath,
		folders: map[string]*Folder{
			"options":  folder("Options", false),
			"camera":   folder("Camera", true),
			"eye":      folder("eye", true),
			"at":       folder("at", false),
			"up":       folder("up", false),
			"lights":   folder("Lights", true),
			"object":   folder("Object", true),
			"material": folder("Material", true),
			"preset":   folder("Preset", false),
		},
		lights: make(map[int]*Folder),
	}
}

// LightFolder returns the sub-panel for a light ID, or nil.
func (p *Panel) LightFolder(id int) *Folder {
	return p.lights[id]
}

// Rows returns the rows built by the last Sync.
func (p *Panel) Rows() []Row { return p.rows }

// Cursor is the index of the selected row.
func (p *Panel) Cursor() int { return p.cursor }

// Sync rebuilds the rows from s. Light sub-panels are created for new
// light IDs and dropped for IDs that left the scene. The cursor stays on
// the same row when it still exists.
func (p *Panel) Sync(s *scene.State) {
	live := make(map[int]bool, len(s.Lights))
	for i, l := range s.Lights {
		live[l.ID] = true
		if _, ok := p.lights[l.ID]; !ok {
			p.lights[l.ID] = &Folder{Title: fmt.Sprintf("Light %d", i+1)}
		}
	}
	for id := range p.lights {
		if !live[id] {
			delete(p.lights, id)
		}
	}

	selected := ""
	if p.cursor < len(p.rows) {
		selected = p.rows[p.cursor].Key
	}

	b := rowBuilder{}
	p.buildOptions(&b, s)
	p.buildCamera(&b, s)
	p.buildLights(&b, s)
	p.buildObject(&b, s)
	if p.PresetPath != "" {
		p.buildPreset(&b)
	}
	p.rows = b.rows

	for i, r := range p.rows {
		if r.Key == selected {
			p.cursor = i
			return
		}
	}
	p.cursor = min(p.cursor, max(len(p.rows)-1, 0))
}

// rowBuilder appends rows, skipping the contents of closed folders.
type rowBuilder struct {
	rows   []Row
	depth  int
	closed int
}

func (b *rowBuilder) add(r Row) {
	if b.closed > 0 {
		return
	}
	r.Depth = b.depth
	b.rows = append(b.rows, r)
}

func (b *rowBuilder) folder(key string, f *Folder, body func()) {
	b.add(Row{Key: key, Label: f.Title, Kind: RowFolder, folder: f})
	if !f.Open {
		b.closed++
	}
	b.depth++
	body()
	b.depth--
	if !f.Open {
		b.closed--
	}
}

func (b *rowBuilder) number(key, label, value string, adjust func(steps int) Command) {
	b.add(Row{Key: key, Label: label, Value: value, Kind: RowNumber, adjust: adjust})
}

func (b *rowBuilder) toggle(key, label string, on bool, press func() Command) {
	value := "off"
	if on {
		value = "on"
	}
	b.add(Row{Key: key, Label: label, Value: value, Kind: RowToggle, press: press,
		adjust: func(int) Command { return press() }})
}

func (b *rowBuilder) choice(key, label, value string, adjust func(steps int) Command) {
	b.add(Row{Key: key, Label: label, Value: value, Kind: RowChoice, adjust: adjust})
}

func (b *rowBuilder) button(key, label string, press func() Command) {
	b.add(Row{Key: key, Label: label, Kind: RowButton, press: press})
}

func (b *rowBuilder) info(key, label, value string) {
	b.add(Row{Key: key, Label: label, Value: value, Kind: RowInfo})
}

// rgb adds one row per channel of a 0-255 color.
func (b *rowBuilder) rgb(key, label string, c core.RGB, edit func(channel, steps int) Command) {
	for i, name := range []string{"R", "G", "B"} {
		channel := i
		b.number(fmt.Sprintf("%s.%d", key, i), label+" "+name, fmt.Sprintf("%d", c[i]),
			func(steps int) Command { return edit(channel, steps) })
	}
}

var axes = [3]string{"x", "y", "z"}

func (p *Panel) buildOptions(b *rowBuilder, s *scene.State) {
	o := s.Options
	b.folder("options", p.folders["options"], func() {
		b.toggle("options.culling", "Backface Culling", o.BackfaceCulling, func() Command {
			return EditOptions("Backface Culling", func(o *scene.Options) { o.BackfaceCulling = !o.BackfaceCulling })
		})
		b.toggle("options.depth", "Depth Test", o.DepthTest, func() Command {
			return EditOptions("Depth Test", func(o *scene.Options) { o.DepthTest = !o.DepthTest })
		})
		b.toggle("options.lights", "Show Lights", o.ShowLights, func() Command {
			return EditOptions("Show Lights", func(o *scene.Options) { o.ShowLights = !o.ShowLights })
		})
	})
}

func (p *Panel) buildCamera(b *rowBuilder, s *scene.State) {
	c := s.Camera
	b.folder("camera", p.folders["camera"], func() {
		b.number("camera.fovy", "fovy", fmt.Sprintf("%.0f", c.Fovy), func(steps int) Command {
			return EditCamera("fovy", func(c *scene.Camera) { c.SetFovy(c.Fovy + float32(steps)) })
		})
		b.number("camera.near", "near", fmt.Sprintf("%.2f", c.Near), func(steps int) Command {
			return EditCamera("near", func(c *scene.Camera) { c.SetNear(c.Near + 0.1*float32(steps)) })
		})
		b.number("camera.far", "far", fmt.Sprintf("%.2f", c.Far), func(steps int) Command {
			return EditCamera("far", func(c *scene.Camera) { c.SetFar(c.Far + 0.1*float32(steps)) })
		})
		b.folder("camera.eye", p.folders["eye"], func() {
			for i, axis := range axes {
				b.number("camera.eye."+axis, axis, fmt.Sprintf("%.2f", c.Eye[i]), func(steps int) Command {
					return EditCamera("eye "+axis, func(c *scene.Camera) { c.SetEyeCoord(i, c.Eye[i]+0.05*float32(steps)) })
				})
			}
		})
		b.folder("camera.at", p.folders["at"], func() {
			for i, axis := range axes {
				b.info("camera.at."+axis, axis, fmt.Sprintf("%.2f", c.At[i]))
			}
		})
		b.folder("camera.up", p.folders["up"], func() {
			for i, axis := range axes {
				b.number("camera.up."+axis, axis, fmt.Sprintf("%.2f", c.Up[i]), func(steps int) Command {
					return EditCamera("up "+axis, func(c *scene.Camera) { c.SetUpCoord(i, c.Up[i]+0.05*float32(steps)) })
				})
			}
		})
	})
}

func (p *Panel) buildLights(b *rowBuilder, s *scene.State) {
	b.folder("lights", p.folders["lights"], func() {
		b.button("lights.add", "Add Light", func() Command { return NewAddLightCommand(scene.NewLightPosition) })
		b.button("lights.remove", "Remove Light", func() Command { return NewRemoveLightCommand() })
		b.button("lights.egg", "Easter Egg", func() Command { return NewEasterEggCommand() })
		for _, l := range s.Lights {
			p.buildLight(b, l)
		}
	})
}

func (p *Panel) buildLight(b *rowBuilder, l *scene.Light) {
	id := l.ID
	key := fmt.Sprintf("light.%d", id)
	edit := func(desc string, fn func(*scene.Light)) Command { return EditLight(id, desc, fn) }

	b.folder(key, p.lights[id], func() {
		for i, axis := range axes {
			b.number(key+"."+axis, axis, fmt.Sprintf("%.2f", l.Position[i]), func(steps int) Command {
				return edit(axis, func(l *scene.Light) { l.SetCoord(i, l.Position[i]+0.05*float32(steps)) })
			})
		}
		b.rgb(key+".ambient", "Ambient", l.Ambient, func(ch, steps int) Command {
			return edit("Ambient", func(l *scene.Light) { l.Ambient = l.Ambient.Add(ch, steps) })
		})
		b.rgb(key+".diffuse", "Diffuse", l.Diffuse, func(ch, steps int) Command {
			return edit("Diffuse", func(l *scene.Light) { l.Diffuse = l.Diffuse.Add(ch, steps) })
		})
		b.rgb(key+".specular", "Specular", l.Specular, func(ch, steps int) Command {
			return edit("Specular", func(l *scene.Light) { l.Specular = l.Specular.Add(ch, steps) })
		})
		b.toggle(key+".directional", "Directional", l.Directional, func() Command {
			return edit("Directional", func(l *scene.Light) { l.Directional = !l.Directional })
		})
		b.toggle(key+".active", "Active", l.Active, func() Command {
			return edit("Active", func(l *scene.Light) { l.Active = !l.Active })
		})
		b.toggle(key+".rotating", "Rotation", l.Rotating, func() Command {
			return edit("Rotation", func(l *scene.Light) { l.Rotating = !l.Rotating })
		})
		b.choice(key+".axis", "Direction", l.Axis.String(), func(steps int) Command {
			return edit("Direction", func(l *scene.Light) { l.Axis = l.Axis.Next(steps) })
		})
		b.number(key+".speed", "Speed", fmt.Sprintf("%.0f", l.Speed), func(steps int) Command {
			return edit("Speed", func(l *scene.Light) { l.SetSpeed(l.Speed + float32(steps)) })
		})
	})
}

func (p *Panel) buildObject(b *rowBuilder, s *scene.State) {
	m := s.Material
	b.folder("object", p.folders["object"], func() {
		b.choice("object.kind", "Object", m.Object.String(), func(steps int) Command {
			return EditMaterial("Object", func(m *scene.Material) { m.Object = m.Object.Next(steps) })
		})
		b.folder("object.material", p.folders["material"], func() {
			b.rgb("material.ka", "Ka", m.Ka, func(ch, steps int) Command {
				return EditMaterial("Ka", func(m *scene.Material) { m.Ka = m.Ka.Add(ch, steps) })
			})
			b.rgb("material.kd", "Kd", m.Kd, func(ch, steps int) Command {
				return EditMaterial("Kd", func(m *scene.Material) { m.Kd = m.Kd.Add(ch, steps) })
			})
			b.rgb("material.ks", "Ks", m.Ks, func(ch, steps int) Command {
				return EditMaterial("Ks", func(m *scene.Material) { m.Ks = m.Ks.Add(ch, steps) })
			})
			b.number("material.shininess", "Shininess", fmt.Sprintf("%.0f", m.Shininess), func(steps int) Command {
				return EditMaterial("Shininess", func(m *scene.Material) { m.SetShininess(m.Shininess + float32(steps)) })
			})
		})
	})
}

func (p *Panel) buildPreset(b *rowBuilder) {
	b.folder("preset", p.folders["preset"], func() {
		b.info("preset.path", "File", p.PresetPath)
		b.button("preset.save", "Save (F5)", p.savePreset)
		b.button("preset.load", "Load (F9)", p.loadPreset)
	})
}

func (p *Panel) savePreset() Command { return SavePresetCommand{Path: p.PresetPath} }

func (p *Panel) loadPreset() Command { return &LoadPresetCommand{Path: p.PresetPath} }

// HandleKey maps a key press to panel navigation or a posted command and
// reports whether the key was used.
func (p *Panel) HandleKey(key int, mods core.Modifiers) bool {
	if mods.Control {
		switch key {
		case core.KeyZ:
			if mods.Shift {
				p.queue.Post(RedoCommand{History: p.history})
			} else {
				p.queue.Post(UndoCommand{History: p.history})
			}
			return true
		case core.KeyY:
			p.queue.Post(RedoCommand{History: p.history})
			return true
		}
		return false
	}

	switch key {
	case core.KeyH:
		p.Hidden = !p.Hidden
		return true
	case core.KeyA:
		p.queue.Post(NewAddLightCommand(scene.NewLightPosition))
		return true
	case core.KeyR:
		p.queue.Post(NewRemoveLightCommand())
		return true
	case core.KeyE:
		p.queue.Post(NewEasterEggCommand())
		return true
	case core.Key1, core.Key2, core.Key3, core.Key4, core.Key5:
		kind := scene.ObjectKinds[key-core.Key1]
		p.queue.Post(EditMaterial("Object", func(m *scene.Material) { m.Object = kind }))
		return true
	case core.KeyF5:
		if p.PresetPath == "" {
			return false
		}
		p.queue.Post(p.savePreset())
		return true
	case core.KeyF9:
		if p.PresetPath == "" {
			return false
		}
		p.queue.Post(p.loadPreset())
		return true
	}

	if p.Hidden || len(p.rows) == 0 {
		return false
	}
	step := 1
	if mods.Shift {
		step = 10
	}
	switch key {
	case core.KeyUp:
		p.move(-1)
	case core.KeyDown:
		p.move(1)
	case core.KeyPageUp:
		p.move(-10)
	case core.KeyPageDown:
		p.move(10)
	case core.KeyTab:
		p.nextFolder(mods.Shift)
	case core.KeyLeft:
		p.adjust(-step)
	case core.KeyRight:
		p.adjust(step)
	case core.KeyEnter, core.KeySpace:
		p.press()
	default:
		return false
	}
	return true
}

func (p *Panel) move(delta int) {
	n := len(p.rows)
	p.cursor = ((p.cursor+delta)%n + n) % n
}

func (p *Panel) nextFolder(backwards bool) {
	delta := 1
	if backwards {
		delta = -1
	}
	for i := 1; i < len(p.rows); i++ {
		j := ((p.cursor+delta*i)%len(p.rows) + len(p.rows)) % len(p.rows)
		if p.rows[j].Kind == RowFolder {
			p.cursor = j
			return
		}
	}
}

func (p *Panel) adjust(steps int) {
	r := p.rows[p.cursor]
	if r.Kind == RowFolder {
		// Right opens, Left closes.
		r.folder.Open = steps > 0
		return
	}
	if r.adjust != nil {
		p.queue.Post(r.adjust(steps))
	}
}

func (p *Panel) press() {
	r := p.rows[p.cursor]
	if r.Kind == RowFolder {
		r.folder.Open = !r.folder.Open
		return
	}
	if r.press != nil {
		p.queue.Post(r.press())
	}
}

// Lines renders the rows as text, marking the cursor.
func (p *Panel) Lines() []string {
	if p.Hidden {
		return []string{"[H] show panel"}
	}
	lines := make([]string, 0, len(p.rows))
	for i, r := range p.rows {
		cursor := "  "
		if i == p.cursor {
			cursor = "> "
		}
		indent := strings.Repeat("  ", r.Depth)
		var text string
		switch r.Kind {
		case RowFolder:
			mark := "+"
			if r.folder.Open {
				mark = "-"
			}
			text = fmt.Sprintf("[%s] %s", mark, r.Label)
		case RowToggle:
			mark := " "
			if r.Value == "on" {
				mark = "x"
			}
			text = fmt.Sprintf("[%s] %s", mark, r.Label)
		case RowChoice:
			text = fmt.Sprintf("%s: < %s >", r.Label, r.Value)
		case RowButton:
			text = fmt.Sprintf("( %s )", r.Label)
		default:
			text = fmt.Sprintf("%s: %s", r.Label, r.Value)
		}
		lines = append(lines, cursor+indent+text)
	}
	return lines
}
