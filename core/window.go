package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	onResize func(width, height int)
}

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1280,
		Height:    720,
		Title:     "Phong Viewer",
		Resizable: true,
		VSync:     true,
	}
}

// NewWindow creates a window with a current OpenGL 4.1 core context.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	glfw.SwapInterval(boolToInt(config.VSync))

	// Framebuffer size differs from window size on HiDPI displays.
	fbw, fbh := handle.GetFramebufferSize()
	window := &Window{
		Handle: handle,
		Width:  fbw,
		Height: fbh,
		Title:  config.Title,
	}

	handle.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
		if window.onResize != nil {
			window.onResize(width, height)
		}
	})

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.Handle.SetShouldClose(v)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

// Time returns seconds since GLFW was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// ResizeCallback receives the new framebuffer size in pixels.
type ResizeCallback func(width, height int)

func (w *Window) SetResizeCallback(cb ResizeCallback) {
	w.onResize = cb
}

// MouseButtonCallback receives a button transition and the cursor position at that moment.
type MouseButtonCallback func(button int, pressed bool, x, y float64)

func (w *Window) SetMouseButtonCallback(cb MouseButtonCallback) {
	w.Handle.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		x, y := win.GetCursorPos()
		cb(int(button), action == glfw.Press, x, y)
	})
}

// CursorCallback receives the cursor position in window coordinates.
type CursorCallback func(x, y float64)

func (w *Window) SetCursorCallback(cb CursorCallback) {
	w.Handle.SetCursorPosCallback(func(win *glfw.Window, x, y float64) {
		cb(x, y)
	})
}

// ScrollCallback is the type for scroll event handlers
type ScrollCallback func(xoff, yoff float64)

func (w *Window) SetScrollCallback(cb ScrollCallback) {
	w.Handle.SetScrollCallback(func(win *glfw.Window, xoff, yoff float64) {
		cb(xoff, yoff)
	})
}

// Modifiers is the set of modifier keys held during a key event.
type Modifiers struct {
	Shift   bool
	Control bool
}

// KeyCallback receives key presses and repeats; releases are not reported.
type KeyCallback func(key int, mods Modifiers)

func (w *Window) SetKeyCallback(cb KeyCallback) {
	w.Handle.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		cb(int(key), Modifiers{
			Shift:   mods&glfw.ModShift != 0,
			Control: mods&glfw.ModControl != 0,
		})
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

const (
	MouseLeft  = int(glfw.MouseButtonLeft)
	MouseRight = int(glfw.MouseButtonRight)
)

const (
	Key1        = int(glfw.Key1)
	Key2        = int(glfw.Key2)
	Key3        = int(glfw.Key3)
	Key4        = int(glfw.Key4)
	Key5        = int(glfw.Key5)
	KeyA        = int(glfw.KeyA)
	KeyE        = int(glfw.KeyE)
	KeyH        = int(glfw.KeyH)
	KeyR        = int(glfw.KeyR)
	KeyY        = int(glfw.KeyY)
	KeyZ        = int(glfw.KeyZ)
	KeyEscape   = int(glfw.KeyEscape)
	KeyEnter    = int(glfw.KeyEnter)
	KeySpace    = int(glfw.KeySpace)
	KeyTab      = int(glfw.KeyTab)
	KeyRight    = int(glfw.KeyRight)
	KeyLeft     = int(glfw.KeyLeft)
	KeyDown     = int(glfw.KeyDown)
	KeyUp       = int(glfw.KeyUp)
	KeyPageUp   = int(glfw.KeyPageUp)
	KeyPageDown = int(glfw.KeyPageDown)
	KeyF5       = int(glfw.KeyF5)
	KeyF9       = int(glfw.KeyF9)
)
