package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"phong-viewer/core"
	"phong-viewer/editor"
	"phong-viewer/internal/opengl"
	sceneio "phong-viewer/io"
	"phong-viewer/renderer"
	"phong-viewer/scene"
)

// fixedStep is the light-rotation time step per frame unless -measured-dt is set.
const fixedStep = 1.0 / 60

type options struct {
	width, height int
	vsync         bool
	preset        string
	savePreset    string
	measuredDT    bool
	wheelStep     float64
	logLevel      string
}

func parseFlags() options {
	var o options
	flag.IntVar(&o.width, "width", 1280, "window width in pixels")
	flag.IntVar(&o.height, "height", 720, "window height in pixels")
	flag.BoolVar(&o.vsync, "vsync", true, "synchronize buffer swaps with the display")
	flag.StringVar(&o.preset, "preset", "", "YAML scene preset to load at startup")
	flag.StringVar(&o.savePreset, "save-preset", "", "file written by F5 and read by F9 (defaults to -preset)")
	flag.BoolVar(&o.measuredDT, "measured-dt", false, "advance rotating lights by wall-clock time instead of a fixed 1/60 s")
	flag.Float64Var(&o.wheelStep, "wheel-step", editor.DefaultWheelStep, "wheel delta for one scroll notch")
	flag.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn or error")
	flag.Parse()
	return o
}

func main() {
	o := parseFlags()

	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level: %v\n", err)
		os.Exit(2)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(o); err != nil {
		slog.Error("viewer stopped", "err", err)
		os.Exit(1)
	}
}

func run(o options) error {
	s, err := initialState(o.preset)
	if err != nil {
		return err
	}

	windowConfig := core.DefaultWindowConfig()
	windowConfig.Width = o.width
	windowConfig.Height = o.height
	windowConfig.VSync = o.vsync

	window, err := core.NewWindow(windowConfig)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	slog.Info("window created", "width", window.Width, "height", window.Height)

	device, err := opengl.NewDevice(window.Width, window.Height)
	if err != nil {
		return fmt.Errorf("create device: %w", err)
	}
	defer device.Destroy()

	r := renderer.NewRenderer(device)
	r.Resize(s, window.Width, window.Height)

	presetPath := o.savePreset
	if presetPath == "" {
		presetPath = o.preset
	}
	cfg := editor.DefaultConfig()
	cfg.WheelStep = o.wheelStep
	cfg.PresetPath = presetPath
	ed := editor.NewEditor(cfg)
	ed.Viewport = device.SetViewport
	ed.Quit = func() { window.SetShouldClose(true) }
	ed.Attach(window)

	lastTime := window.Time()
	for !window.ShouldClose() {
		window.PollEvents()
		ed.Update(s)

		now := window.Time()
		step := fixedStep
		if o.measuredDT {
			step = now - lastTime
		}
		lastTime = now

		if err := r.Render(s, step); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		drawOverlay(r, ed.Overlay(s))
		r.Present()
		window.SwapBuffers()
	}

	draws, lights := r.DrawStats()
	slog.Info("exiting", "draws", draws, "lights", lights)
	return nil
}

// initialState is the startup scene, or the preset at path when one is given.
func initialState(path string) (*scene.State, error) {
	s := scene.NewDefaultState()
	if path == "" {
		return s, nil
	}
	p, err := sceneio.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load preset: %w", err)
	}
	if err := p.Apply(s); err != nil {
		return nil, fmt.Errorf("apply preset %s: %w", path, err)
	}
	slog.Info("preset loaded", "path", path, "name", p.Name, "lights", len(s.Lights))
	return s, nil
}

const (
	overlayX     = 10
	overlayY     = 10
	overlayScale = 1
)

func drawOverlay(r *renderer.Renderer, lines []editor.OverlayLine) {
	y := overlayY
	for _, line := range lines {
		r.DrawText(line.Text, overlayX, y, overlayScale, line.Color)
		y += opengl.LineHeight() * overlayScale
	}
}
