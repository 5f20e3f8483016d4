package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Window size used in dev mode when the config leaves it unset; the
// portrait canvas the screens were drawn for.
const (
	devWindowWidth  = 412
	devWindowHeight = 915
)

// Window wraps SDL window and renderer with additional state for the UI framework.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	width           int32
	height          int32
	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(title string, width, height int32, winOpts WindowOptions, devMode bool) (*Window, error) {
	x, y := int32(0), int32(0)

	if devMode {
		winOpts.Borderless = false
		winOpts.Fullscreen = false

		x, y = int32(50), int32(50)
		if width == 0 {
			width = devWindowWidth
		}
		if height == 0 {
			height = devWindowHeight
		}
	}

	if width == 0 || height == 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			return nil, fmt.Errorf("get display mode: %w", err)
		}
		if width == 0 {
			width = displayMode.W
		}
		if height == 0 {
			height = displayMode.H
		}
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			window.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		width:    width,
		height:   height,
		hasVSync: vsync,
	}, nil
}

func (window *Window) closeWindow() {
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// GetWidth returns the logical width screens lay out against.
func (window *Window) GetWidth() int32 {
	return window.width
}

// GetHeight returns the logical height screens lay out against.
func (window *Window) GetHeight() int32 {
	return window.height
}

// Clear fills the frame with c.
func (window *Window) Clear(c sdl.Color) {
	window.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	window.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
