package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/layout"
)

var window *Window

// Config carries what Init needs from the application config.
type Config struct {
	Title           string
	Width           int32
	Height          int32
	WindowOptions   WindowOptions
	DevMode         bool
	FlipFaceButtons bool
}

// Init brings up SDL, the window, fonts and input. On error everything that
// was already initialized is torn down again.
func Init(cfg Config) (err error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer func() {
		if err != nil {
			ttf.Quit()
			sdl.Quit()
		}
	}()

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	InitInputProcessor(cfg.FlipFaceButtons)

	window, err = initWindow(cfg.Title, cfg.Width, cfg.Height, cfg.WindowOptions, cfg.DevMode)
	if err != nil {
		CloseAllControllers()
		return err
	}

	fontPath, err := ResolveFontPath(GetTheme().FontPath)
	if err != nil {
		window.closeWindow()
		CloseAllControllers()
		return err
	}

	sizes := layout.FontSizesFor(int(window.GetWidth()), int(window.GetHeight()))
	if err := initFonts(fontPath, sizes); err != nil {
		window.closeWindow()
		CloseAllControllers()
		return err
	}

	return nil
}

func SDLCleanup() {
	if window != nil {
		window.closeWindow()
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
