// Package herodeck is a small hero browser for desktop and Linux handhelds:
// a carousel of heroes and a full-screen detail view, drawn with SDL2.
//
// Init must be called on the main OS thread before any screen is shown, and
// Close before exit.
package herodeck

import (
	"log/slog"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/config"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/internal"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/platform/cannoli"
)

// Options configures SDL and the look of the screens.
type Options struct {
	WindowTitle     string                 // Window title displayed in windowed mode
	Width           int32                  // Window width, 0 for the display width
	Height          int32                  // Window height, 0 for the display height
	WindowOptions   internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	IsCannoli       bool                   // Use the Cannoli CFW palette and font
	FontPath        string                 // TTF font; empty searches the system
	LogPath         string                 // Full path for the rotated log file, empty for stdout only
	LogLevel        string                 // Application log level (debug, info, warn, error)
	FlipFaceButtons bool                   // Use direct face button mapping (A=A, B=B) instead of Nintendo-style swap
	DevMode         bool                   // Windowed at a fixed size with verbose internal logs
}

// OptionsFromConfig maps the loaded config onto Options. title is used when
// the config does not name the window.
func OptionsFromConfig(cfg config.Config, title string) Options {
	if cfg.Window.Title != "" {
		title = cfg.Window.Title
	}
	return Options{
		WindowTitle: title,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		WindowOptions: internal.WindowOptions{
			Borderless: cfg.Window.Borderless,
			Fullscreen: cfg.Window.Fullscreen,
			Resizable:  !cfg.Window.Fullscreen,
		},
		IsCannoli:       cfg.Theme.Platform == config.PlatformCannoli,
		FontPath:        cfg.Theme.FontPath,
		LogPath:         cfg.Log.Path,
		LogLevel:        cfg.Log.Level,
		FlipFaceButtons: cfg.Input.FlipFaceButtons,
		DevMode:         cfg.DevMode(),
	}
}

// Init sets up logging and theming, then SDL, the window and fonts.
// Failures are returned as *InfrastructureError.
func Init(options Options) error {
	internal.SetLogPath(options.LogPath)

	if options.DevMode {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
	internal.SetRawLogLevel(options.LogLevel)

	if options.IsCannoli {
		internal.SetTheme(cannoli.InitCannoliTheme(options.FontPath))
	} else {
		internal.SetTheme(internal.DefaultTheme(options.FontPath))
	}

	err := internal.Init(internal.Config{
		Title:           options.WindowTitle,
		Width:           options.Width,
		Height:          options.Height,
		WindowOptions:   options.WindowOptions,
		DevMode:         options.DevMode,
		FlipFaceButtons: options.FlipFaceButtons,
	})
	if err != nil {
		return NewInfrastructureError("init", err)
	}

	GetLogger().Debug("Initialized", "title", options.WindowTitle, "cannoli", options.IsCannoli, "dev", options.DevMode)
	return nil
}

// Close releases all SDL resources and closes the log file.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
