// Package config loads herodeck settings from an optional TOML file and
// environment variables, in that order, on top of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/constants"
)

// Platform names accepted in [theme].platform.
const (
	PlatformDesktop = ""
	PlatformCannoli = "cannoli"
)

// Config is the complete application configuration.
type Config struct {
	Environment string       `toml:"environment" env:"ENVIRONMENT"`
	Window      WindowConfig `toml:"window"`
	Log         LogConfig    `toml:"log"`
	Theme       ThemeConfig  `toml:"theme"`
	Images      ImageConfig  `toml:"images"`
	Input       InputConfig  `toml:"input"`
}

// WindowConfig sizes the SDL window. Zero width or height means "use the
// display size" outside dev mode.
type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int32  `toml:"width" env:"WINDOW_WIDTH"`
	Height     int32  `toml:"height" env:"WINDOW_HEIGHT"`
	Fullscreen bool   `toml:"fullscreen"`
	Borderless bool   `toml:"borderless"`
}

type LogConfig struct {
	Path  string `toml:"path" env:"LOG_PATH"`
	Level string `toml:"level" env:"LOG_LEVEL"`
}

type ThemeConfig struct {
	FontPath string `toml:"font_path" env:"FONT_PATH"`
	Platform string `toml:"platform" env:"PLATFORM"`
}

type ImageConfig struct {
	CacheSize int    `toml:"cache_size"`
	UserAgent string `toml:"user_agent"`
	FadeMS    int    `toml:"fade_ms"`
	MaxBytes  int64  `toml:"max_bytes"`
}

// InputConfig covers raw hardware buttons read through evdev.
type InputConfig struct {
	Device          string `toml:"device" env:"INPUT_DEVICE"`
	FlipFaceButtons bool   `toml:"flip_face_buttons" env:"FLIP_FACE_BUTTONS"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Path:  "logs/herodeck.log",
			Level: "info",
		},
		Images: ImageConfig{
			CacheSize: 8,
			UserAgent: "herodeck/1.0",
			FadeMS:    300,
			MaxBytes:  16 << 20,
		},
	}
}

// ResolvePath picks the config file: HERODECK_CONFIG if set, otherwise
// herodeck.toml in the working directory if it exists, otherwise none.
func ResolvePath() string {
	if p := os.Getenv(constants.ConfigPathEnvVar); p != "" {
		return p
	}
	if _, err := os.Stat(constants.DefaultConfigPath); err == nil {
		return constants.DefaultConfigPath
	}
	return ""
}

// Load applies the file at path (if any) and then the environment to the
// defaults, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Theme.Platform = strings.ToLower(strings.TrimSpace(cfg.Theme.Platform))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	switch c.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}

	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window: negative size %dx%d", c.Window.Width, c.Window.Height))
	}

	switch c.Theme.Platform {
	case PlatformDesktop, PlatformCannoli:
	default:
		errs = append(errs, fmt.Errorf("theme.platform: unknown platform %q", c.Theme.Platform))
	}

	if c.Images.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("images.cache_size: must not be negative"))
	}
	if c.Images.FadeMS < 0 {
		errs = append(errs, fmt.Errorf("images.fade_ms: must not be negative"))
	}
	if c.Images.MaxBytes < 0 {
		errs = append(errs, fmt.Errorf("images.max_bytes: must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// DevMode reports whether the environment is the development one.
func (c Config) DevMode() bool {
	return c.Environment == constants.Development
}
