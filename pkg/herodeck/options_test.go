package herodeck

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/config"
)

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Environment = "DEV"
	cfg.Window.Width = 540
	cfg.Window.Fullscreen = true
	cfg.Theme.Platform = config.PlatformCannoli
	cfg.Input.FlipFaceButtons = true

	opts := OptionsFromConfig(cfg, "Heroes")
	require.Equal(t, "Heroes", opts.WindowTitle)
	require.Equal(t, int32(540), opts.Width)
	require.True(t, opts.WindowOptions.Fullscreen)
	require.False(t, opts.WindowOptions.Resizable)
	require.True(t, opts.IsCannoli)
	require.True(t, opts.FlipFaceButtons)
	require.True(t, opts.DevMode)
	require.Equal(t, "info", opts.LogLevel)

	cfg.Window.Title = "Marvel"
	require.Equal(t, "Marvel", OptionsFromConfig(cfg, "Heroes").WindowTitle)
}
