// Command herodeck browses a small deck of heroes.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/catalog"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/config"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/imageloader"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/labels"
)

// SDL must be driven from the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	path := config.ResolvePath()
	cfg, err := config.Load(path)
	if err != nil {
		slog.Error("Failed to load config", "path", path, "error", err)
		return 2
	}

	text, err := labels.Load()
	if err != nil {
		slog.Error("Failed to load labels", "error", err)
		return 1
	}

	if err := herodeck.Init(herodeck.OptionsFromConfig(cfg, text.Get(labels.WindowTitle))); err != nil {
		slog.Error("Failed to initialize", "error", err)
		return 1
	}
	defer herodeck.Close()

	logger := herodeck.GetLogger()
	if path != "" {
		logger.Debug("Config loaded", "path", path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loaderOpts := []imageloader.Option{
		imageloader.WithLogger(logger),
		imageloader.WithCacheSize(cfg.Images.CacheSize),
		imageloader.WithUserAgent(cfg.Images.UserAgent),
	}
	if cfg.Images.MaxBytes > 0 {
		loaderOpts = append(loaderOpts, imageloader.WithMaxBytes(cfg.Images.MaxBytes))
	}

	err = herodeck.Run(ctx, catalog.Default(), herodeck.RunOptions{
		Loader:          imageloader.New(loaderOpts...),
		Labels:          text,
		Fade:            time.Duration(cfg.Images.FadeMS) * time.Millisecond,
		Strict:          cfg.DevMode(),
		InputDevice:     cfg.Input.Device,
		FlipFaceButtons: cfg.Input.FlipFaceButtons,
	})
	if err != nil {
		logger.Error("Exited with error", "error", err, "infrastructure", herodeck.IsInfrastructureError(err))
		return 1
	}

	logger.Info("Goodbye")
	return 0
}
