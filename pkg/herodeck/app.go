package herodeck

import (
	"context"
	"errors"
	"time"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/catalog"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/flow"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/imageloader"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/internal"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/internal/hwinput"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/labels"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/router"
)

// RunOptions configures Run.
type RunOptions struct {
	Loader *imageloader.Loader
	Labels *labels.Labels
	Fade   time.Duration
	// Strict logs rejected navigation at Error with a stack trace.
	Strict bool
	// InputDevice, when set, adds the buttons of an evdev device to the
	// SDL input.
	InputDevice     string
	FlipFaceButtons bool
}

// Run shows Browse and follows the user between Browse and Detail until
// they exit or ctx is done. Init must have been called.
func Run(ctx context.Context, heroes catalog.Catalog, options RunOptions) error {
	logger := GetLogger()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if options.Loader == nil {
		options.Loader = imageloader.New(imageloader.WithLogger(internal.GetInternalLogger()))
	}

	if options.InputDevice != "" {
		hw := hwinput.Options{DevicePath: options.InputDevice, FlipFaceButtons: options.FlipFaceButtons}
		events, err := hwinput.Start(ctx, hw, internal.GetInternalLogger())
		if err != nil {
			logger.Warn("Hardware buttons unavailable", "device", options.InputDevice, "error", err)
		} else {
			internal.GetInputProcessor().AttachHardware(events)
		}
	}

	nav := router.NewController(heroes)
	nav.Observe(func(from, to router.Route) {
		logger.Info("Navigated", "from", from.String(), "to", to.String())
	})

	screenOptions := ScreenOptions{
		Loader: options.Loader,
		Labels: options.Labels,
		Fade:   options.Fade,
	}
	screens := flow.Screens{
		Browse: func(ctx context.Context, in flow.BrowseInput) (flow.BrowseResult, error) {
			return BrowseScreen(ctx, heroes, in, screenOptions)
		},
		Detail: func(ctx context.Context, _ int, hero catalog.Hero, in flow.DetailInput) (flow.DetailResult, error) {
			return DetailScreen(ctx, hero, in, screenOptions)
		},
	}

	logger.Info("Starting", "heroes", heroes.Len(), "route", nav.Current().String())

	err := flow.NewRouter(heroes, nav, screens, logger, options.Strict).Run(ctx, flow.BrowseInput{})

	stats := options.Loader.Stats()
	logger.Debug("Image loader stats",
		"fetched", stats.Fetched,
		"discarded", stats.Discarded,
		"in_flight", stats.InFlight,
		"cached", stats.Cached)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
