//go:build linux

package hwinput

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/constants"
)

// Start opens the device and returns a channel of mapped events. The channel
// is closed when ctx is done or the device stops delivering events.
func Start(ctx context.Context, opts Options, logger *slog.Logger) (<-chan Event, error) {
	dev, err := evdev.Open(opts.DevicePath)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", opts.DevicePath, err)
	}

	name, _ := dev.Name()
	logger.Debug("Listening for hardware buttons", "device", opts.DevicePath, "name", name)

	events := make(chan Event, 16)

	go func() {
		<-ctx.Done()
		dev.Close()
	}()

	go func() {
		defer close(events)
		for {
			raw, err := dev.ReadOne()
			if err != nil {
				if ctx.Err() == nil {
					logger.Warn("Hardware input stopped", "device", opts.DevicePath, "error", err)
				}
				return
			}

			ev, ok := translate(raw, opts.FlipFaceButtons)
			if !ok {
				continue
			}

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}

func translate(raw *evdev.InputEvent, flip bool) (Event, bool) {
	if raw == nil || raw.Type != evdev.EV_KEY {
		return Event{}, false
	}

	// 0 release, 1 press, 2 autorepeat; held directions repeat on the UI side
	if raw.Value == 2 {
		return Event{}, false
	}

	button := buttonFor(raw.Code, flip)
	if button == constants.VirtualButtonUnassigned {
		return Event{}, false
	}

	return Event{Button: button, Pressed: raw.Value != 0}, true
}

func buttonFor(code evdev.EvCode, flip bool) constants.VirtualButton {
	switch code {
	case evdev.KEY_LEFT, evdev.BTN_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case evdev.KEY_RIGHT, evdev.BTN_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case evdev.KEY_UP, evdev.BTN_DPAD_UP:
		return constants.VirtualButtonUp
	case evdev.KEY_DOWN, evdev.BTN_DPAD_DOWN:
		return constants.VirtualButtonDown
	case evdev.KEY_ENTER:
		return constants.VirtualButtonA
	case evdev.KEY_ESC, evdev.KEY_BACK, evdev.KEY_BACKSPACE:
		return constants.VirtualButtonB
	case evdev.BTN_START:
		return constants.VirtualButtonStart
	case evdev.BTN_SELECT:
		return constants.VirtualButtonSelect
	case evdev.BTN_MODE:
		return constants.VirtualButtonMenu
	case evdev.BTN_SOUTH:
		if flip {
			return constants.VirtualButtonA
		}
		return constants.VirtualButtonB
	case evdev.BTN_EAST:
		if flip {
			return constants.VirtualButtonB
		}
		return constants.VirtualButtonA
	}
	return constants.VirtualButtonUnassigned
}
