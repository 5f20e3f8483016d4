// Package hwinput reads raw button presses from a Linux input device.
//
// Handheld firmwares often expose buttons (back, power, face buttons) only
// through evdev and not through SDL's controller layer. A Reader forwards
// them to the UI loop as virtual buttons.
package hwinput

import (
	"errors"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/constants"
)

// ErrUnsupported is returned by Start on platforms without evdev.
var ErrUnsupported = errors.New("hwinput: evdev is not supported on this platform")

// Event is a single press or release of a mapped button.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// Options configures Start.
type Options struct {
	DevicePath      string
	FlipFaceButtons bool
}
