package internal

import (
	"time"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/constants"
)

// Direction is a horizontal step through the carousel.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// DirectionalInput tracks held left/right buttons and handles repeat timing,
// so holding a direction keeps stepping through cards.
type DirectionalInput struct {
	left, right    bool
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput creates a DirectionalInput with default timing.
// Default delay is 300ms before first repeat, then 150ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 150*time.Millisecond)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
	}
}

// SetHeld updates the held state for a direction based on a virtual button.
// Returns true if the button was a horizontal direction.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool, now time.Time) bool {
	switch button {
	case constants.VirtualButtonLeft:
		d.left = held
	case constants.VirtualButtonRight:
		d.right = held
	default:
		return false
	}
	if held {
		d.lastRepeatTime = now
	}
	d.hasRepeated = false
	return true
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.left || d.right
}

// HeldDirection returns the held direction, left winning a tie.
func (d *DirectionalInput) HeldDirection() Direction {
	if d.left {
		return DirectionLeft
	}
	if d.right {
		return DirectionRight
	}
	return DirectionNone
}

// Update reports the direction to repeat at now, or DirectionNone.
// The first repeat occurs after repeatDelay, subsequent repeats after repeatInterval.
func (d *DirectionalInput) Update(now time.Time) Direction {
	if !d.IsHeld() {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.left = false
	d.right = false
	d.hasRepeated = false
	d.lastRepeatTime = time.Now()
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
