// Package constants defines shared constants and types used throughout
// herodeck.
package constants

import "time"

// Development is the ENVIRONMENT value for development mode.
const Development = "DEV"

// ConfigPathEnvVar names the TOML file to load. The remaining environment
// variables are declared on config.Config.
const ConfigPathEnvVar = "HERODECK_CONFIG"

// DefaultConfigPath is read when HERODECK_CONFIG is unset and the file exists.
const DefaultConfigPath = "herodeck.toml"

// VirtualButton is an abstract input button, mapped from keyboards,
// controllers and raw evdev devices alike.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

// GetName returns the button's name for logs.
func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing constants.
const (
	DefaultInputDelay = 20 * time.Millisecond // Debounce delay between input events
	FrameInterval     = 16 * time.Millisecond // Target frame time when waiting on events
	TapSlop           = 12                    // Pointer travel in pixels still treated as a tap
)
