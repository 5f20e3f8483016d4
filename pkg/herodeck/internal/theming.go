package internal

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the hero screens.
type Theme struct {
	BackgroundStops  []color.RGBA // Browse background gradient, top to bottom
	TextColor        sdl.Color    // Titles, hero names and messages
	HintColor        sdl.Color    // Help line at the bottom of Browse
	PlaceholderColor sdl.Color    // Card fill while its image is loading or failed
	FocusColor       sdl.Color    // Outline of the focused card
	FontPath         string       // Path to the primary UI font; empty means search the system
}

var currentTheme = DefaultTheme("")

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// DefaultTheme is the desktop look: black into dark gray into red.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		BackgroundStops:  []color.RGBA{HexToRGBA(0x000000), HexToRGBA(0x444444), HexToRGBA(0xFF0000)},
		TextColor:        HexToColor(0xFFFFFF),
		HintColor:        HexToColor(0xBBBBBB),
		PlaceholderColor: HexToColor(0x222222),
		FocusColor:       HexToColor(0xFFFFFF),
		FontPath:         fontPath,
	}
}

// HexToColor converts 0xRRGGBB to an opaque SDL color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// HexToRGBA converts 0xRRGGBB to an opaque color.RGBA.
func HexToRGBA(hex uint32) color.RGBA {
	c := HexToColor(hex)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
