// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"image/color"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/internal"
)

// FontPath is where Cannoli keeps its system font.
const FontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a theme with Cannoli's teal palette and the
// specified font. An empty fontPath uses the firmware font.
func InitCannoliTheme(fontPath string) internal.Theme {
	if fontPath == "" {
		fontPath = FontPath
	}
	return internal.Theme{
		BackgroundStops: []color.RGBA{
			internal.HexToRGBA(0x000000),
			internal.HexToRGBA(0x003C3C),
			internal.HexToRGBA(0x008080),
		},
		TextColor:        internal.HexToColor(0xFFFFFF),
		HintColor:        internal.HexToColor(0xCCE6E6),
		PlaceholderColor: internal.HexToColor(0x0B2626),
		FocusColor:       internal.HexToColor(0x00B3B3),
		FontPath:         fontPath,
	}
}
