package imageloader

import "time"

// DefaultFade is the crossfade duration for freshly loaded images.
const DefaultFade = 300 * time.Millisecond

// FadeAlpha returns the opacity of an image that arrived elapsed ago and
// fades in over d.
func FadeAlpha(elapsed, d time.Duration) uint8 {
	if d <= 0 || elapsed >= d {
		return 255
	}
	if elapsed <= 0 {
		return 0
	}
	return uint8(255 * elapsed / d)
}
