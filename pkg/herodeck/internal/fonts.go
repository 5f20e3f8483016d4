package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/layout"
)

// ErrFontNotFound is returned when no configured or system font exists.
var ErrFontNotFound = errors.New("no usable font found")

// systemFontPaths are tried in order when no font is configured.
var systemFontPaths = []string{
	"/mnt/SDCARD/System/fonts/Cannoli.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/dejavu-sans-fonts/DejaVuSans-Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	`C:\Windows\Fonts\arialbd.ttf`,
}

type fontsManager struct {
	Title      *ttf.Font
	CardName   *ttf.Font
	DetailName *ttf.Font
	DetailBody *ttf.Font
	Hint       *ttf.Font
}

var Fonts fontsManager

// ResolveFontPath returns configured if it names a file, otherwise the
// first system font that exists.
func ResolveFontPath(configured string) (string, error) {
	return resolveFontPath(configured, systemFontPaths)
}

func resolveFontPath(configured string, candidates []string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err != nil {
			return "", fmt.Errorf("font %s: %w", configured, ErrFontNotFound)
		}
		return configured, nil
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", ErrFontNotFound
}

func initFonts(path string, sizes layout.FontSizes) error {
	open := func(size int) (*ttf.Font, error) {
		font, err := ttf.OpenFont(path, size)
		if err != nil {
			return nil, fmt.Errorf("open font %s at %d: %w", path, size, err)
		}
		return font, nil
	}

	var err error
	if Fonts.Title, err = open(sizes.Title); err != nil {
		closeFonts()
		return err
	}
	if Fonts.CardName, err = open(sizes.CardName); err != nil {
		closeFonts()
		return err
	}
	if Fonts.DetailName, err = open(sizes.DetailName); err != nil {
		closeFonts()
		return err
	}
	if Fonts.DetailBody, err = open(sizes.DetailBody); err != nil {
		closeFonts()
		return err
	}
	if Fonts.Hint, err = open(max(8, sizes.DetailBody/2)); err != nil {
		closeFonts()
		return err
	}

	GetInternalLogger().Debug("Fonts loaded", "path", path, "title", sizes.Title, "card", sizes.CardName)
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.Title, Fonts.CardName, Fonts.DetailName, Fonts.DetailBody, Fonts.Hint} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = fontsManager{}
}
