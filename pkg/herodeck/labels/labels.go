// Package labels provides the fixed UI strings. They live in a message file
// rather than in code so screens refer to them by ID.
package labels

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	WindowTitle          = "WindowTitle"
	ChooseHero           = "ChooseHero"
	LogoDescription      = "LogoDescription"
	CardImageDescription = "CardImageDescription"
	BackDescription      = "BackDescription"
	BrowseHelp           = "BrowseHelp"
)

//go:embed locales/active.en.toml
var localeFS embed.FS

// Labels resolves message IDs to text.
type Labels struct {
	localizer *i18n.Localizer
}

// Load reads the embedded message file.
func Load() (*Labels, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if _, err := bundle.LoadMessageFileFS(localeFS, "locales/active.en.toml"); err != nil {
		return nil, fmt.Errorf("load labels: %w", err)
	}

	return &Labels{localizer: i18n.NewLocalizer(bundle, language.English.String())}, nil
}

// Get returns the text for id, or id itself when it is unknown.
func (l *Labels) Get(id string) string {
	if l == nil {
		return id
	}
	text, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || text == "" {
		return id
	}
	return text
}
