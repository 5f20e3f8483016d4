package labels_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/labels"
)

func TestLoadEmbeddedLabels(t *testing.T) {
	l, err := labels.Load()
	require.NoError(t, err)

	require.Equal(t, "Choose your Hero", l.Get(labels.ChooseHero))
	require.Equal(t, "Heroes", l.Get(labels.WindowTitle))
	require.Equal(t, "Arrow", l.Get(labels.BackDescription))
	require.Equal(t, "Logo", l.Get(labels.LogoDescription))
	require.Equal(t, "Image", l.Get(labels.CardImageDescription))
	require.NotEmpty(t, l.Get(labels.BrowseHelp))
}

func TestUnknownIDFallsBack(t *testing.T) {
	l, err := labels.Load()
	require.NoError(t, err)
	require.Equal(t, "NoSuchMessage", l.Get("NoSuchMessage"))

	var missing *labels.Labels
	require.Equal(t, labels.ChooseHero, missing.Get(labels.ChooseHero))
}
