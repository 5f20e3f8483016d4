package cannoli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitCannoliTheme(t *testing.T) {
	theme := InitCannoliTheme("")
	require.Equal(t, FontPath, theme.FontPath)
	require.Len(t, theme.BackgroundStops, 3)
	require.Equal(t, uint8(0x80), theme.BackgroundStops[2].G)

	require.Equal(t, "/tmp/x.ttf", InitCannoliTheme("/tmp/x.ttf").FontPath)
}
