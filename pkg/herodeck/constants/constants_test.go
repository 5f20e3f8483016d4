package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVirtualButtonNames(t *testing.T) {
	require.Equal(t, "A", VirtualButtonA.GetName())
	require.Equal(t, "Left", VirtualButtonLeft.GetName())
	require.Equal(t, "Unknown", VirtualButton(99).GetName())
}
