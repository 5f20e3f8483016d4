package herodeck

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/catalog"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/router"
)

func TestInfrastructureError(t *testing.T) {
	cause := errors.New("no renderer")
	err := fmt.Errorf("run: %w", NewInfrastructureError("init", cause))

	require.True(t, IsInfrastructureError(err))
	require.ErrorIs(t, err, cause)
	require.EqualError(t, err, "run: herodeck: init: no renderer")
	require.Equal(t, "herodeck: detail", (&InfrastructureError{Op: "detail"}).Error())
	require.False(t, IsInfrastructureError(cause))
}

func TestIsInvalidIndex(t *testing.T) {
	nav := router.NewController(catalog.Default())
	err := nav.SelectHero(7)
	require.True(t, IsInvalidIndex(err))

	_, err = catalog.Default().Get(-1)
	require.True(t, IsInvalidIndex(err))

	require.False(t, IsInvalidIndex(errors.New("other")))
}
