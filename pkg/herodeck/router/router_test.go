package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/catalog"
)

func TestRunWithoutTransition(t *testing.T) {
	r := New(NewController(catalog.Default()))
	require.ErrorIs(t, r.Run(context.Background(), nil), ErrNoTransition)
}

func TestRunUnregisteredScreen(t *testing.T) {
	r := New(NewController(catalog.Default()))
	r.OnTransition(func(Route, any, *Controller, *Stack) (any, bool) { return nil, true })

	err := r.Run(context.Background(), nil)
	require.ErrorContains(t, err, "screen browse not registered")
}

func TestRunPropagatesScreenError(t *testing.T) {
	boom := errors.New("boom")
	r := New(NewController(catalog.Default()))
	r.Register(KindBrowse, func(context.Context, Route, any) (any, error) { return nil, boom })
	r.OnTransition(func(Route, any, *Controller, *Stack) (any, bool) { return nil, true })

	err := r.Run(context.Background(), nil)
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "MainScreen")
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	r := New(NewController(catalog.Default()))
	r.Register(KindBrowse, func(context.Context, Route, any) (any, error) {
		calls++
		cancel()
		return nil, nil
	})
	r.OnTransition(func(Route, any, *Controller, *Stack) (any, bool) { return nil, false })

	require.ErrorIs(t, r.Run(ctx, nil), context.Canceled)
	require.Equal(t, 1, calls)
}

func TestRunDispatchesOnRouteKind(t *testing.T) {
	nav := NewController(catalog.Default())
	r := New(nav)

	var visited []string
	r.Register(KindBrowse, func(_ context.Context, route Route, input any) (any, error) {
		visited = append(visited, route.String())
		return input, nil
	})
	r.Register(KindDetail, func(_ context.Context, route Route, _ any) (any, error) {
		visited = append(visited, route.String())
		return nil, nil
	})

	r.OnTransition(func(from Route, result any, nav *Controller, stack *Stack) (any, bool) {
		if from.Kind() == KindDetail {
			nav.GoBack()
			entry := stack.Pop()
			require.NotNil(t, entry)
			require.Equal(t, Browse(), entry.Route)
			return "second", false
		}
		if result == "second" {
			return nil, true
		}
		require.NoError(t, nav.SelectHero(2))
		stack.Push(from, nil)
		return nil, false
	})

	require.NoError(t, r.Run(context.Background(), "first"))
	require.Equal(t, []string{"MainScreen", "HeroScreen_2", "MainScreen"}, visited)
	require.True(t, r.Stack().IsEmpty())
	require.Equal(t, Browse(), r.Controller().Current())
}

func TestStack(t *testing.T) {
	s := NewStack()
	require.True(t, s.IsEmpty())
	require.Nil(t, s.Pop())
	require.Nil(t, s.Peek())

	s.Push(Browse(), 42)
	require.Equal(t, 1, s.Len())
	require.Equal(t, 42, s.Peek().Resume)

	entry := s.Pop()
	require.NotNil(t, entry)
	require.Equal(t, Browse(), entry.Route)
	require.Equal(t, 42, entry.Resume)
	require.True(t, s.IsEmpty())

	s.Push(Browse(), nil)
	s.Clear()
	require.Equal(t, 0, s.Len())
}
