package router

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/catalog"
)

type transition struct {
	from, to Route
}

func recordTransitions(c *Controller) *[]transition {
	var seen []transition
	c.Observe(func(from, to Route) {
		seen = append(seen, transition{from, to})
	})
	return &seen
}

func TestControllerStartsBrowsing(t *testing.T) {
	c := NewController(catalog.Default())
	require.Equal(t, Browse(), c.Current())
	require.Equal(t, KindBrowse, c.Current().Kind())

	_, ok := c.Current().Index()
	require.False(t, ok)
}

func TestBrowseIsTheZeroRoute(t *testing.T) {
	require.Equal(t, Route{}, Browse())

	r := Browse()
	r.index = 2
	require.NotEqual(t, r, Browse())
	require.Equal(t, Route{}, Browse())
}

func TestSelectHeroValidIndices(t *testing.T) {
	heroes := catalog.Default()

	for i := 0; i < heroes.Len(); i++ {
		c := NewController(heroes)
		require.NoError(t, c.SelectHero(i))

		got, ok := c.Current().Index()
		require.True(t, ok)
		require.Equal(t, i, got)
		require.Equal(t, detail(i), c.Current())
	}
}

func TestSelectHeroOutOfRangeStaysBrowsing(t *testing.T) {
	heroes := catalog.Default()

	for _, i := range []int{-1, heroes.Len(), heroes.Len() + 10} {
		c := NewController(heroes)
		seen := recordTransitions(c)

		err := c.SelectHero(i)
		require.ErrorIs(t, err, catalog.ErrInvalidIndex)
		require.Equal(t, Browse(), c.Current())
		require.Empty(t, *seen)
	}
}

func TestSelectHeroEmptySpace(t *testing.T) {
	c := NewController(catalog.New(nil))
	require.ErrorIs(t, c.SelectHero(0), catalog.ErrInvalidIndex)

	c = NewController(nil)
	require.ErrorIs(t, c.SelectHero(0), catalog.ErrInvalidIndex)
	require.Equal(t, Browse(), c.Current())
}

func TestSelectHeroFromDetailRejected(t *testing.T) {
	c := NewController(catalog.Default())
	require.NoError(t, c.SelectHero(0))
	seen := recordTransitions(c)

	err := c.SelectHero(2)
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.Equal(t, detail(0), c.Current())
	require.Empty(t, *seen)
}

func TestGoBackFromEveryDetail(t *testing.T) {
	heroes := catalog.Default()

	for i := 0; i < heroes.Len(); i++ {
		c := NewController(heroes)
		require.NoError(t, c.SelectHero(i))

		c.GoBack()
		require.Equal(t, Browse(), c.Current())
	}
}

func TestGoBackWhileBrowsingIsNoop(t *testing.T) {
	c := NewController(catalog.Default())
	seen := recordTransitions(c)

	c.GoBack()
	c.GoBack()

	require.Equal(t, Browse(), c.Current())
	require.Empty(t, *seen)
}

func TestObserverNotifiedOncePerTransition(t *testing.T) {
	c := NewController(catalog.Default())
	seen := recordTransitions(c)

	require.NoError(t, c.SelectHero(2))
	c.GoBack()
	c.GoBack()

	require.Equal(t, []transition{
		{from: Browse(), to: detail(2)},
		{from: detail(2), to: Browse()},
	}, *seen)
}

func TestObserveReplacesPreviousObserver(t *testing.T) {
	c := NewController(catalog.Default())
	first := recordTransitions(c)
	second := recordTransitions(c)

	require.NoError(t, c.SelectHero(0))

	require.Empty(t, *first)
	require.Len(t, *second, 1)

	c.Observe(nil)
	c.GoBack()
	require.Len(t, *second, 1)
}

func TestRoundTripReturnsToBrowse(t *testing.T) {
	heroes := catalog.Default()
	c := NewController(heroes)

	for k := 0; k < heroes.Len(); k++ {
		before := c.Current()
		require.NoError(t, c.SelectHero(k))
		c.GoBack()
		require.Equal(t, before, c.Current())
	}
}

func TestDeadpoolScenario(t *testing.T) {
	heroes := catalog.Default()
	c := NewController(heroes)

	require.NoError(t, c.SelectHero(1))
	require.Equal(t, "HeroScreen_1", c.Current().String())

	i, ok := c.Current().Index()
	require.True(t, ok)
	hero, err := heroes.Get(i)
	require.NoError(t, err)
	require.Equal(t, "Deadpool", hero.Name)

	c.GoBack()
	require.Equal(t, "MainScreen", c.Current().String())
}

func TestOutOfRangeNeverResolvesPastEnd(t *testing.T) {
	heroes := catalog.Default()
	require.Equal(t, 3, heroes.Len())

	c := NewController(heroes)
	require.Error(t, c.SelectHero(3))

	if i, ok := c.Current().Index(); ok {
		_, err := heroes.Get(i)
		require.NoError(t, err)
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "browse", KindBrowse.String())
	require.Equal(t, "detail", KindDetail.String())
	require.Equal(t, "kind(7)", Kind(7).String())
}
