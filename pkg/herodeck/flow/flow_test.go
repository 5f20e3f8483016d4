package flow

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/catalog"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/layout"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/router"
)

func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// script replays browse results in order and records what each screen saw.
type script struct {
	browse      []BrowseResult
	browseSeen  []BrowseInput
	detailSeen  []catalog.Hero
	detailIndex []int
	detail      DetailResult
}

func (s *script) screens() Screens {
	return Screens{
		Browse: func(_ context.Context, in BrowseInput) (BrowseResult, error) {
			s.browseSeen = append(s.browseSeen, in)
			if len(s.browse) == 0 {
				return BrowseResult{Action: BrowseActionExit}, nil
			}
			next := s.browse[0]
			s.browse = s.browse[1:]
			return next, nil
		},
		Detail: func(_ context.Context, i int, hero catalog.Hero, _ DetailInput) (DetailResult, error) {
			s.detailIndex = append(s.detailIndex, i)
			s.detailSeen = append(s.detailSeen, hero)
			return s.detail, nil
		},
	}
}

func TestRoundTripRestoresScroll(t *testing.T) {
	heroes := catalog.Default()
	nav := router.NewController(heroes)
	logger, _ := testLogger()

	var routes []string
	nav.Observe(func(_, to router.Route) { routes = append(routes, to.String()) })

	resume := &layout.Resume{Offset: 324}
	s := &script{
		browse: []BrowseResult{{Action: BrowseActionSelected, Index: 2, Resume: resume}},
		detail: DetailResult{Action: DetailActionBack},
	}

	err := NewRouter(heroes, nav, s.screens(), logger, false).Run(context.Background(), BrowseInput{})
	require.NoError(t, err)

	require.Equal(t, []int{2}, s.detailIndex)
	require.Equal(t, "Spider Man", s.detailSeen[0].Name)
	require.Len(t, s.browseSeen, 2)
	require.Nil(t, s.browseSeen[0].Resume)
	require.Same(t, resume, s.browseSeen[1].Resume)
	require.Equal(t, []string{"HeroScreen_2", "MainScreen"}, routes)
	require.Equal(t, router.Browse(), nav.Current())
}

func TestEveryIndexReachesItsHero(t *testing.T) {
	heroes := catalog.Default()

	for i, want := range heroes.All() {
		nav := router.NewController(heroes)
		logger, _ := testLogger()
		s := &script{
			browse: []BrowseResult{{Action: BrowseActionSelected, Index: i}},
			detail: DetailResult{Action: DetailActionExit},
		}

		require.NoError(t, NewRouter(heroes, nav, s.screens(), logger, false).Run(context.Background(), nil))
		require.Equal(t, []catalog.Hero{want}, s.detailSeen)

		got, ok := nav.Current().Index()
		require.True(t, ok)
		require.Equal(t, i, got)
	}
}

func TestRejectedSelectionStaysOnBrowse(t *testing.T) {
	for _, strict := range []bool{false, true} {
		heroes := catalog.Default()
		nav := router.NewController(heroes)
		logger, buf := testLogger()

		observed := 0
		nav.Observe(func(_, _ router.Route) { observed++ })

		resume := &layout.Resume{Offset: 10}
		s := &script{browse: []BrowseResult{
			{Action: BrowseActionSelected, Index: heroes.Len(), Resume: resume},
			{Action: BrowseActionSelected, Index: -1},
		}}

		require.NoError(t, NewRouter(heroes, nav, s.screens(), logger, strict).Run(context.Background(), BrowseInput{}))

		require.Empty(t, s.detailSeen)
		require.Zero(t, observed)
		require.Equal(t, router.Browse(), nav.Current())
		require.Len(t, s.browseSeen, 3)
		require.Same(t, resume, s.browseSeen[1].Resume)

		if strict {
			require.Contains(t, buf.String(), `"level":"ERROR"`)
			require.Contains(t, buf.String(), `"stack":`)
		} else {
			require.Contains(t, buf.String(), `"level":"WARN"`)
			require.NotContains(t, buf.String(), `"stack":`)
		}
		require.Contains(t, buf.String(), "hero index out of range")
	}
}

func TestEmptyCatalogNeverLeavesBrowse(t *testing.T) {
	heroes := catalog.New(nil)
	nav := router.NewController(heroes)
	logger, _ := testLogger()
	s := &script{browse: []BrowseResult{{Action: BrowseActionSelected, Index: 0}}}

	require.NoError(t, NewRouter(heroes, nav, s.screens(), logger, false).Run(context.Background(), BrowseInput{}))
	require.Empty(t, s.detailSeen)
	require.Equal(t, router.Browse(), nav.Current())
}

type fiveSlots struct{}

func (fiveSlots) Len() int { return 5 }

func TestUnresolvableDetailRedirectsToBrowse(t *testing.T) {
	heroes := catalog.Default()
	nav := router.NewController(fiveSlots{})
	logger, buf := testLogger()
	s := &script{browse: []BrowseResult{{Action: BrowseActionSelected, Index: 4}}}

	require.NoError(t, NewRouter(heroes, nav, s.screens(), logger, false).Run(context.Background(), BrowseInput{}))
	require.Empty(t, s.detailSeen)
	require.Equal(t, router.Browse(), nav.Current())
	require.Contains(t, buf.String(), "Detail route does not resolve")
}

func TestUnexpectedResultExits(t *testing.T) {
	logger, buf := testLogger()
	nav := router.NewController(catalog.Default())
	transition := Transition(logger, false)

	next, exit := transition(router.Browse(), DetailResult{}, nav, router.NewStack())
	require.True(t, exit)
	require.Nil(t, next)
	require.Contains(t, buf.String(), "Unexpected screen result")
	require.Contains(t, buf.String(), "flow.DetailResult")

	_, exit = transition(router.Browse(), BrowseResult{Action: BrowseAction(9)}, nav, router.NewStack())
	require.True(t, exit)
}

func TestUnknownDetailActionExits(t *testing.T) {
	logger, buf := testLogger()
	nav := router.NewController(catalog.Default())
	require.NoError(t, nav.SelectHero(1))
	stack := router.NewStack()
	stack.Push(router.Browse(), nil)

	next, exit := Transition(logger, false)(nav.Current(), DetailResult{Action: DetailAction(7)}, nav, stack)
	require.True(t, exit)
	require.Nil(t, next)
	require.Contains(t, buf.String(), "Unknown detail action")
	require.Contains(t, buf.String(), `"action":"unknown"`)

	got, ok := nav.Current().Index()
	require.True(t, ok)
	require.Equal(t, 1, got)
	require.Equal(t, 1, stack.Len())
}

func TestBackWithEmptyStackStillBrowses(t *testing.T) {
	logger, _ := testLogger()
	nav := router.NewController(catalog.Default())
	require.NoError(t, nav.SelectHero(0))

	next, exit := Transition(logger, false)(nav.Current(), DetailResult{Action: DetailActionBack}, nav, router.NewStack())
	require.False(t, exit)
	require.Equal(t, BrowseInput{}, next)
	require.Equal(t, router.Browse(), nav.Current())
}

func TestScreenErrorStopsRouter(t *testing.T) {
	heroes := catalog.Default()
	logger, _ := testLogger()
	boom := errors.New("renderer lost")

	screens := Screens{
		Browse: func(context.Context, BrowseInput) (BrowseResult, error) {
			return BrowseResult{}, boom
		},
	}

	err := NewRouter(heroes, router.NewController(heroes), screens, logger, false).Run(context.Background(), BrowseInput{})
	require.ErrorIs(t, err, boom)
}

func TestActionNames(t *testing.T) {
	require.Equal(t, "selected", BrowseActionSelected.String())
	require.Equal(t, "exit", BrowseActionExit.String())
	require.Equal(t, "back", DetailActionBack.String())
	require.Equal(t, "exit", DetailActionExit.String())
	require.Equal(t, "unknown", DetailAction(7).String())
}
