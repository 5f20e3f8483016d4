package flow

import (
	"context"
	"log/slog"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/catalog"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/router"
)

// BrowseFunc shows the carousel until the user acts.
type BrowseFunc func(ctx context.Context, in BrowseInput) (BrowseResult, error)

// DetailFunc shows one resolved hero until the user acts. index is the
// hero's position in the catalog.
type DetailFunc func(ctx context.Context, index int, hero catalog.Hero, in DetailInput) (DetailResult, error)

// Screens are the two views the router can show.
type Screens struct {
	Browse BrowseFunc
	Detail DetailFunc
}

// BrowseScreen adapts fn to the router. A missing input starts fresh.
func BrowseScreen(fn BrowseFunc) router.ScreenFunc {
	return func(ctx context.Context, _ router.Route, input any) (any, error) {
		in, _ := input.(BrowseInput)
		return fn(ctx, in)
	}
}

// DetailScreen adapts fn to the router and resolves the route's hero. A
// route that does not resolve skips the view and goes back to Browse.
func DetailScreen(heroes catalog.Catalog, logger *slog.Logger, fn DetailFunc) router.ScreenFunc {
	return func(ctx context.Context, route router.Route, input any) (any, error) {
		i, ok := route.Index()
		if !ok {
			logger.Error("Detail screen shown for a non-detail route", "route", route.String())
			return DetailResult{Action: DetailActionBack}, nil
		}

		hero, err := heroes.Get(i)
		if err != nil {
			logger.Error("Detail route does not resolve", "route", route.String(), "error", err)
			return DetailResult{Action: DetailActionBack}, nil
		}

		in, _ := input.(DetailInput)
		return fn(ctx, i, hero, in)
	}
}

// NewRouter wires both screens and the transition function onto nav.
func NewRouter(heroes catalog.Catalog, nav *router.Controller, screens Screens, logger *slog.Logger, strict bool) *router.Router {
	return router.New(nav).
		Register(router.KindBrowse, BrowseScreen(screens.Browse)).
		Register(router.KindDetail, DetailScreen(heroes, logger, screens.Detail)).
		OnTransition(Transition(logger, strict))
}
