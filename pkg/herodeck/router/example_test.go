package router_test

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/catalog"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/router"
)

type browseInput struct {
	Offset int
}

type browseResult struct {
	Selected int
	Quit     bool
	Offset   int
}

type detailResult struct{}

// Example walks browse -> detail -> browse -> exit.
func Example() {
	heroes := catalog.Default()
	nav := router.NewController(heroes)
	r := router.New(nav)

	browseVisits := 0

	r.Register(router.KindBrowse, func(_ context.Context, route router.Route, input any) (any, error) {
		in := input.(browseInput)
		browseVisits++

		if browseVisits == 1 {
			fmt.Println("Browse: selecting hero 1")
			return browseResult{Selected: 1, Offset: 320}, nil
		}
		fmt.Printf("Browse: restored offset %d, exiting\n", in.Offset)
		return browseResult{Quit: true}, nil
	})

	r.Register(router.KindDetail, func(_ context.Context, route router.Route, _ any) (any, error) {
		i, _ := route.Index()
		hero, err := heroes.Get(i)
		if err != nil {
			return nil, err
		}
		fmt.Printf("Detail %s: %s\n", route, hero.Name)
		return detailResult{}, nil
	})

	r.OnTransition(func(from router.Route, result any, nav *router.Controller, stack *router.Stack) (any, bool) {
		switch from.Kind() {
		case router.KindBrowse:
			res := result.(browseResult)
			if res.Quit {
				return nil, true
			}
			if err := nav.SelectHero(res.Selected); err != nil {
				return browseInput{Offset: res.Offset}, false
			}
			stack.Push(from, res.Offset)
			return nil, false

		case router.KindDetail:
			nav.GoBack()
			if entry := stack.Pop(); entry != nil {
				return browseInput{Offset: entry.Resume.(int)}, false
			}
			return browseInput{}, false
		}
		return nil, true
	})

	_ = r.Run(context.Background(), browseInput{})

	// Output:
	// Browse: selecting hero 1
	// Detail HeroScreen_1: Deadpool
	// Browse: restored offset 320, exiting
}

// ExampleController_SelectHero shows an out-of-range selection being rejected.
func ExampleController_SelectHero() {
	nav := router.NewController(catalog.Default())

	if err := nav.SelectHero(3); err != nil {
		fmt.Println("rejected:", err)
	}
	fmt.Println("route:", nav.Current())

	// Output:
	// rejected: select hero 3 of 3: hero index out of range
	// route: MainScreen
}
