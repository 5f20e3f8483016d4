// Package router provides hero navigation with explicit data flow.
//
// Navigation state is a single Route owned by a Controller. There are two
// route kinds: Browse, and Detail carrying a hero index. The Controller is
// the only place a Detail route can be created, and it validates the index
// against the catalog before doing so.
//
// A Router runs the screen registered for the current route kind and hands
// the screen's result to one transition function, which drives the
// Controller and decides the next screen's input.
//
// # Basic Usage
//
//	nav := router.NewController(heroes)
//	r := router.New(nav)
//
//	r.Register(router.KindBrowse, func(ctx context.Context, route router.Route, input any) (any, error) {
//	    return browseScreen(ctx, heroes, input.(BrowseInput))
//	})
//
//	r.Register(router.KindDetail, func(ctx context.Context, route router.Route, input any) (any, error) {
//	    i, _ := route.Index()
//	    hero, err := heroes.Get(i)
//	    ...
//	})
//
//	r.OnTransition(func(from router.Route, result any, nav *router.Controller, stack *router.Stack) (any, bool) {
//	    switch from.Kind() {
//	    case router.KindBrowse:
//	        res := result.(BrowseResult)
//	        if err := nav.SelectHero(res.Index); err != nil {
//	            return BrowseInput{Resume: res.Resume}, false
//	        }
//	        stack.Push(from, res.Resume)
//	        return DetailInput{}, false
//	    case router.KindDetail:
//	        nav.GoBack()
//	        ...
//	    }
//	    return nil, true
//	})
//
//	err := r.Run(ctx, BrowseInput{})
//
// # Resume State
//
// Screens can return resume state (like the carousel offset) that is pushed
// on the Stack when navigating forward. Navigating back pops it and passes it
// to the screen again so it can restore its position.
package router
