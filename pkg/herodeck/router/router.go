package router

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoTransition is returned by Run when OnTransition was never called.
var ErrNoTransition = errors.New("router: no transition function set")

// ScreenFunc runs one screen until it produces a result. The route is the
// one that caused the screen to run; Detail screens read their hero index
// from it.
type ScreenFunc func(ctx context.Context, route Route, input any) (result any, err error)

// TransitionFunc is called after each screen completes. It inspects the
// screen's result, drives the Controller, and returns the input for the
// screen of the controller's new route. Returning exit=true stops Run.
type TransitionFunc func(from Route, result any, nav *Controller, stack *Stack) (next any, exit bool)

// Router runs the screen registered for the controller's current route, and
// funnels every result through one transition function.
type Router struct {
	nav        *Controller
	screens    map[Kind]ScreenFunc
	transition TransitionFunc
	stack      *Stack
}

// New creates a Router driving nav.
func New(nav *Controller) *Router {
	return &Router{
		nav:     nav,
		screens: make(map[Kind]ScreenFunc),
		stack:   NewStack(),
	}
}

// Register sets the screen function for a route kind.
func (r *Router) Register(kind Kind, fn ScreenFunc) *Router {
	r.screens[kind] = fn
	return r
}

// OnTransition sets the transition function.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Controller returns the navigation controller the router drives.
func (r *Router) Controller() *Controller {
	return r.nav
}

// Stack returns the back stack for use in transition functions.
func (r *Router) Stack() *Stack {
	return r.stack
}

// Run starts at the controller's current route with the given input and
// loops until the transition function signals exit, a screen fails, or ctx
// is done.
func (r *Router) Run(ctx context.Context, input any) error {
	if r.transition == nil {
		return ErrNoTransition
	}

	currentInput := input

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		route := r.nav.Current()

		fn, ok := r.screens[route.Kind()]
		if !ok {
			return fmt.Errorf("router: screen %s not registered", route.Kind())
		}

		result, err := fn(ctx, route, currentInput)
		if err != nil {
			return fmt.Errorf("router: screen %s: %w", route, err)
		}

		next, exit := r.transition(route, result, r.nav, r.stack)
		if exit {
			return nil
		}

		currentInput = next
	}
}
