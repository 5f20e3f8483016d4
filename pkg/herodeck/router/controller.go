package router

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/catalog"
)

// ErrInvalidTransition is returned when a transition is requested from a
// route that does not allow it.
var ErrInvalidTransition = errors.New("transition not allowed from current route")

// IndexSpace is anything with a fixed length that defines valid hero indices.
// catalog.Catalog satisfies it.
type IndexSpace interface {
	Len() int
}

// Observer is notified synchronously after every effective transition.
type Observer func(from, to Route)

// Controller owns the current Route. It is the only writer of navigation
// state. It is not safe for concurrent use: all calls are expected to come
// from the UI goroutine.
type Controller struct {
	space    IndexSpace
	current  Route
	observer Observer
}

// NewController creates a controller in the Browse route.
func NewController(space IndexSpace) *Controller {
	return &Controller{space: space, current: Browse()}
}

// Current returns the active route.
func (c *Controller) Current() Route {
	return c.current
}

// Observe installs the single observer, replacing any previous one.
// Pass nil to stop observing.
func (c *Controller) Observe(fn Observer) {
	c.observer = fn
}

// SelectHero moves from Browse to Detail(i).
// An index outside the space is rejected with catalog.ErrInvalidIndex and the
// route stays at Browse.
func (c *Controller) SelectHero(i int) error {
	if c.current.kind != KindBrowse {
		return fmt.Errorf("select hero %d from %s: %w", i, c.current, ErrInvalidTransition)
	}

	n := 0
	if c.space != nil {
		n = c.space.Len()
	}
	if i < 0 || i >= n {
		return fmt.Errorf("select hero %d of %d: %w", i, n, catalog.ErrInvalidIndex)
	}

	c.set(detail(i))
	return nil
}

// GoBack returns to Browse. It is a no-op when already browsing.
func (c *Controller) GoBack() {
	if c.current.kind == KindBrowse {
		return
	}
	c.set(Browse())
}

func (c *Controller) set(next Route) {
	prev := c.current
	c.current = next
	if c.observer != nil {
		c.observer(prev, next)
	}
}
