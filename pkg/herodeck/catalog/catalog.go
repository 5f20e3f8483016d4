// Package catalog holds the immutable, ordered list of heroes the application
// presents. The position of a hero in the catalog is its index everywhere
// else: routes, carousel cards and hit testing all refer to heroes by index.
package catalog

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidIndex is returned when an index falls outside [0, Len()).
var ErrInvalidIndex = errors.New("hero index out of range")

// Hero describes one displayable character.
type Hero struct {
	Name     string
	Message  string
	ImageURL string
}

// Catalog is a fixed, ordered sequence of heroes. The zero value is an empty
// catalog. Catalog values are safe to copy and share; nothing mutates them
// after construction.
type Catalog struct {
	heroes []Hero
}

// New builds a catalog from heroes, copying the slice so later changes to the
// argument are not observed. A nil slice yields an empty catalog.
func New(heroes []Hero) Catalog {
	if len(heroes) == 0 {
		return Catalog{}
	}
	owned := make([]Hero, len(heroes))
	copy(owned, heroes)
	return Catalog{heroes: owned}
}

// Len returns the number of heroes.
func (c Catalog) Len() int {
	return len(c.heroes)
}

// Get returns the hero at index i.
func (c Catalog) Get(i int) (Hero, error) {
	if i < 0 || i >= len(c.heroes) {
		return Hero{}, fmt.Errorf("get %d of %d: %w", i, len(c.heroes), ErrInvalidIndex)
	}
	return c.heroes[i], nil
}

// IndexOf returns the index of the first hero equal to h.
// Views should carry indices alongside heroes instead of calling this.
func (c Catalog) IndexOf(h Hero) (int, bool) {
	for i, candidate := range c.heroes {
		if candidate == h {
			return i, true
		}
	}
	return -1, false
}

// All yields every hero with its index, in catalog order.
func (c Catalog) All() iter.Seq2[int, Hero] {
	return func(yield func(int, Hero) bool) {
		for i, h := range c.heroes {
			if !yield(i, h) {
				return
			}
		}
	}
}

// Contains reports whether i is a valid index.
func (c Catalog) Contains(i int) bool {
	return i >= 0 && i < len(c.heroes)
}
