// Package flow defines what each hero screen takes and returns, and the
// single transition function that turns screen results into navigation.
//
// Screens never touch the Controller. They report what the user did; the
// transition function decides where that leads:
//
//	Browse --Selected(i)--> Detail(i) --Back--> Browse (scroll restored)
//	   |                        |
//	  Exit                     Exit
package flow

import "github.com/BrandonKowalski/herodeck/pkg/herodeck/layout"

// BrowseAction is what the user did on the browse screen.
type BrowseAction int

const (
	BrowseActionSelected BrowseAction = iota // A card was chosen
	BrowseActionExit                         // Back pressed or window closed
)

func (a BrowseAction) String() string {
	switch a {
	case BrowseActionSelected:
		return "selected"
	case BrowseActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// BrowseInput starts the browse screen. Resume is nil on first show.
type BrowseInput struct {
	Resume *layout.Resume
}

// BrowseResult is returned by the browse screen. Index is the enumerated
// position of the chosen card and is only meaningful for Selected.
type BrowseResult struct {
	Action BrowseAction
	Index  int
	Resume *layout.Resume
}

// DetailAction is what the user did on the detail screen.
type DetailAction int

const (
	DetailActionBack DetailAction = iota // Back arrow, B, Escape or Backspace
	DetailActionExit                     // Window closed
)

func (a DetailAction) String() string {
	switch a {
	case DetailActionBack:
		return "back"
	case DetailActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// DetailInput starts the detail screen. The hero comes from the route.
type DetailInput struct{}

// DetailResult is returned by the detail screen.
type DetailResult struct {
	Action DetailAction
}
