package router

import "fmt"

// Kind identifies which screen a route belongs to.
type Kind int

const (
	KindBrowse Kind = iota
	KindDetail
)

func (k Kind) String() string {
	switch k {
	case KindBrowse:
		return "browse"
	case KindDetail:
		return "detail"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Route is the navigation state: browsing the catalog, or viewing one hero by
// index. Detail routes are only created by a Controller after range
// validation, so a Route obtained from Current always resolves.
type Route struct {
	kind  Kind
	index int
}

// Browse returns the carousel route. It is also the zero Route.
func Browse() Route {
	return Route{kind: KindBrowse}
}

func detail(index int) Route {
	return Route{kind: KindDetail, index: index}
}

// Kind returns the route's screen kind.
func (r Route) Kind() Kind {
	return r.kind
}

// Index returns the hero index of a Detail route.
// The boolean is false for Browse.
func (r Route) Index() (int, bool) {
	if r.kind != KindDetail {
		return 0, false
	}
	return r.index, true
}

// String renders the route the way the route table names it.
func (r Route) String() string {
	if r.kind == KindDetail {
		return fmt.Sprintf("HeroScreen_%d", r.index)
	}
	return "MainScreen"
}
