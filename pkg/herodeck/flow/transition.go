package flow

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/layout"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/router"
)

// Transition returns the router transition function. In strict mode a
// rejected selection is logged at Error with a stack trace; otherwise at
// Warn. Either way the route stays at Browse.
func Transition(logger *slog.Logger, strict bool) router.TransitionFunc {
	return func(from router.Route, result any, nav *router.Controller, stack *router.Stack) (any, bool) {
		switch from.Kind() {
		case router.KindBrowse:
			if res, ok := result.(BrowseResult); ok {
				return fromBrowse(logger, strict, from, res, nav, stack)
			}
		case router.KindDetail:
			if res, ok := result.(DetailResult); ok {
				return fromDetail(logger, res, nav, stack)
			}
		}

		logger.Error("Unexpected screen result, exiting",
			"route", from.String(),
			"result", fmt.Sprintf("%T", result))
		return nil, true
	}
}

func fromBrowse(logger *slog.Logger, strict bool, from router.Route, res BrowseResult, nav *router.Controller, stack *router.Stack) (any, bool) {
	switch res.Action {
	case BrowseActionExit:
		return nil, true
	case BrowseActionSelected:
		if err := nav.SelectHero(res.Index); err != nil {
			reportRejected(logger, strict, from, res.Index, err)
			return BrowseInput{Resume: res.Resume}, false
		}
		stack.Push(from, res.Resume)
		return DetailInput{}, false
	}

	logger.Error("Unknown browse action, exiting", "action", res.Action.String())
	return nil, true
}

func fromDetail(logger *slog.Logger, res DetailResult, nav *router.Controller, stack *router.Stack) (any, bool) {
	switch res.Action {
	case DetailActionExit:
		return nil, true
	case DetailActionBack:
		nav.GoBack()

		var resume *layout.Resume
		if entry := stack.Pop(); entry != nil {
			resume, _ = entry.Resume.(*layout.Resume)
		}
		return BrowseInput{Resume: resume}, false
	}

	logger.Error("Unknown detail action, exiting", "action", res.Action.String())
	return nil, true
}

func reportRejected(logger *slog.Logger, strict bool, from router.Route, index int, err error) {
	if strict {
		logger.Error("Navigation rejected",
			"route", from.String(),
			"index", index,
			"error", err,
			"stack", string(debug.Stack()))
		return
	}
	logger.Warn("Navigation rejected", "route", from.String(), "index", index, "error", err)
}
