package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// DuplicateRouteError reports two registrations for the same (domain, verb)
// pair. Routing must be unambiguous, so this is fatal at startup.
type DuplicateRouteError struct {
	Domain string
	Verb   string
}

func (e *DuplicateRouteError) Error() string {
	return fmt.Sprintf("duplicate route registration for %s:%s", e.Domain, e.Verb)
}

type routeKey struct {
	domain string
	verb   string
}

// callbackFunc handles one decoded callback action.
type callbackFunc func(ctx context.Context, cb *tgbotapi.CallbackQuery, action Action) error

// router maps (domain, verb) pairs to callback handlers. Registration
// enforces uniqueness instead of relying on registration order.
type router struct {
	routes map[routeKey]callbackFunc
}

func newRouter() *router {
	return &router{routes: make(map[routeKey]callbackFunc)}
}

func (r *router) register(domain, verb string, fn callbackFunc) error {
	key := routeKey{domain: domain, verb: verb}
	if _, exists := r.routes[key]; exists {
		return &DuplicateRouteError{Domain: domain, Verb: verb}
	}

	r.routes[key] = fn
	return nil
}

func (r *router) route(a Action) (callbackFunc, bool) {
	fn, ok := r.routes[routeKey{domain: a.Domain, verb: a.Verb}]
	return fn, ok
}
