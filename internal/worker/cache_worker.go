// Package worker wires event subscribers that run as request side effects.
package worker

import (
	"context"

	"github.com/spec-kit/coffeehouse-cms/internal/cache"
	"github.com/spec-kit/coffeehouse-cms/internal/events"
)

// Public routes whose cached payloads depend on each record type.
var invalidationRoutes = map[events.EventType][]string{
	events.EventMenuChanged:  {"/api/menu"},
	events.EventOfferChanged: {"/api/offers"},
	events.EventStaffChanged: {"/api/staff"},
}

// StartCacheInvalidator subscribes the page cache to content change events,
// so every content mutation drops the affected public routes.
func StartCacheInvalidator(dispatcher events.Dispatcher, pages *cache.PageCache) {
	if dispatcher == nil || pages == nil {
		return
	}
	for eventType, routes := range invalidationRoutes {
		routes := routes
		dispatcher.Subscribe(eventType, func(ctx context.Context, _ events.Event) error {
			pages.Invalidate(ctx, routes...)
			return nil
		})
	}
}
