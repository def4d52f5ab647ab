package bootstrap

import (
	"log/slog"

	"github.com/osse101/Greenhouse_Go/internal/catalog"
	"github.com/osse101/Greenhouse_Go/internal/challenge"
	"github.com/osse101/Greenhouse_Go/internal/event"
	"github.com/osse101/Greenhouse_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus
func InitializeEventSystem() *event.MemoryBus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus         event.Bus
	ChallengeService challenge.Service
	CatalogCache     *catalog.Cache
}

// RegisterEventHandlers sets up all event subscribers:
// - challenge progress (advances participations after each care action)
// - catalog cache invalidation (participant counts change on enrollment)
// - metrics collector
func RegisterEventHandlers(deps EventHandlerDependencies) {
	challenge.NewEventHandler(deps.ChallengeService).Register(deps.EventBus)
	slog.Info(LogMsgChallengeHandlerRegistered)

	if deps.CatalogCache != nil {
		deps.CatalogCache.Register(deps.EventBus)
		slog.Info(LogMsgCatalogCacheRegistered)
	}

	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)
}
