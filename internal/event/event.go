package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/Greenhouse_Go/internal/domain"
	"github.com/osse101/Greenhouse_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Garden and challenge event types
const (
	ActionPerformed        Type = domain.EventTypeActionPerformed
	PlantAdded             Type = domain.EventTypePlantAdded
	PlantRemoved           Type = domain.EventTypePlantRemoved
	AchievementUnlocked    Type = domain.EventTypeAchievementUnlocked
	ChallengeJoined        Type = domain.EventTypeChallengeJoined
	ChallengeCompleted     Type = domain.EventTypeChallengeCompleted
	ChallengeRewardClaimed Type = domain.EventTypeChallengeRewardClaimed
)

// Type-safe event constructors

// NewActionPerformedEvent creates the event fanned out after a care action commits
func NewActionPerformedEvent(accountID, plantID string, result *domain.ActionResult, action domain.ActionType) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ActionPerformed,
		Payload: domain.ActionPerformedPayload{
			AccountID:        accountID,
			PlantID:          plantID,
			Action:           action,
			ExperienceGained: result.ExperienceGained,
			CurrencyGained:   result.CurrencyGained,
			LevelUp:          result.LevelUp,
			ReachedMax:       result.ReachedMax,
		},
	}
}

// NewAchievementUnlockedEvent creates an achievement unlocked event
func NewAchievementUnlockedEvent(accountID string, a domain.Achievement) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AchievementUnlocked,
		Payload: domain.AchievementUnlockedPayload{
			AccountID: accountID,
			Code:      a.Code,
			Rarity:    a.Rarity,
		},
	}
}

// NewPlantEvent creates a plant added/removed event
func NewPlantEvent(eventType Type, accountID string, p domain.Plant) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: domain.PlantPayload{
			AccountID: accountID,
			PlantID:   p.ID,
			Type:      p.Type,
		},
	}
}

// NewChallengeEvent creates one of the challenge.* events
func NewChallengeEvent(eventType Type, accountID, challengeCode string, currency int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: domain.ChallengePayload{
			AccountID:     accountID,
			ChallengeCode: challengeCode,
			Currency:      currency,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order; every handler runs even
// if an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			logger.FromContext(ctx).Warn(LogMsgHandlerFailed, "type", event.Type, "error", err)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
