package metrics

import (
	"context"

	"github.com/osse101/Greenhouse_Go/internal/domain"
	"github.com/osse101/Greenhouse_Go/internal/event"
	"github.com/osse101/Greenhouse_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all garden and challenge events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.ActionPerformed,
		event.PlantAdded,
		event.PlantRemoved,
		event.AchievementUnlocked,
		event.ChallengeJoined,
		event.ChallengeCompleted,
		event.ChallengeRewardClaimed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := e.record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
		return nil
	}

	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) record(evt event.Event) error {
	switch evt.Type {
	case event.ActionPerformed:
		p, err := event.DecodePayload[domain.ActionPerformedPayload](evt.Payload)
		if err != nil {
			return err
		}
		CareActions.WithLabelValues(string(p.Action)).Inc()
		CurrencyEarned.Add(float64(p.CurrencyGained))
		ExperienceGained.Add(float64(p.ExperienceGained))
		if p.ReachedMax {
			LevelUps.Inc()
		}

	case event.PlantAdded, event.PlantRemoved:
		change := ChangeAdded
		if evt.Type == event.PlantRemoved {
			change = ChangeRemoved
		}
		PlantChanges.WithLabelValues(change).Inc()

	case event.AchievementUnlocked:
		p, err := event.DecodePayload[domain.AchievementUnlockedPayload](evt.Payload)
		if err != nil {
			return err
		}
		AchievementsUnlocked.WithLabelValues(string(p.Rarity)).Inc()

	case event.ChallengeJoined, event.ChallengeCompleted, event.ChallengeRewardClaimed:
		p, err := event.DecodePayload[domain.ChallengePayload](evt.Payload)
		if err != nil {
			return err
		}
		switch evt.Type {
		case event.ChallengeJoined:
			ChallengeJoins.WithLabelValues(p.ChallengeCode).Inc()
		case event.ChallengeCompleted:
			ChallengeCompletions.WithLabelValues(p.ChallengeCode).Inc()
		default:
			ChallengeRewardCurrency.Add(float64(p.Currency))
		}
	}
	return nil
}
