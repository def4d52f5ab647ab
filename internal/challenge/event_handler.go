package challenge

import (
	"context"
	"fmt"

	"github.com/osse101/Greenhouse_Go/internal/domain"
	"github.com/osse101/Greenhouse_Go/internal/event"
	"github.com/osse101/Greenhouse_Go/internal/logger"
)

// EventHandler advances challenge progress from garden events
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new challenge event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{service: service}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.ActionPerformed, h.HandleActionPerformed)
}

// HandleActionPerformed applies a committed care action to the account's participations.
// Progress failures are logged, never surfaced to the action that triggered them.
func (h *EventHandler) HandleActionPerformed(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.ActionPerformedPayload](evt.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDecodePayload, err)
	}

	if _, err := h.service.AdvanceProgress(ctx, payload.AccountID, payload.Action, payload.ReachedMax); err != nil {
		logger.FromContext(ctx).Warn(LogMsgProgressFailed, "error", err, "account_id", payload.AccountID)
	}
	return nil
}
