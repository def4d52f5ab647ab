package repository

import (
	"context"
	"time"

	"github.com/osse101/Greenhouse_Go/internal/domain"
)

// Participation defines persistence for challenge participations.
// A participation is keyed by account, challenge code and period start.
type Participation interface {
	GetParticipation(ctx context.Context, accountID, challengeCode string, periodStart time.Time) (*domain.Participation, error)
	// ListParticipations returns every period of every challenge the account joined
	ListParticipations(ctx context.Context, accountID string) ([]domain.Participation, error)

	// Enroll atomically inserts the participation and increments the challenge's
	// participant count bounded by its capacity. Returns domain.ErrAlreadyParticipating
	// or domain.ErrChallengeFull without side effects, and the updated challenge on success.
	// A participation whose PeriodStart is not the challenge's current StartTime
	// is rejected with domain.ErrChallengeInactive.
	Enroll(ctx context.Context, participation *domain.Participation) (*domain.Challenge, error)

	// UpdateParticipation is version checked like UpdateGarden
	UpdateParticipation(ctx context.Context, participation *domain.Participation) error
}
