package repository

import (
	"context"

	"github.com/osse101/Greenhouse_Go/internal/domain"
)

// Garden defines persistence for the per-account garden aggregate.
// Plants, currency, counters and unlocked achievement codes are written together.
type Garden interface {
	// GetGarden returns domain.ErrGardenNotFound when the account has no garden yet
	GetGarden(ctx context.Context, accountID string) (*domain.Garden, error)
	// CreateGarden inserts the garden unless one already exists and returns the stored row
	CreateGarden(ctx context.Context, garden *domain.Garden) (*domain.Garden, error)
	// UpdateGarden writes the garden if its Version still matches the stored one
	// and bumps Version on success; a mismatch returns domain.ErrConcurrentUpdate.
	UpdateGarden(ctx context.Context, garden *domain.Garden) error
}
