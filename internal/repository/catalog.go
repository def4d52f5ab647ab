package repository

import (
	"context"

	"github.com/osse101/Greenhouse_Go/internal/domain"
)

// Catalog defines read access to the global achievement and challenge definitions
type Catalog interface {
	ListAchievements(ctx context.Context) ([]domain.Achievement, error)
	ListChallenges(ctx context.Context) ([]domain.Challenge, error)
	GetChallenge(ctx context.Context, code string) (*domain.Challenge, error)
}

// CatalogWriter is used by the seeder
type CatalogWriter interface {
	UpsertAchievement(ctx context.Context, achievement domain.Achievement) error
	UpsertChallenge(ctx context.Context, challenge domain.Challenge) error
}
