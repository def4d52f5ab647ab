package achievement

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/Greenhouse_Go/internal/domain"
)

// Definitions is the read-only source of achievement definitions
type Definitions interface {
	ListAchievements(ctx context.Context) ([]domain.Achievement, error)
}

// GardenLoader loads (lazily creating) an account's garden
type GardenLoader interface {
	GetGarden(ctx context.Context, accountID string) (*domain.Garden, error)
}

// Service lists achievements for an account
type Service interface {
	ListAchievements(ctx context.Context, accountID string) (*domain.AchievementList, error)
}

type service struct {
	defs    Definitions
	gardens GardenLoader
}

// NewService creates an achievement listing service
func NewService(defs Definitions, gardens GardenLoader) Service {
	return &service{defs: defs, gardens: gardens}
}

// ListAchievements returns every active definition annotated with whether the
// account's garden has unlocked it, ordered by rarity then creation time.
func (s *service) ListAchievements(ctx context.Context, accountID string) (*domain.AchievementList, error) {
	garden, err := s.gardens.GetGarden(ctx, accountID)
	if err != nil {
		return nil, err
	}

	defs, err := s.defs.ListAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListDefinitions, err)
	}

	active := ActiveDefinitions(defs)
	sort.SliceStable(active, func(i, j int) bool {
		if ri, rj := active[i].Rarity.Rank(), active[j].Rarity.Rank(); ri != rj {
			return ri < rj
		}
		return active[i].CreatedAt.Before(active[j].CreatedAt)
	})

	unlocked := garden.UnlockedAchievements()
	list := &domain.AchievementList{
		Achievements:      make([]domain.AchievementStatus, 0, len(active)),
		TotalAchievements: len(active),
	}
	for _, a := range active {
		isUnlocked := unlocked[a.Code]
		if isUnlocked {
			list.UnlockedAchievements++
		}
		list.Achievements = append(list.Achievements, domain.AchievementStatus{Achievement: a, IsUnlocked: isUnlocked})
	}
	return list, nil
}

// ActiveDefinitions filters out inactive definitions
func ActiveDefinitions(defs []domain.Achievement) []domain.Achievement {
	out := make([]domain.Achievement, 0, len(defs))
	for _, d := range defs {
		if d.IsActive {
			out = append(out, d)
		}
	}
	return out
}
