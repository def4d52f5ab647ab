package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Greenhouse_Go/internal/domain"
)

func newGarden(accountID string, now time.Time) *domain.Garden {
	g := &domain.Garden{
		AccountID: accountID,
		Plants:    []domain.Plant{domain.NewPlant("p1", "Orchid", "orchid", now)},
		Currency:  domain.StartingCurrency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	g.RecomputeTotalLevel()
	return g
}

func TestStore_Garden(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	now := time.Now()

	_, err := s.GetGarden(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrGardenNotFound)

	created, err := s.CreateGarden(ctx, newGarden("a", now))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)
	assert.NotNil(t, created.ActionCounts)

	again, err := s.CreateGarden(ctx, &domain.Garden{AccountID: "a", Currency: 7})
	require.NoError(t, err)
	assert.Equal(t, domain.StartingCurrency, again.Currency)

	// Returned gardens are copies
	created.Plants[0].Name = "mutated"
	fresh, err := s.GetGarden(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Orchid", fresh.Plants[0].Name)

	stale := fresh.Clone()
	fresh.Currency = 60
	require.NoError(t, s.UpdateGarden(ctx, fresh))
	assert.Equal(t, int64(2), fresh.Version)

	assert.ErrorIs(t, s.UpdateGarden(ctx, stale), domain.ErrConcurrentUpdate)
	assert.ErrorIs(t, s.UpdateGarden(ctx, newGarden("ghost", now)), domain.ErrGardenNotFound)
}

func TestStore_Catalog(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	now := time.Now()

	require.NoError(t, s.UpsertAchievement(ctx, domain.Achievement{Code: "B", CreatedAt: now}))
	require.NoError(t, s.UpsertAchievement(ctx, domain.Achievement{Code: "A", CreatedAt: now}))
	require.NoError(t, s.UpsertAchievement(ctx, domain.Achievement{Code: "C", CreatedAt: now.Add(-time.Hour)}))

	list, err := s.ListAchievements(ctx)
	require.NoError(t, err)
	codes := []string{list[0].Code, list[1].Code, list[2].Code}
	assert.Equal(t, []string{"C", "A", "B"}, codes)

	require.NoError(t, s.UpsertChallenge(ctx, domain.Challenge{Code: "LATE", EndTime: now.Add(2 * time.Hour)}))
	require.NoError(t, s.UpsertChallenge(ctx, domain.Challenge{Code: "EARLY", EndTime: now.Add(time.Hour), MaxParticipants: -1}))

	challenges, err := s.ListChallenges(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EARLY", challenges[0].Code)

	_, err = s.GetChallenge(ctx, "NONE")
	assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
}

func TestStore_Enroll(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	now := time.Now()
	c := domain.Challenge{
		Code:            "DAILY_WATER",
		EndTime:         now.Add(time.Hour),
		MaxParticipants: 1,
		Requirements:    []domain.Requirement{{Action: "water", Count: 7}},
	}
	require.NoError(t, s.UpsertChallenge(ctx, c))

	updated, err := s.Enroll(ctx, domain.NewParticipation("a", &c, now))
	require.NoError(t, err)
	assert.Equal(t, 1, updated.CurrentParticipants)

	_, err = s.Enroll(ctx, domain.NewParticipation("a", &c, now))
	assert.ErrorIs(t, err, domain.ErrAlreadyParticipating)

	_, err = s.Enroll(ctx, domain.NewParticipation("b", &c, now))
	assert.ErrorIs(t, err, domain.ErrChallengeFull)

	// Re-seeding keeps the participant count
	require.NoError(t, s.UpsertChallenge(ctx, c))
	reloaded, err := s.GetChallenge(ctx, c.Code)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.CurrentParticipants)

	p, err := s.GetParticipation(ctx, "a", c.Code, c.StartTime)
	require.NoError(t, err)
	stale := p.Clone()
	p.Progress[0].CurrentCount = 1
	require.NoError(t, s.UpdateParticipation(ctx, p))
	assert.ErrorIs(t, s.UpdateParticipation(ctx, stale), domain.ErrConcurrentUpdate)

	list, err := s.ListParticipations(ctx, "a")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].Progress[0].CurrentCount)

	_, err = s.GetParticipation(ctx, "b", c.Code, c.StartTime)
	assert.ErrorIs(t, err, domain.ErrParticipationNotFound)
}

func TestStore_NewWindowStartsNewPeriod(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	day1 := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	c := domain.Challenge{
		Code:            "DAILY_WATER",
		StartTime:       day1,
		EndTime:         day1.Add(24 * time.Hour),
		MaxParticipants: 1,
		Requirements:    []domain.Requirement{{Action: "water", Count: 1}},
	}
	require.NoError(t, s.UpsertChallenge(ctx, c))
	_, err := s.Enroll(ctx, domain.NewParticipation("a", &c, day1))
	require.NoError(t, err)

	next := c
	next.StartTime = day1.Add(48 * time.Hour)
	next.EndTime = next.StartTime.Add(24 * time.Hour)
	require.NoError(t, s.UpsertChallenge(ctx, next))

	reloaded, err := s.GetChallenge(ctx, c.Code)
	require.NoError(t, err)
	assert.Zero(t, reloaded.CurrentParticipants, "new window starts with no seats taken")

	_, err = s.Enroll(ctx, domain.NewParticipation("a", &c, day1))
	assert.ErrorIs(t, err, domain.ErrChallengeInactive, "old window can no longer be joined")

	updated, err := s.Enroll(ctx, domain.NewParticipation("a", &next, next.StartTime))
	require.NoError(t, err)
	assert.Equal(t, 1, updated.CurrentParticipants)

	list, err := s.ListParticipations(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	old, err := s.GetParticipation(ctx, "a", c.Code, day1)
	require.NoError(t, err)
	assert.True(t, old.PeriodStart.Equal(day1))
}

func TestStore_EnrollConcurrentCapacity(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	c := domain.Challenge{Code: "RACE", MaxParticipants: 5, Requirements: []domain.Requirement{{Action: "prune", Count: 1}}}
	require.NoError(t, s.UpsertChallenge(ctx, c))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := s.Enroll(ctx, domain.NewParticipation(fmt.Sprintf("acct-%d", i), &c, time.Now())); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, ok)
	reloaded, err := s.GetChallenge(ctx, "RACE")
	require.NoError(t, err)
	assert.Equal(t, 5, reloaded.CurrentParticipants)
}
