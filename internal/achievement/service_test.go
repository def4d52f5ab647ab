package achievement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Greenhouse_Go/internal/domain"
)

type mockDefinitions struct{ mock.Mock }

func (m *mockDefinitions) ListAchievements(ctx context.Context) ([]domain.Achievement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

type mockGardens struct{ mock.Mock }

func (m *mockGardens) GetGarden(ctx context.Context, accountID string) (*domain.Garden, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Garden), args.Error(1)
}

func TestService_ListAchievements(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	defs := []domain.Achievement{
		{Code: "CURRENCY_100", Rarity: domain.RarityEpic, IsActive: true, CreatedAt: base},
		{Code: "WATER_MASTER", Rarity: domain.RarityRare, IsActive: true, CreatedAt: base.Add(time.Minute)},
		{Code: "RETIRED", Rarity: domain.RarityCommon, IsActive: false, CreatedAt: base},
		{Code: "FIRST_WATER", Rarity: domain.RarityCommon, IsActive: true, CreatedAt: base},
		{Code: "FERTILIZER_EXPERT", Rarity: domain.RarityRare, IsActive: true, CreatedAt: base},
	}
	garden := gardenWithLevels(60, 6, 1)
	garden.Plants[0].Achievements = []string{"FIRST_WATER", "RETIRED"}

	d := new(mockDefinitions)
	g := new(mockGardens)
	d.On("ListAchievements", ctx).Return(defs, nil)
	g.On("GetGarden", ctx, "acct").Return(garden, nil)

	list, err := NewService(d, g).ListAchievements(ctx, "acct")
	require.NoError(t, err)

	assert.Equal(t, 4, list.TotalAchievements)
	assert.Equal(t, 1, list.UnlockedAchievements)
	got := make([]string, 0, len(list.Achievements))
	for _, a := range list.Achievements {
		got = append(got, a.Code)
	}
	assert.Equal(t, []string{"FIRST_WATER", "FERTILIZER_EXPERT", "WATER_MASTER", "CURRENCY_100"}, got)
	assert.True(t, list.Achievements[0].IsUnlocked)
	assert.False(t, list.Achievements[1].IsUnlocked)

	d.AssertExpectations(t)
	g.AssertExpectations(t)
}

func TestService_ListAchievements_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("garden error is returned as is", func(t *testing.T) {
		g := new(mockGardens)
		g.On("GetGarden", ctx, "acct").Return(nil, domain.ErrConcurrentUpdate)

		_, err := NewService(new(mockDefinitions), g).ListAchievements(ctx, "acct")
		assert.ErrorIs(t, err, domain.ErrConcurrentUpdate)
	})

	t.Run("definition error is wrapped", func(t *testing.T) {
		d := new(mockDefinitions)
		g := new(mockGardens)
		g.On("GetGarden", ctx, "acct").Return(gardenWithLevels(50, 1), nil)
		d.On("ListAchievements", ctx).Return(nil, errors.New("boom"))

		_, err := NewService(d, g).ListAchievements(ctx, "acct")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgListDefinitions)
	})
}
