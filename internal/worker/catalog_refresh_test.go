package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Greenhouse_Go/internal/catalog"
)

type MockSeeder struct {
	mock.Mock
}

func (m *MockSeeder) Seed(ctx context.Context, achievementsPath, challengesPath string) (*catalog.SeedResult, error) {
	args := m.Called(ctx, achievementsPath, challengesPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SeedResult), args.Error(1)
}

type countingCache struct {
	clears int
}

func (c *countingCache) Clear() { c.clears++ }

func TestCatalogRefreshJob(t *testing.T) {
	tests := []struct {
		name       string
		seedErr    error
		wantErr    bool
		wantClears int
	}{
		{name: "seeds then clears cache", wantClears: 1},
		{name: "seed failure keeps cache", seedErr: errors.New("bad file"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seeder := new(MockSeeder)
			if tt.seedErr != nil {
				seeder.On("Seed", mock.Anything, "a.json", "c.json").Return(nil, tt.seedErr)
			} else {
				seeder.On("Seed", mock.Anything, "a.json", "c.json").
					Return(&catalog.SeedResult{Achievements: 3, Challenges: 2, WindowsKept: 1}, nil)
			}
			cache := &countingCache{}

			err := NewCatalogRefreshJob(seeder, cache, "a.json", "c.json").Process(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.seedErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantClears, cache.clears)
			seeder.AssertExpectations(t)
		})
	}
}

func TestCatalogRefreshJob_NilCache(t *testing.T) {
	seeder := new(MockSeeder)
	seeder.On("Seed", mock.Anything, "a.json", "c.json").Return(&catalog.SeedResult{}, nil)

	assert.NoError(t, NewCatalogRefreshJob(seeder, nil, "a.json", "c.json").Process(context.Background()))
}
