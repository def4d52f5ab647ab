package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Greenhouse_Go/internal/config"
	"github.com/osse101/Greenhouse_Go/internal/database/memory"
	"github.com/osse101/Greenhouse_Go/internal/domain"
)

func newTestSeeder(store *memory.Store, now time.Time) *Seeder {
	s := NewSeeder(store, store)
	s.now = func() time.Time { return now }
	return s
}

func TestSeeder_SeedsShippedConfigs(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	ctx := context.Background()

	result, err := newTestSeeder(store, now).Seed(ctx, config.ConfigPathAchievements, config.ConfigPathChallenges)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Achievements)
	assert.Equal(t, 4, result.Challenges)
	assert.Zero(t, result.WindowsKept)

	defs, err := store.ListAchievements(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 5)
	byCode := make(map[string]domain.Achievement)
	for _, d := range defs {
		byCode[d.Code] = d
	}
	assert.Equal(t, domain.PlantCareCriteria(domain.ActionWater, 1), byCode["FIRST_WATER"].Criteria)
	assert.Equal(t, domain.LevelReachCriteria(10), byCode["LEVEL_10"].Criteria)
	assert.Equal(t, domain.CurrencyEarnCriteria(100), byCode["CURRENCY_100"].Criteria)
	assert.True(t, byCode["CURRENCY_100"].IsActive)

	care, err := store.GetChallenge(ctx, "COMPLETE_CARE")
	require.NoError(t, err)
	assert.Equal(t, now, care.StartTime)
	assert.Equal(t, now.Add(7*24*time.Hour), care.EndTime)
	assert.Len(t, care.Requirements, 3)
	assert.Equal(t, domain.UnlimitedParticipants, care.MaxParticipants)
	assert.Equal(t, domain.DifficultyHard, care.Difficulty)

	top, err := store.GetChallenge(ctx, "TOP_GROWER")
	require.NoError(t, err)
	assert.Equal(t, 100, top.MaxParticipants)
	assert.Equal(t, domain.RequirementLevelUp, top.Requirements[0].Action)
}

func TestSeeder_KeepsOpenWindowsAndCounts(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	first := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	_, err := newTestSeeder(store, first).Seed(ctx, config.ConfigPathAchievements, config.ConfigPathChallenges)
	require.NoError(t, err)

	c, err := store.GetChallenge(ctx, "DAILY_WATER")
	require.NoError(t, err)
	_, err = store.Enroll(ctx, domain.NewParticipation("acct", c, first))
	require.NoError(t, err)

	// two days later every window is still open
	later := first.Add(48 * time.Hour)
	result, err := newTestSeeder(store, later).Seed(ctx, config.ConfigPathAchievements, config.ConfigPathChallenges)
	require.NoError(t, err)
	assert.Equal(t, 4, result.WindowsKept)

	c, err = store.GetChallenge(ctx, "DAILY_WATER")
	require.NoError(t, err)
	assert.Equal(t, first, c.StartTime)
	assert.Equal(t, 1, c.CurrentParticipants)

	// once a week has passed the weekly windows reopen from the new seeding time
	tenDaysLater := first.Add(10 * 24 * time.Hour)
	result, err = newTestSeeder(store, tenDaysLater).Seed(ctx, config.ConfigPathAchievements, config.ConfigPathChallenges)
	require.NoError(t, err)
	assert.Equal(t, 1, result.WindowsKept, "only the 30-day challenge is still open")

	c, err = store.GetChallenge(ctx, "DAILY_WATER")
	require.NoError(t, err)
	assert.Equal(t, tenDaysLater, c.StartTime)
	assert.Zero(t, c.CurrentParticipants, "a reopened window starts with no seats taken")

	// the same account joins the new period alongside its old participation
	_, err = store.Enroll(ctx, domain.NewParticipation("acct", c, tenDaysLater))
	require.NoError(t, err)
	participations, err := store.ListParticipations(ctx, "acct")
	require.NoError(t, err)
	assert.Len(t, participations, 2)
}

func TestSeeder_RejectsBadFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	tests := []struct {
		name    string
		path    string
		load    func(s *Seeder, path string) error
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing file",
			path:    filepath.Join(dir, "absent.json"),
			load:    func(s *Seeder, p string) error { _, err := s.LoadAchievements(p); return err },
			wantMsg: "failed to read catalog config",
		},
		{
			name:    "schema violation",
			path:    write("bad_rarity.json", `{"version":"1.0","achievements":[{"code":"A","title":"A","rarity":"mythic","criteria":{"type":"level_reach","level":2},"reward":{}}]}`),
			load:    func(s *Seeder, p string) error { _, err := s.LoadAchievements(p); return err },
			wantMsg: "schema validation failed",
		},
		{
			name:    "missing threshold",
			path:    write("no_level.json", `{"version":"1.0","achievements":[{"code":"A","title":"A","rarity":"common","criteria":{"type":"level_reach"},"reward":{}}]}`),
			load:    func(s *Seeder, p string) error { _, err := s.LoadAchievements(p); return err },
			wantErr: domain.ErrInvalidCriteria,
		},
		{
			name:    "duplicate achievement",
			path:    write("dup_ach.json", `{"version":"1.0","achievements":[{"code":"A","title":"A","rarity":"common","criteria":{"type":"level_reach","level":2},"reward":{}},{"code":"A","title":"B","rarity":"common","criteria":{"type":"level_reach","level":3},"reward":{}}]}`),
			load:    func(s *Seeder, p string) error { _, err := s.LoadAchievements(p); return err },
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "duplicate challenge",
			path:    write("dup_ch.json", `{"version":"1.0","challenges":[{"code":"C","title":"C","duration_hours":1,"requirements":[{"action":"water","count":1}],"reward":{},"difficulty":"easy","category":"daily"},{"code":"C","title":"C","duration_hours":2,"requirements":[{"action":"prune","count":1}],"reward":{},"difficulty":"easy","category":"daily"}]}`),
			load:    func(s *Seeder, p string) error { _, err := s.LoadChallenges(p); return err },
			wantErr: domain.ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.load(NewSeeder(memory.NewStore(), memory.NewStore()), tt.path)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
