package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Greenhouse_Go/internal/catalog"
	"github.com/osse101/Greenhouse_Go/internal/challenge"
	"github.com/osse101/Greenhouse_Go/internal/config"
	"github.com/osse101/Greenhouse_Go/internal/database/memory"
	"github.com/osse101/Greenhouse_Go/internal/domain"
	"github.com/osse101/Greenhouse_Go/internal/event"
)

func memoryConfig() *config.Config {
	return &config.Config{
		StorageDriver:    config.StorageDriverMemory,
		AchievementsPath: config.ConfigPathAchievements,
		ChallengesPath:   config.ConfigPathChallenges,
	}
}

func TestOpenStore(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		store, err := OpenStore(context.Background(), memoryConfig())
		require.NoError(t, err)
		assert.IsType(t, &memory.Store{}, store)
		assert.NoError(t, store.Ping(context.Background()))
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.StorageDriver = "sqlite"
		_, err := OpenStore(context.Background(), cfg)
		assert.ErrorContains(t, err, `unknown storage driver "sqlite"`)
	})
}

func TestSyncCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("memory always seeds", func(t *testing.T) {
		store := memory.NewStore()
		result, err := SyncCatalog(ctx, memoryConfig(), store)
		require.NoError(t, err)
		assert.Positive(t, result.Achievements)
		assert.Positive(t, result.Challenges)

		_, err = store.GetChallenge(ctx, "DAILY_WATER")
		assert.NoError(t, err)
	})

	t.Run("postgres without SEED_CATALOG skips", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.StorageDriver = config.StorageDriverPostgres
		store := memory.NewStore()

		result, err := SyncCatalog(ctx, cfg, store)
		require.NoError(t, err)
		assert.Zero(t, result.Achievements)

		_, err = store.GetChallenge(ctx, "DAILY_WATER")
		assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.ChallengesPath = "configs/nope.json"
		_, err := SyncCatalog(ctx, cfg, memory.NewStore())
		assert.ErrorContains(t, err, ErrMsgFailedSeedCatalog)
	})
}

func TestRegisterEventHandlers_WiresCacheInvalidation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	_, err := SyncCatalog(ctx, memoryConfig(), store)
	require.NoError(t, err)

	bus := InitializeEventSystem()
	cache := catalog.NewCache(store, 16, 0)
	RegisterEventHandlers(EventHandlerDependencies{
		EventBus:         bus,
		ChallengeService: challenge.NewService(store, cache, nil, bus),
		CatalogCache:     cache,
	})

	_, err = cache.GetChallenge(ctx, "DAILY_WATER")
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	require.NoError(t, bus.Publish(ctx, event.NewChallengeEvent(event.ChallengeJoined, "acct", "DAILY_WATER", 0)))
	assert.Zero(t, cache.Len())
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, 10)
	assert.Contains(t, names, "notes.txt")
	assert.NotContains(t, names, "session_2026-01-03_00-00-00.log")
	assert.Contains(t, names, "session_2026-01-04_00-00-00.log")
}

func TestSetupLogger_WritesSessionFile(t *testing.T) {
	dir := t.TempDir()
	cfg := memoryConfig()
	cfg.LogDir = dir
	cfg.LogLevel = "info"
	cfg.LogFormat = "json"

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgStartingGreenhouse)
}

func TestStartBackgroundJobs(t *testing.T) {
	t.Run("disabled by zero interval", func(t *testing.T) {
		cfg := memoryConfig()
		assert.Nil(t, StartBackgroundJobs(cfg, memory.NewStore(), nil))
	})

	t.Run("disabled when postgres does not seed", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.StorageDriver = config.StorageDriverPostgres
		cfg.CatalogRefreshInterval = time.Millisecond
		assert.Nil(t, StartBackgroundJobs(cfg, memory.NewStore(), nil))
	})

	t.Run("refresh clears the cache", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewStore()
		_, err := SyncCatalog(ctx, memoryConfig(), store)
		require.NoError(t, err)

		cache := catalog.NewCache(store, 16, 0)
		_, err = cache.GetChallenge(ctx, "DAILY_WATER")
		require.NoError(t, err)
		require.Equal(t, 1, cache.Len())

		cfg := memoryConfig()
		cfg.CatalogRefreshInterval = 10 * time.Millisecond
		jobs := StartBackgroundJobs(cfg, store, cache)
		require.NotNil(t, jobs)
		defer jobs.Stop()

		assert.Eventually(t, func() bool { return cache.Len() == 0 }, time.Second, 5*time.Millisecond)
	})
}
