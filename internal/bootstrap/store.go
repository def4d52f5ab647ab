package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Greenhouse_Go/internal/catalog"
	"github.com/osse101/Greenhouse_Go/internal/config"
	"github.com/osse101/Greenhouse_Go/internal/database"
	"github.com/osse101/Greenhouse_Go/internal/database/memory"
	"github.com/osse101/Greenhouse_Go/internal/database/postgres"
	"github.com/osse101/Greenhouse_Go/internal/repository"
)

// OpenStore opens the entity store selected by cfg.StorageDriver. For postgres
// the pool is created and every pending migration applied before returning.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		slog.Info(LogMsgStoreOpened, "driver", cfg.StorageDriver)
		return memory.NewStore(), nil

	case config.StorageDriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenPool, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgStoreOpened, "driver", cfg.StorageDriver, "host", cfg.DBHost, "db", cfg.DBName)
		return postgres.NewStore(pool), nil

	default:
		return nil, fmt.Errorf(ErrMsgUnknownDriver, cfg.StorageDriver)
	}
}

// SyncCatalog seeds achievement and challenge definitions from the JSON configs.
// The memory driver always seeds since it starts empty.
func SyncCatalog(ctx context.Context, cfg *config.Config, store repository.Store) (*catalog.SeedResult, error) {
	if !cfg.SeedCatalog && cfg.StorageDriver != config.StorageDriverMemory {
		slog.Info(LogMsgCatalogSeedSkipped)
		return &catalog.SeedResult{}, nil
	}

	result, err := catalog.NewSeeder(store, store).Seed(ctx, cfg.AchievementsPath, cfg.ChallengesPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSeedCatalog, err)
	}
	return result, nil
}
