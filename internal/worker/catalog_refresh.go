package worker

import (
	"context"
	"fmt"

	"github.com/osse101/Greenhouse_Go/internal/catalog"
	"github.com/osse101/Greenhouse_Go/internal/logger"
)

// CatalogSeeder re-reads the definition files and upserts them
type CatalogSeeder interface {
	Seed(ctx context.Context, achievementsPath, challengesPath string) (*catalog.SeedResult, error)
}

// CacheClearer drops every cached catalog entry
type CacheClearer interface {
	Clear()
}

// CatalogRefreshJob re-seeds the catalog so challenge windows that closed
// are reopened for a new period, then clears the read cache.
type CatalogRefreshJob struct {
	seeder           CatalogSeeder
	cache            CacheClearer
	achievementsPath string
	challengesPath   string
}

// NewCatalogRefreshJob creates the job; cache may be nil
func NewCatalogRefreshJob(seeder CatalogSeeder, cache CacheClearer, achievementsPath, challengesPath string) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		seeder:           seeder,
		cache:            cache,
		achievementsPath: achievementsPath,
		challengesPath:   challengesPath,
	}
}

// Process runs one refresh. The cache is left alone when seeding fails.
func (j *CatalogRefreshJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCatalogRefreshStarting)

	result, err := j.seeder.Seed(ctx, j.achievementsPath, j.challengesPath)
	if err != nil {
		return fmt.Errorf(ErrMsgCatalogRefreshFailed, err)
	}
	if j.cache != nil {
		j.cache.Clear()
	}

	log.Info(LogMsgCatalogRefreshCompleted,
		"achievements", result.Achievements,
		"challenges", result.Challenges,
		"windows_kept", result.WindowsKept)
	return nil
}
