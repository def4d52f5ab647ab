package bootstrap

import (
	"log/slog"

	"github.com/osse101/Greenhouse_Go/internal/catalog"
	"github.com/osse101/Greenhouse_Go/internal/config"
	"github.com/osse101/Greenhouse_Go/internal/repository"
	"github.com/osse101/Greenhouse_Go/internal/scheduler"
	"github.com/osse101/Greenhouse_Go/internal/worker"
)

// BackgroundJobs owns the worker pool and scheduler driving periodic jobs
type BackgroundJobs struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// Stop halts the scheduler before the pool so no tick enqueues onto a stopped pool
func (b *BackgroundJobs) Stop() {
	if b == nil {
		return
	}
	b.Scheduler.Stop()
	b.Pool.Stop()
}

// StartBackgroundJobs schedules the catalog refresh. It returns nil when the
// interval is zero or catalog seeding is not enabled for the driver.
func StartBackgroundJobs(cfg *config.Config, store repository.Store, cache *catalog.Cache) *BackgroundJobs {
	seeding := cfg.SeedCatalog || cfg.StorageDriver == config.StorageDriverMemory
	if cfg.CatalogRefreshInterval <= 0 || !seeding {
		slog.Info(LogMsgCatalogRefreshDisabled)
		return nil
	}

	var clearer worker.CacheClearer
	if cache != nil {
		clearer = cache
	}
	job := worker.NewCatalogRefreshJob(catalog.NewSeeder(store, store), clearer, cfg.AchievementsPath, cfg.ChallengesPath)

	pool := worker.NewPool(backgroundWorkers, backgroundQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(JobNameCatalogRefresh, cfg.CatalogRefreshInterval, job)

	slog.Info(LogMsgCatalogRefreshScheduled, "interval", cfg.CatalogRefreshInterval)
	return &BackgroundJobs{Pool: pool, Scheduler: sched}
}
