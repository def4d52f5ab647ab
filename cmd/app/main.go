package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/Greenhouse_Go/internal/achievement"
	"github.com/osse101/Greenhouse_Go/internal/bootstrap"
	"github.com/osse101/Greenhouse_Go/internal/catalog"
	"github.com/osse101/Greenhouse_Go/internal/challenge"
	"github.com/osse101/Greenhouse_Go/internal/config"
	"github.com/osse101/Greenhouse_Go/internal/cooldown"
	"github.com/osse101/Greenhouse_Go/internal/garden"
	"github.com/osse101/Greenhouse_Go/internal/handler"
	"github.com/osse101/Greenhouse_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

// @title Greenhouse API
// @version 1.0
// @description Garden progression engine: plants, care actions, achievements and challenges.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := config.ValidateEnv(); err != nil {
		slog.Error("Environment check failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx := context.Background()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		os.Exit(1)
	}

	if _, err := bootstrap.SyncCatalog(ctx, cfg, store); err != nil {
		slog.Error("Failed to sync catalog", "error", err)
		store.Close()
		os.Exit(1)
	}

	bus := bootstrap.InitializeEventSystem()
	catalogCache := catalog.NewCache(store, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)

	gardenService := garden.NewService(
		store,
		catalogCache,
		achievement.NewEvaluator(achievement.CountMode(cfg.AchievementCountMode)),
		cooldown.NewGuard(cooldown.Config{DevMode: cfg.DevMode, Window: cfg.ActionCooldown}),
		bus,
		garden.WithMaxRetries(cfg.StoreMaxRetries),
	)
	achievementService := achievement.NewService(catalogCache, gardenService)
	challengeService := challenge.NewService(store, catalogCache, gardenService, bus,
		challenge.WithMaxRetries(cfg.StoreMaxRetries))

	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:         bus,
		ChallengeService: challengeService,
		CatalogCache:     catalogCache,
	})

	jobs := bootstrap.StartBackgroundJobs(cfg, store, catalogCache)

	if cfg.Version != "" {
		handler.Version = cfg.Version
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		JWTSecret:      cfg.JWTSecret,
		TrustedProxies: cfg.TrustedProxies,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}, server.Services{
		Store:        store,
		Garden:       gardenService,
		Achievements: achievementService,
		Challenges:   challengeService,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Jobs:   jobs,
		Store:  store,
	})
}
