package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/talent-matcher/internal/cache"
	"alfredoptarigan/talent-matcher/internal/config"
	"alfredoptarigan/talent-matcher/internal/logger"
	"alfredoptarigan/talent-matcher/internal/repositories"
	"alfredoptarigan/talent-matcher/internal/services"
)

// deps holds the services a command needs. close releases connections.
type deps struct {
	candidates services.CandidateService
	jobs       services.JobService
	matches    services.MatchService
	log        *zap.Logger
	close      func()
}

// openDeps connects to the same database and cache as the API server. No
// summary worker runs here, so matches saved by the CLI get no summary.
func openDeps(ctx context.Context) (*deps, error) {
	cfg := config.Load()
	// The CLI never needs the gorm query log.
	cfg.Server.Env = "cli"

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if !cfg.EnvFileLoaded {
		log.Debug("No .env file found. Using default values.")
	}

	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	closers := []func(){}
	if sqlDB, err := db.DB(); err == nil {
		closers = append(closers, func() { sqlDB.Close() })
	}

	snapshots := cache.NewNoop()
	if cfg.Redis.URL != "" {
		rdb, err := config.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Warn("⚠️ Redis unavailable, continuing without snapshot cache", zap.Error(err))
		} else {
			closers = append(closers, func() { rdb.Close() })
			snapshots = cache.NewRedisSnapshots(rdb, cfg.Redis.CacheTTL, log.Named("cache"))
		}
	}

	candidateRepo := repositories.NewCandidateRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	matchRepo := repositories.NewMatchRepository(db)
	storage := services.NewStorageService(cfg.Storage.UploadPath)

	return &deps{
		candidates: services.NewCandidateService(candidateRepo, jobRepo, storage, services.NewPDFParserService(), snapshots, log),
		jobs:       services.NewJobService(candidateRepo, jobRepo, snapshots, log),
		matches:    services.NewMatchService(matchRepo, candidateRepo, jobRepo, snapshots, nil, log),
		log:        log,
		close: func() {
			for _, c := range closers {
				c()
			}
			log.Sync()
		},
	}, nil
}
