package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/talent-matcher/internal/cache"
	"alfredoptarigan/talent-matcher/internal/config"
	"alfredoptarigan/talent-matcher/internal/handlers"
	applog "alfredoptarigan/talent-matcher/internal/logger"
	"alfredoptarigan/talent-matcher/internal/repositories"
	"alfredoptarigan/talent-matcher/internal/services"
)

func main() {
	cfg := config.Load()

	zl, err := applog.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zl.Sync()
	if !cfg.EnvFileLoaded {
		zl.Info("📄 No .env file found. Using default values.")
	}
	zl.Info("✅ Config loaded successfully", zap.String("env", cfg.Server.Env))

	db, err := config.InitDatabase(cfg, zl)
	if err != nil {
		zl.Fatal("❌ Failed to initialize database", zap.Error(err))
	}

	candidateRepo := repositories.NewCandidateRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	matchRepo := repositories.NewMatchRepository(db)
	zl.Info("✅ Repositories initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshots := cache.NewNoop()
	if cfg.Redis.URL != "" {
		rdb, err := config.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			zl.Fatal("❌ Failed to connect to Redis", zap.Error(err))
		}
		defer rdb.Close()
		snapshots = cache.NewRedisSnapshots(rdb, cfg.Redis.CacheTTL, zl.Named("cache"))
		zl.Info("✅ Redis snapshot cache enabled", zap.Duration("ttl", cfg.Redis.CacheTTL))
	}

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zl.Fatal("❌ Failed to create upload directory", zap.Error(err))
	}
	pdfParser := services.NewPDFParserService()

	// Summaries are optional; without a key matches are saved with none.
	var worker services.Worker
	if cfg.Gemini.APIKey != "" {
		generator, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Worker.RetryInitialDelay, zl.Named("gemini"))
		if err != nil {
			zl.Fatal("❌ Failed to initialize Gemini AI", zap.Error(err))
		}

		summarizer := services.NewSummarizer(
			matchRepo,
			candidateRepo,
			jobRepo,
			generator,
			cfg.Worker.RetryMaxAttempts,
			zl.Named("summarizer"),
		)
		worker = services.NewWorker(
			matchRepo,
			summarizer,
			cfg.Worker.Concurrency,
			cfg.Worker.PollInterval,
			zl.Named("worker"),
		)
		worker.Start(ctx)
	} else {
		zl.Warn("⚠️ GEMINI_API_KEY not set, match summaries disabled")
	}

	var summaries services.SummaryQueue
	if worker != nil {
		summaries = worker
	}

	candidateService := services.NewCandidateService(candidateRepo, jobRepo, storageService, pdfParser, snapshots, zl)
	jobService := services.NewJobService(candidateRepo, jobRepo, snapshots, zl)
	matchService := services.NewMatchService(matchRepo, candidateRepo, jobRepo, snapshots, summaries, zl)
	zl.Info("✅ Services initialized successfully")

	app := fiber.New(fiber.Config{
		AppName:      "Talent Matcher API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + handlers.UserIDHeader,
	}))

	handlers.RegisterRoutes(app, handlers.Handlers{
		Candidates: handlers.NewCandidateHandler(candidateService, cfg.Storage.MaxFileSize),
		Jobs:       handlers.NewJobHandler(jobService),
		Matches:    handlers.NewMatchHandler(matchService),
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Talent Matcher API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/candidates",
				"GET /api/v1/jobs",
				"GET /api/v1/matches/find",
				"POST /api/v1/matches",
				"GET /api/v1/stats",
			},
		})
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zl.Info("🛑 Shutting down server...")
		if worker != nil {
			worker.Stop()
		}
		cancel()
		if err := app.Shutdown(); err != nil {
			zl.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zl.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zl.Fatal("❌ Failed to start server", zap.Error(err))
	}
}
