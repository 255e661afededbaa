package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/justsurfingit/jobboard/internal/database"
	"github.com/justsurfingit/jobboard/internal/events"
	"github.com/justsurfingit/jobboard/internal/handlers"
	"github.com/justsurfingit/jobboard/internal/logging"
	"github.com/justsurfingit/jobboard/internal/metrics"
	"github.com/justsurfingit/jobboard/internal/services"
)

func main() {
	if err := run(); err != nil {
		l := logging.New("error", "")
		l.Error("jobboard api stopped", "err", err)
		_ = l.Sync()
		os.Exit(1)
	}
}

// run wires and serves the API until SIGINT/SIGTERM. Startup failures are
// returned after deferred cleanup has run.
func run() error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFile)
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Job store
	var store services.JobStore
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL, log)
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		defer func() { _ = database.Close(db) }()
		store = database.NewJobStore(db)
		log.Info("postgres connected")
	} else {
		store = database.NewMemoryStore()
		log.Warn("DATABASE_URL not set, jobs are kept in memory")
	}

	// 3. Job events
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RedisURL != "" {
		rdb, err := events.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, job events disabled", "err", err)
		} else {
			defer func() { _ = rdb.Close() }()
			publisher = events.NewRedisPublisher(rdb)
			log.Info("redis connected")
		}
	}

	// 4. Draft extraction
	var extractor handlers.DraftExtractor
	if cfg.GeminiAPIKey != "" {
		llm, err := services.NewLLMService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn("gemini client unavailable, extraction disabled", "err", err)
		} else {
			extractor = llm
		}
	}

	// 5. Services and handlers
	m := metrics.New()
	jobService := services.NewJobService(store, publisher, m, log.With("component", "jobs"))
	jobHandler := handlers.NewJobHandler(jobService, extractor)

	// 6. Router & CORS
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(log), m.Middleware())

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	// 7. Routes
	r.GET("/metrics", gin.WrapH(m.Handler()))
	handlers.RegisterRoutes(r.Group("/api"), jobHandler)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", cfg.Addr(), "version", handlers.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			cancel()
		}
	}()

	// 8. Graceful shutdown
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	default:
	}
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("graceful shutdown completed with error", "err", err)
		return nil
	}
	log.Info("stopped")
	return nil
}
