package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mockprep/interview/internal/config"
	"mockprep/interview/internal/handlers"
	"mockprep/interview/internal/jobs"
	"mockprep/interview/internal/llm"
	_ "mockprep/interview/internal/llm/gemini"
	"mockprep/interview/internal/metrics"
	"mockprep/interview/internal/oracle"
	"mockprep/interview/internal/prompts"
	"mockprep/interview/internal/repositories"
	"mockprep/interview/internal/routers"
	"mockprep/interview/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func newRouter(cfg *config.Config, interviewHandler *handlers.InterviewHandler, healthHandler *handlers.HealthHandler) *chi.Mux {
	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, metrics.Middleware)

	// operational endpoints stay outside the request timeout
	routers.HealthRoutes(router, healthHandler, metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
		routers.InterviewRoutes(r, interviewHandler)
	})

	return router
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// logger config depends on cfg, fall back to a production logger
		fallback, _ := zap.NewProduction()
		fallback.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger, err := utils.NewLogger(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Gemini.Model),
		zap.String("db_driver", cfg.Database.Driver))

	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	// AI provider based on configuration
	aiProvider, err := llm.NewProvider(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	db, err := repositories.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	repo := repositories.NewInterviewRepository(db)

	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repo.InitSchema(initCtx); err != nil {
		initCancel()
		logger.Fatal("Failed to initialize schema", zap.Error(err))
	}
	initCancel()

	questionGenerator := oracle.NewQuestionGenerator(aiProvider, promptManager, logger.Named("questions"))
	responseScorer := oracle.NewResponseScorer(aiProvider, promptManager, logger.Named("scoring"))

	interviewHandler := handlers.NewInterviewHandler(repo, questionGenerator, responseScorer, logger)
	healthHandler := handlers.NewHealthHandler(aiProvider, promptManager, repo, cfg)

	purgeJob := jobs.NewHistoryPurgeJob(repo, &jobs.PurgeConfig{
		Schedule:  cfg.HistoryPurgeSchedule,
		ExportDir: cfg.HistoryExportDir,
	}, logger.Named("purge"))
	if err := purgeJob.Start(); err != nil {
		logger.Fatal("Failed to start history purge job", zap.Error(err))
	}

	router := newRouter(cfg, interviewHandler, healthHandler)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Interview service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Interview service shutting down...")

	purgeJob.Stop()

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("Interview service exited")
}
