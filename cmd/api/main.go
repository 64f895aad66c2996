// @title           NC News API
// @version         1.0
// @description     Articles, topics, users and comments for a news aggregation site.

// @host      localhost:9090
// @BasePath  /api

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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nc-news-api/internal/config"
	"nc-news-api/internal/database"
	"nc-news-api/internal/logger"
	"nc-news-api/internal/metrics"
	"nc-news-api/internal/repository"
	"nc-news-api/internal/router"
)

const dbStatsInterval = 15 * time.Second

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("Server stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("Starting NC News API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("db_driver", cfg.Database.Driver),
	)

	db, err := database.New(cfg.Database.Options())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("Failed to close database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := database.AutoMigrate(db, log); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.NewWithLogger(log)

		if err := database.RegisterMetricsCallbacks(db, m); err != nil {
			log.Warn("Failed to register database metrics callbacks", zap.Error(err))
		}
		database.StartDBStatsCollector(ctx, db, m, dbStatsInterval)

		collector := metrics.NewBusinessMetricsCollector(
			repository.NewArticleRepository(db),
			repository.NewCommentRepository(db),
			m,
			log,
			cfg.Metrics.CollectorSchedule,
		)
		if err := collector.Start(); err != nil {
			log.Warn("Failed to start business metrics collector", zap.Error(err))
		} else {
			defer collector.Stop()
		}
		log.Info("Metrics initialized")
	}

	r := router.Setup(router.Config{
		DB:               db,
		Logger:           log,
		BasePath:         cfg.Server.BasePath,
		Metrics:          m,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		SanitizeComments: cfg.Comments.SanitizeHTML,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("NC News API listening",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
	return nil
}
