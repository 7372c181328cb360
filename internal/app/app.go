package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/lessonpath/lessonpath-backend/internal/adapter/postgres"
	lessonrepo "github.com/lessonpath/lessonpath-backend/internal/adapter/postgres/lesson"
	progressrepo "github.com/lessonpath/lessonpath-backend/internal/adapter/postgres/progress"
	studylogrepo "github.com/lessonpath/lessonpath-backend/internal/adapter/postgres/studylog"
	"github.com/lessonpath/lessonpath-backend/internal/config"
	progresssvc "github.com/lessonpath/lessonpath-backend/internal/service/progress"
	"github.com/lessonpath/lessonpath-backend/internal/transport/middleware"
	"github.com/lessonpath/lessonpath-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and handlers, and serves HTTP until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	progressRepo := progressrepo.New(pool)
	lessonRepo := lessonrepo.New(pool)
	studyLogRepo := studylogrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	progressService := progresssvc.NewService(logger, progressRepo, lessonRepo, studyLogRepo, txManager)

	progressHandler := rest.NewProgressHandler(progressService, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("POST /api/progress", progressHandler.Update)
	mux.HandleFunc("GET /api/progress/{memberId}/{lessonId}", progressHandler.Get)
	mux.HandleFunc("GET /api/members/{memberId}/study-logs", progressHandler.ListStudyLogs)
	mux.HandleFunc("GET /api/members/{memberId}/study-time", progressHandler.TotalStudyTime)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(mux)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
