package main

import (
	"TimeCapsule/internal/config"
	"TimeCapsule/internal/handlers"
	"TimeCapsule/internal/middleware"
	"TimeCapsule/internal/repo"
	"TimeCapsule/internal/service"
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	if err := run(cfg, sugar); err != nil {
		sugar.Errorw("Server failed", "error", err)
	}
}

func run(cfg *config.Config, sugar *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	policy, err := repo.ParsePolicy(cfg.CategoryOnDelete, cfg.ContactOnDelete, cfg.DuplicateSchedule)
	if err != nil {
		return err
	}

	backend, err := repo.Open(cfg.DatabaseDSN, policy)
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			sugar.Warnw("failed to close storage", "error", err)
		}
	}()

	userService := service.NewUserService(backend.Storage)
	journalService := service.NewJournalService(backend.Storage, sugar)
	mediaService := service.NewMediaService(backend.Blobs, cfg.MediaMaxBytes(), sugar)

	var demoUserID int64
	if cfg.DemoMode {
		demoUserID, err = service.Seed(ctx, userService, journalService)
		if err != nil {
			return err
		}
	}

	h := handlers.NewHandler(userService, journalService, mediaService, sugar, cfg, demoUserID)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	sugar.Infow("Starting server",
		"addr", srv.Addr,
		"storage", backend.Kind,
		"demoMode", cfg.DemoMode,
		"categoryOnDelete", policy.CategoryOnDelete,
		"contactOnDelete", policy.ContactOnDelete,
		"duplicateSchedule", policy.DuplicateSchedule,
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sugar.Infow("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
