package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/config"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/api"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/broadcast"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/ledger"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/persist"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/services"
	"github.com/MehmetFatih-Mvc/zirveclub-nginx/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Fatal("failed to hash admin password", zap.Error(err))
	}

	pm, err := persist.NewManager(cfg.DataDir)
	if err != nil {
		zap.L().Fatal("failed to prepare data directory", zap.Error(err))
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		zap.L().Fatal("failed to prepare upload directory", zap.Error(err))
	}

	store := ledger.NewStore()
	hub := broadcast.NewHub()
	svc := services.NewCoordinator(store, pm, hub, cfg.AdminUsername, string(adminHash))

	pm.LoadAll(store)
	svc.BackfillUserNumbers()
	zap.L().Info("ledger loaded", zap.Int("users", store.UserCount()))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.NewRouter(cfg, svc, hub),
	}

	go func() {
		zap.L().Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	zap.L().Info("shutting down, flushing ledger")
	svc.Flush()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
	}
}
