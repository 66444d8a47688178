package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/publishine/publishine-backend/internal/api"
	"github.com/publishine/publishine-backend/internal/auth"
	"github.com/publishine/publishine-backend/internal/config"
	"github.com/publishine/publishine-backend/internal/db"
	"github.com/publishine/publishine-backend/internal/logger"
	"github.com/publishine/publishine-backend/internal/mail"
	"github.com/publishine/publishine-backend/internal/metrics"
	"github.com/publishine/publishine-backend/internal/repository/postgres"
	"github.com/publishine/publishine-backend/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	tm := auth.NewTokenManager(cfg.JWTSecret, auth.TokenTTL)
	mailer := mail.NewSMTPMailer(cfg)
	userSvc := services.NewUserService(repos.Users, mailer, tm)

	metrics.Init()
	r := api.NewRouter(cfg, userSvc, repos.Users, tm)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
