package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campaign-docs/internal/auditlog"
	"campaign-docs/internal/auth"
	"campaign-docs/internal/campaign"
	"campaign-docs/internal/config"
	"campaign-docs/internal/creative"
	"campaign-docs/internal/matrix"
	"campaign-docs/internal/mediakit"
	"campaign-docs/internal/ratelimit"
	"campaign-docs/internal/socialad"
	"campaign-docs/internal/taxonomy"
	"campaign-docs/pkg/logger"
	"campaign-docs/pkg/utils"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))

	if cfg.Redis.Enabled() {
		rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.RedisAddr()})
		if err != nil {
			log.Error("redis init failed", "err", err)
			os.Exit(1)
		}
		defer rdb.Close()
		r.Use(ratelimit.New(rdb, cfg.RateLimit.RequestsPerMinute, time.Minute).Middleware())
	}

	if cfg.Auth.Enabled() {
		authManager, err := auth.NewManager(cfg.Auth)
		if err != nil {
			log.Error("auth init failed", "err", err)
			os.Exit(1)
		}
		r.Use(auth.Identity(authManager))
	}

	// Audit trail is served from memory; Postgres, when configured, is a
	// durable secondary copy only.
	logsSvc := auditlog.NewService(auditlog.NewMemoryRepo())
	var db *sql.DB
	if cfg.DB.Enabled() {
		db, err = utils.OpenPostgres(rootCtx, "pgx", cfg.PostgresDSN(), utils.PostgresPoolConfig{})
		if err != nil {
			log.Error("postgres init failed", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		logsSvc.SetArchive(auditlog.NewPostgresArchive(db))
	}

	campaignSvc := campaign.NewService(logsSvc)

	deps := handlerDeps{
		db:        db,
		logs:      logsSvc,
		campaigns: campaignSvc,
		creative:  creative.NewService(campaignSvc, logsSvc),
		matrix:    matrix.NewService(campaignSvc, logsSvc),
		mediaKits: mediakit.NewService(campaignSvc, logsSvc),
		socialAds: socialad.NewService(campaignSvc, logsSvc),
		taxonomy:  taxonomy.NewService(campaignSvc, logsSvc),
	}
	registerRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}

	_ = logger.ShutdownFlush(shutdownCtx, 2*time.Second)
}
