package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"jobboard_backend/internal/app/di"
	"jobboard_backend/internal/app/router"
	adminadapters "jobboard_backend/internal/feature/admin/adapters"
	adminhandler "jobboard_backend/internal/feature/admin/transport/handler"
	adminusecase "jobboard_backend/internal/feature/admin/usecase"
	authadapters "jobboard_backend/internal/feature/auth/adapters"
	authhandler "jobboard_backend/internal/feature/auth/transport/handler"
	authusecase "jobboard_backend/internal/feature/auth/usecase"
	candidateadapters "jobboard_backend/internal/feature/candidate/adapters"
	candidatehandler "jobboard_backend/internal/feature/candidate/transport/handler"
	candidateusecase "jobboard_backend/internal/feature/candidate/usecase"
	companyadapters "jobboard_backend/internal/feature/company/adapters"
	companyhandler "jobboard_backend/internal/feature/company/transport/handler"
	companyusecase "jobboard_backend/internal/feature/company/usecase"
	"jobboard_backend/internal/platform/cache"
	"jobboard_backend/internal/platform/config"
	infradb "jobboard_backend/internal/platform/db"
	healthhandler "jobboard_backend/internal/platform/http/handler"
	jwtmw "jobboard_backend/internal/platform/jwt"
	"jobboard_backend/internal/platform/mailer"
	infraredis "jobboard_backend/internal/platform/redis"
	"jobboard_backend/internal/shared/ratelimiter"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	dbCfg, err := infradb.LoadConfigFromEnv()
	if err != nil {
		slog.Error("failed to read database config", "error", err)
		os.Exit(1)
	}
	db, err := infradb.Open(dbCfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := infradb.Close(db); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Redis
	var rdb *redisv9.Client
	if redisCfg, err := infraredis.LoadConfigFromEnv(); err != nil {
		slog.Warn("invalid Redis config, running without Redis", "error", err)
	} else if tmp, err := infraredis.NewRedisClient(ctx, redisCfg); err != nil {
		slog.Warn("Redis unavailable, running without cache", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	sessions := jwtmw.NewManager(cfg.Session.Secret, cfg.Session.TTL)
	revocations := di.NewSessionStore(rdb, db)

	var mail authusecase.Mailer = mailer.LogMailer{}
	if cfg.Mail.Host != "" {
		mail = mailer.NewSMTPMailer(cfg.Mail)
	} else {
		slog.Warn("SMTP_HOST is not set; outbound email is only logged")
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	companyRepo := companyadapters.NewCompanyGorm(db)
	applicationRepo := companyadapters.NewApplicationGorm(db)
	adminRepo := adminadapters.NewAdminGorm(db)
	candidateRepo := candidateadapters.NewCandidateGorm(db)

	profiles := cache.NewCachingProfileResolver(rdb, cfg.PublicProfileCacheTTL, companyusecase.NewProfileResolver(companyRepo), "profile")

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessions, revocations, mail, cfg.BaseURL)
	companyUC := companyusecase.NewCompanyUsecase(companyRepo, applicationRepo, profiles)
	adminUC := adminusecase.NewAdminUsecase(adminRepo, profiles)
	candidateUC := candidateusecase.NewCandidateUsecase(candidateRepo)

	// Handler
	handlers := router.Handlers{
		Auth: authhandler.NewAuthHandler(authUC, authhandler.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
		}),
		Admin:     adminhandler.NewAdminHandler(adminUC),
		Candidate: candidatehandler.NewCandidateHandler(candidateUC),
		Company:   companyhandler.NewCompanyHandler(companyUC, profiles),
	}

	checks := []healthhandler.Check{{
		Name: "database",
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}}
	if rdb != nil {
		checks = append(checks, healthhandler.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}

	engine := router.NewRouter(handlers, router.Options{
		Sessions:    sessions,
		CookieName:  cfg.Session.CookieName,
		Revocations: revocations,
		Users:       userRepo,
		AuthLimiter: ratelimiter.New(rdb, "auth", cfg.AuthRateLimit, cfg.AuthRateLimitWindow),
		CORSOrigins: cfg.CORSOrigins,
		ReadyChecks: checks,
		FrontendDir: cfg.FrontendDir,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", cfg.HTTPAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			slog.Error("http server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
