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
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"rockethub/database"
	"rockethub/internal/config"
	"rockethub/internal/http-api/handler"
	"rockethub/internal/http-api/middleware"
	"rockethub/internal/http-api/repository"
	"rockethub/internal/http-api/router"
	"rockethub/internal/http-api/service"
	"rockethub/internal/http-api/templates"
	"rockethub/internal/logger"
	"rockethub/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, level, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info("database schema is up to date")
	}

	health := map[string]handler.Pinger{
		"postgres": func(ctx context.Context) error { return database.Ping(ctx, db) },
	}

	var flashes session.FlashStore
	if cfg.RedisURL != "" {
		rdb, err := newRedisClient(cfg)
		if err != nil {
			return err
		}
		defer rdb.Close()
		flashes = session.NewRedisFlashStore(rdb, cfg.FlashTTL)
		health["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info("flash messages stored in redis")
	} else {
		flashes = session.NewMemoryFlashStore(cfg.FlashTTL)
		log.Warn("REDIS_URL is empty, flash messages are kept in memory")
	}

	tmpl, err := templates.Load()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	rocketRepo := repository.NewRocketRepository(db)
	cosmodromeRepo := repository.NewCosmodromeRepository(db)
	launchRepo := repository.NewLaunchRepository(db)

	engine := router.New(router.Services{
		Rockets:     service.NewRocketService(rocketRepo, launchRepo),
		Cosmodromes: service.NewCosmodromeService(cosmodromeRepo, launchRepo),
		Launches:    service.NewLaunchService(launchRepo, rocketRepo, cosmodromeRepo),
		Search:      service.NewSearchService(rocketRepo, cosmodromeRepo, launchRepo),
		Dashboard:   service.NewDashboardService(rocketRepo, cosmodromeRepo, launchRepo),
	}, router.Options{
		Templates:      tmpl,
		Flashes:        flashes,
		Logger:         log,
		RequestTimeout: cfg.RequestTimeout,
		CORSOrigins:    cfg.CORSOrigins,
		RateLimiter:    middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		SecureCookies:  cfg.IsProduction(),
		Health:         health,
		LogLevel:       level,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	log.Info("server running", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

func newRedisClient(cfg *config.Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}
