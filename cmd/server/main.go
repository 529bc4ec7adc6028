// Command server runs the Ella Quest platform API.
//
// Configuration via environment variables:
//
//	PORT                        - Listen port (default: 8080)
//	ENV                         - Deployment environment (default: development)
//	LOG_LEVEL                   - Minimum log level (default: info)
//	JWT_SECRET                  - HMAC signing secret for access tokens (required)
//	JWT_TTL                     - Access token lifetime (default: 24h)
//	BCRYPT_COST                 - bcrypt work factor (default: 10)
//	ALLOW_OPEN_ACCOUNT_CREATION - Leave /create-account unauthenticated for bootstrap (default: false)
//	MONGO_URI, MONGO_DB         - MongoDB connection settings
//	REDIS_ADDR, REDIS_PASSWORD, REDIS_DB - Redis connection settings
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

	"github.com/ellaquest/platform-api/internal/api"
	mongodb "github.com/ellaquest/platform-api/internal/infrastructure/db/mongo"
	redisdb "github.com/ellaquest/platform-api/internal/infrastructure/db/redis"
	"github.com/ellaquest/platform-api/internal/pkg/config"
	"github.com/ellaquest/platform-api/pkg/logger"
)

// @title        Ella Quest Platform API
// @version      1.0
// @description  Accounts, role-based access and curriculum content for the Ella Quest learning platform.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "server failed:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level: cfg.LogLevel,
		Env:   cfg.Env,
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close")
		}
	}()

	e := api.NewRouter(db, rdb, cfg, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
