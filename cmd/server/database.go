package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/phrazzld/eazybank-api/internal/cache"
	"github.com/phrazzld/eazybank-api/internal/config"
	"github.com/phrazzld/eazybank-api/internal/platform/redis"
)

// setupAppDatabase establishes a connection to the database and configures
// the connection pool. It returns a nil *sql.DB when the memory driver is
// configured.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	if cfg.Database.Driver != config.DriverPostgres {
		logger.Info("Using in-memory storage")
		return nil, nil
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	maxOpen := cfg.Database.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen / 2)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established", "max_open_conns", maxOpen)
	return db, nil
}

// setupAppCache connects to Redis when caching is enabled. It returns a nil
// cache otherwise.
func setupAppCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (cache.Cache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	c, err := redis.New(connectCtx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("Redis cache connected",
		"addr", cfg.Cache.RedisAddr,
		"ttl_seconds", cfg.Cache.TTLSeconds)
	return c, nil
}
