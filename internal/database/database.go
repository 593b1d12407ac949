// Package database opens the store selected by configuration.
package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/harentsoaR/contact-directory/internal/config"
	"github.com/harentsoaR/contact-directory/internal/repository"
	"github.com/harentsoaR/contact-directory/internal/repository/memory"
	"github.com/harentsoaR/contact-directory/internal/repository/mongodb"
	"github.com/harentsoaR/contact-directory/internal/repository/postgres"
)

// Open connects to the configured store. The caller owns the returned handle
// and must Close it on shutdown.
func Open(ctx context.Context, cfg *config.StoreConfig, logger *zap.Logger) (repository.Store, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	switch cfg.Driver {
	case config.DriverPostgres:
		store, err := postgres.Open(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverMongo:
		store, err := mongodb.Open(ctx, cfg.Mongo, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
