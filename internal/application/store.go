package application

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"hospitalrun-locale/internal/config"
	"hospitalrun-locale/internal/domain/ports/repository"
	"hospitalrun-locale/internal/infra/db/memory"
	pg "hospitalrun-locale/internal/infra/db/postgres"
	red "hospitalrun-locale/internal/infra/redis"
)

// OpenDocumentStore builds the configured ConfigDocumentStore. The returned close
// func releases every connection opened along the way. Documents are never cached:
// every Get reaches the backend.
func OpenDocumentStore(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (repository.ConfigDocumentStore, func(), error) {
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Store.Backend {
	case config.BackendMemory:
		logger.Warn().Msg("using in-memory document store; preferences are lost on restart")
		return memory.NewDocumentStore(), closeAll, nil

	case config.BackendRedis:
		cli, err := red.NewClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		closers = append(closers, func() { _ = cli.Close() })
		logger.Info().Str("addr", cfg.Redis.URL).Msg("document store: redis")
		return red.NewDocumentStore(cli, red.NewLocker(cli)), closeAll, nil

	case config.BackendPostgres:
		pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, cfg.Database.MaxConns)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres: %w", err)
		}
		statsCtx, stopStats := context.WithCancel(context.Background())
		go pg.ReportPoolStats(statsCtx, pool, 15*time.Second)
		closers = append(closers, pool.Close, stopStats)

		logger.Info().Msg("document store: postgres")
		return pg.NewDocumentStore(pool, pg.NewTxManager(pool)), closeAll, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
