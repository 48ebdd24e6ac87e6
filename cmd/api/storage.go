package main

import (
	"context"
	"fmt"

	"wallet-backend/config"
	memStorage "wallet-backend/internal/adapter/storage/memory"
	pgStorage "wallet-backend/internal/adapter/storage/postgres"
	"wallet-backend/internal/core/ports"
	"wallet-backend/pkg/logger"

	"github.com/rs/zerolog"
)

// storage bundles the repositories for the configured driver.
type storage struct {
	wallets      ports.WalletRepository
	transactions ports.TransactionRepository
	transfers    ports.TransferRepository
	stats        ports.StatsRepository
	audit        ports.AuditRepository
	health       ports.HealthChecker
}

// openStorage connects the configured driver. The returned func releases it.
func openStorage(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*storage, func(), error) {
	switch cfg.Driver {
	case "memory":
		log.Warn().Msg("Using in-memory storage, data is lost on restart")
		s := memStorage.NewStore(logger.Component(log, "memory_store"))
		return &storage{
			wallets:      s.Wallets(),
			transactions: s.Transactions(),
			transfers:    s.Transfers(),
			stats:        s.Stats(),
			audit:        s.Audit(),
			health:       s,
		}, func() {}, nil

	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Msg("PostgreSQL connected")

		if cfg.AutoMigrate {
			if err := pgStorage.RunMigrations(cfg.MigrationURL(), log); err != nil {
				pool.Close()
				return nil, nil, fmt.Errorf("apply migrations: %w", err)
			}
		}

		return &storage{
			wallets:      pgStorage.NewWalletRepo(pool),
			transactions: pgStorage.NewTransactionRepo(pool, logger.Component(log, "transaction_repo")),
			transfers:    pgStorage.NewTransferRepo(pool),
			stats:        pgStorage.NewStatsRepo(pool),
			audit:        pgStorage.NewAuditRepo(pool),
			health:       pgStorage.NewHealthCheck(pool),
		}, pool.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
}
