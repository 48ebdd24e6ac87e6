package postgres

import (
	"context"
	"fmt"

	"wallet-backend/internal/core/ports"
)

// StatsRepo implements ports.StatsRepository.
type StatsRepo struct {
	pool Pool
}

// NewStatsRepo creates a new StatsRepo.
func NewStatsRepo(pool Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// Counts returns row counts for the admin dashboard in a single round trip.
func (r *StatsRepo) Counts(ctx context.Context) (*ports.RecordCounts, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM wallets),
		(SELECT COUNT(*) FROM transactions),
		(SELECT COUNT(*) FROM bank_transfers)`

	c := &ports.RecordCounts{}
	if err := r.pool.QueryRow(ctx, query).Scan(&c.Wallets, &c.Transactions, &c.BankTransfers); err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}
	return c, nil
}
