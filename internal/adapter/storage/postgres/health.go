package postgres

import "context"

// healthQuery touches the table the transfer gate writes to, so a reachable
// server with a missing schema reports unhealthy.
const healthQuery = "SELECT 1 FROM bank_transfers LIMIT 1"

// HealthCheck reports whether the ledger database is reachable and migrated.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	_, err := h.pool.Exec(ctx, healthQuery)
	return err
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
