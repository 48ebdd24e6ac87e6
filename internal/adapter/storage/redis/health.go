package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	healthKey    = keyPrefix + "health"
	healthKeyTTL = 30 * time.Second
)

// HealthCheck reports whether Redis accepts writes. Rate limiting and the
// relay replay guard both write, so a read-only replica counts as down.
type HealthCheck struct {
	client *goredis.Client
}

func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.client.Set(ctx, healthKey, "ok", healthKeyTTL).Err()
}

func (h *HealthCheck) Name() string {
	return "redis"
}
