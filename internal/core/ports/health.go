package ports

import "context"

// HealthChecker is a storage or cache dependency that /api/health and the
// admin health details probe. Name is the key reported in the dependency map
// ("postgresql", "memory", "redis").
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
