package service

import (
	"context"
	"fmt"
	"time"

	"wallet-backend/config"
	"wallet-backend/internal/core/ports"
	"wallet-backend/pkg/apperror"

	"github.com/rs/zerolog"
)

// Version is reported by health endpoints.
const Version = "0.1.0"

const healthProbeTimeout = 2 * time.Second

// AdminServiceImpl implements ports.AdminService.
type AdminServiceImpl struct {
	stats     ports.StatsRepository
	vault     ports.SignerVault
	database  ports.HealthChecker
	checkers  []ports.HealthChecker
	stellar   config.StellarConfig
	threshold int
	log       zerolog.Logger
}

// NewAdminService creates a new AdminServiceImpl. database is the primary
// store; extra checkers are reported alongside it.
func NewAdminService(
	stats ports.StatsRepository,
	vault ports.SignerVault,
	database ports.HealthChecker,
	stellar config.StellarConfig,
	threshold int,
	log zerolog.Logger,
	extra ...ports.HealthChecker,
) *AdminServiceImpl {
	return &AdminServiceImpl{
		stats:     stats,
		vault:     vault,
		database:  database,
		checkers:  extra,
		stellar:   stellar,
		threshold: threshold,
		log:       log,
	}
}

// Stats returns record counts plus the number of in-memory signers.
func (s *AdminServiceImpl) Stats(ctx context.Context) (*ports.AdminStats, error) {
	counts, err := s.stats.Counts(ctx)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("count records: %w", err))
	}
	return &ports.AdminStats{
		TotalWallets:       counts.Wallets,
		TotalTransactions:  counts.Transactions,
		TotalBankTransfers: counts.BankTransfers,
		AAWalletsCount:     int64(len(s.vault.List())),
	}, nil
}

// HealthDetails pings dependencies and reports the effective configuration.
func (s *AdminServiceImpl) HealthDetails(ctx context.Context) *ports.HealthDetails {
	details := &ports.HealthDetails{
		Status:              "healthy",
		Version:             Version,
		Dependencies:        make(map[string]string),
		StellarNetwork:      s.stellar.Network,
		StellarHorizonURL:   s.stellar.HorizonURL,
		ReputationThreshold: s.threshold,
	}

	probe := func(hc ports.HealthChecker) bool {
		pctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
		defer cancel()
		if err := hc.Ping(pctx); err != nil {
			s.log.Warn().Err(err).Str("dependency", hc.Name()).Msg("health probe failed")
			details.Dependencies[hc.Name()] = "unhealthy"
			details.Status = "degraded"
			return false
		}
		details.Dependencies[hc.Name()] = "healthy"
		return true
	}

	if s.database != nil {
		details.DatabaseConnected = probe(s.database)
	}
	for _, hc := range s.checkers {
		probe(hc)
	}
	return details
}

// ListAAAccounts returns the addresses with a registered signer.
func (s *AdminServiceImpl) ListAAAccounts() []string {
	return s.vault.List()
}
