package service

import (
	"context"
	"fmt"
	"time"

	"wallet-backend/internal/core/domain"
	"wallet-backend/internal/core/ports"
	"wallet-backend/internal/metrics"
	"wallet-backend/pkg/apperror"
	"wallet-backend/pkg/strkey"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ReputationServiceImpl implements ports.ReputationService. Scores are
// recomputed from the ledger and the network on every call.
type ReputationServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	network    ports.LedgerNetwork
	log        zerolog.Logger
	now        func() time.Time
	accountAge func(ctx context.Context, publicKey string) (int64, error)
}

// NewReputationService creates a new ReputationServiceImpl.
func NewReputationService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	network ports.LedgerNetwork,
	log zerolog.Logger,
) *ReputationServiceImpl {
	s := &ReputationServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		network:    network,
		log:        log,
		now:        time.Now,
	}
	s.accountAge = s.networkAccountAge
	return s
}

// Calculate scores publicKey, using its ledger history when the wallet is
// registered locally.
func (s *ReputationServiceImpl) Calculate(ctx context.Context, publicKey string) (*domain.TrustScore, error) {
	if !strkey.IsValidAccount(publicKey) {
		return nil, apperror.ErrInvalidAddress("public_key")
	}

	wallet, err := s.walletRepo.GetByPublicKey(ctx, publicKey)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("get wallet: %w", err))
	}

	var walletID *uuid.UUID
	if wallet != nil {
		walletID = &wallet.ID
	}
	return s.Compute(ctx, publicKey, walletID)
}

// Compute scores publicKey. Without a wallet ID the ledger aggregates are zero.
func (s *ReputationServiceImpl) Compute(ctx context.Context, publicKey string, walletID *uuid.UUID) (*domain.TrustScore, error) {
	var (
		txCount int64
		volume  = decimal.Zero
		err     error
	)

	if walletID != nil {
		txCount, err = s.txRepo.CountForWallet(ctx, *walletID)
		if err != nil {
			return nil, apperror.ErrStorage(fmt.Errorf("count transactions: %w", err))
		}
		volume, err = s.txRepo.SumCompletedVolume(ctx, *walletID)
		if err != nil {
			return nil, apperror.ErrStorage(fmt.Errorf("sum volume: %w", err))
		}
	}

	ageDays, err := s.accountAge(ctx, publicKey)
	if err != nil {
		return nil, err
	}

	score := domain.NewTrustScore(publicKey, txCount, volume, ageDays, s.now().UTC())
	metrics.ObserveTrustScore(score.Score)

	s.log.Debug().
		Str("public_key", publicKey).
		Int("score", score.Score).
		Int64("tx_count", txCount).
		Str("volume", volume.String()).
		Int64("age_days", ageDays).
		Msg("trust score computed")

	return score, nil
}

// networkAccountAge returns the placeholder age for any account the network
// knows and 0 otherwise.
func (s *ReputationServiceImpl) networkAccountAge(ctx context.Context, publicKey string) (int64, error) {
	exists, err := s.network.AccountExists(ctx, publicKey)
	if err != nil {
		return 0, apperror.ErrLedgerNetwork(fmt.Errorf("account lookup: %w", err))
	}
	if !exists {
		return 0, nil
	}
	return domain.PlaceholderAccountAgeDays, nil
}
