package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wallet-backend/internal/core/domain"
	"wallet-backend/internal/core/ports"
	"wallet-backend/internal/metrics"
	"wallet-backend/pkg/apperror"
	"wallet-backend/pkg/strkey"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// scoreUnavailableReason is stored when the gate could not obtain a score.
const scoreUnavailableReason = "Reputation score unavailable"

// amount_fiat is persisted as NUMERIC(20,2).
const fiatScale = 2

var maxFiatAmount = decimal.New(1, 20-fiatScale)

// TransferServiceImpl implements ports.TransferService: it authorizes fiat
// transfers against a minimum trust score and records every decision.
type TransferServiceImpl struct {
	walletRepo   ports.WalletRepository
	reputation   ports.ReputationService
	transferRepo ports.TransferRepository
	threshold    int
	log          zerolog.Logger
	now          func() time.Time
}

// NewTransferService creates a new TransferServiceImpl. threshold must be in 0..100.
func NewTransferService(
	walletRepo ports.WalletRepository,
	reputation ports.ReputationService,
	transferRepo ports.TransferRepository,
	threshold int,
	log zerolog.Logger,
) (*TransferServiceImpl, error) {
	if threshold < 0 || threshold > domain.MaxTrustScore {
		return nil, apperror.ErrConfigInvalid(fmt.Sprintf("reputation threshold must be in 0..100, got %d", threshold))
	}
	return &TransferServiceImpl{
		walletRepo:   walletRepo,
		reputation:   reputation,
		transferRepo: transferRepo,
		threshold:    threshold,
		log:          log,
		now:          time.Now,
	}, nil
}

// Threshold returns the minimum score a transfer needs.
func (s *TransferServiceImpl) Threshold() int {
	return s.threshold
}

// AuthorizeTransfer decides a transfer request. Both outcomes are returned as
// a persisted record with a nil error; callers inspect record.Status.
// Once the wallet is resolved, every path writes exactly one record.
func (s *TransferServiceImpl) AuthorizeTransfer(ctx context.Context, req domain.TransferRequest) (*domain.TransferRecord, error) {
	if err := validateTransferRequest(req); err != nil {
		return nil, err
	}

	wallet, err := s.walletRepo.GetByPublicKey(ctx, req.PublicKey)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}

	score, scoreErr := s.reputation.Compute(ctx, wallet.PublicKey, &wallet.ID)
	if scoreErr != nil {
		reason := scoreUnavailableReason
		rec := domain.NewTransferRecord(wallet, req, nil, &reason, s.now().UTC())
		if err := s.persist(ctx, rec); err != nil {
			return nil, err
		}
		s.log.Warn().Err(scoreErr).
			Str("transfer_id", rec.ID.String()).
			Str("public_key", wallet.PublicKey).
			Msg("transfer rejected: score unavailable")
		return nil, scoreErr
	}

	current := score.Score
	var reason *string
	if current < s.threshold {
		r := domain.RejectionReason(current, s.threshold)
		reason = &r
	}

	rec := domain.NewTransferRecord(wallet, req, &current, reason, s.now().UTC())
	if err := s.persist(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("transfer_id", rec.ID.String()).
		Str("public_key", wallet.PublicKey).
		Str("status", string(rec.Status)).
		Int("score", current).
		Int("threshold", s.threshold).
		Str("amount", req.AmountFiat.String()).
		Str("currency", rec.Currency).
		Msg("transfer decided")

	return rec, nil
}

// ListTransfers returns all records, newest first.
func (s *TransferServiceImpl) ListTransfers(ctx context.Context) ([]domain.TransferRecord, error) {
	transfers, err := s.transferRepo.List(ctx)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("list transfers: %w", err))
	}
	return transfers, nil
}

func (s *TransferServiceImpl) persist(ctx context.Context, rec *domain.TransferRecord) error {
	if err := s.transferRepo.Create(ctx, rec); err != nil {
		return apperror.ErrStorage(fmt.Errorf("insert transfer: %w", err))
	}
	metrics.RecordTransferDecision(string(rec.Status))
	return nil
}

func validateTransferRequest(req domain.TransferRequest) error {
	if !strkey.IsValidAccount(req.PublicKey) {
		return apperror.ErrInvalidAddress("public_key")
	}
	if !req.AmountFiat.IsPositive() {
		return apperror.Validation("amount_fiat must be greater than zero")
	}
	if !req.AmountFiat.Equal(req.AmountFiat.Truncate(fiatScale)) {
		return apperror.Validation("amount_fiat must have at most 2 decimal places")
	}
	if req.AmountFiat.GreaterThanOrEqual(maxFiatAmount) {
		return apperror.Validation("amount_fiat is too large")
	}
	if len(strings.TrimSpace(req.Currency)) != 3 {
		return apperror.Validation("currency must be a 3-letter ISO code")
	}
	if strings.TrimSpace(req.BankAccount) == "" {
		return apperror.Validation("bank_account is required")
	}
	return nil
}
