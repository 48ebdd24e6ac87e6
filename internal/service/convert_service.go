package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wallet-backend/internal/core/domain"
	"wallet-backend/internal/core/ports"
	"wallet-backend/pkg/apperror"
	"wallet-backend/pkg/strkey"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	rateSourceCoinGecko = "CoinGecko"
	fiatCurrencyUSD     = "USD"
	usdcAsset           = "USDC"
)

// ConvertServiceImpl implements ports.ConvertService.
type ConvertServiceImpl struct {
	oracle     ports.RateOracle
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	log        zerolog.Logger
	now        func() time.Time
}

// NewConvertService creates a new ConvertServiceImpl.
func NewConvertService(
	oracle ports.RateOracle,
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	log zerolog.Logger,
) *ConvertServiceImpl {
	return &ConvertServiceImpl{
		oracle:     oracle,
		walletRepo: walletRepo,
		txRepo:     txRepo,
		log:        log,
		now:        time.Now,
	}
}

// GetRate quotes one unit of from in to.
func (s *ConvertServiceImpl) GetRate(ctx context.Context, from, to string) (*ports.RateQuote, error) {
	from, to = normalizeSymbol(from), normalizeSymbol(to)
	if from == "" || to == "" {
		return nil, apperror.Validation("from and to are required")
	}

	rate, err := s.rate(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &ports.RateQuote{
		From:      from,
		To:        to,
		Rate:      rate,
		Source:    rateSourceCoinGecko,
		Timestamp: s.now().UTC(),
	}, nil
}

// ConvertToUSDC prices amount of a token in USDC, treating USDC as pegged to
// USD. When the request names a registered wallet, the conversion is recorded
// on its ledger.
func (s *ConvertServiceImpl) ConvertToUSDC(ctx context.Context, req ports.ConvertRequest) (*ports.ConvertResult, error) {
	from := normalizeSymbol(req.FromToken)
	if from == "" {
		return nil, apperror.Validation("from_token is required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.Validation("amount must be greater than zero")
	}

	var wallet *domain.Wallet
	if req.PublicKey != nil {
		if !strkey.IsValidAccount(*req.PublicKey) {
			return nil, apperror.ErrInvalidAddress("public_key")
		}
		w, err := s.walletRepo.GetByPublicKey(ctx, *req.PublicKey)
		if err != nil {
			return nil, apperror.ErrStorage(fmt.Errorf("get wallet: %w", err))
		}
		if w == nil {
			return nil, apperror.ErrWalletNotFound()
		}
		wallet = w
	}

	rate, err := s.rate(ctx, from, fiatCurrencyUSD)
	if err != nil {
		return nil, err
	}

	usdc := req.Amount.Mul(rate).Round(7)
	result := &ports.ConvertResult{
		FromToken:    from,
		FromAmount:   req.Amount,
		USDCAmount:   usdc,
		FiatAmount:   usdc.Round(2),
		FiatCurrency: fiatCurrencyUSD,
		Rate:         rate,
		RateSource:   rateSourceCoinGecko,
	}

	if wallet != nil {
		if err := s.recordConversion(ctx, wallet, from, req.Amount); err != nil {
			return nil, err
		}
	}

	s.log.Info().
		Str("from_token", from).
		Str("amount", req.Amount.String()).
		Str("usdc_amount", usdc.String()).
		Msg("conversion quoted")

	return result, nil
}

func (s *ConvertServiceImpl) rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if from == to || (from == usdcAsset && to == fiatCurrencyUSD) {
		return decimal.NewFromInt(1), nil
	}

	raw, err := s.oracle.GetExchangeRate(ctx, from, to)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return decimal.Zero, err
		}
		return decimal.Zero, apperror.ErrExternalAPI(fmt.Errorf("rate %s/%s: %w", from, to, err))
	}
	if raw <= 0 {
		return decimal.Zero, apperror.ErrExternalAPI(fmt.Errorf("rate %s/%s: non-positive quote %v", from, to, raw))
	}
	return decimal.NewFromFloat(raw), nil
}

func (s *ConvertServiceImpl) recordConversion(ctx context.Context, wallet *domain.Wallet, asset string, amount decimal.Decimal) error {
	id := uuid.New()
	tx := &domain.Transaction{
		ID:          id,
		WalletID:    wallet.ID,
		TxHash:      "convert-" + id.String(),
		Type:        domain.TransactionTypeConvert,
		FromAddress: &wallet.PublicKey,
		Amount:      amount.String(),
		Asset:       asset,
		Status:      domain.TransactionStatusCompleted,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return apperror.ErrStorage(fmt.Errorf("insert convert transaction: %w", err))
	}
	return nil
}

func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
