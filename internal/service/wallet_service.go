package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"wallet-backend/internal/core/domain"
	"wallet-backend/internal/core/ports"
	"wallet-backend/pkg/apperror"
	"wallet-backend/pkg/keypair"
	"wallet-backend/pkg/strkey"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	recentTxLimit  = 10
	relayReplayTTL = 10 * time.Minute
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo   ports.WalletRepository
	txRepo       ports.TransactionRepository
	network      ports.LedgerNetwork
	vault        ports.SignerVault
	replayGuard  ports.ReplayGuard // optional
	signerMemory bool
	log          zerolog.Logger
	now          func() time.Time
	newKeypair   func() (*keypair.Full, error)
}

// NewWalletService creates a new WalletServiceImpl. replayGuard may be nil.
func NewWalletService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	network ports.LedgerNetwork,
	vault ports.SignerVault,
	replayGuard ports.ReplayGuard,
	signerMemory bool,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo:   walletRepo,
		txRepo:       txRepo,
		network:      network,
		vault:        vault,
		replayGuard:  replayGuard,
		signerMemory: signerMemory,
		log:          log,
		now:          time.Now,
		newKeypair:   keypair.Random,
	}
}

// GenerateWallet creates a keypair, registers the address and, in AA mode,
// hands the secret to the signer vault.
func (s *WalletServiceImpl) GenerateWallet(ctx context.Context, req ports.GenerateWalletRequest) (*ports.GenerateWalletResult, error) {
	kp, err := s.newKeypair()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate keypair: %w", err))
	}

	wallet := domain.NewWallet(kp.Address(), req.AAMode, s.now().UTC())
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		if errors.Is(err, ports.ErrUniqueViolation) {
			return nil, apperror.ErrDuplicateAddress()
		}
		return nil, apperror.ErrStorage(fmt.Errorf("insert wallet: %w", err))
	}

	if req.AAMode {
		s.vault.Register(wallet.PublicKey, kp.Seed())
	}

	result := &ports.GenerateWalletResult{
		ID:        wallet.ID,
		PublicKey: wallet.PublicKey,
		AAEnabled: req.AAMode,
	}
	if req.RevealSecret {
		seed := kp.Seed()
		result.SecretKey = &seed
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("public_key", wallet.PublicKey).
		Bool("aa_mode", req.AAMode).
		Msg("wallet generated")

	return result, nil
}

// FundWallet asks the testnet faucet to fund a registered wallet.
func (s *WalletServiceImpl) FundWallet(ctx context.Context, publicKey string) (string, error) {
	if _, err := s.requireWallet(ctx, publicKey, "public_key"); err != nil {
		return "", err
	}

	hash, err := s.network.FundAccount(ctx, publicKey)
	if err != nil {
		return "", ledgerError("fund account", err)
	}

	s.log.Info().Str("public_key", publicKey).Str("tx_hash", hash).Msg("wallet funded")
	return hash, nil
}

// GetBalance returns network balances plus the latest transaction hashes.
func (s *WalletServiceImpl) GetBalance(ctx context.Context, publicKey string) (*ports.BalanceResult, error) {
	if !strkey.IsValidAccount(publicKey) {
		return nil, apperror.ErrInvalidAddress("public_key")
	}

	balances, err := s.network.GetBalances(ctx, publicKey)
	if err != nil {
		return nil, ledgerError("get balances", err)
	}

	return &ports.BalanceResult{
		PublicKey:          publicKey,
		Balances:           balances,
		RecentTransactions: s.network.GetRecentTxHashes(ctx, publicKey, recentTxLimit),
	}, nil
}

// SendTransaction pays from a custodial wallet. The sender must have a
// registered signer. The payment is appended to the sender's ledger and,
// when the destination is also registered here, to the recipient's.
func (s *WalletServiceImpl) SendTransaction(ctx context.Context, req ports.SendRequest) (*domain.Transaction, error) {
	if !strkey.IsValidAccount(req.Destination) {
		return nil, apperror.ErrInvalidAddress("destination")
	}
	amount, err := domain.ParseAmount(strings.TrimSpace(req.Amount))
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}
	asset := strings.ToUpper(strings.TrimSpace(req.AssetCode))
	if asset == "" {
		asset = domain.NativeAssetCode
	}

	sender, err := s.requireWallet(ctx, req.From, "public_key")
	if err != nil {
		return nil, err
	}

	payload, err := encodePaymentIntent(paymentIntent{
		Source:      req.From,
		Destination: req.Destination,
		Amount:      amount.String(),
		Asset:       asset,
		Memo:        req.Memo,
	})
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	hash, err := s.vault.Relay(ctx, req.From, payload)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	sent := &domain.Transaction{
		ID:          uuid.New(),
		WalletID:    sender.ID,
		TxHash:      hash,
		Type:        domain.TransactionTypeSend,
		FromAddress: &req.From,
		ToAddress:   &req.Destination,
		Amount:      amount.String(),
		Asset:       asset,
		Status:      domain.TransactionStatusCompleted,
		CreatedAt:   now,
	}
	if err := s.txRepo.Create(ctx, sent); err != nil {
		s.log.Error().Err(err).Str("tx_hash", hash).Msg("payment submitted but not recorded")
		return nil, apperror.ErrStorage(fmt.Errorf("insert send transaction: %w", err))
	}

	s.recordReceipt(ctx, sent)

	s.log.Info().
		Str("from", req.From).
		Str("to", req.Destination).
		Str("amount", sent.Amount).
		Str("asset", asset).
		Str("tx_hash", hash).
		Msg("payment sent")

	return sent, nil
}

// RelayTransaction submits a caller-built payload for an AA wallet.
func (s *WalletServiceImpl) RelayTransaction(ctx context.Context, publicKey, payload string) (string, error) {
	if !strkey.IsValidAccount(publicKey) {
		return "", apperror.ErrInvalidAddress("public_key")
	}
	if strings.TrimSpace(payload) == "" {
		return "", apperror.Validation("tx_xdr is required")
	}
	if !s.signerMemory {
		return "", apperror.ErrUnimplemented("bundler relay")
	}

	if s.replayGuard != nil {
		sum := sha256.Sum256([]byte(payload))
		fresh, err := s.replayGuard.CheckAndSet(ctx, publicKey, hex.EncodeToString(sum[:]), relayReplayTTL)
		if err != nil {
			s.log.Warn().Err(err).Msg("replay guard unavailable, relaying without it")
		} else if !fresh {
			return "", apperror.Validation("transaction payload was already relayed")
		}
	}

	return s.vault.Relay(ctx, publicKey, payload)
}

func (s *WalletServiceImpl) requireWallet(ctx context.Context, publicKey, field string) (*domain.Wallet, error) {
	if !strkey.IsValidAccount(publicKey) {
		return nil, apperror.ErrInvalidAddress(field)
	}
	wallet, err := s.walletRepo.GetByPublicKey(ctx, publicKey)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	return wallet, nil
}

// recordReceipt mirrors a payment onto a locally registered recipient.
// The payment is already on the network, so failures are only logged.
func (s *WalletServiceImpl) recordReceipt(ctx context.Context, sent *domain.Transaction) {
	recipient, err := s.walletRepo.GetByPublicKey(ctx, *sent.ToAddress)
	if err != nil {
		s.log.Warn().Err(err).Str("tx_hash", sent.TxHash).Msg("recipient lookup failed")
		return
	}
	if recipient == nil {
		return
	}

	received := *sent
	received.ID = uuid.New()
	received.WalletID = recipient.ID
	received.Type = domain.TransactionTypeReceive
	if err := s.txRepo.Create(ctx, &received); err != nil {
		s.log.Warn().Err(err).Str("tx_hash", sent.TxHash).Msg("failed to record receipt")
	}
}

// paymentIntent is the opaque payload handed to the relay for a payment.
type paymentIntent struct {
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Amount      string  `json:"amount"`
	Asset       string  `json:"asset"`
	Memo        *string `json:"memo,omitempty"`
}

func encodePaymentIntent(p paymentIntent) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode payment intent: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func ledgerError(op string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.ErrLedgerNetwork(fmt.Errorf("%s: %w", op, err))
}
