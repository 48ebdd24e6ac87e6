package ports

import (
	"context"
	"time"

	"wallet-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// --- Collaborator Ports (Infrastructure) ---

// LedgerNetwork is the client for the ledger network's public API.
type LedgerNetwork interface {
	AccountExists(ctx context.Context, publicKey string) (bool, error)
	// FundAccount asks the testnet faucet to fund the account and returns the funding hash.
	FundAccount(ctx context.Context, publicKey string) (string, error)
	GetBalances(ctx context.Context, publicKey string) ([]domain.Balance, error)
	// SubmitTransaction broadcasts an opaque payload and returns its hash.
	SubmitTransaction(ctx context.Context, payload string) (string, error)
	// GetRecentTxHashes never fails; network errors yield an empty slice.
	GetRecentTxHashes(ctx context.Context, publicKey string, limit int) []string
}

// RateOracle quotes exchange rates.
type RateOracle interface {
	GetExchangeRate(ctx context.Context, from, to string) (float64, error)
}

// SignerVault holds secret keys for account-abstraction wallets for the
// lifetime of the process. Implementations must be safe for concurrent use.
type SignerVault interface {
	Register(publicKey, secret string)
	Get(publicKey string) (string, bool)
	Has(publicKey string) bool
	Remove(publicKey string)
	List() []string
	// Relay submits a payload on behalf of a registered signer.
	Relay(ctx context.Context, publicKey, payload string) (string, error)
}

// ReplayGuard rejects payloads that were already relayed within a window.
type ReplayGuard interface {
	// CheckAndSet returns true if the payload is new for this key.
	CheckAndSet(ctx context.Context, publicKey string, digest string, ttl time.Duration) (bool, error)
}

// TokenService handles admin JWT operations.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Issuer  string
}

// AuditService records state-changing requests.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Service Ports (Business Logic) ---

// WalletService covers wallet lifecycle and payments.
type WalletService interface {
	GenerateWallet(ctx context.Context, req GenerateWalletRequest) (*GenerateWalletResult, error)
	FundWallet(ctx context.Context, publicKey string) (string, error)
	GetBalance(ctx context.Context, publicKey string) (*BalanceResult, error)
	SendTransaction(ctx context.Context, req SendRequest) (*domain.Transaction, error)
	RelayTransaction(ctx context.Context, publicKey, payload string) (string, error)
}

// GenerateWalletRequest holds input for wallet generation.
type GenerateWalletRequest struct {
	AAMode       bool
	RevealSecret bool
}

// GenerateWalletResult is returned once at generation. SecretKey is only set
// when the caller asked for it.
type GenerateWalletResult struct {
	ID        uuid.UUID
	PublicKey string
	SecretKey *string
	AAEnabled bool
}

// BalanceResult combines network balances and recent activity.
type BalanceResult struct {
	PublicKey          string
	Balances           []domain.Balance
	RecentTransactions []string
}

// SendRequest holds input for a payment from a custodial wallet.
type SendRequest struct {
	From        string
	Destination string
	Amount      string
	AssetCode   string
	Memo        *string
}

// ReputationService derives trust scores.
type ReputationService interface {
	// Calculate resolves the wallet, if registered, and scores it.
	Calculate(ctx context.Context, publicKey string) (*domain.TrustScore, error)
	// Compute scores an address. A nil walletID means no ledger history.
	Compute(ctx context.Context, publicKey string, walletID *uuid.UUID) (*domain.TrustScore, error)
}

// TransferService is the reputation gate for fiat transfers.
type TransferService interface {
	AuthorizeTransfer(ctx context.Context, req domain.TransferRequest) (*domain.TransferRecord, error)
	ListTransfers(ctx context.Context) ([]domain.TransferRecord, error)
	Threshold() int
}

// ConvertService quotes and records token conversions.
type ConvertService interface {
	GetRate(ctx context.Context, from, to string) (*RateQuote, error)
	ConvertToUSDC(ctx context.Context, req ConvertRequest) (*ConvertResult, error)
}

// RateQuote is a single exchange rate observation.
type RateQuote struct {
	From      string
	To        string
	Rate      decimal.Decimal
	Source    string
	Timestamp time.Time
}

// ConvertRequest holds input for a conversion quote. PublicKey is optional;
// when it names a registered wallet the conversion is recorded on its ledger.
type ConvertRequest struct {
	FromToken string
	Amount    decimal.Decimal
	PublicKey *string
}

// ConvertResult is the outcome of a conversion.
type ConvertResult struct {
	FromToken    string
	FromAmount   decimal.Decimal
	USDCAmount   decimal.Decimal
	FiatAmount   decimal.Decimal
	FiatCurrency string
	Rate         decimal.Decimal
	RateSource   string
}

// AdminService serves operator views.
type AdminService interface {
	Stats(ctx context.Context) (*AdminStats, error)
	HealthDetails(ctx context.Context) *HealthDetails
	ListAAAccounts() []string
}

// AdminStats aggregates record counts.
type AdminStats struct {
	TotalWallets       int64
	TotalTransactions  int64
	TotalBankTransfers int64
	AAWalletsCount     int64
}

// HealthDetails reports service configuration and dependency state.
type HealthDetails struct {
	Status              string
	Version             string
	DatabaseConnected   bool
	Dependencies        map[string]string
	StellarNetwork      string
	StellarHorizonURL   string
	ReputationThreshold int
}
