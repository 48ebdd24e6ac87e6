package dto

import (
	"time"

	"wallet-backend/internal/core/domain"

	"github.com/shopspring/decimal"
)

// GenerateWalletRequest is the request body for wallet generation.
// Both flags are optional.
type GenerateWalletRequest struct {
	AAMode       bool `json:"aa_mode"`
	RevealSecret bool `json:"reveal_secret"`
}

// GenerateWalletResponse is returned once per generated wallet.
type GenerateWalletResponse struct {
	ID        string  `json:"id"`
	PublicKey string  `json:"public_key"`
	SecretKey *string `json:"secret_key,omitempty"`
	AAEnabled bool    `json:"aa_enabled"`
}

// FundWalletRequest is the request body for testnet funding.
type FundWalletRequest struct {
	PublicKey string `json:"public_key" binding:"required,stellar_address"`
}

// FundWalletResponse carries the faucet transaction hash.
type FundWalletResponse struct {
	PublicKey string `json:"public_key"`
	TxHash    string `json:"tx_hash"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	PublicKey          string           `json:"public_key"`
	Balances           []domain.Balance `json:"balances"`
	RecentTransactions []string         `json:"recent_transactions"`
}

// SendRequest is the request body for a payment from a custodial wallet.
type SendRequest struct {
	Destination string          `json:"destination" binding:"required,stellar_address"`
	Amount      decimal.Decimal `json:"amount"`
	AssetCode   string          `json:"asset_code" binding:"omitempty,max=12,alphanum"`
	Memo        *string         `json:"memo,omitempty" binding:"omitempty,max=28"`
}

// RelayRequest is the request body for the account-abstraction relayer.
type RelayRequest struct {
	PublicKey string `json:"public_key" binding:"required,stellar_address"`
	Payload   string `json:"payload" binding:"required,base64"`
}

// RelayResponse carries the network transaction hash.
type RelayResponse struct {
	TxHash string `json:"tx_hash"`
}

// ReputationResponse is the trust score view of an address.
type ReputationResponse struct {
	PublicKey      string          `json:"public_key"`
	TrustScore     int             `json:"trust_score"`
	Level          string          `json:"level"`
	TxCount        int64           `json:"tx_count"`
	TotalVolume    decimal.Decimal `json:"total_volume"`
	AccountAgeDays int64           `json:"account_age_days"`
	LastCalculated time.Time       `json:"last_calculated"`
}

// BankTransferRequest is the request body for a fiat payout.
type BankTransferRequest struct {
	PublicKey   string          `json:"public_key" binding:"required,stellar_address"`
	AmountFiat  decimal.Decimal `json:"amount_fiat"`
	Currency    string          `json:"currency" binding:"required,len=3,alpha"`
	BankAccount string          `json:"bank_account" binding:"required,max=64"`
}

// TransferResponse is the view of a gate decision.
type TransferResponse struct {
	ID                string          `json:"id"`
	PublicKey         string          `json:"public_key"`
	AmountFiat        decimal.Decimal `json:"amount_fiat"`
	Currency          string          `json:"currency"`
	BankAccountMasked string          `json:"bank_account_masked"`
	Status            string          `json:"status"`
	RejectionReason   *string         `json:"rejection_reason,omitempty"`
	ReputationScore   *int            `json:"reputation_score,omitempty"`
	CreatedAt         string          `json:"created_at"`
	CompletedAt       *string         `json:"completed_at,omitempty"`
}

// TransferListResponse wraps the admin transfer listing.
type TransferListResponse struct {
	Transfers []TransferResponse `json:"transfers"`
	Total     int                `json:"total"`
}

// ConvertRequest is the request body for a USDC conversion.
type ConvertRequest struct {
	FromToken string          `json:"from_token" binding:"required,max=12,alphanum"`
	Amount    decimal.Decimal `json:"amount"`
	PublicKey *string         `json:"public_key,omitempty" binding:"omitempty,stellar_address"`
}

// ConvertResponse is the outcome of a conversion.
type ConvertResponse struct {
	FromToken    string          `json:"from_token"`
	FromAmount   decimal.Decimal `json:"from_amount"`
	USDCAmount   decimal.Decimal `json:"usdc_amount"`
	FiatAmount   decimal.Decimal `json:"fiat_amount"`
	FiatCurrency string          `json:"fiat_currency"`
	Rate         decimal.Decimal `json:"rate"`
	RateSource   string          `json:"rate_source"`
}

// RateResponse is a single exchange rate observation.
type RateResponse struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Rate      decimal.Decimal `json:"rate"`
	Source    string          `json:"source"`
	Timestamp time.Time       `json:"timestamp"`
}

// AdminStatsResponse aggregates record counts.
type AdminStatsResponse struct {
	TotalWallets       int64 `json:"total_wallets"`
	TotalTransactions  int64 `json:"total_transactions"`
	TotalBankTransfers int64 `json:"total_bank_transfers"`
	AAWalletsCount     int64 `json:"aa_wallets_count"`
}

// HealthDetailsResponse reports configuration and dependency state.
type HealthDetailsResponse struct {
	Status              string            `json:"status"`
	Version             string            `json:"version"`
	DatabaseConnected   bool              `json:"database_connected"`
	Dependencies        map[string]string `json:"dependencies"`
	StellarNetwork      string            `json:"stellar_network"`
	StellarHorizonURL   string            `json:"stellar_horizon_url"`
	ReputationThreshold int               `json:"reputation_threshold"`
}

// AAAccountsResponse lists addresses with a registered signer.
type AAAccountsResponse struct {
	Accounts []string `json:"accounts"`
	Total    int      `json:"total"`
}
