package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is a locally registered ledger-network account. It is never updated
// or deleted once created.
type Wallet struct {
	ID         uuid.UUID `json:"id"`
	PublicKey  string    `json:"public_key"` // 'G...' strkey, unique
	IsAAWallet bool      `json:"is_aa_wallet"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewWallet builds a wallet record for a freshly generated address.
func NewWallet(publicKey string, aa bool, now time.Time) *Wallet {
	return &Wallet{
		ID:         uuid.New(),
		PublicKey:  publicKey,
		IsAAWallet: aa,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NativeAssetCode is reported for the network's native asset.
const NativeAssetCode = "XLM"

// Balance is one asset line of an account as reported by the network.
type Balance struct {
	AssetCode   string  `json:"asset_code"`
	Balance     string  `json:"balance"`
	AssetIssuer *string `json:"asset_issuer,omitempty"`
}
