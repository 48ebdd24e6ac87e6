package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of wallet activity.
type TransactionType string

const (
	TransactionTypeSend    TransactionType = "send"
	TransactionTypeReceive TransactionType = "receive"
	TransactionTypeConvert TransactionType = "convert"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeSend, TransactionTypeReceive, TransactionTypeConvert:
		return true
	}
	return false
}

// TransactionStatus represents the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Valid reports whether s is a known status.
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed:
		return true
	}
	return false
}

// Transaction is an append-only ledger entry owned by a wallet.
// Amount is kept as decimal text exactly as it was submitted.
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	WalletID    uuid.UUID         `json:"wallet_id"`
	TxHash      string            `json:"tx_hash"`
	Type        TransactionType   `json:"tx_type"`
	FromAddress *string           `json:"from_address,omitempty"`
	ToAddress   *string           `json:"to_address,omitempty"`
	Amount      string            `json:"amount"`
	Asset       string            `json:"asset"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// IsCompleted returns true if the transaction counts towards volume.
func (t *Transaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted
}

// IsTerminal returns true if the transaction is in a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusCompleted || t.Status == TransactionStatusFailed
}

// ParseAmount parses a decimal amount string. Amounts must be positive.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q is not a decimal number", s)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount %q must be greater than zero", s)
	}
	return d, nil
}

// Validate checks the invariants every persisted transaction must hold.
func (t *Transaction) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("unknown transaction status %q", t.Status)
	}
	if t.TxHash == "" {
		return fmt.Errorf("transaction hash is required")
	}
	if t.Asset == "" {
		return fmt.Errorf("asset is required")
	}
	_, err := ParseAmount(t.Amount)
	return err
}
