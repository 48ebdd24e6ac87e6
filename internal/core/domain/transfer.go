package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferStatus is the gate's decision for a bank transfer attempt.
type TransferStatus string

const (
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusRejected  TransferStatus = "rejected"
)

// TransferRecord is the audit row written for every authorization attempt
// whose wallet could be resolved. RejectionReason is set iff the status is
// rejected.
type TransferRecord struct {
	ID                uuid.UUID       `json:"id"`
	WalletID          uuid.UUID       `json:"wallet_id"`
	PublicKey         string          `json:"public_key"`
	AmountFiat        decimal.Decimal `json:"amount_fiat"`
	Currency          string          `json:"currency"`
	BankAccountMasked string          `json:"bank_account_masked"`
	Status            TransferStatus  `json:"status"`
	RejectionReason   *string         `json:"rejection_reason,omitempty"`
	ReputationScore   *int            `json:"reputation_score,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	CompletedAt       *time.Time      `json:"completed_at,omitempty"`
}

// IsRejected returns true if the gate refused the transfer.
func (t *TransferRecord) IsRejected() bool {
	return t.Status == TransferStatusRejected
}

// TransferRequest is a fiat payout request for a wallet holder.
type TransferRequest struct {
	PublicKey   string
	AmountFiat  decimal.Decimal
	Currency    string
	BankAccount string
}

// NewTransferRecord builds the record for a decided request. A nil score
// means the score could not be computed.
func NewTransferRecord(w *Wallet, req TransferRequest, score *int, reason *string, now time.Time) *TransferRecord {
	rec := &TransferRecord{
		ID:                uuid.New(),
		WalletID:          w.ID,
		PublicKey:         w.PublicKey,
		AmountFiat:        req.AmountFiat,
		Currency:          strings.ToUpper(req.Currency),
		BankAccountMasked: MaskAccount(req.BankAccount),
		ReputationScore:   score,
		CreatedAt:         now,
	}
	if reason != nil {
		rec.Status = TransferStatusRejected
		rec.RejectionReason = reason
		return rec
	}
	rec.Status = TransferStatusCompleted
	rec.CompletedAt = &now
	return rec
}

// RejectionReason formats the reason stored on a rejected record.
func RejectionReason(score, threshold int) string {
	return fmt.Sprintf("Reputation score too low: %d (required: %d)", score, threshold)
}

// MaskAccount hides all but the last four characters of a bank account.
// Inputs of four characters or fewer are fully masked.
func MaskAccount(account string) string {
	r := []rune(account)
	if len(r) <= 4 {
		return strings.Repeat("*", len(r))
	}
	return "****" + string(r[len(r)-4:])
}
