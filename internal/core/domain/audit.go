package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionGenerateWallet AuditAction = "GENERATE_WALLET"
	AuditActionFundWallet     AuditAction = "FUND_WALLET"
	AuditActionSend           AuditAction = "SEND"
	AuditActionRelay          AuditAction = "RELAY"
	AuditActionConvert        AuditAction = "CONVERT"
	AuditActionBankTransfer   AuditAction = "BANK_TRANSFER"
)

// AuditLog records a single state-changing request.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	PublicKey    *string     `json:"public_key,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	Status       int         `json:"status"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
