package ports

import (
	"context"
	"errors"

	"wallet-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// Storage sentinels. Adapters translate driver-specific constraint errors
// into these so services never import a driver.
var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// WalletRepository defines persistence operations for wallets.
// Lookups return (nil, nil) when no row matches.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetByPublicKey(ctx context.Context, publicKey string) (*domain.Wallet, error)
}

// TransactionRepository defines persistence operations for the transaction ledger.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	// ListRecent returns a page of a wallet's transactions, newest first.
	// A non-positive limit yields no rows and a negative offset counts as zero.
	ListRecent(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
	CountForWallet(ctx context.Context, walletID uuid.UUID) (int64, error)
	// SumCompletedVolume sums the amounts of completed transactions only.
	SumCompletedVolume(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error)
}

// TransferRepository persists gate decisions.
type TransferRepository interface {
	Create(ctx context.Context, transfer *domain.TransferRecord) error
	// List returns all transfer records, newest first.
	List(ctx context.Context) ([]domain.TransferRecord, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.TransferRecord, error)
}

// StatsRepository serves admin aggregates.
type StatsRepository interface {
	Counts(ctx context.Context) (*RecordCounts, error)
}

// RecordCounts holds table cardinalities for the admin dashboard.
type RecordCounts struct {
	Wallets       int64
	Transactions  int64
	BankTransfers int64
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}
