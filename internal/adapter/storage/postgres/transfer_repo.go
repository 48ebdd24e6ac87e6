package postgres

import (
	"context"
	"fmt"

	"wallet-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransferRepo implements ports.TransferRepository over bank_transfers.
type TransferRepo struct {
	pool Pool
}

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(pool Pool) *TransferRepo {
	return &TransferRepo{pool: pool}
}

const transferSelect = `SELECT id, wallet_id, public_key, amount_fiat::text, currency,
		bank_account_masked, status, rejection_reason, reputation_score,
		created_at, completed_at
	FROM bank_transfers`

// Create persists a gate decision.
func (r *TransferRepo) Create(ctx context.Context, t *domain.TransferRecord) error {
	query := `INSERT INTO bank_transfers (id, wallet_id, public_key, amount_fiat, currency, bank_account_masked,
		status, rejection_reason, reputation_score, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.WalletID, t.PublicKey, t.AmountFiat.String(), t.Currency, t.BankAccountMasked,
		string(t.Status), t.RejectionReason, t.ReputationScore, t.CreatedAt, t.CompletedAt,
	)
	if err != nil {
		return translate("insert bank transfer", err)
	}
	return nil
}

// List returns every transfer record, newest first.
func (r *TransferRepo) List(ctx context.Context) ([]domain.TransferRecord, error) {
	rows, err := r.pool.Query(ctx, transferSelect+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list bank transfers: %w", err)
	}
	return collectTransfers(rows)
}

// ListByWallet returns the wallet's transfer records, newest first.
func (r *TransferRepo) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.TransferRecord, error) {
	rows, err := r.pool.Query(ctx, transferSelect+` WHERE wallet_id = $1 ORDER BY created_at DESC`, walletID)
	if err != nil {
		return nil, fmt.Errorf("list bank transfers by wallet: %w", err)
	}
	return collectTransfers(rows)
}

func collectTransfers(rows pgx.Rows) ([]domain.TransferRecord, error) {
	defer rows.Close()

	var out []domain.TransferRecord
	for rows.Next() {
		var (
			t              domain.TransferRecord
			amount, status string
		)
		if err := rows.Scan(
			&t.ID, &t.WalletID, &t.PublicKey, &amount, &t.Currency,
			&t.BankAccountMasked, &status, &t.RejectionReason, &t.ReputationScore,
			&t.CreatedAt, &t.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bank transfer: %w", err)
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse amount_fiat %q: %w", amount, err)
		}
		t.AmountFiat = d
		t.Status = domain.TransferStatus(status)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bank transfers: %w", err)
	}
	return out, nil
}
