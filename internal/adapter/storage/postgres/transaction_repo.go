package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const transactionColumnList = `id, wallet_id, tx_hash, tx_type, from_address, to_address, amount, asset, status, created_at`

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
	log  zerolog.Logger
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool, log zerolog.Logger) *TransactionRepo {
	return &TransactionRepo{pool: pool, log: log}
}

// Create appends a transaction to the ledger.
func (r *TransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumnList + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.WalletID, t.TxHash, string(t.Type), t.FromAddress, t.ToAddress,
		t.Amount, t.Asset, string(t.Status), t.CreatedAt,
	)
	if err != nil {
		return translate("insert transaction", err)
	}
	return nil
}

// ListRecent returns a page of the wallet's transactions, newest first.
func (r *TransactionRepo) ListRecent(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		return nil, nil
	}
	offset = max(offset, 0)

	query := `SELECT ` + transactionColumnList + ` FROM transactions
		WHERE wallet_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var (
			t              domain.Transaction
			txType, status string
		)
		if err := rows.Scan(
			&t.ID, &t.WalletID, &t.TxHash, &txType, &t.FromAddress, &t.ToAddress,
			&t.Amount, &t.Asset, &status, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Type = domain.TransactionType(txType)
		t.Status = domain.TransactionStatus(status)
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

// CountForWallet counts every transaction the wallet owns, in any status.
func (r *TransactionRepo) CountForWallet(ctx context.Context, walletID uuid.UUID) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE wallet_id = $1`, walletID).Scan(&n)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

// SumCompletedVolume sums the amounts of completed transactions. Amounts are
// stored as submitted text, so rows that do not parse contribute zero.
func (r *TransactionRepo) SumCompletedVolume(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error) {
	query := `SELECT id, amount FROM transactions WHERE wallet_id = $1 AND status = $2`

	rows, err := r.pool.Query(ctx, query, walletID, string(domain.TransactionStatusCompleted))
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum volume: %w", err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var (
			id     uuid.UUID
			amount string
		)
		if err := rows.Scan(&id, &amount); err != nil {
			return decimal.Zero, fmt.Errorf("scan amount: %w", err)
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			r.log.Warn().Str("tx_id", id.String()).Str("amount", amount).Msg("skipping malformed amount in volume")
			continue
		}
		total = total.Add(d)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("iterate amounts: %w", err)
	}
	return total, nil
}
