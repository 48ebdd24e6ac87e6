// Package memory is a process-local implementation of the repository ports.
// It backs local runs without PostgreSQL and the end-to-end tests. Nothing
// survives a restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"wallet-backend/internal/core/domain"
	"wallet-backend/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Store holds every table behind one lock so counts stay consistent.
type Store struct {
	mu           sync.RWMutex
	wallets      map[uuid.UUID]*domain.Wallet
	byPublicKey  map[string]uuid.UUID
	transactions []domain.Transaction
	transfers    []domain.TransferRecord
	auditLogs    []domain.AuditLog
	log          zerolog.Logger
}

// NewStore creates an empty store.
func NewStore(log zerolog.Logger) *Store {
	return &Store{
		wallets:     make(map[uuid.UUID]*domain.Wallet),
		byPublicKey: make(map[string]uuid.UUID),
		log:         log,
	}
}

// Wallets returns the WalletRepository view of the store.
func (s *Store) Wallets() *WalletRepo { return &WalletRepo{s: s} }

// Transactions returns the TransactionRepository view of the store.
func (s *Store) Transactions() *TransactionRepo { return &TransactionRepo{s: s} }

// Transfers returns the TransferRepository view of the store.
func (s *Store) Transfers() *TransferRepo { return &TransferRepo{s: s} }

// Stats returns the StatsRepository view of the store.
func (s *Store) Stats() *StatsRepo { return &StatsRepo{s: s} }

// Audit returns the AuditRepository view of the store.
func (s *Store) Audit() *AuditRepo { return &AuditRepo{s: s} }

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

// Name returns the dependency name reported by health checks.
func (s *Store) Name() string { return "memory" }

// --- Wallets ---

type WalletRepo struct{ s *Store }

func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.byPublicKey[w.PublicKey]; ok {
		return fmt.Errorf("create wallet: %w: wallets_public_key_key", ports.ErrUniqueViolation)
	}
	cp := *w
	r.s.wallets[w.ID] = &cp
	r.s.byPublicKey[w.PublicKey] = w.ID
	return nil
}

func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, ok := r.s.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *WalletRepo) GetByPublicKey(ctx context.Context, publicKey string) (*domain.Wallet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.byPublicKey[publicKey]
	if !ok {
		return nil, nil
	}
	cp := *r.s.wallets[id]
	return &cp, nil
}

// --- Transactions ---

type TransactionRepo struct{ s *Store }

func (r *TransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.wallets[tx.WalletID]; !ok {
		return fmt.Errorf("create transaction: %w: transactions_wallet_id_fkey", ports.ErrForeignKeyViolation)
	}
	r.s.transactions = append(r.s.transactions, *tx)
	return nil
}

func (r *TransactionRepo) ListRecent(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		return nil, nil
	}
	offset = max(offset, 0)

	r.s.mu.RLock()
	var txs []domain.Transaction
	for _, t := range r.s.transactions {
		if t.WalletID == walletID {
			txs = append(txs, t)
		}
	}
	r.s.mu.RUnlock()

	sort.SliceStable(txs, func(i, j int) bool { return txs[i].CreatedAt.After(txs[j].CreatedAt) })

	if offset >= len(txs) {
		return nil, nil
	}
	txs = txs[offset:]
	if limit < len(txs) {
		txs = txs[:limit]
	}
	return txs, nil
}

func (r *TransactionRepo) CountForWallet(ctx context.Context, walletID uuid.UUID) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, t := range r.s.transactions {
		if t.WalletID == walletID {
			n++
		}
	}
	return n, nil
}

// SumCompletedVolume skips amounts that do not parse, as the SQL adapter does.
func (r *TransactionRepo) SumCompletedVolume(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, t := range r.s.transactions {
		if t.WalletID != walletID || t.Status != domain.TransactionStatusCompleted {
			continue
		}
		d, err := decimal.NewFromString(t.Amount)
		if err != nil {
			r.s.log.Warn().Str("tx_id", t.ID.String()).Str("amount", t.Amount).Msg("skipping malformed amount in volume")
			continue
		}
		total = total.Add(d)
	}
	return total, nil
}

// --- Transfers ---

type TransferRepo struct{ s *Store }

func (r *TransferRepo) Create(ctx context.Context, rec *domain.TransferRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.wallets[rec.WalletID]; !ok {
		return fmt.Errorf("create transfer: %w: bank_transfers_wallet_id_fkey", ports.ErrForeignKeyViolation)
	}
	r.s.transfers = append(r.s.transfers, *rec)
	return nil
}

func (r *TransferRepo) List(ctx context.Context) ([]domain.TransferRecord, error) {
	return r.filter(func(domain.TransferRecord) bool { return true }), nil
}

func (r *TransferRepo) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.TransferRecord, error) {
	return r.filter(func(t domain.TransferRecord) bool { return t.WalletID == walletID }), nil
}

func (r *TransferRepo) filter(keep func(domain.TransferRecord) bool) []domain.TransferRecord {
	r.s.mu.RLock()
	out := make([]domain.TransferRecord, 0, len(r.s.transfers))
	for _, t := range r.s.transfers {
		if keep(t) {
			out = append(out, t)
		}
	}
	r.s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// --- Stats and audit ---

type StatsRepo struct{ s *Store }

func (r *StatsRepo) Counts(ctx context.Context) (*ports.RecordCounts, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return &ports.RecordCounts{
		Wallets:       int64(len(r.s.wallets)),
		Transactions:  int64(len(r.s.transactions)),
		BankTransfers: int64(len(r.s.transfers)),
	}, nil
}

type AuditRepo struct{ s *Store }

func (r *AuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.auditLogs = append(r.s.auditLogs, *entry)
	return nil
}

// AuditLogs returns a copy of the recorded entries in insertion order.
func (s *Store) AuditLogs() []domain.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.AuditLog(nil), s.auditLogs...)
}

var (
	_ ports.WalletRepository      = (*WalletRepo)(nil)
	_ ports.TransactionRepository = (*TransactionRepo)(nil)
	_ ports.TransferRepository    = (*TransferRepo)(nil)
	_ ports.StatsRepository       = (*StatsRepo)(nil)
	_ ports.AuditRepository       = (*AuditRepo)(nil)
	_ ports.HealthChecker         = (*Store)(nil)
)
