package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepo_Counts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStatsRepo(mock)

	mock.ExpectQuery("SELECT\\s+\\(SELECT COUNT\\(\\*\\) FROM wallets\\)").
		WillReturnRows(pgxmock.NewRows([]string{"wallets", "transactions", "bank_transfers"}).
			AddRow(int64(3), int64(17), int64(2)))

	c, err := repo.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.Wallets)
	assert.Equal(t, int64(17), c.Transactions)
	assert.Equal(t, int64(2), c.BankTransfers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepo_Counts_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStatsRepo(mock)
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("down"))

	_, err = repo.Counts(context.Background())
	assert.Error(t, err)
}

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	pk := testPublicKey
	entry := &domain.AuditLog{
		ID:           uuid.New(),
		PublicKey:    &pk,
		Action:       domain.AuditActionSend,
		ResourceType: "transaction",
		Status:       200,
		IPAddress:    "127.0.0.1",
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(entry.ID, entry.PublicKey, "SEND", "transaction", 200, (*string)(nil), "127.0.0.1", entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)
	assert.Equal(t, "postgresql", hc.Name())

	mock.ExpectExec("SELECT 1 FROM bank_transfers").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	assert.NoError(t, hc.Ping(context.Background()))

	mock.ExpectExec("SELECT 1 FROM bank_transfers").WillReturnError(errors.New("refused"))
	assert.Error(t, hc.Ping(context.Background()))
}
