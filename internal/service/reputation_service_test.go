package service

import (
	"context"
	"errors"
	"testing"

	"wallet-backend/internal/core/domain"
	"wallet-backend/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reputationTestDeps struct {
	svc        *ReputationServiceImpl
	walletRepo *mocks.MockWalletRepository
	txRepo     *mocks.MockTransactionRepository
	network    *mocks.MockLedgerNetwork
}

func setupReputationService(t *testing.T) *reputationTestDeps {
	ctrl := gomock.NewController(t)
	d := &reputationTestDeps{
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		txRepo:     mocks.NewMockTransactionRepository(ctrl),
		network:    mocks.NewMockLedgerNetwork(ctrl),
	}
	d.svc = NewReputationService(d.walletRepo, d.txRepo, d.network, zerolog.Nop())
	d.svc.now = fixedClock
	return d
}

func TestReputationService_Calculate_RegisteredWallet(t *testing.T) {
	d := setupReputationService(t)
	ctx := context.Background()
	pk := newAddress(t)
	wallet := &domain.Wallet{ID: uuid.New(), PublicKey: pk}

	d.walletRepo.EXPECT().GetByPublicKey(ctx, pk).Return(wallet, nil)
	d.txRepo.EXPECT().CountForWallet(ctx, wallet.ID).Return(int64(5), nil)
	d.txRepo.EXPECT().SumCompletedVolume(ctx, wallet.ID).Return(decimal.NewFromInt(1000), nil)
	d.network.EXPECT().AccountExists(ctx, pk).Return(true, nil)

	score, err := d.svc.Calculate(ctx, pk)
	require.NoError(t, err)

	// 10 base + 10 tx + 30 volume + 3 age (30-day placeholder)
	assert.Equal(t, 53, score.Score)
	assert.Equal(t, domain.TrustLevelVerifiedL1, score.Level)
	assert.Equal(t, int64(5), score.TxCount)
	assert.Equal(t, domain.PlaceholderAccountAgeDays, score.AccountAgeDays)
	assert.Equal(t, fixedNow, score.LastCalculated)
}

func TestReputationService_Calculate_UnregisteredAddress(t *testing.T) {
	d := setupReputationService(t)
	ctx := context.Background()
	pk := newAddress(t)

	d.walletRepo.EXPECT().GetByPublicKey(ctx, pk).Return(nil, nil)
	d.network.EXPECT().AccountExists(ctx, pk).Return(false, nil)

	score, err := d.svc.Calculate(ctx, pk)
	require.NoError(t, err)

	assert.Equal(t, 10, score.Score)
	assert.Equal(t, domain.TrustLevelUnverified, score.Level)
	assert.Zero(t, score.TxCount)
	assert.True(t, score.TotalVolume.IsZero())
	assert.Zero(t, score.AccountAgeDays)
}

func TestReputationService_Calculate_InvalidAddress(t *testing.T) {
	d := setupReputationService(t)

	_, err := d.svc.Calculate(context.Background(), "not-a-key")
	assertAppError(t, err, "ADDR_001")
}

func TestReputationService_Calculate_StorageError(t *testing.T) {
	d := setupReputationService(t)
	ctx := context.Background()
	pk := newAddress(t)

	d.walletRepo.EXPECT().GetByPublicKey(ctx, pk).Return(nil, errors.New("pool closed"))

	_, err := d.svc.Calculate(ctx, pk)
	assertAppError(t, err, "SYS_001")
}

func TestReputationService_Compute_NetworkError(t *testing.T) {
	d := setupReputationService(t)
	ctx := context.Background()
	pk := newAddress(t)

	d.network.EXPECT().AccountExists(ctx, pk).Return(false, errors.New("timeout"))

	_, err := d.svc.Compute(ctx, pk, nil)
	assertAppError(t, err, "NET_001")
}

func TestReputationService_Compute_VolumeError(t *testing.T) {
	d := setupReputationService(t)
	ctx := context.Background()
	id := uuid.New()

	d.txRepo.EXPECT().CountForWallet(ctx, id).Return(int64(1), nil)
	d.txRepo.EXPECT().SumCompletedVolume(ctx, id).Return(decimal.Zero, errors.New("boom"))

	_, err := d.svc.Compute(ctx, newAddress(t), &id)
	assertAppError(t, err, "SYS_001")
}

func TestReputationService_Compute_NotCached(t *testing.T) {
	d := setupReputationService(t)
	ctx := context.Background()
	pk := newAddress(t)
	id := uuid.New()

	gomock.InOrder(
		d.txRepo.EXPECT().CountForWallet(ctx, id).Return(int64(0), nil),
		d.txRepo.EXPECT().CountForWallet(ctx, id).Return(int64(10), nil),
	)
	d.txRepo.EXPECT().SumCompletedVolume(ctx, id).Return(decimal.Zero, nil).Times(2)
	d.network.EXPECT().AccountExists(ctx, pk).Return(false, nil).Times(2)

	first, err := d.svc.Compute(ctx, pk, &id)
	require.NoError(t, err)
	second, err := d.svc.Compute(ctx, pk, &id)
	require.NoError(t, err)

	assert.Equal(t, 10, first.Score)
	assert.Equal(t, 30, second.Score)
}
