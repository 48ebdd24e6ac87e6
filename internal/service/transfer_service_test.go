package service

import (
	"context"
	"errors"
	"testing"

	"wallet-backend/internal/core/domain"
	"wallet-backend/internal/core/ports/mocks"
	"wallet-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type transferTestDeps struct {
	svc          *TransferServiceImpl
	walletRepo   *mocks.MockWalletRepository
	reputation   *mocks.MockReputationService
	transferRepo *mocks.MockTransferRepository
}

func setupTransferService(t *testing.T, threshold int) *transferTestDeps {
	ctrl := gomock.NewController(t)
	d := &transferTestDeps{
		walletRepo:   mocks.NewMockWalletRepository(ctrl),
		reputation:   mocks.NewMockReputationService(ctrl),
		transferRepo: mocks.NewMockTransferRepository(ctrl),
	}
	svc, err := NewTransferService(d.walletRepo, d.reputation, d.transferRepo, threshold, zerolog.Nop())
	require.NoError(t, err)
	svc.now = fixedClock
	d.svc = svc
	return d
}

func transferRequest(pk string) domain.TransferRequest {
	return domain.TransferRequest{
		PublicKey:   pk,
		AmountFiat:  decimal.RequireFromString("250.00"),
		Currency:    "eur",
		BankAccount: "DE89370400440532013000",
	}
}

func TestNewTransferService_RejectsThresholdOutOfRange(t *testing.T) {
	for _, threshold := range []int{-1, 101} {
		_, err := NewTransferService(nil, nil, nil, threshold, zerolog.Nop())
		assertAppError(t, err, "CFG_001")
	}
}

func TestTransferService_Authorize_Completed(t *testing.T) {
	d := setupTransferService(t, 50)
	ctx := context.Background()
	pk := newAddress(t)
	wallet := &domain.Wallet{ID: uuid.New(), PublicKey: pk}

	d.walletRepo.EXPECT().GetByPublicKey(ctx, pk).Return(wallet, nil)
	d.reputation.EXPECT().Compute(ctx, pk, &wallet.ID).Return(&domain.TrustScore{Score: 52}, nil)

	var saved *domain.TransferRecord
	d.transferRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.TransferRecord) error {
			saved = rec
			return nil
		}).Times(1)

	rec, err := d.svc.AuthorizeTransfer(ctx, transferRequest(pk))
	require.NoError(t, err)

	assert.Same(t, saved, rec)
	assert.Equal(t, domain.TransferStatusCompleted, rec.Status)
	assert.Nil(t, rec.RejectionReason)
	require.NotNil(t, rec.CompletedAt)
	assert.Equal(t, fixedNow, *rec.CompletedAt)
	assert.Equal(t, "****3000", rec.BankAccountMasked)
	assert.Equal(t, "EUR", rec.Currency)
	assert.Equal(t, 52, *rec.ReputationScore)
	assert.Equal(t, wallet.ID, rec.WalletID)
}

func TestTransferService_Authorize_ScoreAtThresholdCompletes(t *testing.T) {
	d := setupTransferService(t, 52)
	ctx := context.Background()
	pk := newAddress(t)
	wallet := &domain.Wallet{ID: uuid.New(), PublicKey: pk}

	d.walletRepo.EXPECT().GetByPublicKey(ctx, pk).Return(wallet, nil)
	d.reputation.EXPECT().Compute(ctx, pk, &wallet.ID).Return(&domain.TrustScore{Score: 52}, nil)
	d.transferRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	rec, err := d.svc.AuthorizeTransfer(ctx, transferRequest(pk))
	require.NoError(t, err)
	assert.Equal(t, domain.TransferStatusCompleted, rec.Status)
}

func TestTransferService_Authorize_Rejected(t *testing.T) {
	d := setupTransferService(t, 60)
	ctx := context.Background()
	pk := newAddress(t)
	wallet := &domain.Wallet{ID: uuid.New(), PublicKey: pk}

	d.walletRepo.EXPECT().GetByPublicKey(ctx, pk).Return(wallet, nil)
	d.reputation.EXPECT().Compute(ctx, pk, &wallet.ID).Return(&domain.TrustScore{Score: 52}, nil)
	d.transferRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)

	rec, err := d.svc.AuthorizeTransfer(ctx, transferRequest(pk))
	require.NoError(t, err, "a rejection is an outcome, not an error")

	assert.Equal(t, domain.TransferStatusRejected, rec.Status)
	require.NotNil(t, rec.RejectionReason)
	assert.Equal(t, "Reputation score too low: 52 (required: 60)", *rec.RejectionReason)
	assert.Nil(t, rec.CompletedAt)
	assert.Equal(t, 52, *rec.ReputationScore)
}

func TestTransferService_Authorize_WalletNotFound(t *testing.T) {
	d := setupTransferService(t, 50)
	ctx := context.Background()
	pk := newAddress(t)

	d.walletRepo.EXPECT().GetByPublicKey(ctx, pk).Return(nil, nil)
	// Nothing is persisted before the wallet is resolved.
	d.transferRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := d.svc.AuthorizeTransfer(ctx, transferRequest(pk))
	assertAppError(t, err, "WAL_001")
}

func TestTransferService_Authorize_ScoreUnavailableStillAudited(t *testing.T) {
	d := setupTransferService(t, 50)
	ctx := context.Background()
	pk := newAddress(t)
	wallet := &domain.Wallet{ID: uuid.New(), PublicKey: pk}

	d.walletRepo.EXPECT().GetByPublicKey(ctx, pk).Return(wallet, nil)
	d.reputation.EXPECT().Compute(ctx, pk, &wallet.ID).Return(nil, apperror.ErrLedgerNetwork(errors.New("down")))
	d.transferRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.TransferRecord) error {
			assert.Equal(t, domain.TransferStatusRejected, rec.Status)
			assert.Nil(t, rec.ReputationScore)
			require.NotNil(t, rec.RejectionReason)
			assert.Equal(t, scoreUnavailableReason, *rec.RejectionReason)
			return nil
		}).Times(1)

	rec, err := d.svc.AuthorizeTransfer(ctx, transferRequest(pk))
	assert.Nil(t, rec)
	assertAppError(t, err, "NET_001")
}

func TestTransferService_Authorize_PersistFailure(t *testing.T) {
	d := setupTransferService(t, 50)
	ctx := context.Background()
	pk := newAddress(t)
	wallet := &domain.Wallet{ID: uuid.New(), PublicKey: pk}

	d.walletRepo.EXPECT().GetByPublicKey(ctx, pk).Return(wallet, nil)
	d.reputation.EXPECT().Compute(ctx, pk, &wallet.ID).Return(&domain.TrustScore{Score: 90}, nil)
	d.transferRepo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("disk full"))

	_, err := d.svc.AuthorizeTransfer(ctx, transferRequest(pk))
	assertAppError(t, err, "SYS_001")
}

func TestTransferService_Authorize_Validation(t *testing.T) {
	d := setupTransferService(t, 50)
	pk := newAddress(t)

	tests := []struct {
		name   string
		mutate func(*domain.TransferRequest)
		code   string
	}{
		{"bad address", func(r *domain.TransferRequest) { r.PublicKey = "GNOPE" }, "ADDR_001"},
		{"zero amount", func(r *domain.TransferRequest) { r.AmountFiat = decimal.Zero }, "VAL_001"},
		{"negative amount", func(r *domain.TransferRequest) { r.AmountFiat = decimal.NewFromInt(-5) }, "VAL_001"},
		{"sub-cent amount", func(r *domain.TransferRequest) { r.AmountFiat = decimal.RequireFromString("0.001") }, "VAL_001"},
		{"amount too large", func(r *domain.TransferRequest) {
			r.AmountFiat = decimal.RequireFromString("1000000000000000000")
		}, "VAL_001"},
		{"bad currency", func(r *domain.TransferRequest) { r.Currency = "EURO" }, "VAL_001"},
		{"missing bank account", func(r *domain.TransferRequest) { r.BankAccount = "  " }, "VAL_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := transferRequest(pk)
			tt.mutate(&req)
			_, err := d.svc.AuthorizeTransfer(context.Background(), req)
			assertAppError(t, err, tt.code)
		})
	}
}

func TestTransferService_Authorize_AmountBoundaries(t *testing.T) {
	for _, amount := range []string{"0.01", "1.10", "1.000", "999999999999999999.99"} {
		t.Run(amount, func(t *testing.T) {
			d := setupTransferService(t, 50)
			pk := newAddress(t)
			wallet := &domain.Wallet{ID: uuid.New(), PublicKey: pk}

			d.walletRepo.EXPECT().GetByPublicKey(gomock.Any(), pk).Return(wallet, nil)
			d.reputation.EXPECT().Compute(gomock.Any(), pk, &wallet.ID).Return(&domain.TrustScore{Score: 70}, nil)
			d.transferRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			req := transferRequest(pk)
			req.AmountFiat = decimal.RequireFromString(amount)
			rec, err := d.svc.AuthorizeTransfer(context.Background(), req)
			require.NoError(t, err)
			assert.True(t, rec.AmountFiat.Equal(req.AmountFiat))
		})
	}
}

func TestTransferService_ListTransfers(t *testing.T) {
	d := setupTransferService(t, 50)
	ctx := context.Background()

	records := []domain.TransferRecord{{ID: uuid.New()}, {ID: uuid.New()}}
	d.transferRepo.EXPECT().List(ctx).Return(records, nil)

	got, err := d.svc.ListTransfers(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got)

	d.transferRepo.EXPECT().List(ctx).Return(nil, errors.New("boom"))
	_, err = d.svc.ListTransfers(ctx)
	assertAppError(t, err, "SYS_001")
}

func TestTransferService_Threshold(t *testing.T) {
	d := setupTransferService(t, 73)
	assert.Equal(t, 73, d.svc.Threshold())
}
