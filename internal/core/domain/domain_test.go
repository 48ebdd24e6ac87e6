package domain

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTrustScore(t *testing.T) {
	tests := []struct {
		name string
		in   ScoreInputs
		want int
	}{
		{"fresh account", ScoreInputs{}, 10},
		{"only age", ScoreInputs{AccountAgeDays: 30}, 13},
		{"end-to-end example", ScoreInputs{TxCount: 5, TotalVolume: 1000, AccountAgeDays: 20}, 52},
		{"volume below one is a negative log", ScoreInputs{TotalVolume: 0.5}, 10},
		{"zero volume", ScoreInputs{TxCount: 1, TotalVolume: 0}, 12},
		{"tx bonus capped at 40", ScoreInputs{TxCount: 500}, 50},
		{"volume bonus capped at 30", ScoreInputs{TotalVolume: 1e12}, 40},
		{"age bonus capped at 20", ScoreInputs{AccountAgeDays: 10_000}, 30},
		{"huge tx count stays capped", ScoreInputs{TxCount: 1 << 62}, 50},
		{"max tx count stays capped", ScoreInputs{TxCount: math.MaxInt64}, 50},
		{"everything capped", ScoreInputs{TxCount: 1000, TotalVolume: 1e9, AccountAgeDays: 1000}, 100},
		{"fractional volume bonus floors", ScoreInputs{TotalVolume: 50}, 26},
		{"negative inputs clamp", ScoreInputs{TxCount: -4, TotalVolume: -10, AccountAgeDays: -100}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTrustScore(tt.in))
		})
	}
}

func TestComputeTrustScore_RangeAndMonotonic(t *testing.T) {
	prev := ComputeTrustScore(ScoreInputs{})
	for n := int64(0); n < 60; n++ {
		in := ScoreInputs{TxCount: n, TotalVolume: float64(n * n * 37), AccountAgeDays: n * 7}
		got := ComputeTrustScore(in)

		require.GreaterOrEqual(t, got, 0)
		require.LessOrEqual(t, got, MaxTrustScore)
		require.GreaterOrEqual(t, got, prev, "score decreased at step %d", n)
		prev = got

		more := ComputeTrustScore(ScoreInputs{TxCount: n + 1, TotalVolume: in.TotalVolume, AccountAgeDays: in.AccountAgeDays})
		assert.GreaterOrEqual(t, more, got)
	}
}

func TestComputeTrustScore_MonotonicPerInput(t *testing.T) {
	assertSweep := func(t *testing.T, name string, inputs []ScoreInputs) {
		t.Helper()
		prev := -1
		for i, in := range inputs {
			got := ComputeTrustScore(in)
			require.GreaterOrEqual(t, got, 0)
			require.LessOrEqual(t, got, MaxTrustScore)
			require.GreaterOrEqual(t, got, prev, "%s decreased at step %d (%+v)", name, i, in)
			prev = got
		}
	}

	fixed := []ScoreInputs{
		{},
		{TxCount: 5, TotalVolume: 1000, AccountAgeDays: 20},
		{TxCount: 30, TotalVolume: 1e9, AccountAgeDays: 500},
	}

	for _, base := range fixed {
		var byCount, byVolume, byAge []ScoreInputs

		for _, n := range []int64{0, 1, 2, 7, 19, 20, 21, 100, 1 << 40, 1 << 62, math.MaxInt64} {
			in := base
			in.TxCount = n
			byCount = append(byCount, in)
		}
		for _, v := range []float64{0, 0.001, 0.1, 0.5, 0.999, 1, 1.5, 10, 50, 999.9, 1000, 1e6, 1e9, 1e12, math.MaxFloat64} {
			in := base
			in.TotalVolume = v
			byVolume = append(byVolume, in)
		}
		for _, d := range []int64{0, 1, 9, 10, 15, 20, 199, 200, 201, 10_000, math.MaxInt64} {
			in := base
			in.AccountAgeDays = d
			byAge = append(byAge, in)
		}

		assertSweep(t, "tx count", byCount)
		assertSweep(t, "volume", byVolume)
		assertSweep(t, "account age", byAge)
	}
}

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  TrustLevel
	}{
		{0, TrustLevelUnverified},
		{30, TrustLevelUnverified},
		{31, TrustLevelVerifiedL1},
		{52, TrustLevelVerifiedL1},
		{60, TrustLevelVerifiedL1},
		{61, TrustLevelVerifiedL2},
		{80, TrustLevelVerifiedL2},
		{81, TrustLevelTrusted},
		{100, TrustLevelTrusted},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			assert.Equal(t, tt.want, LevelForScore(tt.score))
		})
	}
}

func TestNewTrustScore(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	ts := NewTrustScore("GABC", 5, decimal.NewFromInt(1000), 20, now)

	assert.Equal(t, 52, ts.Score)
	assert.Equal(t, TrustLevelVerifiedL1, ts.Level)
	assert.Equal(t, int64(5), ts.TxCount)
	assert.True(t, ts.TotalVolume.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, now, ts.LastCalculated)
}

func TestMaskAccount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "*"},
		{"1234", "****"},
		{"12345", "****2345"},
		{"DE89370400440532013000", "****3000"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := MaskAccount(tt.in)
			assert.Equal(t, tt.want, got)
			if len(tt.in) > 4 {
				assert.NotContains(t, got, tt.in[:len(tt.in)-4])
			}
		})
	}
}

func TestNewTransferRecord(t *testing.T) {
	now := time.Now().UTC()
	w := &Wallet{ID: uuid.New(), PublicKey: "GABC"}
	req := TransferRequest{
		PublicKey:   "GABC",
		AmountFiat:  decimal.RequireFromString("125.50"),
		Currency:    "usd",
		BankAccount: "DE89370400440532013000",
	}
	score := 52

	t.Run("completed", func(t *testing.T) {
		rec := NewTransferRecord(w, req, &score, nil, now)

		assert.Equal(t, TransferStatusCompleted, rec.Status)
		assert.False(t, rec.IsRejected())
		assert.Nil(t, rec.RejectionReason)
		require.NotNil(t, rec.CompletedAt)
		assert.Equal(t, now, *rec.CompletedAt)
		assert.Equal(t, "USD", rec.Currency)
		assert.Equal(t, "****3000", rec.BankAccountMasked)
		assert.Equal(t, w.ID, rec.WalletID)
	})

	t.Run("rejected", func(t *testing.T) {
		reason := RejectionReason(score, 60)
		rec := NewTransferRecord(w, req, &score, &reason, now)

		assert.Equal(t, TransferStatusRejected, rec.Status)
		assert.True(t, rec.IsRejected())
		require.NotNil(t, rec.RejectionReason)
		assert.Equal(t, "Reputation score too low: 52 (required: 60)", *rec.RejectionReason)
		assert.Nil(t, rec.CompletedAt)
		assert.Equal(t, 52, *rec.ReputationScore)
	})
}

func TestTransaction_Validate(t *testing.T) {
	valid := func() *Transaction {
		return &Transaction{
			ID:       uuid.New(),
			WalletID: uuid.New(),
			TxHash:   "abc123",
			Type:     TransactionTypeSend,
			Amount:   "10.5",
			Asset:    NativeAssetCode,
			Status:   TransactionStatusCompleted,
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{"bad type", func(tx *Transaction) { tx.Type = "payment" }},
		{"bad status", func(tx *Transaction) { tx.Status = "SUCCESS" }},
		{"missing hash", func(tx *Transaction) { tx.TxHash = "" }},
		{"missing asset", func(tx *Transaction) { tx.Asset = "" }},
		{"malformed amount", func(tx *Transaction) { tx.Amount = "ten" }},
		{"zero amount", func(tx *Transaction) { tx.Amount = "0" }},
		{"negative amount", func(tx *Transaction) { tx.Amount = "-1" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid()
			tt.mutate(tx)
			assert.Error(t, tx.Validate())
		})
	}
}

func TestTransaction_StatusHelpers(t *testing.T) {
	tests := []struct {
		status    TransactionStatus
		completed bool
		terminal  bool
	}{
		{TransactionStatusPending, false, false},
		{TransactionStatusCompleted, true, true},
		{TransactionStatusFailed, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			tx := &Transaction{Status: tt.status}
			assert.Equal(t, tt.completed, tx.IsCompleted())
			assert.Equal(t, tt.terminal, tx.IsTerminal())
		})
	}
}

func TestNewWallet(t *testing.T) {
	now := time.Now()
	w := NewWallet("GABC", true, now)

	assert.NotEqual(t, uuid.Nil, w.ID)
	assert.Equal(t, "GABC", w.PublicKey)
	assert.True(t, w.IsAAWallet)
	assert.Equal(t, now, w.CreatedAt)
	assert.Equal(t, w.CreatedAt, w.UpdatedAt)
}

func TestRejectionReason_CitesBothNumbers(t *testing.T) {
	reason := RejectionReason(7, 95)
	assert.True(t, strings.Contains(reason, "7") && strings.Contains(reason, "95"))
}
