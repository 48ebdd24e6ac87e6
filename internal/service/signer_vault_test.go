package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"wallet-backend/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSignerVault_RegisterGetRemove(t *testing.T) {
	v := NewSignerVault(nil, zerolog.Nop())

	assert.False(t, v.Has("GA"))
	_, ok := v.Get("GA")
	assert.False(t, ok)

	v.Register("GA", "SA-1")
	secret, ok := v.Get("GA")
	require.True(t, ok)
	assert.Equal(t, "SA-1", secret)

	// Re-registering overwrites.
	v.Register("GA", "SA-2")
	secret, _ = v.Get("GA")
	assert.Equal(t, "SA-2", secret)
	assert.Len(t, v.List(), 1)

	v.Remove("GA")
	assert.False(t, v.Has("GA"))
	assert.Empty(t, v.List())

	// Removing an absent key is a no-op.
	v.Remove("GA")
}

func TestSignerVault_ConcurrentRegisterThenList(t *testing.T) {
	v := NewSignerVault(nil, zerolog.Nop())
	const n = 200

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("G%03d", i)
			v.Register(key, "S"+key)
			assert.True(t, v.Has(key))
		}(i)
	}
	// Readers interleaved with writers.
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("G%03d", i)
			if secret, ok := v.Get(key); ok {
				assert.Equal(t, "S"+key, secret)
			}
		}(i)
	}
	wg.Wait()

	keys := v.List()
	assert.Len(t, keys, n)
	assert.IsIncreasing(t, keys)
}

func TestSignerVault_Relay_NoSigner(t *testing.T) {
	ctrl := gomock.NewController(t)
	network := mocks.NewMockLedgerNetwork(ctrl)
	v := NewSignerVault(network, zerolog.Nop())

	_, err := v.Relay(context.Background(), "GUNKNOWN", "payload")
	assertAppError(t, err, "AA_001")
}

func TestSignerVault_Relay_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	network := mocks.NewMockLedgerNetwork(ctrl)
	v := NewSignerVault(network, zerolog.Nop())
	ctx := context.Background()

	v.Register("GA", "SA")
	network.EXPECT().SubmitTransaction(ctx, "payload").Return("hash-1", nil)

	hash, err := v.Relay(ctx, "GA", "payload")
	require.NoError(t, err)
	assert.Equal(t, "hash-1", hash)
}

func TestSignerVault_Relay_NetworkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	network := mocks.NewMockLedgerNetwork(ctrl)
	v := NewSignerVault(network, zerolog.Nop())
	ctx := context.Background()

	v.Register("GA", "SA")
	network.EXPECT().SubmitTransaction(ctx, "payload").Return("", errors.New("503 from horizon"))

	_, err := v.Relay(ctx, "GA", "payload")
	assertAppError(t, err, "NET_001")
}
