package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"wallet-backend/internal/core/ports"
	"wallet-backend/pkg/apperror"

	"github.com/rs/zerolog"
)

// SignerVault keeps account-abstraction signing keys in process memory.
// Keys are stored in plaintext and vanish on restart.
type SignerVault struct {
	mu      sync.RWMutex
	signers map[string]string
	network ports.LedgerNetwork
	log     zerolog.Logger
}

// NewSignerVault creates an empty vault that relays through network.
func NewSignerVault(network ports.LedgerNetwork, log zerolog.Logger) *SignerVault {
	return &SignerVault{
		signers: make(map[string]string),
		network: network,
		log:     log,
	}
}

// Register stores secret for publicKey, replacing any previous entry.
func (v *SignerVault) Register(publicKey, secret string) {
	v.mu.Lock()
	v.signers[publicKey] = secret
	v.mu.Unlock()

	v.log.Info().Str("public_key", publicKey).Msg("signer registered")
}

// Get returns the secret registered for publicKey.
func (v *SignerVault) Get(publicKey string) (string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	secret, ok := v.signers[publicKey]
	return secret, ok
}

// Has reports whether publicKey has a registered signer.
func (v *SignerVault) Has(publicKey string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.signers[publicKey]
	return ok
}

// Remove deletes the signer for publicKey if present.
func (v *SignerVault) Remove(publicKey string) {
	v.mu.Lock()
	delete(v.signers, publicKey)
	v.mu.Unlock()
}

// List returns the registered public keys in lexical order.
func (v *SignerVault) List() []string {
	v.mu.RLock()
	keys := make([]string, 0, len(v.signers))
	for k := range v.signers {
		keys = append(keys, k)
	}
	v.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Relay submits payload on behalf of publicKey. The caller must hold a
// registered signer; submission itself is delegated to the ledger network.
func (v *SignerVault) Relay(ctx context.Context, publicKey, payload string) (string, error) {
	if !v.Has(publicKey) {
		return "", apperror.ErrNoSignerRegistered()
	}

	hash, err := v.network.SubmitTransaction(ctx, payload)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return "", err
		}
		return "", apperror.ErrLedgerNetwork(fmt.Errorf("submit for %s: %w", publicKey, err))
	}

	v.log.Info().
		Str("public_key", publicKey).
		Str("tx_hash", hash).
		Msg("transaction relayed")

	return hash, nil
}
