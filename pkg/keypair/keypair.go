// Package keypair generates ed25519 keypairs and renders them in the
// ledger network's strkey form.
package keypair

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"wallet-backend/pkg/strkey"
)

// Full holds both halves of a keypair.
type Full struct {
	publicKey ed25519.PublicKey
	seed      []byte
}

// Random creates a keypair from the system CSPRNG.
func Random() (*Full, error) {
	return FromReader(rand.Reader)
}

// FromReader creates a keypair using entropy from r.
func FromReader(r io.Reader) (*Full, error) {
	seed := make([]byte, ed25519.SeedSize)
	if _, err := io.ReadFull(r, seed); err != nil {
		return nil, fmt.Errorf("read seed entropy: %w", err)
	}
	return FromRawSeed(seed)
}

// FromRawSeed derives a keypair from a 32-byte ed25519 seed.
func FromRawSeed(seed []byte) (*Full, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed is %d bytes, want %d", len(seed), ed25519.SeedSize)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return &Full{
		publicKey: priv.Public().(ed25519.PublicKey),
		seed:      append([]byte(nil), seed...),
	}, nil
}

// Parse decodes an 'S...' secret seed back into its keypair.
func Parse(secret string) (*Full, error) {
	raw, err := strkey.DecodeAs(strkey.VersionByteSeed, secret)
	if err != nil {
		return nil, err
	}
	return FromRawSeed(raw)
}

// Address returns the 'G...' account identifier.
func (kp *Full) Address() string {
	return strkey.MustEncode(strkey.VersionByteAccountID, kp.publicKey)
}

// Seed returns the 'S...' secret seed.
func (kp *Full) Seed() string {
	return strkey.MustEncode(strkey.VersionByteSeed, kp.seed)
}

// Sign signs msg with the private key.
func (kp *Full) Sign(msg []byte) []byte {
	return ed25519.Sign(ed25519.NewKeyFromSeed(kp.seed), msg)
}

// Verify reports whether sig is a valid signature of msg by address.
func Verify(address string, msg, sig []byte) bool {
	raw, err := strkey.DecodeAs(strkey.VersionByteAccountID, address)
	if err != nil {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(raw), msg, sig)
}
