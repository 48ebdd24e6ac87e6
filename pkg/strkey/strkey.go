// Package strkey converts raw 32-byte ed25519 keys to and from the
// versioned, checksummed base32 text form used for ledger addresses
// ('G...') and secret seeds ('S...').
//
// Layout: base32(version || raw || checksum) with no padding, where checksum
// is the first two bytes of sha256(sha256(version || raw)). A 32-byte key
// therefore always encodes to 56 characters.
package strkey

import (
	"bytes"
	"crypto/sha256"
	"encoding/base32"
	"errors"
	"fmt"
)

// VersionByte identifies the kind of key carried by an encoded string.
type VersionByte byte

const (
	// VersionByteAccountID encodes to a leading 'G'.
	VersionByteAccountID VersionByte = 6 << 3
	// VersionByteSeed encodes to a leading 'S'.
	VersionByteSeed VersionByte = 18 << 3
)

const (
	// RawKeyLen is the size of an ed25519 public key or seed.
	RawKeyLen = 32
	// EncodedLen is the length of every encoded key.
	EncodedLen = 56

	checksumLen = 2
	payloadLen  = 1 + RawKeyLen + checksumLen
)

// ErrInvalidAddress is wrapped by every decode failure below.
var ErrInvalidAddress = errors.New("strkey: invalid address")

var (
	ErrInvalidLength      = fmt.Errorf("%w: bad length", ErrInvalidAddress)
	ErrInvalidEncoding    = fmt.Errorf("%w: bad base32 encoding", ErrInvalidAddress)
	ErrInvalidChecksum    = fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	ErrInvalidVersionByte = fmt.Errorf("%w: unexpected version byte", ErrInvalidAddress)
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Encode produces the text form of raw under the given version byte.
func Encode(version VersionByte, raw []byte) (string, error) {
	if !version.valid() {
		return "", fmt.Errorf("%w: 0x%02x", ErrInvalidVersionByte, byte(version))
	}
	if len(raw) != RawKeyLen {
		return "", fmt.Errorf("%w: raw key is %d bytes, want %d", ErrInvalidLength, len(raw), RawKeyLen)
	}

	payload := make([]byte, 0, payloadLen)
	payload = append(payload, byte(version))
	payload = append(payload, raw...)
	payload = append(payload, checksum(payload)...)

	return encoding.EncodeToString(payload), nil
}

// MustEncode is Encode for inputs known to be well-formed.
func MustEncode(version VersionByte, raw []byte) string {
	s, err := Encode(version, raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Decode parses src and returns its version byte and raw key.
func Decode(src string) (VersionByte, []byte, error) {
	if len(src) != EncodedLen {
		return 0, nil, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidLength, len(src), EncodedLen)
	}

	payload, err := encoding.DecodeString(src)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(payload) != payloadLen {
		return 0, nil, fmt.Errorf("%w: decoded %d bytes", ErrInvalidLength, len(payload))
	}

	body, sum := payload[:payloadLen-checksumLen], payload[payloadLen-checksumLen:]
	if !bytes.Equal(sum, checksum(body)) {
		return 0, nil, ErrInvalidChecksum
	}

	version := VersionByte(body[0])
	if !version.valid() {
		return 0, nil, fmt.Errorf("%w: 0x%02x", ErrInvalidVersionByte, body[0])
	}

	raw := make([]byte, RawKeyLen)
	copy(raw, body[1:])
	return version, raw, nil
}

// DecodeAs parses src and fails unless it carries the expected version byte.
func DecodeAs(expected VersionByte, src string) ([]byte, error) {
	version, raw, err := Decode(src)
	if err != nil {
		return nil, err
	}
	if version != expected {
		return nil, fmt.Errorf("%w: got 0x%02x, want 0x%02x", ErrInvalidVersionByte, byte(version), byte(expected))
	}
	return raw, nil
}

// IsValidAccount reports whether s is a well-formed 'G' address.
func IsValidAccount(s string) bool {
	_, err := DecodeAs(VersionByteAccountID, s)
	return err == nil
}

// IsValidSeed reports whether s is a well-formed 'S' secret seed.
func IsValidSeed(s string) bool {
	_, err := DecodeAs(VersionByteSeed, s)
	return err == nil
}

func (v VersionByte) valid() bool {
	return v == VersionByteAccountID || v == VersionByteSeed
}

func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:checksumLen]
}
