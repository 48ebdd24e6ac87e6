package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   ErrWalletNotFound(),
			expected: "[WAL_001] Wallet not found",
		},
		{
			name:     "with wrapped error",
			appErr:   ErrStorage(fmt.Errorf("connection refused")),
			expected: "[SYS_001] Internal database error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("horizon: 503")
	appErr := ErrLedgerNetwork(inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, ErrNoSignerRegistered().Unwrap())
}

func TestHTTPStatus_PerKind(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindWalletNotFound, http.StatusNotFound},
		{KindInvalidAddress, http.StatusBadRequest},
		{KindDuplicateAddress, http.StatusConflict},
		{KindReputationTooLow, http.StatusForbidden},
		{KindNoSignerRegistered, http.StatusNotFound},
		{KindLedgerNetwork, http.StatusBadGateway},
		{KindExternalAPI, http.StatusBadGateway},
		{KindStorage, http.StatusInternalServerError},
		{KindConfigInvalid, http.StatusInternalServerError},
		{KindUnimplemented, http.StatusNotImplemented},
		{KindValidation, http.StatusBadRequest},
		{KindRateLimited, http.StatusTooManyRequests},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.kind))
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		kind Kind
		code string
	}{
		{"WalletNotFound", ErrWalletNotFound(), KindWalletNotFound, "WAL_001"},
		{"DuplicateAddress", ErrDuplicateAddress(), KindDuplicateAddress, "WAL_002"},
		{"InvalidAddress", ErrInvalidAddress("destination"), KindInvalidAddress, "ADDR_001"},
		{"NoSigner", ErrNoSignerRegistered(), KindNoSignerRegistered, "AA_001"},
		{"LedgerNetwork", ErrLedgerNetwork(nil), KindLedgerNetwork, "NET_001"},
		{"ExternalAPI", ErrExternalAPI(nil), KindExternalAPI, "EXT_001"},
		{"Storage", ErrStorage(nil), KindStorage, "SYS_001"},
		{"Internal", InternalError(nil), KindInternal, "SYS_002"},
		{"Unimplemented", ErrUnimplemented("bundler relay"), KindUnimplemented, "SYS_501"},
		{"ConfigInvalid", ErrConfigInvalid("bad"), KindConfigInvalid, "CFG_001"},
		{"Validation", Validation("bad"), KindValidation, "VAL_001"},
		{"RateLimit", ErrRateLimitExceeded(), KindRateLimited, "RATE_001"},
		{"InvalidToken", ErrInvalidToken(), KindUnauthorized, "AUTH_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, HTTPStatus(tt.kind), tt.err.HTTPStatus)
		})
	}
}

func TestErrReputationTooLow_CarriesScores(t *testing.T) {
	err := ErrReputationTooLow(52, 60)

	assert.Equal(t, "Reputation score too low: 52 (required: 60)", err.Message)
	assert.Equal(t, 52, err.Details["current"])
	assert.Equal(t, 60, err.Details["required"])
}

func TestWithDetail_DoesNotMutateOriginal(t *testing.T) {
	base := ErrReputationTooLow(10, 50)
	withID := base.WithDetail("transfer_id", "abc")

	assert.Equal(t, "abc", withID.Details["transfer_id"])
	assert.NotContains(t, base.Details, "transfer_id")
	assert.Equal(t, base.Code, withID.Code)
}

func TestKindOf_AndIs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ErrUnimplemented("relay"))

	assert.Equal(t, KindUnimplemented, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindUnimplemented))
	assert.False(t, Is(wrapped, KindInternal))

	require.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestUnimplemented_DistinctFromInternal(t *testing.T) {
	unimpl := ErrUnimplemented("bank transfer export")
	internal := InternalError(errors.New("boom"))

	assert.NotEqual(t, unimpl.Code, internal.Code)
	assert.NotEqual(t, unimpl.HTTPStatus, internal.HTTPStatus)
	assert.Contains(t, unimpl.Message, "bank transfer export")
}
