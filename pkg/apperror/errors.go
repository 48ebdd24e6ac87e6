package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of failure variants the backend can report.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindWalletNotFound
	KindInvalidAddress
	KindDuplicateAddress
	KindReputationTooLow
	KindNoSignerRegistered
	KindLedgerNetwork
	KindExternalAPI
	KindStorage
	KindConfigInvalid
	KindUnimplemented
	KindRateLimited
	KindUnauthorized
)

var kindNames = map[Kind]string{
	KindInternal:           "Internal",
	KindValidation:         "Validation",
	KindWalletNotFound:     "WalletNotFound",
	KindInvalidAddress:     "InvalidAddress",
	KindDuplicateAddress:   "DuplicateAddress",
	KindReputationTooLow:   "ReputationTooLow",
	KindNoSignerRegistered: "NoSignerRegistered",
	KindLedgerNetwork:      "LedgerNetworkError",
	KindExternalAPI:        "ExternalApiError",
	KindStorage:            "StorageError",
	KindConfigInvalid:      "ConfigInvalid",
	KindUnimplemented:      "Unimplemented",
	KindRateLimited:        "RateLimited",
	KindUnauthorized:       "Unauthorized",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// HTTPStatus maps a variant to its transport status code. It depends on the
// variant only, never on message text.
func HTTPStatus(k Kind) int {
	switch k {
	case KindValidation, KindInvalidAddress:
		return http.StatusBadRequest
	case KindWalletNotFound, KindNoSignerRegistered:
		return http.StatusNotFound
	case KindDuplicateAddress:
		return http.StatusConflict
	case KindReputationTooLow:
		return http.StatusForbidden
	case KindLedgerNetwork, KindExternalAPI:
		return http.StatusBadGateway
	case KindUnimplemented:
		return http.StatusNotImplemented
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Kind       Kind           `json:"-"`
	Code       string         `json:"error_code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail returns a copy of e carrying an extra client-visible detail.
func (e *AppError) WithDetail(key string, value any) *AppError {
	cp := *e
	cp.Details = make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		cp.Details[k] = v
	}
	cp.Details[key] = value
	return &cp
}

// New creates a new AppError.
func New(kind Kind, code string, message string) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: HTTPStatus(kind),
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, err error) *AppError {
	e := New(kind, code, message)
	e.Err = err
	return e
}

// KindOf reports the variant of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err is an AppError of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// ---- Wallets & addresses (WAL / ADDR) ----

func ErrWalletNotFound() *AppError {
	return New(KindWalletNotFound, "WAL_001", "Wallet not found")
}

func ErrDuplicateAddress() *AppError {
	return New(KindDuplicateAddress, "WAL_002", "Wallet address already registered")
}

func ErrInvalidAddress(field string) *AppError {
	return New(KindInvalidAddress, "ADDR_001", fmt.Sprintf("Invalid address: %s", field))
}

// ---- Reputation (REP) ----

// ErrReputationTooLow is an expected business outcome, not a fault.
func ErrReputationTooLow(current, required int) *AppError {
	e := New(KindReputationTooLow, "REP_001",
		fmt.Sprintf("Reputation score too low: %d (required: %d)", current, required))
	e.Details = map[string]any{
		"current":  current,
		"required": required,
	}
	return e
}

// ---- Account abstraction (AA) ----

func ErrNoSignerRegistered() *AppError {
	return New(KindNoSignerRegistered, "AA_001", "No signer registered for address")
}

// ---- Collaborators (NET / EXT) ----

func ErrLedgerNetwork(err error) *AppError {
	return Wrap(KindLedgerNetwork, "NET_001", "Ledger network unavailable", err)
}

func ErrExternalAPI(err error) *AppError {
	return Wrap(KindExternalAPI, "EXT_001", "Exchange rate provider unavailable", err)
}

// ---- Rate limiting & auth (RATE / AUTH) ----

func ErrRateLimitExceeded() *AppError {
	return New(KindRateLimited, "RATE_001", "Rate limit exceeded")
}

func ErrInvalidToken() *AppError {
	return New(KindUnauthorized, "AUTH_001", "Invalid or expired token")
}

// ---- System & Infrastructure (SYS / CFG) ----

func ErrStorage(err error) *AppError {
	return Wrap(KindStorage, "SYS_001", "Internal database error", err)
}

// InternalError wraps an unexpected internal error.
func InternalError(err error) *AppError {
	return Wrap(KindInternal, "SYS_002", "Internal server error", err)
}

func ErrUnimplemented(feature string) *AppError {
	return New(KindUnimplemented, "SYS_501", fmt.Sprintf("%s is not implemented", feature))
}

func ErrConfigInvalid(reason string) *AppError {
	return New(KindConfigInvalid, "CFG_001", reason)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New(KindValidation, "VAL_001", message)
}
