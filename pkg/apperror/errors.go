package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned to callers. Each code names one failure kind.
const (
	CodeInvalidSigner      = "SEC_001"
	CodeInvalidSignature   = "SEC_002"
	CodeTimestampExpired   = "SEC_003"
	CodeNonceUsed          = "SEC_004"
	CodeAuthorityMismatch  = "AUTH_001"
	CodeAlreadyInitialized = "REC_001"
	CodeNotFound           = "REC_002"
	CodeInvalidState       = "REC_003"
	CodeConflict           = "REC_004"
	CodeInsufficientFunds  = "PAY_001"
	CodeFrozen             = "INFRA_001"
	CodeUnverified         = "INFRA_002"
	CodeValidation         = "VAL_001"
	CodePayloadTooLarge    = "VAL_002"
	CodeRateLimited        = "RATE_001"
	CodeInternal           = "SYS_001"
	CodeNotImplemented     = "SYS_004"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
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

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is (or wraps) an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// ---- Request authentication (SEC) ----

func ErrInvalidSigner() *AppError {
	return New(CodeInvalidSigner, "Invalid signer public key", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New(CodeInvalidSignature, "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New(CodeTimestampExpired, "Request timestamp expired", http.StatusUnauthorized)
}

func ErrNonceUsed() *AppError {
	return New(CodeNonceUsed, "Nonce has already been used", http.StatusUnauthorized)
}

// ---- Authority (AUTH) ----

func ErrAuthorityMismatch(record string) *AppError {
	return New(CodeAuthorityMismatch, fmt.Sprintf("Signer is not the authority of %s", record), http.StatusForbidden)
}

// ---- Records (REC) ----

func ErrAlreadyInitialized(record string) *AppError {
	return New(CodeAlreadyInitialized, fmt.Sprintf("%s already initialized", record), http.StatusConflict)
}

func ErrNotFound(record string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", record), http.StatusNotFound)
}

func ErrInvalidState(message string) *AppError {
	return New(CodeInvalidState, message, http.StatusConflict)
}

func ErrConflict(err error) *AppError {
	return Wrap(CodeConflict, "Record changed concurrently, re-read and retry", http.StatusConflict, err)
}

// ---- Value movement (PAY) ----

func ErrInsufficientFunds() *AppError {
	return New(CodeInsufficientFunds, "Insufficient balance in account", http.StatusPaymentRequired)
}

// ---- Infra gates (INFRA) ----

func ErrFrozen(record string) *AppError {
	return New(CodeFrozen, fmt.Sprintf("%s is frozen", record), http.StatusForbidden)
}

func ErrUnverified(record string) *AppError {
	return New(CodeUnverified, fmt.Sprintf("%s is not verified", record), http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrNotImplemented(message string) *AppError {
	return New(CodeNotImplemented, message, http.StatusNotImplemented)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// ErrPayloadTooLarge is returned when a request body exceeds the server limit.
func ErrPayloadTooLarge(limit int64) *AppError {
	return New(CodePayloadTooLarge, fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}
