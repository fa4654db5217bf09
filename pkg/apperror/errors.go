package apperror

import (
	"fmt"
	"net/http"
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

// ---- Session & Connection (CONN) ----

func ErrNotConnected() *AppError {
	return New("CONN_001", "No active signing session", http.StatusUnauthorized)
}

// ---- Input Validation (VAL) ----

func ErrInvalidAmount() *AppError {
	return New("VAL_001", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrInvalidRecipient(recipient string) *AppError {
	return New("VAL_002", fmt.Sprintf("Recipient %q is not a valid address", recipient), http.StatusBadRequest)
}

// ---- Balance (BAL) ----

// ErrInsufficientBalance carries both sides of the comparison so a caller
// can see how far short the balance fell.
func ErrInsufficientBalance(have, want string) *AppError {
	return New("BAL_001", fmt.Sprintf("Insufficient balance: have %s, want %s", have, want), http.StatusPaymentRequired)
}

func ErrNoEncryptedBalance() *AppError {
	return New("BAL_002", "Account holds no encrypted balance", http.StatusPreconditionFailed)
}

func ErrBalanceQueryFailed(step string, err error) *AppError {
	return Wrap("BAL_003", fmt.Sprintf("Failed to query %s", step), http.StatusBadGateway, err)
}

// ---- Confidential Compute (FHE) ----

func ErrInvalidDecryptionInput() *AppError {
	return New("FHE_001", "Decryption requires a non-empty handle and an active session", http.StatusBadRequest)
}

func ErrDecryptionFailed(err error) *AppError {
	return Wrap("FHE_002", "Balance decryption failed", http.StatusBadGateway, err)
}

func ErrEncryptionFailed(err error) *AppError {
	return Wrap("FHE_003", "Amount encryption failed", http.StatusBadGateway, err)
}

// ---- Ledger (CHAIN) ----

// ErrTransactionRejected names the workflow step whose transaction was
// reverted or rejected, so an approval failure is distinguishable from a
// deposit failure on the same call.
func ErrTransactionRejected(step string, err error) *AppError {
	return Wrap("CHAIN_001", fmt.Sprintf("%s transaction failed", step), http.StatusBadGateway, err)
}

func ErrRequestEventMissing() *AppError {
	return New("CHAIN_002", "Confirmed receipt contains no withdrawal request event", http.StatusBadGateway)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_000 error with a caller-supplied message.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}
