package sentinel

import "errors"

// Sentinel errors for storage facts. Stores return these (optionally wrapped)
// and services translate them into apperror kinds:
//   - ErrNotFound: no record or account at the address
//   - ErrConflict: the stored version moved, or the address is already taken
//   - ErrInsufficientBalance: a debit would take an account below zero
var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
