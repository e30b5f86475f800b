package service

import (
	"errors"
	"fmt"

	"ride-escrow-network/pkg/apperror"
	"ride-escrow-network/pkg/sentinel"
)

// storeError translates storage facts into caller-facing error kinds. record
// names what was being read or written and ends up in NotFound messages.
func storeError(err error, record string) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return apperror.ErrNotFound(record)
	case errors.Is(err, sentinel.ErrConflict):
		return apperror.ErrConflict(err)
	case errors.Is(err, sentinel.ErrInsufficientBalance):
		return apperror.ErrInsufficientFunds()
	default:
		return apperror.InternalError(fmt.Errorf("%s: %w", record, err))
	}
}
