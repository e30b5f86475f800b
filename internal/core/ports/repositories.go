package ports

import (
	"context"

	"ride-escrow-network/internal/core/domain"
)

// RecordStore persists typed records under deterministic addresses together
// with the token accounts those addresses own.
type RecordStore interface {
	// Begin starts one atomic unit of work.
	Begin(ctx context.Context) (RecordTx, error)
	// Get reads a committed record into rec. Returns sentinel.ErrNotFound.
	Get(ctx context.Context, addr domain.Address, rec domain.Record) error
	// Balance reads a committed account balance. Unknown accounts hold zero.
	Balance(ctx context.Context, account domain.Address) (int64, error)
}

// RecordTx is a transaction over records and token accounts. Either every
// write commits or none does.
type RecordTx interface {
	Get(ctx context.Context, addr domain.Address, rec domain.Record) error
	// Create stores a new record at rec.Address(). Returns sentinel.ErrConflict
	// when the address is taken.
	Create(ctx context.Context, rec domain.Record) error
	// Update replaces rec if the stored version still equals rec.Version().
	// Returns sentinel.ErrConflict otherwise. On success the version advances.
	Update(ctx context.Context, rec domain.Record) error
	// Delete removes rec under the same version check as Update.
	Delete(ctx context.Context, rec domain.Record) error

	Balance(ctx context.Context, account domain.Address) (int64, error)
	// Transfer moves amount between accounts. Returns
	// sentinel.ErrInsufficientBalance when from cannot cover it.
	Transfer(ctx context.Context, from, to domain.Address, amount int64) error
	// Mint credits new value into an account.
	Mint(ctx context.Context, to domain.Address, amount int64) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
