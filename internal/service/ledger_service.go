package service

import (
	"context"
	"fmt"

	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/apperror"

	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	store ports.RecordStore
	log   zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(store ports.RecordStore, log zerolog.Logger) *LedgerServiceImpl {
	return &LedgerServiceImpl{store: store, log: log}
}

// Topup mints value into an account and returns the new balance. Global
// authority only.
func (s *LedgerServiceImpl) Topup(ctx context.Context, req ports.TopupRequest) (int64, error) {
	if req.AmountCent <= 0 {
		return 0, apperror.Validation("top-up amount must be positive")
	}
	if req.Account == "" {
		return 0, apperror.Validation("account is required")
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer rollback(ctx, tx, s.log)

	g := &domain.GlobalConfig{}
	if err := load(ctx, tx, g, globalName); err != nil {
		return 0, err
	}
	if err := requireAuthority(req.Signer, g.UpdateAuthority, globalName); err != nil {
		return 0, err
	}
	if err := tx.Mint(ctx, req.Account, req.AmountCent); err != nil {
		return 0, storeError(err, "account "+req.Account.String())
	}
	balance, err := tx.Balance(ctx, req.Account)
	if err != nil {
		return 0, storeError(err, "account "+req.Account.String())
	}
	if err := commit(ctx, tx); err != nil {
		return 0, err
	}

	s.log.Info().
		Str("account", req.Account.String()).
		Int64("amount_cent", req.AmountCent).
		Msg("top-up processed successfully")
	return balance, nil
}

// Balance reads an account. Unknown accounts hold zero.
func (s *LedgerServiceImpl) Balance(ctx context.Context, account domain.Address) (int64, error) {
	bal, err := s.store.Balance(ctx, account)
	if err != nil {
		return 0, storeError(err, "account "+account.String())
	}
	return bal, nil
}
