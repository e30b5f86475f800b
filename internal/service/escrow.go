package service

import (
	"context"
	"fmt"

	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/apperror"
)

// EscrowHandle is value locked against one owner record.
type EscrowHandle struct {
	Account domain.Address
	Amount  int64
}

// lockEscrow moves amount from the payer into the escrow account of owner.
func lockEscrow(ctx context.Context, tx ports.RecordTx, from, owner domain.Address, amount int64) (EscrowHandle, error) {
	if amount < 0 {
		return EscrowHandle{}, apperror.Validation("escrow amount must not be negative")
	}
	h := EscrowHandle{Account: domain.EscrowAddress(owner), Amount: amount}
	if amount == 0 {
		return h, nil
	}
	if err := tx.Transfer(ctx, from, h.Account, amount); err != nil {
		return EscrowHandle{}, storeError(err, "escrow lock")
	}
	return h, nil
}

// releaseEscrow pays out the whole handle. The payout lines must add up to
// the locked amount exactly.
func releaseEscrow(ctx context.Context, tx ports.RecordTx, h EscrowHandle, payouts []domain.Payout) error {
	if sum := domain.SumPayouts(payouts); sum != h.Amount {
		return apperror.InternalError(fmt.Errorf("escrow %s: payouts sum to %d, locked %d", h.Account, sum, h.Amount))
	}
	for _, p := range payouts {
		if p.AmountCent < 0 {
			return apperror.InternalError(fmt.Errorf("escrow %s: negative %s payout", h.Account, p.Label))
		}
		if p.AmountCent == 0 {
			continue
		}
		if err := tx.Transfer(ctx, h.Account, p.To, p.AmountCent); err != nil {
			return storeError(err, "escrow release")
		}
	}
	return nil
}

// refundEscrow returns the whole handle to one account.
func refundEscrow(ctx context.Context, tx ports.RecordTx, h EscrowHandle, to domain.Address) ([]domain.Payout, error) {
	payouts := []domain.Payout{{To: to, AmountCent: h.Amount, Label: domain.PayoutRefund}}
	if err := releaseEscrow(ctx, tx, h, payouts); err != nil {
		return nil, err
	}
	return payouts, nil
}
