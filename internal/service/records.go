package service

import (
	"context"
	"fmt"

	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/apperror"

	"github.com/rs/zerolog"
)

// recordReader is satisfied by both ports.RecordStore and ports.RecordTx.
type recordReader interface {
	Get(ctx context.Context, addr domain.Address, rec domain.Record) error
}

// load reads rec at its own address. The key fields of rec must be set.
func load(ctx context.Context, r recordReader, rec domain.Record, name string) error {
	return storeError(r.Get(ctx, rec.Address(), rec), name)
}

func requireAuthority(signer, authority domain.Pubkey, record string) error {
	if signer == "" || signer != authority {
		return apperror.ErrAuthorityMismatch(record)
	}
	return nil
}

func countryName(code string) string { return "country " + code }

func infraName(side domain.InfraSide, code string, count uint64) string {
	return fmt.Sprintf("%s infra %s/%d", side, code, count)
}

func loadInfra(ctx context.Context, r recordReader, side domain.InfraSide, code string, count uint64) (*domain.Infra, error) {
	infra := &domain.Infra{Side: side, Country: code, Count: count}
	if err := load(ctx, r, infra, infraName(side, code, count)); err != nil {
		return nil, err
	}
	return infra, nil
}

// requireUnfrozen blocks every mutation made on behalf of a frozen infra.
func requireUnfrozen(infra *domain.Infra) error {
	if infra.IsFrozen {
		return apperror.ErrFrozen(infraName(infra.Side, infra.Country, infra.Count))
	}
	return nil
}

// requireTransacting checks the gates an infra must pass to take part in a job.
func requireTransacting(infra *domain.Infra) error {
	if err := requireUnfrozen(infra); err != nil {
		return err
	}
	if !infra.IsVerified {
		return apperror.ErrUnverified(infraName(infra.Side, infra.Country, infra.Count))
	}
	return nil
}

// commit finishes tx and maps storage failures.
func commit(ctx context.Context, tx ports.RecordTx) error {
	return storeError(tx.Commit(ctx), "commit")
}

func rollback(ctx context.Context, tx ports.RecordTx, log zerolog.Logger) {
	if err := tx.Rollback(ctx); err != nil {
		log.Warn().Err(err).Msg("rollback failed")
	}
}
