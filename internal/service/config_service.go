package service

import (
	"context"
	"errors"
	"fmt"

	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/apperror"
	"ride-escrow-network/pkg/sentinel"

	"github.com/rs/zerolog"
)

const globalName = "global config"

// ConfigServiceImpl implements ports.ConfigService.
type ConfigServiceImpl struct {
	store ports.RecordStore
	clock ports.Clock
	log   zerolog.Logger
}

// NewConfigService creates a new ConfigServiceImpl.
func NewConfigService(store ports.RecordStore, clock ports.Clock, log zerolog.Logger) *ConfigServiceImpl {
	return &ConfigServiceImpl{store: store, clock: clock, log: log}
}

// InitOrUpdateGlobal creates the singleton with the signer as its authority,
// or patches it when the signer is the current authority.
func (s *ConfigServiceImpl) InitOrUpdateGlobal(ctx context.Context, req ports.GlobalRequest) (*domain.GlobalConfig, error) {
	if req.PlatformFeeBasisPoint != nil && *req.PlatformFeeBasisPoint > domain.BasisPointDenominator {
		return nil, apperror.Validation(domain.ErrBasisPointRange.Error())
	}
	if req.NewEntryFeeCent != nil && *req.NewEntryFeeCent < 0 {
		return nil, apperror.Validation("new entry fee must not be negative")
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer rollback(ctx, tx, s.log)

	now := s.clock.Now()
	g := &domain.GlobalConfig{}
	err = load(ctx, tx, g, globalName)
	switch {
	case apperror.HasCode(err, apperror.CodeNotFound):
		if req.PlatformFeeBasisPoint == nil || req.NewEntryFeeCent == nil {
			return nil, apperror.Validation("global init requires platform fee and new entry fee")
		}
		g = &domain.GlobalConfig{
			IsInitialized:         true,
			UpdateAuthority:       req.Signer,
			PlatformFeeBasisPoint: *req.PlatformFeeBasisPoint,
			NewEntryFeeCent:       *req.NewEntryFeeCent,
			UpdatedAt:             now,
		}
		if err := tx.Create(ctx, g); err != nil {
			return nil, storeError(err, globalName)
		}
	case err != nil:
		return nil, err
	default:
		if err := requireAuthority(req.Signer, g.UpdateAuthority, globalName); err != nil {
			return nil, err
		}
		if req.PlatformFeeBasisPoint != nil {
			g.PlatformFeeBasisPoint = *req.PlatformFeeBasisPoint
		}
		if req.NewEntryFeeCent != nil {
			g.NewEntryFeeCent = *req.NewEntryFeeCent
		}
		g.UpdatedAt = now
		if err := tx.Update(ctx, g); err != nil {
			return nil, storeError(err, globalName)
		}
	}

	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	s.log.Info().
		Uint16("platform_fee_bp", g.PlatformFeeBasisPoint).
		Int64("new_entry_fee_cent", g.NewEntryFeeCent).
		Msg("global config saved")
	return g, nil
}

// ChangeGlobalAuthority hands the singleton to a new authority.
func (s *ConfigServiceImpl) ChangeGlobalAuthority(ctx context.Context, req ports.AuthorityTransferRequest) (*domain.GlobalConfig, error) {
	if req.NewAuthority == "" {
		return nil, apperror.Validation("new authority is required")
	}
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer rollback(ctx, tx, s.log)

	g := &domain.GlobalConfig{}
	if err := load(ctx, tx, g, globalName); err != nil {
		return nil, err
	}
	if err := requireAuthority(req.Signer, g.UpdateAuthority, globalName); err != nil {
		return nil, err
	}
	g.UpdateAuthority = req.NewAuthority
	g.UpdatedAt = s.clock.Now()
	if err := tx.Update(ctx, g); err != nil {
		return nil, storeError(err, globalName)
	}
	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	s.log.Info().Str("authority", string(g.UpdateAuthority)).Msg("global authority changed")
	return g, nil
}

// GetGlobal reads the singleton.
func (s *ConfigServiceImpl) GetGlobal(ctx context.Context) (*domain.GlobalConfig, error) {
	g := &domain.GlobalConfig{}
	if err := load(ctx, s.store, g, globalName); err != nil {
		return nil, err
	}
	return g, nil
}

// InitOrUpdateCountry creates a country under the global authority, or
// patches an existing one under the country's own authority.
func (s *ConfigServiceImpl) InitOrUpdateCountry(ctx context.Context, req ports.CountryRequest) (*domain.Country, error) {
	if err := domain.ValidateCountryCode(req.Code); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if err := req.Params.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer rollback(ctx, tx, s.log)

	now := s.clock.Now()
	name := countryName(req.Code)
	c := &domain.Country{Code: req.Code}
	err = load(ctx, tx, c, name)
	created := false
	switch {
	case apperror.HasCode(err, apperror.CodeNotFound):
		g := &domain.GlobalConfig{}
		if err := load(ctx, tx, g, globalName); err != nil {
			return nil, err
		}
		if err := requireAuthority(req.Signer, g.UpdateAuthority, globalName); err != nil {
			return nil, err
		}
		if !req.Params.Complete() {
			return nil, apperror.Validation(domain.ErrIncompleteParameters.Error())
		}
		c = &domain.Country{
			Code:            req.Code,
			IsInitialized:   true,
			UpdateAuthority: req.Signer,
			UpdatedAt:       now,
		}
		req.Params.Apply(&c.Params)
		if err := tx.Create(ctx, c); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return nil, apperror.ErrAlreadyInitialized(name)
			}
			return nil, storeError(err, name)
		}
		created = true
	case err != nil:
		return nil, err
	default:
		if err := requireAuthority(req.Signer, c.UpdateAuthority, name); err != nil {
			return nil, err
		}
		req.Params.Apply(&c.Params)
		c.UpdatedAt = now
		if err := tx.Update(ctx, c); err != nil {
			return nil, storeError(err, name)
		}
	}

	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("country", c.Code).
		Bool("created", created).
		Msg("country saved")
	return c, nil
}

// UpdateCountryAuthority hands a country to a new authority.
func (s *ConfigServiceImpl) UpdateCountryAuthority(ctx context.Context, code string, req ports.AuthorityTransferRequest) (*domain.Country, error) {
	if req.NewAuthority == "" {
		return nil, apperror.Validation("new authority is required")
	}
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer rollback(ctx, tx, s.log)

	name := countryName(code)
	c := &domain.Country{Code: code}
	if err := load(ctx, tx, c, name); err != nil {
		return nil, err
	}
	if err := requireAuthority(req.Signer, c.UpdateAuthority, name); err != nil {
		return nil, err
	}
	c.UpdateAuthority = req.NewAuthority
	c.UpdatedAt = s.clock.Now()
	if err := tx.Update(ctx, c); err != nil {
		return nil, storeError(err, name)
	}
	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	s.log.Info().Str("country", code).Str("authority", string(c.UpdateAuthority)).Msg("country authority changed")
	return c, nil
}

// GetCountry reads a country.
func (s *ConfigServiceImpl) GetCountry(ctx context.Context, code string) (*domain.Country, error) {
	c := &domain.Country{Code: code}
	if err := load(ctx, s.store, c, countryName(code)); err != nil {
		return nil, err
	}
	return c, nil
}
