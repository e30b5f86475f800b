package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/apperror"
	"ride-escrow-network/pkg/sentinel"

	"github.com/rs/zerolog"
)

// InfraServiceImpl implements ports.InfraService for both registry sides.
type InfraServiceImpl struct {
	store   ports.RecordStore
	clock   ports.Clock
	metrics ports.Metrics
	log     zerolog.Logger
}

// NewInfraService creates a new InfraServiceImpl.
func NewInfraService(store ports.RecordStore, clock ports.Clock, metrics ports.Metrics, log zerolog.Logger) *InfraServiceImpl {
	return &InfraServiceImpl{store: store, clock: clock, metrics: metrics, log: log}
}

func validateCompany(c ports.CompanyDetails) error {
	if strings.TrimSpace(c.CompanyName) == "" {
		return apperror.Validation("company name is required")
	}
	if strings.TrimSpace(c.EntityRegistryID) == "" {
		return apperror.Validation("entity registry id is required")
	}
	return nil
}

// InitInfra registers the signer as a new infra at the country's next slot and
// locks the country's minimum deposit from the signer's wallet.
func (s *InfraServiceImpl) InitInfra(ctx context.Context, req ports.InitInfraRequest) (*domain.Infra, error) {
	if _, err := domain.ParseInfraSide(string(req.Side)); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if req.FeeBasisPoint > domain.BasisPointDenominator {
		return nil, apperror.Validation(domain.ErrBasisPointRange.Error())
	}
	if err := validateCompany(req.Company); err != nil {
		return nil, err
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer rollback(ctx, tx, s.log)

	country := &domain.Country{Code: req.Country}
	if err := load(ctx, tx, country, countryName(req.Country)); err != nil {
		return nil, err
	}

	name := infraName(req.Side, req.Country, req.Count)
	slot := country.InfraCounter(req.Side)
	switch {
	case req.Count < slot:
		return nil, apperror.ErrAlreadyInitialized(name)
	case req.Count > slot:
		return nil, apperror.Validation(fmt.Sprintf("infra count %d is not the next free slot %d", req.Count, slot))
	}

	now := s.clock.Now()
	infra := &domain.Infra{
		Side:            req.Side,
		Country:         req.Country,
		Count:           slot,
		UpdateAuthority: req.Signer,
		IsInitialized:   true,
		FeeBasisPoint:   req.FeeBasisPoint,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := tx.Create(ctx, infra); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, apperror.ErrAlreadyInitialized(name)
		}
		return nil, storeError(err, name)
	}

	info := &domain.CompanyInfo{
		Infra:            infra.Address(),
		InfoVersion:      0,
		CompanyName:      req.Company.CompanyName,
		EntityRegistryID: req.Company.EntityRegistryID,
		Website:          req.Company.Website,
		CreatedAt:        now,
	}
	if err := tx.Create(ctx, info); err != nil {
		return nil, storeError(err, "company info")
	}

	country.AdvanceInfraCounter(req.Side)
	country.UpdatedAt = now
	if err := tx.Update(ctx, country); err != nil {
		return nil, storeError(err, countryName(req.Country))
	}

	deposit := country.MinInfraDeposit(req.Side)
	if _, err := lockEscrow(ctx, tx, domain.WalletAddress(req.Signer), infra.Address(), deposit); err != nil {
		return nil, err
	}

	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	s.metrics.InfraRegistered(req.Side)
	s.log.Info().
		Str("side", string(req.Side)).
		Str("country", req.Country).
		Uint64("count", slot).
		Int64("deposit_cent", deposit).
		Msg("infra registered")
	return infra, nil
}

// loadOwned reads an infra and checks it may be changed by signer.
func (s *InfraServiceImpl) loadOwned(ctx context.Context, tx ports.RecordTx, signer domain.Pubkey, ref ports.InfraRef) (*domain.Infra, error) {
	infra, err := loadInfra(ctx, tx, ref.Side, ref.Country, ref.Count)
	if err != nil {
		return nil, err
	}
	name := infraName(ref.Side, ref.Country, ref.Count)
	if err := requireAuthority(signer, infra.UpdateAuthority, name); err != nil {
		return nil, err
	}
	if infra.IsFrozen {
		return nil, apperror.ErrFrozen(name)
	}
	return infra, nil
}

// UpdateInfraCompany appends the next company-info version. Earlier
// versions stay readable.
func (s *InfraServiceImpl) UpdateInfraCompany(ctx context.Context, req ports.UpdateCompanyRequest) (*domain.CompanyInfo, error) {
	if err := validateCompany(req.Company); err != nil {
		return nil, err
	}
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer rollback(ctx, tx, s.log)

	infra, err := s.loadOwned(ctx, tx, req.Signer, req.Ref)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	infra.CompanyInfoCurrentCount++
	infra.UpdatedAt = now
	info := &domain.CompanyInfo{
		Infra:            infra.Address(),
		InfoVersion:      infra.CompanyInfoCurrentCount,
		CompanyName:      req.Company.CompanyName,
		EntityRegistryID: req.Company.EntityRegistryID,
		Website:          req.Company.Website,
		CreatedAt:        now,
	}
	if err := tx.Create(ctx, info); err != nil {
		return nil, storeError(err, "company info")
	}
	if err := tx.Update(ctx, infra); err != nil {
		return nil, storeError(err, infraName(req.Ref.Side, req.Ref.Country, req.Ref.Count))
	}
	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("infra", infra.Address().String()).
		Uint64("version", info.InfoVersion).
		Msg("company info updated")
	return info, nil
}

// UpdateInfraBasisPoint changes the fee share taken by the infra.
func (s *InfraServiceImpl) UpdateInfraBasisPoint(ctx context.Context, req ports.InfraBasisPointRequest) (*domain.Infra, error) {
	if req.FeeBasisPoint > domain.BasisPointDenominator {
		return nil, apperror.Validation(domain.ErrBasisPointRange.Error())
	}
	return s.mutateOwned(ctx, req.Signer, req.Ref, func(infra *domain.Infra) {
		infra.FeeBasisPoint = req.FeeBasisPoint
	})
}

// UpdateInfraAuthority hands an infra to a new authority.
func (s *InfraServiceImpl) UpdateInfraAuthority(ctx context.Context, ref ports.InfraRef, req ports.AuthorityTransferRequest) (*domain.Infra, error) {
	if req.NewAuthority == "" {
		return nil, apperror.Validation("new authority is required")
	}
	return s.mutateOwned(ctx, req.Signer, ref, func(infra *domain.Infra) {
		infra.UpdateAuthority = req.NewAuthority
	})
}

func (s *InfraServiceImpl) mutateOwned(ctx context.Context, signer domain.Pubkey, ref ports.InfraRef, apply func(*domain.Infra)) (*domain.Infra, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer rollback(ctx, tx, s.log)

	infra, err := s.loadOwned(ctx, tx, signer, ref)
	if err != nil {
		return nil, err
	}
	apply(infra)
	infra.UpdatedAt = s.clock.Now()
	if err := tx.Update(ctx, infra); err != nil {
		return nil, storeError(err, infraName(ref.Side, ref.Country, ref.Count))
	}
	if err := commit(ctx, tx); err != nil {
		return nil, err
	}
	return infra, nil
}

// ApproveInfra verifies an infra. Country authority only.
func (s *InfraServiceImpl) ApproveInfra(ctx context.Context, req ports.InfraGateRequest) (*domain.Infra, error) {
	return s.gate(ctx, req, "approved", func(infra *domain.Infra) { infra.IsVerified = true })
}

// FreezeInfra blocks every mutating operation of an infra. Country authority only.
func (s *InfraServiceImpl) FreezeInfra(ctx context.Context, req ports.InfraGateRequest) (*domain.Infra, error) {
	return s.gate(ctx, req, "frozen", func(infra *domain.Infra) { infra.IsFrozen = true })
}

// UnfreezeInfra lifts a freeze. Country authority only.
func (s *InfraServiceImpl) UnfreezeInfra(ctx context.Context, req ports.InfraGateRequest) (*domain.Infra, error) {
	return s.gate(ctx, req, "unfrozen", func(infra *domain.Infra) { infra.IsFrozen = false })
}

func (s *InfraServiceImpl) gate(ctx context.Context, req ports.InfraGateRequest, action string, apply func(*domain.Infra)) (*domain.Infra, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer rollback(ctx, tx, s.log)

	country := &domain.Country{Code: req.Ref.Country}
	if err := load(ctx, tx, country, countryName(req.Ref.Country)); err != nil {
		return nil, err
	}
	if err := requireAuthority(req.Signer, country.UpdateAuthority, countryName(req.Ref.Country)); err != nil {
		return nil, err
	}
	infra, err := loadInfra(ctx, tx, req.Ref.Side, req.Ref.Country, req.Ref.Count)
	if err != nil {
		return nil, err
	}
	apply(infra)
	infra.UpdatedAt = s.clock.Now()
	if err := tx.Update(ctx, infra); err != nil {
		return nil, storeError(err, infraName(req.Ref.Side, req.Ref.Country, req.Ref.Count))
	}
	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("infra", infra.Address().String()).
		Str("action", action).
		Msg("infra gate changed")
	return infra, nil
}

// GetInfra reads an infra.
func (s *InfraServiceImpl) GetInfra(ctx context.Context, ref ports.InfraRef) (*domain.Infra, error) {
	return loadInfra(ctx, s.store, ref.Side, ref.Country, ref.Count)
}

// GetCompanyInfo reads one company-info version of an infra.
func (s *InfraServiceImpl) GetCompanyInfo(ctx context.Context, ref ports.InfraRef, version uint64) (*domain.CompanyInfo, error) {
	info := &domain.CompanyInfo{Infra: ref.Address(), InfoVersion: version}
	if err := load(ctx, s.store, info, fmt.Sprintf("company info v%d", version)); err != nil {
		return nil, err
	}
	return info, nil
}
