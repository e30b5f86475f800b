package service

import (
	"context"
	"fmt"
	"strings"

	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/apperror"

	"github.com/rs/zerolog"
)

// CatalogServiceImpl implements ports.CatalogService.
type CatalogServiceImpl struct {
	store ports.RecordStore
	clock ports.Clock
	log   zerolog.Logger
}

// NewCatalogService creates a new CatalogServiceImpl.
func NewCatalogService(store ports.RecordStore, clock ports.Clock, log zerolog.Logger) *CatalogServiceImpl {
	return &CatalogServiceImpl{store: store, clock: clock, log: log}
}

func entryName(kind domain.CatalogKind, id uint64) string {
	return fmt.Sprintf("%s entry %d", kind, id)
}

// AddService proposes a service type for a country.
func (s *CatalogServiceImpl) AddService(ctx context.Context, req ports.AddServiceRequest) (*domain.CatalogEntry, error) {
	if err := domain.ValidateCountryCode(req.Country); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperror.Validation("service name is required")
	}
	return s.add(ctx, req.Signer, &domain.CatalogEntry{
		CatalogKind: domain.CatalogService,
		Country:     req.Country,
		Name:        req.Name,
	})
}

// AddPassengerType proposes a passenger type.
func (s *CatalogServiceImpl) AddPassengerType(ctx context.Context, req ports.AddPassengerTypeRequest) (*domain.CatalogEntry, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperror.Validation("passenger type name is required")
	}
	return s.add(ctx, req.Signer, &domain.CatalogEntry{
		CatalogKind: domain.CatalogPassengerType,
		Name:        req.Name,
	})
}

// AddVehicle proposes a vehicle model.
func (s *CatalogServiceImpl) AddVehicle(ctx context.Context, req ports.AddVehicleRequest) (*domain.CatalogEntry, error) {
	if strings.TrimSpace(req.Brand) == "" || strings.TrimSpace(req.Model) == "" {
		return nil, apperror.Validation("vehicle brand and model are required")
	}
	if req.NumberOfSeats == 0 {
		return nil, apperror.Validation("vehicle must have at least one seat")
	}
	return s.add(ctx, req.Signer, &domain.CatalogEntry{
		CatalogKind:   domain.CatalogVehicle,
		Brand:         req.Brand,
		Model:         req.Model,
		NumberOfSeats: req.NumberOfSeats,
	})
}

// add stores entry at the next id of its kind and locks the entry deposit
// from the initializer's wallet. Entries start invalid.
func (s *CatalogServiceImpl) add(ctx context.Context, signer domain.Pubkey, entry *domain.CatalogEntry) (*domain.CatalogEntry, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer rollback(ctx, tx, s.log)

	g := &domain.GlobalConfig{}
	if err := load(ctx, tx, g, globalName); err != nil {
		return nil, err
	}
	if entry.Country != "" {
		c := &domain.Country{Code: entry.Country}
		if err := load(ctx, tx, c, countryName(entry.Country)); err != nil {
			return nil, err
		}
	}

	now := s.clock.Now()
	entry.ID = g.NextCatalogID(entry.CatalogKind)
	entry.IsInitialized = true
	entry.Initializer = signer
	entry.DepositCent = g.NewEntryFeeCent
	entry.CreatedAt = now
	if err := tx.Create(ctx, entry); err != nil {
		return nil, storeError(err, entryName(entry.CatalogKind, entry.ID))
	}
	g.UpdatedAt = now
	if err := tx.Update(ctx, g); err != nil {
		return nil, storeError(err, globalName)
	}
	if _, err := lockEscrow(ctx, tx, domain.WalletAddress(signer), entry.Address(), entry.DepositCent); err != nil {
		return nil, err
	}
	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("kind", string(entry.CatalogKind)).
		Uint64("id", entry.ID).
		Int64("deposit_cent", entry.DepositCent).
		Msg("catalog entry added")
	return entry, nil
}

// ApproveEntry validates an entry and returns its deposit to the initializer.
// Global authority only.
func (s *CatalogServiceImpl) ApproveEntry(ctx context.Context, req ports.ApproveEntryRequest) (*domain.CatalogEntry, error) {
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

	name := entryName(req.Kind, req.ID)
	entry := &domain.CatalogEntry{CatalogKind: req.Kind, ID: req.ID}
	if err := load(ctx, tx, entry, name); err != nil {
		return nil, err
	}
	if entry.IsValid {
		return nil, apperror.ErrInvalidState(name + " is already approved")
	}

	deposit := EscrowHandle{Account: entry.DepositAccount(), Amount: entry.DepositCent}
	if _, err := refundEscrow(ctx, tx, deposit, domain.WalletAddress(entry.Initializer)); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	entry.IsValid = true
	entry.ApprovedAt = &now
	if err := tx.Update(ctx, entry); err != nil {
		return nil, storeError(err, name)
	}
	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	s.log.Info().Str("kind", string(req.Kind)).Uint64("id", req.ID).Msg("catalog entry approved")
	return entry, nil
}

// GetEntry reads a catalog entry.
func (s *CatalogServiceImpl) GetEntry(ctx context.Context, kind domain.CatalogKind, id uint64) (*domain.CatalogEntry, error) {
	entry := &domain.CatalogEntry{CatalogKind: kind, ID: id}
	if err := load(ctx, s.store, entry, entryName(kind, id)); err != nil {
		return nil, err
	}
	return entry, nil
}
