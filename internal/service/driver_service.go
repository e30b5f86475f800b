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

// DriverServiceImpl implements ports.DriverService.
type DriverServiceImpl struct {
	store     ports.RecordStore
	locations ports.LocationCache
	clock     ports.Clock
	log       zerolog.Logger
}

// NewDriverService creates a new DriverServiceImpl.
func NewDriverService(store ports.RecordStore, locations ports.LocationCache, clock ports.Clock, log zerolog.Logger) *DriverServiceImpl {
	return &DriverServiceImpl{store: store, locations: locations, clock: clock, log: log}
}

func driverName(uuid string) string { return "driver " + uuid }

// StartWork creates the presence record of a driver under the signer's
// driver infra.
func (s *DriverServiceImpl) StartWork(ctx context.Context, req ports.StartWorkRequest) (*domain.Driver, error) {
	if strings.TrimSpace(req.UUID) == "" {
		return nil, apperror.Validation("driver uuid is required")
	}
	if err := req.Location.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer rollback(ctx, tx, s.log)

	infra, err := loadInfra(ctx, tx, domain.InfraSideDriver, req.Country, req.DriverInfraCount)
	if err != nil {
		return nil, err
	}
	name := infraName(domain.InfraSideDriver, req.Country, req.DriverInfraCount)
	if err := requireAuthority(req.Signer, infra.UpdateAuthority, name); err != nil {
		return nil, err
	}
	if err := requireUnfrozen(infra); err != nil {
		return nil, err
	}

	locAuthority := req.LocationUpdateAuthority
	if locAuthority == "" {
		locAuthority = req.Signer
	}
	now := s.clock.Now()
	driver := &domain.Driver{
		UUID:                    req.UUID,
		Country:                 req.Country,
		InfraAuthority:          infra.Address(),
		LocationUpdateAuthority: locAuthority,
		PublicKeyPEM:            req.PublicKeyPEM,
		OfferedServices:         req.OfferedServices,
		PassengerTypes:          req.PassengerTypes,
		VehicleID:               req.VehicleID,
		NumberOfSeats:           req.NumberOfSeats,
		LastLocation:            req.Location,
		LocationUpdatedAt:       now,
		IsInitialized:           true,
		StartedAt:               now,
	}
	if err := tx.Create(ctx, driver); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, apperror.ErrAlreadyInitialized(driverName(req.UUID))
		}
		return nil, storeError(err, driverName(req.UUID))
	}
	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	s.cacheLocation(ctx, driver)
	s.log.Info().
		Str("driver", driver.UUID).
		Str("infra", driver.InfraAuthority.String()).
		Msg("driver started work")
	return driver, nil
}

// UpdateLocation records a new position. Only the location-update authority
// may sign it.
func (s *DriverServiceImpl) UpdateLocation(ctx context.Context, req ports.UpdateLocationRequest) (*domain.Driver, error) {
	if err := req.Location.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if req.NextLocation != nil {
		if err := req.NextLocation.Validate(); err != nil {
			return nil, apperror.Validation(err.Error())
		}
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer rollback(ctx, tx, s.log)

	driver := &domain.Driver{UUID: req.UUID}
	if err := load(ctx, tx, driver, driverName(req.UUID)); err != nil {
		return nil, err
	}
	if err := requireAuthority(req.Signer, driver.LocationUpdateAuthority, driverName(req.UUID)); err != nil {
		return nil, err
	}
	infra, err := loadDriverInfra(ctx, tx, driver)
	if err != nil {
		return nil, err
	}
	if err := requireUnfrozen(infra); err != nil {
		return nil, err
	}
	driver.LastLocation = req.Location
	if req.NextLocation != nil {
		driver.NextLocation = req.NextLocation
	}
	driver.LocationUpdatedAt = s.clock.Now()
	if err := tx.Update(ctx, driver); err != nil {
		return nil, storeError(err, driverName(req.UUID))
	}
	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	s.cacheLocation(ctx, driver)
	return driver, nil
}

// loadDriverInfra reads the infra a driver is bound to.
func loadDriverInfra(ctx context.Context, tx ports.RecordTx, driver *domain.Driver) (*domain.Infra, error) {
	infra := &domain.Infra{Side: domain.InfraSideDriver}
	if err := storeError(tx.Get(ctx, driver.InfraAuthority, infra), "driver infra"); err != nil {
		return nil, err
	}
	return infra, nil
}

// EndWork removes the driver record. The driver infra's authority signs it.
func (s *DriverServiceImpl) EndWork(ctx context.Context, req ports.EndWorkRequest) error {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer rollback(ctx, tx, s.log)

	driver := &domain.Driver{UUID: req.UUID}
	if err := load(ctx, tx, driver, driverName(req.UUID)); err != nil {
		return err
	}
	infra, err := loadDriverInfra(ctx, tx, driver)
	if err != nil {
		return err
	}
	if err := requireAuthority(req.Signer, infra.UpdateAuthority, driverName(req.UUID)); err != nil {
		return err
	}
	if err := requireUnfrozen(infra); err != nil {
		return err
	}
	if err := tx.Delete(ctx, driver); err != nil {
		return storeError(err, driverName(req.UUID))
	}
	if err := commit(ctx, tx); err != nil {
		return err
	}

	if err := s.locations.Delete(ctx, req.UUID); err != nil {
		s.log.Warn().Err(err).Str("driver", req.UUID).Msg("failed to evict cached location")
	}
	s.log.Info().Str("driver", req.UUID).Msg("driver ended work")
	return nil
}

// GetDriver reads a driver. A fresher cached position wins over the stored one.
func (s *DriverServiceImpl) GetDriver(ctx context.Context, driverUUID string) (*domain.Driver, error) {
	driver := &domain.Driver{UUID: driverUUID}
	if err := load(ctx, s.store, driver, driverName(driverUUID)); err != nil {
		return nil, err
	}

	cached, err := s.locations.Get(ctx, driverUUID)
	if err != nil {
		s.log.Warn().Err(err).Str("driver", driverUUID).Msg("location cache read failed, using stored position")
		return driver, nil
	}
	if cached != nil && !cached.UpdatedAt.Before(driver.LocationUpdatedAt) {
		driver.LastLocation = cached.Location
		driver.NextLocation = cached.Next
		driver.LocationUpdatedAt = cached.UpdatedAt
	}
	return driver, nil
}

func (s *DriverServiceImpl) cacheLocation(ctx context.Context, d *domain.Driver) {
	loc := ports.CachedLocation{
		Location:  d.LastLocation,
		Next:      d.NextLocation,
		UpdatedAt: d.LocationUpdatedAt,
	}
	if err := s.locations.Set(ctx, d.UUID, loc); err != nil {
		s.log.Warn().Err(err).Str("driver", d.UUID).Msg("failed to cache driver location")
	}
}
