package service

import (
	"testing"
	"time"

	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverService_StartWork(t *testing.T) {
	m := newMarket(t)

	d, err := m.drivers.GetDriver(m.ctx, "d1")
	require.NoError(t, err)
	assert.True(t, d.IsInitialized)
	assert.Equal(t, m.driverInfra.Address(), d.InfraAuthority)
	assert.Equal(t, driverKey, d.LocationUpdateAuthority)

	_, err = m.drivers.StartWork(m.ctx, ports.StartWorkRequest{
		Signer: driverKey, Country: testCountry, DriverInfraCount: m.driverInfra.Count, UUID: "d1",
	})
	assertCode(t, err, apperror.CodeAlreadyInitialized)

	_, err = m.drivers.StartWork(m.ctx, ports.StartWorkRequest{
		Signer: strangerKey, Country: testCountry, DriverInfraCount: m.driverInfra.Count, UUID: "d2",
	})
	assertCode(t, err, apperror.CodeAuthorityMismatch)

	_, err = m.drivers.StartWork(m.ctx, ports.StartWorkRequest{
		Signer: driverKey, Country: testCountry, DriverInfraCount: m.driverInfra.Count, UUID: "d2",
		Location: domain.Coordinates{Lat: 10, Long: 181},
	})
	assertCode(t, err, apperror.CodeValidation)
}

func TestDriverService_UpdateLocation_DelegatedAuthority(t *testing.T) {
	m := newMarket(t)
	_, err := m.drivers.StartWork(m.ctx, ports.StartWorkRequest{
		Signer:                  driverKey,
		Country:                 testCountry,
		DriverInfraCount:        m.driverInfra.Count,
		UUID:                    "d2",
		LocationUpdateAuthority: strangerKey,
		Location:                domain.Coordinates{Lat: 1, Long: 1},
	})
	require.NoError(t, err)

	_, err = m.drivers.UpdateLocation(m.ctx, ports.UpdateLocationRequest{Signer: driverKey, UUID: "d2", Location: domain.Coordinates{Lat: 2, Long: 2}})
	assertCode(t, err, apperror.CodeAuthorityMismatch)

	m.clock.Advance(time.Minute)
	next := domain.Coordinates{Lat: 3, Long: 3}
	updated, err := m.drivers.UpdateLocation(m.ctx, ports.UpdateLocationRequest{
		Signer: strangerKey, UUID: "d2", Location: domain.Coordinates{Lat: 2, Long: 2}, NextLocation: &next,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{Lat: 2, Long: 2}, updated.LastLocation)
	assert.Equal(t, m.driverInfra.Address(), updated.InfraAuthority)

	cached, err := m.locs.Get(m.ctx, "d2")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, next, *cached.Next)

	_, err = m.drivers.UpdateLocation(m.ctx, ports.UpdateLocationRequest{Signer: strangerKey, UUID: "d2", Location: domain.Coordinates{Lat: -91}})
	assertCode(t, err, apperror.CodeValidation)
}

func TestDriverService_GetDriver_PrefersFresherCache(t *testing.T) {
	m := newMarket(t)
	later := m.clock.Now().Add(time.Minute)
	require.NoError(t, m.locs.Set(m.ctx, "d1", ports.CachedLocation{
		Location: domain.Coordinates{Lat: 5, Long: 5}, UpdatedAt: later,
	}))

	d, err := m.drivers.GetDriver(m.ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{Lat: 5, Long: 5}, d.LastLocation)

	require.NoError(t, m.locs.Set(m.ctx, "d1", ports.CachedLocation{
		Location: domain.Coordinates{Lat: 6, Long: 6}, UpdatedAt: later.Add(-time.Hour),
	}))
	d, err = m.drivers.GetDriver(m.ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{Lat: 40.7, Long: -74}, d.LastLocation)
}

func TestDriverService_EndWork(t *testing.T) {
	m := newMarket(t)

	err := m.drivers.EndWork(m.ctx, ports.EndWorkRequest{Signer: strangerKey, UUID: "d1"})
	assertCode(t, err, apperror.CodeAuthorityMismatch)

	require.NoError(t, m.drivers.EndWork(m.ctx, ports.EndWorkRequest{Signer: driverKey, UUID: "d1"}))

	_, err = m.drivers.GetDriver(m.ctx, "d1")
	assertCode(t, err, apperror.CodeNotFound)
	cached, err := m.locs.Get(m.ctx, "d1")
	require.NoError(t, err)
	assert.Nil(t, cached)

	err = m.drivers.EndWork(m.ctx, ports.EndWorkRequest{Signer: driverKey, UUID: "d1"})
	assertCode(t, err, apperror.CodeNotFound)
}

func TestDriverService_FrozenInfraBlocksDriverMutations(t *testing.T) {
	m := newMarket(t)
	gate := ports.InfraGateRequest{Signer: countryKey, Ref: refOf(m.driverInfra)}
	_, err := m.infras.FreezeInfra(m.ctx, gate)
	require.NoError(t, err)

	_, err = m.drivers.UpdateLocation(m.ctx, ports.UpdateLocationRequest{
		Signer: driverKey, UUID: "d1", Location: domain.Coordinates{Lat: 2, Long: 2},
	})
	assertCode(t, err, apperror.CodeFrozen)

	err = m.drivers.EndWork(m.ctx, ports.EndWorkRequest{Signer: strangerKey, UUID: "d1"})
	assertCode(t, err, apperror.CodeAuthorityMismatch)
	err = m.drivers.EndWork(m.ctx, ports.EndWorkRequest{Signer: driverKey, UUID: "d1"})
	assertCode(t, err, apperror.CodeFrozen)

	d, err := m.drivers.GetDriver(m.ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{Lat: 40.7, Long: -74}, d.LastLocation)

	_, err = m.infras.UnfreezeInfra(m.ctx, gate)
	require.NoError(t, err)
	_, err = m.drivers.UpdateLocation(m.ctx, ports.UpdateLocationRequest{
		Signer: driverKey, UUID: "d1", Location: domain.Coordinates{Lat: 2, Long: 2},
	})
	require.NoError(t, err)
	require.NoError(t, m.drivers.EndWork(m.ctx, ports.EndWorkRequest{Signer: driverKey, UUID: "d1"}))
}
