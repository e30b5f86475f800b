package domain

import (
	"errors"
	"time"
)

var ErrInvalidCoordinates = errors.New("latitude must be within [-90, 90] and longitude within [-180, 180]")

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// Validate checks the coordinate ranges.
func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 || c.Long < -180 || c.Long > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}

// Driver is the presence record of a driver currently working for a driver
// infra. It is removed when the driver ends work.
type Driver struct {
	Versioned
	UUID                    string       `json:"uuid"`
	Country                 string       `json:"country"`
	InfraAuthority          Address      `json:"infra_authority"`
	LocationUpdateAuthority Pubkey       `json:"location_update_authority"`
	PublicKeyPEM            string       `json:"public_key_pem"`
	OfferedServices         []uint64     `json:"offered_services"`
	PassengerTypes          []uint64     `json:"passenger_types"`
	VehicleID               *uint64      `json:"vehicle_id,omitempty"`
	NumberOfSeats           uint8        `json:"number_of_seats"`
	LastLocation            Coordinates  `json:"last_location"`
	NextLocation            *Coordinates `json:"next_location,omitempty"`
	LocationUpdatedAt       time.Time    `json:"location_updated_at"`
	IsInitialized           bool         `json:"is_initialized"`
	StartedAt               time.Time    `json:"started_at"`
}

func (d *Driver) Kind() Kind { return KindDriver }
func (d *Driver) Address() Address { return DriverAddress(d.UUID) }

// Offers reports whether the driver offers the service with id.
func (d *Driver) Offers(serviceID uint64) bool {
	for _, s := range d.OfferedServices {
		if s == serviceID {
			return true
		}
	}
	return false
}
