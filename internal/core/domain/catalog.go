package domain

import (
	"errors"
	"time"
)

// CatalogKind names one family of reference data.
type CatalogKind string

const (
	CatalogService       CatalogKind = "services"
	CatalogPassengerType CatalogKind = "passenger-types"
	CatalogVehicle       CatalogKind = "vehicles"
)

var ErrInvalidCatalogKind = errors.New("catalog kind must be services, passenger-types or vehicles")

// ParseCatalogKind validates a catalog kind name.
func ParseCatalogKind(s string) (CatalogKind, error) {
	switch CatalogKind(s) {
	case CatalogService, CatalogPassengerType, CatalogVehicle:
		return CatalogKind(s), nil
	default:
		return "", ErrInvalidCatalogKind
	}
}

// RecordKind maps a catalog family to its record kind.
func (k CatalogKind) RecordKind() Kind {
	switch k {
	case CatalogService:
		return KindService
	case CatalogPassengerType:
		return KindPassengerType
	default:
		return KindVehicle
	}
}

// CatalogEntry is a service type, passenger type or vehicle model. Entries
// start invalid and become usable once approved.
type CatalogEntry struct {
	Versioned
	CatalogKind   CatalogKind `json:"catalog_kind"`
	ID            uint64      `json:"id"`
	Country       string      `json:"country,omitempty"`
	Name          string      `json:"name,omitempty"`
	Brand         string      `json:"brand,omitempty"`
	Model         string      `json:"model,omitempty"`
	NumberOfSeats uint8       `json:"number_of_seats,omitempty"`
	IsValid       bool        `json:"is_valid"`
	IsInitialized bool        `json:"is_initialized"`
	Initializer   Pubkey      `json:"initializer"`
	DepositCent   int64       `json:"deposit_cent"`
	CreatedAt     time.Time   `json:"created_at"`
	ApprovedAt    *time.Time  `json:"approved_at,omitempty"`
}

func (e *CatalogEntry) Kind() Kind { return e.CatalogKind.RecordKind() }
func (e *CatalogEntry) Address() Address { return CatalogAddress(e.CatalogKind, e.ID) }

// DepositAccount is the escrow holding the initializer's deposit.
func (e *CatalogEntry) DepositAccount() Address { return EscrowAddress(e.Address()) }
