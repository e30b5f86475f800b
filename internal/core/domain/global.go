package domain

import "time"

// GlobalConfig is the process-wide singleton: the platform fee, the catalog
// entry deposit and the catalog counters.
type GlobalConfig struct {
	Versioned
	IsInitialized         bool      `json:"is_initialized"`
	UpdateAuthority       Pubkey    `json:"update_authority"`
	PlatformFeeBasisPoint uint16    `json:"platform_fee_basis_point"`
	NewEntryFeeCent       int64     `json:"new_entry_fee_cent"`
	ServiceCounter        uint64    `json:"service_counter"`
	PassengerTypeCounter  uint64    `json:"passenger_type_counter"`
	VehicleCounter        uint64    `json:"vehicle_counter"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (g *GlobalConfig) Kind() Kind { return KindGlobal }
func (g *GlobalConfig) Address() Address { return GlobalAddress() }

// NextCatalogID returns the next free slot for kind and advances the counter.
func (g *GlobalConfig) NextCatalogID(kind CatalogKind) uint64 {
	var counter *uint64
	switch kind {
	case CatalogService:
		counter = &g.ServiceCounter
	case CatalogPassengerType:
		counter = &g.PassengerTypeCounter
	default:
		counter = &g.VehicleCounter
	}
	id := *counter
	*counter++
	return id
}
