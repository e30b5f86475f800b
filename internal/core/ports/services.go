package ports

import (
	"context"
	"time"

	"ride-escrow-network/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// SignatureService verifies Ed25519 request signatures.
type SignatureService interface {
	Verify(signer domain.Pubkey, message []byte, signature []byte) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body []byte) string
}

// IdempotencyCache remembers which job a ride-request reference created. It
// fronts the idempotency records of the record store.
type IdempotencyCache interface {
	Lookup(ctx context.Context, key string) (domain.Address, error) // "" when unknown
	Remember(ctx context.Context, key string, job domain.Address, ttl time.Duration) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, signer string, nonce string, ttl time.Duration) (bool, error)
}

// RateLimitStore counts requests in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// CachedLocation is the last committed position of a driver.
type CachedLocation struct {
	Location  domain.Coordinates  `json:"location"`
	Next      *domain.Coordinates `json:"next,omitempty"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// LocationCache serves driver positions without a store read.
type LocationCache interface {
	Set(ctx context.Context, driverUUID string, loc CachedLocation) error
	Get(ctx context.Context, driverUUID string) (*CachedLocation, error) // nil when absent
	Delete(ctx context.Context, driverUUID string) error
}

// EventPublisher announces committed job transitions to operator backends.
type EventPublisher interface {
	PublishJobEvent(ctx context.Context, event domain.JobEvent) error
}

// Metrics records business counters.
type Metrics interface {
	JobTransition(status domain.JobStatus)
	EscrowMoved(label domain.PayoutLabel, amountCent int64)
	InfraRegistered(side domain.InfraSide)
}

// Clock supplies the processing timestamp of an operation.
type Clock interface {
	Now() time.Time
}

// --- Service Ports (Business Logic) ---

// ConfigService manages the global singleton and per-country configuration.
type ConfigService interface {
	InitOrUpdateGlobal(ctx context.Context, req GlobalRequest) (*domain.GlobalConfig, error)
	ChangeGlobalAuthority(ctx context.Context, req AuthorityTransferRequest) (*domain.GlobalConfig, error)
	GetGlobal(ctx context.Context) (*domain.GlobalConfig, error)
	InitOrUpdateCountry(ctx context.Context, req CountryRequest) (*domain.Country, error)
	UpdateCountryAuthority(ctx context.Context, code string, req AuthorityTransferRequest) (*domain.Country, error)
	GetCountry(ctx context.Context, code string) (*domain.Country, error)
}

// GlobalRequest initializes the singleton, or updates the fields present.
type GlobalRequest struct {
	Signer                domain.Pubkey
	PlatformFeeBasisPoint *uint16
	NewEntryFeeCent       *int64
}

// AuthorityTransferRequest is signed by the current authority and names the next.
type AuthorityTransferRequest struct {
	Signer       domain.Pubkey
	NewAuthority domain.Pubkey
}

// CountryRequest creates a country (all params required) or patches one.
type CountryRequest struct {
	Signer domain.Pubkey
	Code   string
	Params domain.CountryParamsPatch
}

// InfraService manages the driver-side and customer-side registries.
type InfraService interface {
	InitInfra(ctx context.Context, req InitInfraRequest) (*domain.Infra, error)
	UpdateInfraCompany(ctx context.Context, req UpdateCompanyRequest) (*domain.CompanyInfo, error)
	UpdateInfraBasisPoint(ctx context.Context, req InfraBasisPointRequest) (*domain.Infra, error)
	UpdateInfraAuthority(ctx context.Context, ref InfraRef, req AuthorityTransferRequest) (*domain.Infra, error)
	ApproveInfra(ctx context.Context, req InfraGateRequest) (*domain.Infra, error)
	FreezeInfra(ctx context.Context, req InfraGateRequest) (*domain.Infra, error)
	UnfreezeInfra(ctx context.Context, req InfraGateRequest) (*domain.Infra, error)
	GetInfra(ctx context.Context, ref InfraRef) (*domain.Infra, error)
	GetCompanyInfo(ctx context.Context, ref InfraRef, version uint64) (*domain.CompanyInfo, error)
}

// InfraRef names one infra record.
type InfraRef struct {
	Side    domain.InfraSide
	Country string
	Count   uint64
}

// Address returns the derived address of the referenced infra.
func (r InfraRef) Address() domain.Address {
	return domain.InfraAddress(r.Side, r.Country, r.Count)
}

// CompanyDetails is the business identity submitted with a registration.
type CompanyDetails struct {
	CompanyName      string
	EntityRegistryID string
	Website          string
}

// InitInfraRequest registers an infra at the country's next free slot.
type InitInfraRequest struct {
	Signer        domain.Pubkey
	Side          domain.InfraSide
	Country       string
	Count         uint64
	Company       CompanyDetails
	FeeBasisPoint uint16
}

// UpdateCompanyRequest appends a new company-info version.
type UpdateCompanyRequest struct {
	Signer  domain.Pubkey
	Ref     InfraRef
	Company CompanyDetails
}

// InfraBasisPointRequest changes an infra's fee share.
type InfraBasisPointRequest struct {
	Signer        domain.Pubkey
	Ref           InfraRef
	FeeBasisPoint uint16
}

// InfraGateRequest is a country-authority action on an infra.
type InfraGateRequest struct {
	Signer domain.Pubkey
	Ref    InfraRef
}

// DriverService manages driver presence records.
type DriverService interface {
	StartWork(ctx context.Context, req StartWorkRequest) (*domain.Driver, error)
	UpdateLocation(ctx context.Context, req UpdateLocationRequest) (*domain.Driver, error)
	EndWork(ctx context.Context, req EndWorkRequest) error
	GetDriver(ctx context.Context, driverUUID string) (*domain.Driver, error)
}

// StartWorkRequest binds a new driver to the signer's driver infra.
type StartWorkRequest struct {
	Signer                  domain.Pubkey
	Country                 string
	DriverInfraCount        uint64
	UUID                    string
	PublicKeyPEM            string
	LocationUpdateAuthority domain.Pubkey // defaults to the signer
	OfferedServices         []uint64
	PassengerTypes          []uint64
	VehicleID               *uint64
	NumberOfSeats           uint8
	Location                domain.Coordinates
}

// UpdateLocationRequest is signed by the driver's location-update authority.
type UpdateLocationRequest struct {
	Signer       domain.Pubkey
	UUID         string
	Location     domain.Coordinates
	NextLocation *domain.Coordinates
}

// EndWorkRequest removes a driver record.
type EndWorkRequest struct {
	Signer domain.Pubkey
	UUID   string
}

// JobService runs the ride-job lifecycle and its escrow.
type JobService interface {
	RequestJob(ctx context.Context, req RequestJobRequest) (*domain.Job, error)
	AcceptJob(ctx context.Context, req AcceptJobRequest) (*domain.Job, error)
	MarkArrived(ctx context.Context, req JobActionRequest) (*domain.Job, error)
	StartRide(ctx context.Context, req JobActionRequest) (*domain.Job, error)
	CompleteJob(ctx context.Context, req JobActionRequest) (*domain.Settlement, error)
	CancelJob(ctx context.Context, req CancelJobRequest) (*domain.Settlement, error)
	RaiseDispute(ctx context.Context, req DisputeRequest) (*domain.Job, error)
	ResolveDispute(ctx context.Context, req JobActionRequest) error
	GetJob(ctx context.Context, ref JobRef) (*domain.Job, error)
}

// JobRef names one job by its country, driver infra slot and job count.
type JobRef struct {
	Country          string
	DriverInfraCount uint64
	JobCount         uint64
}

// DriverInfra returns the address of the job's driver infra.
func (r JobRef) DriverInfra() domain.Address {
	return domain.InfraAddress(domain.InfraSideDriver, r.Country, r.DriverInfraCount)
}

// Address returns the derived job address.
func (r JobRef) Address() domain.Address {
	return domain.JobAddress(r.DriverInfra(), r.JobCount)
}

// RequestJobRequest is signed by the customer infra.
type RequestJobRequest struct {
	Signer             domain.Pubkey
	Country            string
	CustomerInfraCount uint64
	DriverInfraCount   uint64
	DriverUUID         string
	JobCount           uint64 // optional; must equal the next slot when set
	TotalFeeCent       int64
	EncryptedPayload   string
	EncryptedKey       string
	Reference          string // optional idempotency reference
}

// AcceptJobRequest is signed by the customer infra after the driver agreed.
type AcceptJobRequest struct {
	Signer      domain.Pubkey
	Ref         JobRef
	Destination domain.Coordinates
}

// JobActionRequest is a signed action on a job with no extra input.
type JobActionRequest struct {
	Signer domain.Pubkey
	Ref    JobRef
}

// CancelJobRequest is signed by the infra of the cancelling party.
type CancelJobRequest struct {
	Signer domain.Pubkey
	Ref    JobRef
	By     domain.Party
}

// DisputeRequest is signed by the infra of the disputing party.
type DisputeRequest struct {
	Signer domain.Pubkey
	Ref    JobRef
	By     domain.Party
	Reason string
}

// CatalogService manages catalog reference data.
type CatalogService interface {
	AddService(ctx context.Context, req AddServiceRequest) (*domain.CatalogEntry, error)
	AddPassengerType(ctx context.Context, req AddPassengerTypeRequest) (*domain.CatalogEntry, error)
	AddVehicle(ctx context.Context, req AddVehicleRequest) (*domain.CatalogEntry, error)
	ApproveEntry(ctx context.Context, req ApproveEntryRequest) (*domain.CatalogEntry, error)
	GetEntry(ctx context.Context, kind domain.CatalogKind, id uint64) (*domain.CatalogEntry, error)
}

type AddServiceRequest struct {
	Signer  domain.Pubkey
	Country string
	Name    string
}

type AddPassengerTypeRequest struct {
	Signer domain.Pubkey
	Name   string
}

type AddVehicleRequest struct {
	Signer        domain.Pubkey
	Brand         string
	Model         string
	NumberOfSeats uint8
}

// ApproveEntryRequest is signed by the global authority.
type ApproveEntryRequest struct {
	Signer domain.Pubkey
	Kind   domain.CatalogKind
	ID     uint64
}

// LedgerService funds and reads token accounts.
type LedgerService interface {
	Topup(ctx context.Context, req TopupRequest) (int64, error)
	Balance(ctx context.Context, account domain.Address) (int64, error)
}

// TopupRequest mints value into an account. Signed by the global authority.
type TopupRequest struct {
	Signer     domain.Pubkey
	Account    domain.Address
	AmountCent int64
}
