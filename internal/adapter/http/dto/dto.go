package dto

import "ride-escrow-network/internal/core/domain"

// GlobalRequest is the body of POST /global. Absent fields keep their value.
type GlobalRequest struct {
	PlatformFeeBasisPoint *uint16 `json:"platform_fee_basis_point" binding:"omitempty,max=10000"`
	NewEntryFeeCent       *int64  `json:"new_entry_fee_cent" binding:"omitempty,gte=0"`
}

// AuthorityRequest names the next authority of a record.
type AuthorityRequest struct {
	NewAuthority string `json:"new_authority" binding:"required,pubkey" sanitize:"-"`
}

// CountryRequest is the body of PUT /countries/:code. Creation needs every
// field; updates may send any subset.
type CountryRequest struct {
	PlatformFeeBasisPoint       *uint16 `json:"platform_fee_basis_point" binding:"omitempty,max=10000"`
	WaitingFeeSec               *int64  `json:"waiting_fee_sec" binding:"omitempty,gte=0"`
	WaitingFeeCent              *int64  `json:"waiting_fee_cent" binding:"omitempty,gte=0"`
	DriverCancellationFeeSec    *int64  `json:"driver_cancellation_fee_sec" binding:"omitempty,gte=0"`
	CustomerCancellationFeeSec  *int64  `json:"customer_cancellation_fee_sec" binding:"omitempty,gte=0"`
	CancellationFeeCent         *int64  `json:"cancellation_fee_cent" binding:"omitempty,gte=0"`
	BaseRateCent                *int64  `json:"base_rate_cent" binding:"omitempty,gte=0"`
	MinKmRateCent               *int64  `json:"min_km_rate_cent" binding:"omitempty,gte=0"`
	MinMinFeeCent               *int64  `json:"min_min_fee_cent" binding:"omitempty,gte=0"`
	FinalizeDurationSec         *int64  `json:"finalize_duration_sec" binding:"omitempty,gte=0"`
	DisputeWaitoutPeriodSec     *int64  `json:"dispute_waitout_period_sec" binding:"omitempty,gte=0"`
	MinDriverInfraDepositCent   *int64  `json:"min_driver_infra_deposit_cent" binding:"omitempty,gte=0"`
	MinCustomerInfraDepositCent *int64  `json:"min_customer_infra_deposit_cent" binding:"omitempty,gte=0"`
	BaseSlashAmountCent         *int64  `json:"base_slash_amount_cent" binding:"omitempty,gte=0"`
}

// Patch converts the body into a domain patch.
func (r CountryRequest) Patch() domain.CountryParamsPatch {
	return domain.CountryParamsPatch{
		PlatformFeeBasisPoint:       r.PlatformFeeBasisPoint,
		WaitingFeeSec:               r.WaitingFeeSec,
		WaitingFeeCent:              r.WaitingFeeCent,
		DriverCancellationFeeSec:    r.DriverCancellationFeeSec,
		CustomerCancellationFeeSec:  r.CustomerCancellationFeeSec,
		CancellationFeeCent:         r.CancellationFeeCent,
		BaseRateCent:                r.BaseRateCent,
		MinKmRateCent:               r.MinKmRateCent,
		MinMinFeeCent:               r.MinMinFeeCent,
		FinalizeDurationSec:         r.FinalizeDurationSec,
		DisputeWaitoutPeriodSec:     r.DisputeWaitoutPeriodSec,
		MinDriverInfraDepositCent:   r.MinDriverInfraDepositCent,
		MinCustomerInfraDepositCent: r.MinCustomerInfraDepositCent,
		BaseSlashAmountCent:         r.BaseSlashAmountCent,
	}
}

// CompanyRequest carries an infra's business identity.
type CompanyRequest struct {
	CompanyName      string `json:"company_name" binding:"required,max=100,safe_text"`
	EntityRegistryID string `json:"entity_registry_id" binding:"required,max=64,safe_id"`
	Website          string `json:"website" binding:"omitempty,max=200,safe_url"`
}

// InitInfraRequest is the body of POST /countries/:code/infras/:side.
type InitInfraRequest struct {
	CompanyRequest
	Count         uint64 `json:"count"`
	FeeBasisPoint uint16 `json:"fee_basis_point" binding:"max=10000"`
}

// BasisPointRequest changes an infra's fee share.
type BasisPointRequest struct {
	FeeBasisPoint uint16 `json:"fee_basis_point" binding:"max=10000"`
}

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat  float64 `json:"lat" binding:"gte=-90,lte=90"`
	Long float64 `json:"long" binding:"gte=-180,lte=180"`
}

func (c Coordinates) Domain() domain.Coordinates {
	return domain.Coordinates{Lat: c.Lat, Long: c.Long}
}

// StartWorkRequest is the body of POST /drivers.
type StartWorkRequest struct {
	Country                 string      `json:"country" binding:"required,alpha3"`
	DriverInfraCount        uint64      `json:"driver_infra_count"`
	UUID                    string      `json:"uuid" binding:"required,max=64,safe_id"`
	PublicKeyPEM            string      `json:"public_key_pem" binding:"max=4096" sanitize:"-"`
	LocationUpdateAuthority string      `json:"location_update_authority" binding:"omitempty,pubkey" sanitize:"-"`
	OfferedServices         []uint64    `json:"offered_services"`
	PassengerTypes          []uint64    `json:"passenger_types"`
	VehicleID               *uint64     `json:"vehicle_id"`
	NumberOfSeats           uint8       `json:"number_of_seats"`
	Location                Coordinates `json:"location" binding:"required"`
}

// UpdateLocationRequest is the body of PUT /drivers/:uuid/location.
type UpdateLocationRequest struct {
	Location     Coordinates  `json:"location" binding:"required"`
	NextLocation *Coordinates `json:"next_location" binding:"omitempty"`
}

// RequestJobRequest is the body of POST /jobs.
type RequestJobRequest struct {
	Country            string `json:"country" binding:"required,alpha3"`
	CustomerInfraCount uint64 `json:"customer_infra_count"`
	DriverInfraCount   uint64 `json:"driver_infra_count"`
	DriverUUID         string `json:"driver_uuid" binding:"required,max=64,safe_id"`
	JobCount           uint64 `json:"job_count"`
	TotalFeeCent       int64  `json:"total_fee_cent" binding:"required,gt=0,lte=922337203685477"`
	EncryptedPayload   string `json:"encrypted_payload" binding:"required,base64" sanitize:"-"`
	EncryptedKey       string `json:"encrypted_key" binding:"required,base64" sanitize:"-"`
	Reference          string `json:"reference" binding:"omitempty,max=100,safe_id"`
}

// AcceptJobRequest is the body of POST /jobs/.../accept.
type AcceptJobRequest struct {
	Destination Coordinates `json:"destination" binding:"required"`
}

// CancelJobRequest is the body of POST /jobs/.../cancel.
type CancelJobRequest struct {
	By string `json:"by" binding:"required,oneof=driver customer"`
}

// DisputeRequest is the body of POST /jobs/.../dispute.
type DisputeRequest struct {
	By     string `json:"by" binding:"required,oneof=driver customer"`
	Reason string `json:"reason" binding:"max=500,safe_text"`
}

type AddServiceRequest struct {
	Country string `json:"country" binding:"required,alpha3"`
	Name    string `json:"name" binding:"required,max=100,safe_text"`
}

type AddPassengerTypeRequest struct {
	Name string `json:"name" binding:"required,max=100,safe_text"`
}

type AddVehicleRequest struct {
	Brand         string `json:"brand" binding:"required,max=100,safe_text"`
	Model         string `json:"model" binding:"required,max=100,safe_text"`
	NumberOfSeats uint8  `json:"number_of_seats" binding:"required,gt=0"`
}

// TopupRequest is the body of POST /accounts/:address/topup.
type TopupRequest struct {
	AmountCent int64 `json:"amount_cent" binding:"required,gt=0"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	Account     string `json:"account"`
	BalanceCent int64  `json:"balance_cent"`
}

// HealthResponse reports the state of each dependency.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}
