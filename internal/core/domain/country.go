package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidCountryCode   = errors.New("country code must be three upper-case letters")
	ErrIncompleteParameters = errors.New("country creation requires every fare and fee parameter")
	ErrNegativeParameter    = errors.New("country parameters must not be negative")
)

// CountryParams are the per-jurisdiction fare, fee and timing parameters.
// Durations are whole seconds and amounts are cents.
type CountryParams struct {
	PlatformFeeBasisPoint       uint16 `json:"platform_fee_basis_point"`
	WaitingFeeSec               int64  `json:"waiting_fee_sec"`
	WaitingFeeCent              int64  `json:"waiting_fee_cent"`
	DriverCancellationFeeSec    int64  `json:"driver_cancellation_fee_sec"`
	CustomerCancellationFeeSec  int64  `json:"customer_cancellation_fee_sec"`
	CancellationFeeCent         int64  `json:"cancellation_fee_cent"`
	BaseRateCent                int64  `json:"base_rate_cent"`
	MinKmRateCent               int64  `json:"min_km_rate_cent"`
	MinMinFeeCent               int64  `json:"min_min_fee_cent"`
	FinalizeDurationSec         int64  `json:"finalize_duration_sec"`
	DisputeWaitoutPeriodSec     int64  `json:"dispute_waitout_period_sec"`
	MinDriverInfraDepositCent   int64  `json:"min_driver_infra_deposit_cent"`
	MinCustomerInfraDepositCent int64  `json:"min_customer_infra_deposit_cent"`
	BaseSlashAmountCent         int64  `json:"base_slash_amount_cent"`
}

// CountryParamsPatch is a partial update. Nil fields keep their stored value.
type CountryParamsPatch struct {
	PlatformFeeBasisPoint       *uint16
	WaitingFeeSec               *int64
	WaitingFeeCent              *int64
	DriverCancellationFeeSec    *int64
	CustomerCancellationFeeSec  *int64
	CancellationFeeCent         *int64
	BaseRateCent                *int64
	MinKmRateCent               *int64
	MinMinFeeCent               *int64
	FinalizeDurationSec         *int64
	DisputeWaitoutPeriodSec     *int64
	MinDriverInfraDepositCent   *int64
	MinCustomerInfraDepositCent *int64
	BaseSlashAmountCent         *int64
}

func (p CountryParamsPatch) int64Fields() []*int64 {
	return []*int64{
		p.WaitingFeeSec, p.WaitingFeeCent, p.DriverCancellationFeeSec,
		p.CustomerCancellationFeeSec, p.CancellationFeeCent, p.BaseRateCent,
		p.MinKmRateCent, p.MinMinFeeCent, p.FinalizeDurationSec,
		p.DisputeWaitoutPeriodSec, p.MinDriverInfraDepositCent,
		p.MinCustomerInfraDepositCent, p.BaseSlashAmountCent,
	}
}

// Complete reports whether every parameter is present.
func (p CountryParamsPatch) Complete() bool {
	if p.PlatformFeeBasisPoint == nil {
		return false
	}
	for _, f := range p.int64Fields() {
		if f == nil {
			return false
		}
	}
	return true
}

// Validate rejects negative amounts and durations and an out-of-range fee.
func (p CountryParamsPatch) Validate() error {
	if p.PlatformFeeBasisPoint != nil && *p.PlatformFeeBasisPoint > BasisPointDenominator {
		return ErrBasisPointRange
	}
	for _, f := range p.int64Fields() {
		if f != nil && *f < 0 {
			return ErrNegativeParameter
		}
	}
	return nil
}

// Apply overwrites the fields present in the patch.
func (p CountryParamsPatch) Apply(c *CountryParams) {
	set := func(dst *int64, src *int64) {
		if src != nil {
			*dst = *src
		}
	}
	if p.PlatformFeeBasisPoint != nil {
		c.PlatformFeeBasisPoint = *p.PlatformFeeBasisPoint
	}
	set(&c.WaitingFeeSec, p.WaitingFeeSec)
	set(&c.WaitingFeeCent, p.WaitingFeeCent)
	set(&c.DriverCancellationFeeSec, p.DriverCancellationFeeSec)
	set(&c.CustomerCancellationFeeSec, p.CustomerCancellationFeeSec)
	set(&c.CancellationFeeCent, p.CancellationFeeCent)
	set(&c.BaseRateCent, p.BaseRateCent)
	set(&c.MinKmRateCent, p.MinKmRateCent)
	set(&c.MinMinFeeCent, p.MinMinFeeCent)
	set(&c.FinalizeDurationSec, p.FinalizeDurationSec)
	set(&c.DisputeWaitoutPeriodSec, p.DisputeWaitoutPeriodSec)
	set(&c.MinDriverInfraDepositCent, p.MinDriverInfraDepositCent)
	set(&c.MinCustomerInfraDepositCent, p.MinCustomerInfraDepositCent)
	set(&c.BaseSlashAmountCent, p.BaseSlashAmountCent)
}

// Country holds one jurisdiction's configuration and its infra counters.
type Country struct {
	Versioned
	Code                 string        `json:"code"`
	IsInitialized        bool          `json:"is_initialized"`
	UpdateAuthority      Pubkey        `json:"update_authority"`
	Params               CountryParams `json:"params"`
	DriverInfraCounter   uint64        `json:"driver_infra_counter"`
	CustomerInfraCounter uint64        `json:"customer_infra_counter"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

func (c *Country) Kind() Kind { return KindCountry }
func (c *Country) Address() Address { return CountryAddress(c.Code) }

// InfraCounter returns the next free infra slot for side.
func (c *Country) InfraCounter(side InfraSide) uint64 {
	if side == InfraSideDriver {
		return c.DriverInfraCounter
	}
	return c.CustomerInfraCounter
}

// AdvanceInfraCounter consumes the current slot for side.
func (c *Country) AdvanceInfraCounter(side InfraSide) {
	if side == InfraSideDriver {
		c.DriverInfraCounter++
		return
	}
	c.CustomerInfraCounter++
}

// MinInfraDeposit is the deposit locked when an infra of side registers.
func (c *Country) MinInfraDeposit(side InfraSide) int64 {
	if side == InfraSideDriver {
		return c.Params.MinDriverInfraDepositCent
	}
	return c.Params.MinCustomerInfraDepositCent
}

// CancellationFee returns the fee owed when party cancels a job requested at
// requestedAt. No fee is owed until the party's threshold has elapsed.
func (c *Country) CancellationFee(party Party, requestedAt, now time.Time) int64 {
	threshold := c.Params.CustomerCancellationFeeSec
	if party == PartyDriver {
		threshold = c.Params.DriverCancellationFeeSec
	}
	if now.Sub(requestedAt) <= time.Duration(threshold)*time.Second {
		return 0
	}
	return c.Params.CancellationFeeCent
}

// WaitingFee returns the fee owed for pickup at now after arrival at arrivedAt.
func (c *Country) WaitingFee(arrivedAt, now time.Time) int64 {
	if now.Sub(arrivedAt) <= time.Duration(c.Params.WaitingFeeSec)*time.Second {
		return 0
	}
	return c.Params.WaitingFeeCent
}

// ValidateCountryCode checks an ISO 3166-1 alpha-3 shaped code.
func ValidateCountryCode(code string) error {
	if len(code) != 3 {
		return ErrInvalidCountryCode
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ErrInvalidCountryCode
		}
	}
	return nil
}
