package domain

import (
	"errors"
	"time"
)

// InfraSide distinguishes the two symmetric operator registries.
type InfraSide string

const (
	InfraSideDriver   InfraSide = "driver"
	InfraSideCustomer InfraSide = "customer"
)

var ErrInvalidInfraSide = errors.New("infra side must be driver or customer")

// ParseInfraSide validates a side name.
func ParseInfraSide(s string) (InfraSide, error) {
	switch InfraSide(s) {
	case InfraSideDriver, InfraSideCustomer:
		return InfraSide(s), nil
	default:
		return "", ErrInvalidInfraSide
	}
}

// Kind returns the record kind of infras on this side.
func (s InfraSide) Kind() Kind {
	if s == InfraSideDriver {
		return KindDriverInfra
	}
	return KindCustomerInfra
}

// Infra is a registered operator that sponsors drivers or customers into the
// marketplace and takes a fee share of every job it is part of.
type Infra struct {
	Versioned
	Side                    InfraSide `json:"side"`
	Country                 string    `json:"country"`
	Count                   uint64    `json:"count"`
	UpdateAuthority         Pubkey    `json:"update_authority"`
	IsInitialized           bool      `json:"is_initialized"`
	IsVerified              bool      `json:"is_verified"`
	IsFrozen                bool      `json:"is_frozen"`
	FeeBasisPoint           uint16    `json:"fee_basis_point"`
	CompanyInfoCurrentCount uint64    `json:"company_info_current_count"`
	JobCounter              uint64    `json:"job_counter,omitempty"` // driver side only
	MatchedRide             uint64    `json:"matched_ride"`
	Cancellation            uint64    `json:"cancellation"`
	DisputeCases            uint64    `json:"dispute_cases"`
	CasesLostInDispute      uint64    `json:"cases_lost_in_dispute"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func (i *Infra) Kind() Kind { return i.Side.Kind() }
func (i *Infra) Address() Address { return InfraAddress(i.Side, i.Country, i.Count) }

// DepositAccount is the escrow account holding the registration deposit.
func (i *Infra) DepositAccount() Address { return EscrowAddress(i.Address()) }

// CanTransact reports whether the infra may take part in new jobs.
func (i *Infra) CanTransact() bool {
	return i.IsInitialized && i.IsVerified && !i.IsFrozen
}

// NextJobCount reserves the next job slot. Job counts start at 1 and are
// never reused.
func (i *Infra) NextJobCount() uint64 {
	i.JobCounter++
	return i.JobCounter
}

// CompanyInfo is one immutable version of an infra's registered business
// identity. Versions are never overwritten.
type CompanyInfo struct {
	Versioned
	Infra            Address   `json:"infra"`
	InfoVersion      uint64    `json:"info_version"`
	CompanyName      string    `json:"company_name"`
	EntityRegistryID string    `json:"entity_registry_id"`
	Website          string    `json:"website"`
	CreatedAt        time.Time `json:"created_at"`
}

func (c *CompanyInfo) Kind() Kind { return KindCompanyInfo }
func (c *CompanyInfo) Address() Address { return CompanyInfoAddress(c.Infra, c.InfoVersion) }
