package domain

import (
	"errors"
	"math"
	"math/bits"
)

// BasisPointDenominator is the whole in basis points.
const BasisPointDenominator = 10_000

// MaxFeeCent is the largest fee whose basis-point products still fit in an
// int64. Larger fees are refused before any value is locked.
const MaxFeeCent = math.MaxInt64 / BasisPointDenominator

var ErrBasisPointRange = errors.New("basis points must not exceed 10000")

// BasisPointShare returns bp/10000 of total, rounded down. The product is
// taken in 128 bits, so it is exact for every non-negative total. Negative
// totals and bp above the whole share nothing.
func BasisPointShare(total int64, bp uint16) int64 {
	if total <= 0 || bp == 0 || bp > BasisPointDenominator {
		return 0
	}
	hi, lo := bits.Mul64(uint64(total), uint64(bp))
	quo, _ := bits.Div64(hi, lo, BasisPointDenominator)
	return int64(quo)
}

// Distribution is the fee split snapshotted when a job is requested.
type Distribution struct {
	PlatformBasisPoint      uint16 `json:"platform_basis_point"`
	CountryBasisPoint       uint16 `json:"country_basis_point"`
	CustomerInfraBasisPoint uint16 `json:"customer_infra_basis_point"`
	DriverInfraBasisPoint   uint16 `json:"driver_infra_basis_point"`
}

// Validate rejects splits whose shares add up to more than the whole.
func (d Distribution) Validate() error {
	sum := int(d.PlatformBasisPoint) + int(d.CountryBasisPoint) +
		int(d.CustomerInfraBasisPoint) + int(d.DriverInfraBasisPoint)
	if sum > BasisPointDenominator {
		return ErrBasisPointRange
	}
	return nil
}

// PayoutLabel says why value moved.
type PayoutLabel string

const (
	PayoutPlatformFee      PayoutLabel = "platform_fee"
	PayoutCountryFee       PayoutLabel = "country_fee"
	PayoutCustomerInfraFee PayoutLabel = "customer_infra_fee"
	PayoutDriverInfraFee   PayoutLabel = "driver_infra_fee"
	PayoutDriverSettlement PayoutLabel = "driver_settlement"
	PayoutCancellationFee  PayoutLabel = "cancellation_fee"
	PayoutWaitingFee       PayoutLabel = "waiting_fee"
	PayoutRefund           PayoutLabel = "refund"
)

// Payout is one line of an escrow release.
type Payout struct {
	To         Address     `json:"to"`
	AmountCent int64       `json:"amount_cent"`
	Label      PayoutLabel `json:"label"`
}

// SumPayouts adds up the amounts of payouts.
func SumPayouts(payouts []Payout) int64 {
	var sum int64
	for _, p := range payouts {
		sum += p.AmountCent
	}
	return sum
}

// SettlementAccounts are the credit targets of a completed job.
type SettlementAccounts struct {
	PlatformTreasury Address
	CountryTreasury  Address
	CustomerInfra    Address
	DriverInfra      Address
}

// Settle splits total across the fee shares. The driver infra receives its
// own share plus whatever is left, so the lines always add up to total.
func (d Distribution) Settle(total int64, acc SettlementAccounts) []Payout {
	platform := BasisPointShare(total, d.PlatformBasisPoint)
	country := BasisPointShare(total, d.CountryBasisPoint)
	customer := BasisPointShare(total, d.CustomerInfraBasisPoint)
	driverFee := BasisPointShare(total, d.DriverInfraBasisPoint)
	net := total - platform - country - customer - driverFee

	return []Payout{
		{To: acc.PlatformTreasury, AmountCent: platform, Label: PayoutPlatformFee},
		{To: acc.CountryTreasury, AmountCent: country, Label: PayoutCountryFee},
		{To: acc.CustomerInfra, AmountCent: customer, Label: PayoutCustomerInfraFee},
		{To: acc.DriverInfra, AmountCent: driverFee, Label: PayoutDriverInfraFee},
		{To: acc.DriverInfra, AmountCent: net, Label: PayoutDriverSettlement},
	}
}
