package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_Deterministic(t *testing.T) {
	a := Derive(KindCountry, StringSeed("USA"))
	b := Derive(KindCountry, StringSeed("USA"))
	assert.Equal(t, a, b)
	assert.Equal(t, CountryAddress("USA"), a)
}

func TestDerive_DistinctInputs(t *testing.T) {
	infra := InfraAddress(InfraSideDriver, "USA", 0)

	addrs := []Address{
		GlobalAddress(),
		CountryAddress("USA"),
		CountryAddress("CAN"),
		InfraAddress(InfraSideDriver, "USA", 0),
		InfraAddress(InfraSideDriver, "USA", 1),
		InfraAddress(InfraSideCustomer, "USA", 0),
		CompanyInfoAddress(infra, 0),
		CompanyInfoAddress(infra, 1),
		DriverAddress("d1"),
		JobAddress(infra, 1),
		JobAddress(infra, 2),
		CatalogAddress(CatalogService, 0),
		CatalogAddress(CatalogPassengerType, 0),
		CatalogAddress(CatalogVehicle, 0),
		EscrowAddress(infra),
		PlatformTreasury(),
		TreasuryAddress("USA"),
		// Seed boundaries must matter.
		Derive(KindDriver, StringSeed("ab"), StringSeed("c")),
		Derive(KindDriver, StringSeed("a"), StringSeed("bc")),
	}

	seen := make(map[Address]int, len(addrs))
	for i, a := range addrs {
		if j, ok := seen[a]; ok {
			t.Fatalf("address collision between inputs %d and %d", j, i)
		}
		seen[a] = i
	}
}

func TestParsePubkey(t *testing.T) {
	valid := "0A" + "11223344556677889900aabbccddeeff00112233445566778899aabbccddee"

	tests := []struct {
		name    string
		input   string
		want    Pubkey
		wantErr bool
	}{
		{"valid mixed case", valid, Pubkey("0a11223344556677889900aabbccddeeff00112233445566778899aabbccddee"), false},
		{"too short", "abcd", "", true},
		{"not hex", "zz" + valid[2:], "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePubkey(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPubkey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got.Bytes(), 32)
		})
	}
}

func TestValidateCountryCode(t *testing.T) {
	assert.NoError(t, ValidateCountryCode("USA"))
	assert.Error(t, ValidateCountryCode("usa"))
	assert.Error(t, ValidateCountryCode("US"))
	assert.Error(t, ValidateCountryCode("US1"))
}

func completePatch() CountryParamsPatch {
	bp := uint16(100)
	v := func(n int64) *int64 { return &n }
	return CountryParamsPatch{
		PlatformFeeBasisPoint:       &bp,
		WaitingFeeSec:               v(300),
		WaitingFeeCent:              v(200),
		DriverCancellationFeeSec:    v(300),
		CustomerCancellationFeeSec:  v(120),
		CancellationFeeCent:         v(500),
		BaseRateCent:                v(4500),
		MinKmRateCent:               v(150),
		MinMinFeeCent:               v(30),
		FinalizeDurationSec:         v(1),
		DisputeWaitoutPeriodSec:     v(86400),
		MinDriverInfraDepositCent:   v(10000),
		MinCustomerInfraDepositCent: v(10000),
		BaseSlashAmountCent:         v(1000),
	}
}

func TestCountryParamsPatch_Complete(t *testing.T) {
	p := completePatch()
	assert.True(t, p.Complete())

	p.BaseSlashAmountCent = nil
	assert.False(t, p.Complete())

	p = completePatch()
	p.PlatformFeeBasisPoint = nil
	assert.False(t, p.Complete())
}

func TestCountryParamsPatch_Validate(t *testing.T) {
	p := completePatch()
	assert.NoError(t, p.Validate())

	neg := int64(-1)
	p.CancellationFeeCent = &neg
	assert.ErrorIs(t, p.Validate(), ErrNegativeParameter)

	p = completePatch()
	tooMuch := uint16(10001)
	p.PlatformFeeBasisPoint = &tooMuch
	assert.ErrorIs(t, p.Validate(), ErrBasisPointRange)
}

func TestCountryParamsPatch_ApplyKeepsMissingFields(t *testing.T) {
	var params CountryParams
	completePatch().Apply(&params)
	assert.Equal(t, int64(4500), params.BaseRateCent)

	newRate := int64(5000)
	CountryParamsPatch{BaseRateCent: &newRate}.Apply(&params)

	assert.Equal(t, int64(5000), params.BaseRateCent)
	assert.Equal(t, int64(500), params.CancellationFeeCent)
	assert.Equal(t, uint16(100), params.PlatformFeeBasisPoint)
}

func TestCountry_CancellationFee(t *testing.T) {
	c := &Country{Params: CountryParams{
		DriverCancellationFeeSec:   300,
		CustomerCancellationFeeSec: 120,
		CancellationFeeCent:        500,
	}}
	requested := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		party   Party
		elapsed time.Duration
		want    int64
	}{
		{"driver before threshold", PartyDriver, 60 * time.Second, 0},
		{"driver at threshold", PartyDriver, 300 * time.Second, 0},
		{"driver past threshold", PartyDriver, 400 * time.Second, 500},
		{"customer before threshold", PartyCustomer, 60 * time.Second, 0},
		{"customer past threshold", PartyCustomer, 121 * time.Second, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.CancellationFee(tt.party, requested, requested.Add(tt.elapsed)))
		})
	}
}

func TestCountry_WaitingFee(t *testing.T) {
	c := &Country{Params: CountryParams{WaitingFeeSec: 300, WaitingFeeCent: 200}}
	arrived := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(0), c.WaitingFee(arrived, arrived.Add(5*time.Minute)))
	assert.Equal(t, int64(200), c.WaitingFee(arrived, arrived.Add(6*time.Minute)))
}

func TestCountry_InfraCounters(t *testing.T) {
	c := &Country{DriverInfraCounter: 2}
	assert.Equal(t, uint64(2), c.InfraCounter(InfraSideDriver))
	assert.Equal(t, uint64(0), c.InfraCounter(InfraSideCustomer))

	c.AdvanceInfraCounter(InfraSideCustomer)
	c.AdvanceInfraCounter(InfraSideDriver)
	assert.Equal(t, uint64(3), c.DriverInfraCounter)
	assert.Equal(t, uint64(1), c.CustomerInfraCounter)
}

func TestInfra_CanTransact(t *testing.T) {
	tests := []struct {
		name  string
		infra Infra
		want  bool
	}{
		{"verified", Infra{IsInitialized: true, IsVerified: true}, true},
		{"unverified", Infra{IsInitialized: true}, false},
		{"frozen", Infra{IsInitialized: true, IsVerified: true, IsFrozen: true}, false},
		{"uninitialized", Infra{IsVerified: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.infra.CanTransact())
		})
	}
}

func TestInfra_NextJobCountNeverReuses(t *testing.T) {
	i := &Infra{Side: InfraSideDriver}
	assert.Equal(t, uint64(1), i.NextJobCount())
	assert.Equal(t, uint64(2), i.NextJobCount())
	assert.Equal(t, uint64(2), i.JobCounter)
}

func TestJobStatus_Transitions(t *testing.T) {
	tests := []struct {
		status      JobStatus
		terminal    bool
		canCancel   bool
		canComplete bool
		canDispute  bool
	}{
		{JobStatusInit, false, true, false, true},
		{JobStatusAccepted, false, true, true, true},
		{JobStatusArrived, false, false, true, true},
		{JobStatusStarted, false, false, true, true},
		{JobStatusCompleted, true, false, false, false},
		{JobStatusCancelledByDriver, true, false, false, false},
		{JobStatusCancelledByCustomer, true, false, false, false},
		{JobStatusDisputeByDriver, false, false, false, false},
		{JobStatusDisputeByCustomer, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.canCancel, tt.status.CanCancel())
			assert.Equal(t, tt.canComplete, tt.status.CanComplete())
			assert.Equal(t, tt.canDispute, tt.status.CanDispute())
		})
	}
}

func TestParty_Statuses(t *testing.T) {
	assert.Equal(t, JobStatusCancelledByDriver, PartyDriver.CancelledStatus())
	assert.Equal(t, JobStatusCancelledByCustomer, PartyCustomer.CancelledStatus())
	assert.Equal(t, JobStatusDisputeByDriver, PartyDriver.DisputeStatus())
	assert.Equal(t, JobStatusDisputeByCustomer, PartyCustomer.DisputeStatus())
}

func TestBasisPointShare(t *testing.T) {
	assert.Equal(t, int64(10), BasisPointShare(1050, 100))
	assert.Equal(t, int64(52), BasisPointShare(1050, 500))
	assert.Equal(t, int64(0), BasisPointShare(99, 100))
	assert.Equal(t, int64(1050), BasisPointShare(1050, BasisPointDenominator))
	assert.Zero(t, BasisPointShare(-1050, 100))
	assert.Zero(t, BasisPointShare(1050, 0))
}

func TestBasisPointShare_LargeTotals(t *testing.T) {
	assert.Equal(t, int64(MaxFeeCent), BasisPointShare(MaxFeeCent, BasisPointDenominator))
	assert.Equal(t, int64(1_000_000_000_000_000), BasisPointShare(1_000_000_000_000_000, BasisPointDenominator))
	assert.Equal(t, int64(100_000_000_000_000), BasisPointShare(1_000_000_000_000_000, 1000))
	assert.Equal(t, int64(math.MaxInt64), BasisPointShare(math.MaxInt64, BasisPointDenominator))
	assert.Equal(t, int64(math.MaxInt64/2), BasisPointShare(math.MaxInt64, 5000))
}

func TestDistribution_SettleLargeTotal(t *testing.T) {
	acc := SettlementAccounts{
		PlatformTreasury: PlatformTreasury(),
		CountryTreasury:  TreasuryAddress("USA"),
		CustomerInfra:    InfraAddress(InfraSideCustomer, "USA", 0),
		DriverInfra:      InfraAddress(InfraSideDriver, "USA", 0),
	}
	d := Distribution{
		PlatformBasisPoint:      2500,
		CountryBasisPoint:       2500,
		CustomerInfraBasisPoint: 2500,
		DriverInfraBasisPoint:   2500,
	}
	total := int64(MaxFeeCent)

	payouts := d.Settle(total, acc)
	assert.Equal(t, total, SumPayouts(payouts))
	for _, p := range payouts {
		assert.GreaterOrEqual(t, p.AmountCent, int64(0), p.Label)
	}
	assert.Equal(t, total/4, payouts[0].AmountCent)
}

func TestDistribution_SettleConservesTotal(t *testing.T) {
	acc := SettlementAccounts{
		PlatformTreasury: PlatformTreasury(),
		CountryTreasury:  TreasuryAddress("USA"),
		CustomerInfra:    InfraAddress(InfraSideCustomer, "USA", 0),
		DriverInfra:      InfraAddress(InfraSideDriver, "USA", 0),
	}
	d := Distribution{
		PlatformBasisPoint:      250,
		CountryBasisPoint:       100,
		CustomerInfraBasisPoint: 300,
		DriverInfraBasisPoint:   500,
	}

	for _, total := range []int64{0, 1, 7, 999, 1050, 123457} {
		payouts := d.Settle(total, acc)
		assert.Equal(t, total, SumPayouts(payouts), "total %d", total)
	}

	payouts := d.Settle(1050, acc)
	require.Len(t, payouts, 5)
	assert.Equal(t, int64(26), payouts[0].AmountCent)
	assert.Equal(t, int64(10), payouts[1].AmountCent)
	assert.Equal(t, int64(31), payouts[2].AmountCent)
	assert.Equal(t, int64(52), payouts[3].AmountCent)
	assert.Equal(t, int64(1050-26-10-31-52), payouts[4].AmountCent)
	assert.Equal(t, acc.DriverInfra, payouts[4].To)
}

func TestDistribution_Validate(t *testing.T) {
	assert.NoError(t, Distribution{PlatformBasisPoint: 5000, DriverInfraBasisPoint: 5000}.Validate())
	assert.ErrorIs(t, Distribution{PlatformBasisPoint: 5000, DriverInfraBasisPoint: 5001}.Validate(), ErrBasisPointRange)
}

func TestCoordinates_Validate(t *testing.T) {
	assert.NoError(t, Coordinates{Lat: 40.7, Long: -74.0}.Validate())
	assert.NoError(t, Coordinates{Lat: -90, Long: 180}.Validate())
	assert.ErrorIs(t, Coordinates{Lat: 91, Long: 0}.Validate(), ErrInvalidCoordinates)
	assert.ErrorIs(t, Coordinates{Lat: 0, Long: -180.5}.Validate(), ErrInvalidCoordinates)
}

func TestGlobalConfig_NextCatalogID(t *testing.T) {
	g := &GlobalConfig{VehicleCounter: 4}
	assert.Equal(t, uint64(0), g.NextCatalogID(CatalogService))
	assert.Equal(t, uint64(1), g.NextCatalogID(CatalogService))
	assert.Equal(t, uint64(4), g.NextCatalogID(CatalogVehicle))
	assert.Equal(t, uint64(0), g.NextCatalogID(CatalogPassengerType))
	assert.Equal(t, uint64(2), g.ServiceCounter)
	assert.Equal(t, uint64(5), g.VehicleCounter)
}

func TestParseKinds(t *testing.T) {
	side, err := ParseInfraSide("driver")
	require.NoError(t, err)
	assert.Equal(t, KindDriverInfra, side.Kind())
	_, err = ParseInfraSide("rider")
	assert.ErrorIs(t, err, ErrInvalidInfraSide)

	kind, err := ParseCatalogKind("vehicles")
	require.NoError(t, err)
	assert.Equal(t, KindVehicle, kind.RecordKind())
	_, err = ParseCatalogKind("boats")
	assert.ErrorIs(t, err, ErrInvalidCatalogKind)
}

func TestNewJobEvent(t *testing.T) {
	infra := InfraAddress(InfraSideDriver, "USA", 0)
	job := &Job{Country: "USA", DriverInfra: infra, JobCount: 3, Status: JobStatusAccepted, DriverUUID: "d1"}
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	ev := NewJobEvent(JobEventAccepted, job, 1050, at)
	assert.Equal(t, JobAddress(infra, 3), ev.Job)
	assert.Equal(t, JobStatusAccepted, ev.Status)
	assert.Equal(t, int64(1050), ev.AmountCent)
	assert.Equal(t, at, ev.OccurredAt)
}
