package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"ride-escrow-network/internal/adapter/storage/memory"
	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type memCache struct {
	mu sync.Mutex
	m  map[string]domain.Address
}

func (c *memCache) Lookup(_ context.Context, key string) (domain.Address, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m[key], nil
}

func (c *memCache) Remember(_ context.Context, key string, job domain.Address, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = job
	return nil
}

func (c *memCache) clear() {
	c.mu.Lock()
	c.m = map[string]domain.Address{}
	c.mu.Unlock()
}

type memLocations struct {
	mu sync.Mutex
	m  map[string]ports.CachedLocation
}

func (l *memLocations) Set(_ context.Context, id string, loc ports.CachedLocation) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[id] = loc
	return nil
}

func (l *memLocations) Get(_ context.Context, id string) (*ports.CachedLocation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	loc, ok := l.m[id]
	if !ok {
		return nil, nil
	}
	return &loc, nil
}

func (l *memLocations) Delete(_ context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.m, id)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.JobEvent
}

func (p *recordingPublisher) PublishJobEvent(_ context.Context, e domain.JobEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []domain.JobEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.JobEventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type countingMetrics struct {
	mu          sync.Mutex
	transitions map[domain.JobStatus]int
	moved       map[domain.PayoutLabel]int64
	infras      map[domain.InfraSide]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{
		transitions: map[domain.JobStatus]int{},
		moved:       map[domain.PayoutLabel]int64{},
		infras:      map[domain.InfraSide]int{},
	}
}

func (m *countingMetrics) JobTransition(s domain.JobStatus) {
	m.mu.Lock()
	m.transitions[s]++
	m.mu.Unlock()
}

func (m *countingMetrics) EscrowMoved(l domain.PayoutLabel, cents int64) {
	m.mu.Lock()
	m.moved[l] += cents
	m.mu.Unlock()
}

func (m *countingMetrics) InfraRegistered(s domain.InfraSide) {
	m.mu.Lock()
	m.infras[s]++
	m.mu.Unlock()
}

func key(c string) domain.Pubkey { return domain.Pubkey(strings.Repeat(c, 64)) }

var (
	globalKey   = key("a")
	countryKey  = key("b")
	driverKey   = key("c")
	customerKey = key("d")
	strangerKey = key("e")
)

const testCountry = "USA"

func u16(v uint16) *uint16 { return &v }
func i64(v int64) *int64   { return &v }

func fullParams() domain.CountryParamsPatch {
	return domain.CountryParamsPatch{
		PlatformFeeBasisPoint:       u16(100),
		WaitingFeeSec:               i64(300),
		WaitingFeeCent:              i64(200),
		DriverCancellationFeeSec:    i64(300),
		CustomerCancellationFeeSec:  i64(120),
		CancellationFeeCent:         i64(500),
		BaseRateCent:                i64(4500),
		MinKmRateCent:               i64(150),
		MinMinFeeCent:               i64(30),
		FinalizeDurationSec:         i64(60),
		DisputeWaitoutPeriodSec:     i64(86400),
		MinDriverInfraDepositCent:   i64(10000),
		MinCustomerInfraDepositCent: i64(5000),
		BaseSlashAmountCent:         i64(1000),
	}
}

// world wires every service over one memory store.
type world struct {
	t       *testing.T
	ctx     context.Context
	store   *memory.Store
	clock   *fakeClock
	events  *recordingPublisher
	metrics *countingMetrics
	idem    *memCache
	locs    *memLocations

	config  *ConfigServiceImpl
	infras  *InfraServiceImpl
	drivers *DriverServiceImpl
	jobs    *JobServiceImpl
	catalog *CatalogServiceImpl
	ledger  *LedgerServiceImpl
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		t:       t,
		ctx:     context.Background(),
		store:   memory.NewStore(),
		clock:   &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		events:  &recordingPublisher{},
		metrics: newCountingMetrics(),
		idem:    &memCache{m: map[string]domain.Address{}},
		locs:    &memLocations{m: map[string]ports.CachedLocation{}},
	}
	log := zerolog.Nop()
	w.config = NewConfigService(w.store, w.clock, log)
	w.infras = NewInfraService(w.store, w.clock, w.metrics, log)
	w.drivers = NewDriverService(w.store, w.locs, w.clock, log)
	w.jobs = NewJobService(w.store, w.idem, w.locs, w.events, w.metrics, w.clock, time.Hour, log)
	w.catalog = NewCatalogService(w.store, w.clock, log)
	w.ledger = NewLedgerService(w.store, log)
	return w
}

// setupGlobal initializes the platform at 250 bp with a 500 cent entry fee.
func (w *world) setupGlobal() {
	w.t.Helper()
	_, err := w.config.InitOrUpdateGlobal(w.ctx, ports.GlobalRequest{
		Signer:                globalKey,
		PlatformFeeBasisPoint: u16(250),
		NewEntryFeeCent:       i64(500),
	})
	require.NoError(w.t, err)
}

// setupCountry creates USA and hands it to countryKey.
func (w *world) setupCountry() {
	w.t.Helper()
	_, err := w.config.InitOrUpdateCountry(w.ctx, ports.CountryRequest{Signer: globalKey, Code: testCountry, Params: fullParams()})
	require.NoError(w.t, err)
	_, err = w.config.UpdateCountryAuthority(w.ctx, testCountry, ports.AuthorityTransferRequest{Signer: globalKey, NewAuthority: countryKey})
	require.NoError(w.t, err)
}

func (w *world) topup(account domain.Address, amount int64) {
	w.t.Helper()
	_, err := w.ledger.Topup(w.ctx, ports.TopupRequest{Signer: globalKey, Account: account, AmountCent: amount})
	require.NoError(w.t, err)
}

func (w *world) registerInfra(side domain.InfraSide, signer domain.Pubkey, bp uint16) *domain.Infra {
	w.t.Helper()
	c, err := w.config.GetCountry(w.ctx, testCountry)
	require.NoError(w.t, err)
	w.topup(domain.WalletAddress(signer), c.MinInfraDeposit(side))
	infra, err := w.infras.InitInfra(w.ctx, ports.InitInfraRequest{
		Signer:        signer,
		Side:          side,
		Country:       testCountry,
		Count:         c.InfraCounter(side),
		Company:       ports.CompanyDetails{CompanyName: string(side) + " co", EntityRegistryID: "REG-1", Website: "https://example.com"},
		FeeBasisPoint: bp,
	})
	require.NoError(w.t, err)
	return infra
}

func (w *world) approve(infra *domain.Infra) {
	w.t.Helper()
	_, err := w.infras.ApproveInfra(w.ctx, ports.InfraGateRequest{Signer: countryKey, Ref: refOf(infra)})
	require.NoError(w.t, err)
}

func refOf(infra *domain.Infra) ports.InfraRef {
	return ports.InfraRef{Side: infra.Side, Country: infra.Country, Count: infra.Count}
}

// market is a bootstrapped world with one approved infra per side, a funded
// customer infra and driver d1 at work.
type market struct {
	*world
	driverInfra   *domain.Infra
	customerInfra *domain.Infra
}

const customerFunds = 100_000

func newMarket(t *testing.T) *market {
	t.Helper()
	w := newWorld(t)
	w.setupGlobal()
	w.setupCountry()
	m := &market{world: w}
	m.driverInfra = w.registerInfra(domain.InfraSideDriver, driverKey, 500)
	m.customerInfra = w.registerInfra(domain.InfraSideCustomer, customerKey, 300)
	w.approve(m.driverInfra)
	w.approve(m.customerInfra)
	w.topup(m.customerInfra.Address(), customerFunds)

	_, err := w.drivers.StartWork(w.ctx, ports.StartWorkRequest{
		Signer:           driverKey,
		Country:          testCountry,
		DriverInfraCount: m.driverInfra.Count,
		UUID:             "d1",
		PublicKeyPEM:     "-----BEGIN PUBLIC KEY-----",
		OfferedServices:  []uint64{0},
		NumberOfSeats:    4,
		Location:         domain.Coordinates{Lat: 40.7, Long: -74},
	})
	require.NoError(t, err)
	return m
}

func (m *market) request(total int64) *domain.Job {
	m.t.Helper()
	job, err := m.jobs.RequestJob(m.ctx, m.requestReq(total))
	require.NoError(m.t, err)
	return job
}

func (m *market) requestReq(total int64) ports.RequestJobRequest {
	return ports.RequestJobRequest{
		Signer:             customerKey,
		Country:            testCountry,
		CustomerInfraCount: m.customerInfra.Count,
		DriverInfraCount:   m.driverInfra.Count,
		DriverUUID:         "d1",
		TotalFeeCent:       total,
		EncryptedPayload:   "cGF5bG9hZA==",
		EncryptedKey:       "a2V5",
	}
}

func refOfJob(job *domain.Job) ports.JobRef {
	return ports.JobRef{Country: job.Country, DriverInfraCount: job.DriverInfraCount, JobCount: job.JobCount}
}

func (m *market) accept(job *domain.Job) {
	m.t.Helper()
	_, err := m.jobs.AcceptJob(m.ctx, ports.AcceptJobRequest{
		Signer:      customerKey,
		Ref:         refOfJob(job),
		Destination: domain.Coordinates{Lat: 40.75, Long: -73.98},
	})
	require.NoError(m.t, err)
}

func (m *market) balance(addr domain.Address) int64 {
	m.t.Helper()
	b, err := m.ledger.Balance(m.ctx, addr)
	require.NoError(m.t, err)
	return b
}

func (m *market) infra(side domain.InfraSide) *domain.Infra {
	m.t.Helper()
	ref := refOf(m.driverInfra)
	if side == domain.InfraSideCustomer {
		ref = refOf(m.customerInfra)
	}
	infra, err := m.infras.GetInfra(m.ctx, ref)
	require.NoError(m.t, err)
	return infra
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, code), "expected %s, got %v", code, err)
}
