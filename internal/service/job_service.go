package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/apperror"
	"ride-escrow-network/pkg/sentinel"

	"github.com/rs/zerolog"
)

const defaultIdempotencyTTL = 24 * time.Hour

// JobServiceImpl implements ports.JobService. Every transition runs in one
// store transaction covering the job, both infras and the escrow movements.
type JobServiceImpl struct {
	store      ports.RecordStore
	idempCache ports.IdempotencyCache
	locations  ports.LocationCache
	clock      ports.Clock
	notify     notifier
	idempTTL   time.Duration
	log        zerolog.Logger
}

// NewJobService creates a new JobServiceImpl.
func NewJobService(
	store ports.RecordStore,
	idempCache ports.IdempotencyCache,
	locations ports.LocationCache,
	events ports.EventPublisher,
	metrics ports.Metrics,
	clock ports.Clock,
	idempTTL time.Duration,
	log zerolog.Logger,
) *JobServiceImpl {
	if idempTTL <= 0 {
		idempTTL = defaultIdempotencyTTL
	}
	return &JobServiceImpl{
		store:      store,
		idempCache: idempCache,
		locations:  locations,
		clock:      clock,
		notify:     notifier{events: events, metrics: metrics, log: log},
		idempTTL:   idempTTL,
		log:        log,
	}
}

func jobName(addr domain.Address) string { return "job " + addr.String() }

// jobContext is a loaded job with both of its infras.
type jobContext struct {
	job      *domain.Job
	driver   *domain.Infra
	customer *domain.Infra
}

func (jc jobContext) infraOf(p domain.Party) *domain.Infra {
	if p == domain.PartyDriver {
		return jc.driver
	}
	return jc.customer
}

func (jc jobContext) escrow() EscrowHandle {
	return EscrowHandle{Account: jc.job.Escrow, Amount: jc.job.TotalFeeCent}
}

// loadJob reads a job and both infras, then checks that signer is the
// authority of the acting party's infra and that the infra is not frozen.
func loadJob(ctx context.Context, tx ports.RecordTx, signer domain.Pubkey, ref ports.JobRef, actor domain.Party) (jobContext, error) {
	job := &domain.Job{DriverInfra: ref.DriverInfra(), JobCount: ref.JobCount}
	if err := load(ctx, tx, job, jobName(ref.Address())); err != nil {
		return jobContext{}, err
	}
	driver, err := loadInfra(ctx, tx, domain.InfraSideDriver, job.Country, job.DriverInfraCount)
	if err != nil {
		return jobContext{}, err
	}
	customer, err := loadInfra(ctx, tx, domain.InfraSideCustomer, job.Country, job.CustomerInfraCount)
	if err != nil {
		return jobContext{}, err
	}
	jc := jobContext{job: job, driver: driver, customer: customer}

	acting := jc.infraOf(actor)
	name := infraName(acting.Side, acting.Country, acting.Count)
	if err := requireAuthority(signer, acting.UpdateAuthority, name); err != nil {
		return jobContext{}, err
	}
	if acting.IsFrozen {
		return jobContext{}, apperror.ErrFrozen(name)
	}
	return jc, nil
}

func (s *JobServiceImpl) begin(ctx context.Context) (ports.RecordTx, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	return tx, nil
}

// RequestJob creates a job at the driver infra's next job slot and locks the
// total fee from the customer infra's account into the job's escrow.
func (s *JobServiceImpl) RequestJob(ctx context.Context, req ports.RequestJobRequest) (*domain.Job, error) {
	if req.TotalFeeCent <= 0 {
		return nil, apperror.Validation("total fee must be positive")
	}
	if req.TotalFeeCent > domain.MaxFeeCent {
		return nil, apperror.Validation(fmt.Sprintf("total fee must not exceed %d cents", int64(domain.MaxFeeCent)))
	}
	if strings.TrimSpace(req.DriverUUID) == "" {
		return nil, apperror.Validation("driver uuid is required")
	}
	if req.EncryptedPayload == "" || req.EncryptedKey == "" {
		return nil, apperror.Validation("encrypted payload and key are required")
	}

	var idempKey string
	if req.Reference != "" {
		idempKey = domain.BuildIdempotencyKey(req.Signer, req.Reference)
		job, err := s.replay(ctx, req.Signer, req.Reference, idempKey)
		if err != nil || job != nil {
			return job, err
		}
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx, s.log)

	global := &domain.GlobalConfig{}
	if err := load(ctx, tx, global, globalName); err != nil {
		return nil, err
	}
	country := &domain.Country{Code: req.Country}
	if err := load(ctx, tx, country, countryName(req.Country)); err != nil {
		return nil, err
	}

	customer, err := loadInfra(ctx, tx, domain.InfraSideCustomer, req.Country, req.CustomerInfraCount)
	if err != nil {
		return nil, err
	}
	customerName := infraName(domain.InfraSideCustomer, req.Country, req.CustomerInfraCount)
	if err := requireAuthority(req.Signer, customer.UpdateAuthority, customerName); err != nil {
		return nil, err
	}
	if err := requireTransacting(customer); err != nil {
		return nil, err
	}
	driverInfra, err := loadInfra(ctx, tx, domain.InfraSideDriver, req.Country, req.DriverInfraCount)
	if err != nil {
		return nil, err
	}
	if err := requireTransacting(driverInfra); err != nil {
		return nil, err
	}

	driver := &domain.Driver{UUID: req.DriverUUID}
	if err := load(ctx, tx, driver, driverName(req.DriverUUID)); err != nil {
		return nil, err
	}
	if driver.InfraAuthority != driverInfra.Address() {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("driver %s does not work for %s",
			req.DriverUUID, infraName(domain.InfraSideDriver, req.Country, req.DriverInfraCount)))
	}

	dist := domain.Distribution{
		PlatformBasisPoint:      global.PlatformFeeBasisPoint,
		CountryBasisPoint:       country.Params.PlatformFeeBasisPoint,
		CustomerInfraBasisPoint: customer.FeeBasisPoint,
		DriverInfraBasisPoint:   driverInfra.FeeBasisPoint,
	}
	if err := dist.Validate(); err != nil {
		return nil, apperror.Validation("fee shares exceed the total: " + err.Error())
	}

	jobCount := driverInfra.NextJobCount()
	if req.JobCount != 0 && req.JobCount != jobCount {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("job count %d is not the next slot %d", req.JobCount, jobCount))
	}

	now := s.clock.Now()
	job := &domain.Job{
		Country:            req.Country,
		DriverInfra:        driverInfra.Address(),
		CustomerInfra:      customer.Address(),
		DriverInfraCount:   req.DriverInfraCount,
		CustomerInfraCount: req.CustomerInfraCount,
		DriverUUID:         req.DriverUUID,
		JobCount:           jobCount,
		Status:             domain.JobStatusInit,
		TotalFeeCent:       req.TotalFeeCent,
		Distribution:       dist,
		EncryptedPayload:   req.EncryptedPayload,
		EncryptedKey:       req.EncryptedKey,
		IsInitialized:      true,
		RequestedAt:        now,
	}
	job.Escrow = domain.EscrowAddress(job.Address())

	if err := tx.Create(ctx, job); err != nil {
		return nil, storeError(err, jobName(job.Address()))
	}
	driverInfra.UpdatedAt = now
	if err := tx.Update(ctx, driverInfra); err != nil {
		return nil, storeError(err, infraName(domain.InfraSideDriver, req.Country, req.DriverInfraCount))
	}
	if _, err := lockEscrow(ctx, tx, customer.Address(), job.Address(), req.TotalFeeCent); err != nil {
		return nil, err
	}
	if req.Reference != "" {
		rec := &domain.IdempotencyRecord{
			Signer:    req.Signer,
			Reference: req.Reference,
			Job:       job.Address(),
			CreatedAt: now,
		}
		if err := tx.Create(ctx, rec); err != nil {
			return nil, storeError(err, "idempotency record")
		}
	}

	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	if idempKey != "" {
		if err := s.idempCache.Remember(ctx, idempKey, job.Address(), s.idempTTL); err != nil {
			s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache idempotency in redis")
		}
	}

	s.notify.jobChanged(ctx, domain.JobEventRequested, job, job.TotalFeeCent, now)
	s.log.Info().
		Str("job", job.Address().String()).
		Str("driver", job.DriverUUID).
		Int64("total_fee_cent", job.TotalFeeCent).
		Msg("job requested")
	return job, nil
}

// replay returns the current state of the job an earlier request with the
// same reference created, or nil when the reference is new.
func (s *JobServiceImpl) replay(ctx context.Context, signer domain.Pubkey, reference, key string) (*domain.Job, error) {
	addr, err := s.idempCache.Lookup(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to store")
	}
	if addr == "" {
		rec := &domain.IdempotencyRecord{Signer: signer, Reference: reference}
		err := s.store.Get(ctx, rec.Address(), rec)
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, storeError(err, "idempotency record")
		}
		addr = rec.Job
	}

	job := &domain.Job{}
	err = s.store.Get(ctx, addr, job)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("ride request %q was already settled", reference))
	}
	if err != nil {
		return nil, storeError(err, jobName(addr))
	}
	return job, nil
}

// AcceptJob moves an INIT job to JOB_ACCEPTED. The customer infra signs
// after the driver side agreed off-ledger.
func (s *JobServiceImpl) AcceptJob(ctx context.Context, req ports.AcceptJobRequest) (*domain.Job, error) {
	if err := req.Destination.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx, s.log)

	jc, err := loadJob(ctx, tx, req.Signer, req.Ref, domain.PartyCustomer)
	if err != nil {
		return nil, err
	}
	job := jc.job
	if job.Status != domain.JobStatusInit {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("job is %s, only INIT jobs can be accepted", job.Status))
	}
	if jc.driver.IsFrozen {
		return nil, apperror.ErrFrozen(infraName(domain.InfraSideDriver, job.Country, job.DriverInfraCount))
	}
	if jc.driver.FeeBasisPoint != job.Distribution.DriverInfraBasisPoint {
		return nil, apperror.ErrInvalidState("mismatched driver payout")
	}

	now := s.clock.Now()
	dest := req.Destination
	job.Status = domain.JobStatusAccepted
	job.AcceptedAt = &now
	job.Destination = &dest
	if err := tx.Update(ctx, job); err != nil {
		return nil, storeError(err, jobName(job.Address()))
	}

	driver := &domain.Driver{UUID: job.DriverUUID}
	err = tx.Get(ctx, driver.Address(), driver)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		driver = nil
	case err != nil:
		return nil, storeError(err, driverName(job.DriverUUID))
	case driver.InfraAuthority != job.DriverInfra:
		driver = nil
	default:
		driver.NextLocation = &dest
		if err := tx.Update(ctx, driver); err != nil {
			return nil, storeError(err, driverName(job.DriverUUID))
		}
	}

	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	if driver != nil {
		loc := ports.CachedLocation{Location: driver.LastLocation, Next: driver.NextLocation, UpdatedAt: driver.LocationUpdatedAt}
		if err := s.locations.Set(ctx, driver.UUID, loc); err != nil {
			s.log.Warn().Err(err).Str("driver", driver.UUID).Msg("failed to cache driver location")
		}
	}
	s.notify.jobChanged(ctx, domain.JobEventAccepted, job, 0, now)
	s.log.Info().Str("job", job.Address().String()).Msg("job accepted")
	return job, nil
}

// MarkArrived records the driver's arrival at pickup.
func (s *JobServiceImpl) MarkArrived(ctx context.Context, req ports.JobActionRequest) (*domain.Job, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx, s.log)

	jc, err := loadJob(ctx, tx, req.Signer, req.Ref, domain.PartyDriver)
	if err != nil {
		return nil, err
	}
	job := jc.job
	if job.Status != domain.JobStatusAccepted {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("job is %s, arrival requires JOB_ACCEPTED", job.Status))
	}

	now := s.clock.Now()
	job.Status = domain.JobStatusArrived
	job.ArrivedAt = &now
	if err := tx.Update(ctx, job); err != nil {
		return nil, storeError(err, jobName(job.Address()))
	}
	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	s.log.Info().Str("job", job.Address().String()).Msg("driver arrived")
	s.notify.jobChanged(ctx, domain.JobEventArrived, job, 0, now)
	return job, nil
}

// StartRide records pickup. A customer that kept the driver waiting past the
// country's grace period pays the waiting fee to the driver infra.
func (s *JobServiceImpl) StartRide(ctx context.Context, req ports.JobActionRequest) (*domain.Job, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx, s.log)

	jc, err := loadJob(ctx, tx, req.Signer, req.Ref, domain.PartyDriver)
	if err != nil {
		return nil, err
	}
	job := jc.job
	if job.Status != domain.JobStatusArrived || job.ArrivedAt == nil {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("job is %s, start requires ARRIVED", job.Status))
	}
	country := &domain.Country{Code: job.Country}
	if err := load(ctx, tx, country, countryName(job.Country)); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	fee := country.WaitingFee(*job.ArrivedAt, now)
	if fee > 0 {
		if err := tx.Transfer(ctx, job.CustomerInfra, job.DriverInfra, fee); err != nil {
			return nil, storeError(err, "waiting fee")
		}
	}
	job.Status = domain.JobStatusStarted
	job.StartedAt = &now
	job.WaitingFeeCent = fee
	if err := tx.Update(ctx, job); err != nil {
		return nil, storeError(err, jobName(job.Address()))
	}
	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("job", job.Address().String()).
		Int64("waiting_fee_cent", fee).
		Msg("ride started")
	if fee > 0 {
		s.notify.moved([]domain.Payout{{To: job.DriverInfra, AmountCent: fee, Label: domain.PayoutWaitingFee}})
	}
	s.notify.jobChanged(ctx, domain.JobEventStarted, job, fee, now)
	return job, nil
}

// CompleteJob settles the escrow by the distribution snapshotted at request
// time and closes the job.
func (s *JobServiceImpl) CompleteJob(ctx context.Context, req ports.JobActionRequest) (*domain.Settlement, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx, s.log)

	jc, err := loadJob(ctx, tx, req.Signer, req.Ref, domain.PartyDriver)
	if err != nil {
		return nil, err
	}
	job := jc.job
	switch {
	case job.Status.IsDisputed():
		return nil, apperror.ErrInvalidState("job is under dispute")
	case job.Status == domain.JobStatusInit:
		return nil, apperror.ErrInvalidState("job not yet started")
	case !job.Status.CanComplete():
		return nil, apperror.ErrInvalidState(fmt.Sprintf("job is %s and cannot be completed", job.Status))
	}

	payouts := job.Distribution.Settle(job.TotalFeeCent, domain.SettlementAccounts{
		PlatformTreasury: domain.PlatformTreasury(),
		CountryTreasury:  domain.TreasuryAddress(job.Country),
		CustomerInfra:    job.CustomerInfra,
		DriverInfra:      job.DriverInfra,
	})
	if err := releaseEscrow(ctx, tx, jc.escrow(), payouts); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := s.close(ctx, tx, jc, now, func(i *domain.Infra) { i.MatchedRide++ }); err != nil {
		return nil, err
	}
	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	job.Status = domain.JobStatusCompleted
	s.notify.moved(payouts)
	s.notify.jobChanged(ctx, domain.JobEventCompleted, job, job.TotalFeeCent, now)
	s.log.Info().
		Str("job", job.Address().String()).
		Int64("total_fee_cent", job.TotalFeeCent).
		Msg("job completed")

	return &domain.Settlement{
		Job:       job.Address(),
		Status:    domain.JobStatusCompleted,
		Payouts:   payouts,
		SettledAt: now,
	}, nil
}

// CancelJob closes a job that has not been picked up yet.
//
// A customer cancel past its threshold pays the cancellation fee out of the
// escrow to the driver infra. A driver cancel always refunds the escrow in
// full and, past its threshold, the driver infra pays the fee to the
// customer infra from its own account.
func (s *JobServiceImpl) CancelJob(ctx context.Context, req ports.CancelJobRequest) (*domain.Settlement, error) {
	if req.By != domain.PartyDriver && req.By != domain.PartyCustomer {
		return nil, apperror.Validation("cancelling party must be driver or customer")
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx, s.log)

	jc, err := loadJob(ctx, tx, req.Signer, req.Ref, req.By)
	if err != nil {
		return nil, err
	}
	job := jc.job
	switch {
	case job.Status.IsDisputed():
		return nil, apperror.ErrInvalidState("job is under dispute")
	case !job.Status.CanCancel():
		return nil, apperror.ErrInvalidState(fmt.Sprintf("job is %s and can no longer be cancelled", job.Status))
	}
	country := &domain.Country{Code: job.Country}
	if err := load(ctx, tx, country, countryName(job.Country)); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	fee := country.CancellationFee(req.By, job.RequestedAt, now)
	var payouts []domain.Payout
	if req.By == domain.PartyCustomer {
		fee = min(fee, job.TotalFeeCent)
		payouts = []domain.Payout{
			{To: job.DriverInfra, AmountCent: fee, Label: domain.PayoutCancellationFee},
			{To: job.CustomerInfra, AmountCent: job.TotalFeeCent - fee, Label: domain.PayoutRefund},
		}
		if err := releaseEscrow(ctx, tx, jc.escrow(), payouts); err != nil {
			return nil, err
		}
	} else {
		payouts, err = refundEscrow(ctx, tx, jc.escrow(), job.CustomerInfra)
		if err != nil {
			return nil, err
		}
		if fee > 0 {
			if err := tx.Transfer(ctx, job.DriverInfra, job.CustomerInfra, fee); err != nil {
				return nil, storeError(err, "driver cancellation fee")
			}
		}
	}

	status := req.By.CancelledStatus()
	cancelling := jc.infraOf(req.By)
	if err := s.close(ctx, tx, jc, now, func(i *domain.Infra) {
		if i == cancelling {
			i.Cancellation++
		}
	}); err != nil {
		return nil, err
	}
	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	job.Status = status
	s.notify.moved(payouts)
	if req.By == domain.PartyDriver && fee > 0 {
		s.notify.moved([]domain.Payout{{To: job.CustomerInfra, AmountCent: fee, Label: domain.PayoutCancellationFee}})
	}
	s.notify.jobChanged(ctx, domain.JobEventCancelled, job, fee, now)
	s.log.Info().
		Str("job", job.Address().String()).
		Str("by", string(req.By)).
		Int64("penalty_fee_cent", fee).
		Msg("job cancelled")

	return &domain.Settlement{
		Job:        job.Address(),
		Status:     status,
		Payouts:    payouts,
		SettledAt:  now,
		PenaltyFee: fee,
	}, nil
}

// close deletes the job and applies the counter update to both infras.
func (s *JobServiceImpl) close(ctx context.Context, tx ports.RecordTx, jc jobContext, now time.Time, apply func(*domain.Infra)) error {
	if err := tx.Delete(ctx, jc.job); err != nil {
		return storeError(err, jobName(jc.job.Address()))
	}
	for _, infra := range []*domain.Infra{jc.driver, jc.customer} {
		apply(infra)
		infra.UpdatedAt = now
		if err := tx.Update(ctx, infra); err != nil {
			return storeError(err, infraName(infra.Side, infra.Country, infra.Count))
		}
	}
	return nil
}

// RaiseDispute freezes the escrow of an open job.
func (s *JobServiceImpl) RaiseDispute(ctx context.Context, req ports.DisputeRequest) (*domain.Job, error) {
	if req.By != domain.PartyDriver && req.By != domain.PartyCustomer {
		return nil, apperror.Validation("disputing party must be driver or customer")
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx, s.log)

	jc, err := loadJob(ctx, tx, req.Signer, req.Ref, req.By)
	if err != nil {
		return nil, err
	}
	job := jc.job
	switch {
	case job.Status.IsDisputed():
		return nil, apperror.ErrInvalidState("job is already under dispute")
	case !job.Status.CanDispute():
		return nil, apperror.ErrInvalidState(fmt.Sprintf("job is %s and cannot be disputed", job.Status))
	}

	now := s.clock.Now()
	job.Status = req.By.DisputeStatus()
	job.DisputedAt = &now
	if err := tx.Update(ctx, job); err != nil {
		return nil, storeError(err, jobName(job.Address()))
	}
	for _, infra := range []*domain.Infra{jc.driver, jc.customer} {
		infra.DisputeCases++
		infra.UpdatedAt = now
		if err := tx.Update(ctx, infra); err != nil {
			return nil, storeError(err, infraName(infra.Side, infra.Country, infra.Count))
		}
	}
	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	s.notify.jobChanged(ctx, domain.JobEventDisputed, job, 0, now)
	s.log.Warn().
		Str("job", job.Address().String()).
		Str("by", string(req.By)).
		Str("reason", req.Reason).
		Msg("job disputed")
	return job, nil
}

// ResolveDispute is reserved for adjudication. It validates the request and
// reports where the wait-out period stands.
func (s *JobServiceImpl) ResolveDispute(ctx context.Context, req ports.JobActionRequest) error {
	job := &domain.Job{DriverInfra: req.Ref.DriverInfra(), JobCount: req.Ref.JobCount}
	if err := load(ctx, s.store, job, jobName(req.Ref.Address())); err != nil {
		return err
	}
	country := &domain.Country{Code: job.Country}
	if err := load(ctx, s.store, country, countryName(job.Country)); err != nil {
		return err
	}
	if err := requireAuthority(req.Signer, country.UpdateAuthority, countryName(job.Country)); err != nil {
		return err
	}
	if !job.Status.IsDisputed() || job.DisputedAt == nil {
		return apperror.ErrInvalidState("job is not under dispute")
	}

	waitoutEnds := job.DisputedAt.Add(time.Duration(country.Params.DisputeWaitoutPeriodSec) * time.Second)
	state := "has elapsed"
	if s.clock.Now().Before(waitoutEnds) {
		state = "ends at " + waitoutEnds.Format(time.RFC3339)
	}
	return apperror.ErrNotImplemented(fmt.Sprintf("dispute resolution is not implemented; wait-out period %s", state))
}

// GetJob reads an open job. Settled jobs are closed and report NotFound.
func (s *JobServiceImpl) GetJob(ctx context.Context, ref ports.JobRef) (*domain.Job, error) {
	job := &domain.Job{DriverInfra: ref.DriverInfra(), JobCount: ref.JobCount}
	if err := load(ctx, s.store, job, jobName(ref.Address())); err != nil {
		return nil, err
	}
	return job, nil
}
