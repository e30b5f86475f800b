package domain

import "time"

// JobStatus is the lifecycle state of a ride job.
type JobStatus string

const (
	JobStatusInit                JobStatus = "INIT"
	JobStatusAccepted            JobStatus = "JOB_ACCEPTED"
	JobStatusArrived             JobStatus = "ARRIVED"
	JobStatusStarted             JobStatus = "STARTED"
	JobStatusCompleted           JobStatus = "COMPLETED"
	JobStatusCancelledByDriver   JobStatus = "CANCELLED_BY_DRIVER"
	JobStatusCancelledByCustomer JobStatus = "CANCELLED_BY_CUSTOMER"
	JobStatusDisputeByDriver     JobStatus = "DISPUTE_BY_DRIVER"
	JobStatusDisputeByCustomer   JobStatus = "DISPUTE_BY_CUSTOMER"
)

// IsTerminal returns true if the job has settled.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted ||
		s == JobStatusCancelledByDriver ||
		s == JobStatusCancelledByCustomer
}

// IsDisputed returns true while a dispute holds the escrow.
func (s JobStatus) IsDisputed() bool {
	return s == JobStatusDisputeByDriver || s == JobStatusDisputeByCustomer
}

// CanCancel reports whether either side may still cancel.
func (s JobStatus) CanCancel() bool {
	return s == JobStatusInit || s == JobStatusAccepted
}

// CanComplete reports whether the driver infra may settle the job.
func (s JobStatus) CanComplete() bool {
	return s == JobStatusAccepted || s == JobStatusArrived || s == JobStatusStarted
}

// CanDispute reports whether a dispute may be raised.
func (s JobStatus) CanDispute() bool {
	return s == JobStatusInit || s.CanComplete()
}

// Party is one side of a job.
type Party string

const (
	PartyDriver   Party = "driver"
	PartyCustomer Party = "customer"
)

// CancelledStatus is the terminal status of a cancellation by p.
func (p Party) CancelledStatus() JobStatus {
	if p == PartyDriver {
		return JobStatusCancelledByDriver
	}
	return JobStatusCancelledByCustomer
}

// DisputeStatus is the status of a dispute raised by p.
func (p Party) DisputeStatus() JobStatus {
	if p == PartyDriver {
		return JobStatusDisputeByDriver
	}
	return JobStatusDisputeByCustomer
}

// Job is one ride from request through settlement. Identity fields never
// change after creation.
type Job struct {
	Versioned
	Country            string       `json:"country"`
	DriverInfra        Address      `json:"driver_infra"`
	CustomerInfra      Address      `json:"customer_infra"`
	DriverInfraCount   uint64       `json:"driver_infra_count"`
	CustomerInfraCount uint64       `json:"customer_infra_count"`
	DriverUUID         string       `json:"driver_uuid"`
	JobCount           uint64       `json:"job_count"`
	Status             JobStatus    `json:"status"`
	TotalFeeCent       int64        `json:"total_fee_cent"`
	Escrow             Address      `json:"escrow"`
	Distribution       Distribution `json:"distribution"`
	EncryptedPayload   string       `json:"encrypted_payload"`
	EncryptedKey       string       `json:"encrypted_key"`
	Destination        *Coordinates `json:"destination,omitempty"`
	WaitingFeeCent     int64        `json:"waiting_fee_cent"`
	IsInitialized      bool         `json:"is_initialized"`
	RequestedAt        time.Time    `json:"requested_at"`
	AcceptedAt         *time.Time   `json:"accepted_at,omitempty"`
	ArrivedAt          *time.Time   `json:"arrived_at,omitempty"`
	StartedAt          *time.Time   `json:"started_at,omitempty"`
	DisputedAt         *time.Time   `json:"disputed_at,omitempty"`
}

func (j *Job) Kind() Kind { return KindJob }
func (j *Job) Address() Address { return JobAddress(j.DriverInfra, j.JobCount) }

// Settlement is the outcome of closing a job's escrow.
type Settlement struct {
	Job        Address   `json:"job"`
	Status     JobStatus `json:"status"`
	Payouts    []Payout  `json:"payouts"`
	SettledAt  time.Time `json:"settled_at"`
	PenaltyFee int64     `json:"penalty_fee_cent,omitempty"`
}
