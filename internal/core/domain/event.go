package domain

import "time"

// JobEventType names a committed job transition.
type JobEventType string

const (
	JobEventRequested JobEventType = "job.requested"
	JobEventAccepted  JobEventType = "job.accepted"
	JobEventArrived   JobEventType = "job.arrived"
	JobEventStarted   JobEventType = "job.started"
	JobEventCompleted JobEventType = "job.completed"
	JobEventCancelled JobEventType = "job.cancelled"
	JobEventDisputed  JobEventType = "job.disputed"
)

// JobEvent is published after a job transition commits.
type JobEvent struct {
	Type          JobEventType `json:"type"`
	CorrelationID string       `json:"correlation_id"`
	Job           Address      `json:"job"`
	Country       string       `json:"country"`
	DriverInfra   Address      `json:"driver_infra"`
	CustomerInfra Address      `json:"customer_infra"`
	DriverUUID    string       `json:"driver_uuid"`
	JobCount      uint64       `json:"job_count"`
	Status        JobStatus    `json:"status"`
	AmountCent    int64        `json:"amount_cent"`
	OccurredAt    time.Time    `json:"occurred_at"`
}

// NewJobEvent builds the event for job after a transition of type t.
func NewJobEvent(t JobEventType, job *Job, amount int64, at time.Time) JobEvent {
	return JobEvent{
		Type:          t,
		Job:           job.Address(),
		Country:       job.Country,
		DriverInfra:   job.DriverInfra,
		CustomerInfra: job.CustomerInfra,
		DriverUUID:    job.DriverUUID,
		JobCount:      job.JobCount,
		Status:        job.Status,
		AmountCent:    amount,
		OccurredAt:    at,
	}
}
