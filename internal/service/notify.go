package service

import (
	"context"
	"time"

	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// notifier reports committed job transitions. Failures are logged and never
// undo the transition.
type notifier struct {
	events  ports.EventPublisher
	metrics ports.Metrics
	log     zerolog.Logger
}

func (n notifier) jobChanged(ctx context.Context, t domain.JobEventType, job *domain.Job, amount int64, at time.Time) {
	n.metrics.JobTransition(job.Status)

	event := domain.NewJobEvent(t, job, amount, at)
	event.CorrelationID = uuid.NewString()
	if err := n.events.PublishJobEvent(ctx, event); err != nil {
		n.log.Warn().Err(err).
			Str("job", event.Job.String()).
			Str("event", string(t)).
			Msg("failed to publish job event")
	}
}

func (n notifier) moved(payouts []domain.Payout) {
	for _, p := range payouts {
		if p.AmountCent > 0 {
			n.metrics.EscrowMoved(p.Label, p.AmountCent)
		}
	}
}
