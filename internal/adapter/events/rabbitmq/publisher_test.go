package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.EventPublisher = (*Publisher)(nil)
	_ ports.EventPublisher = Nop{}
)

type published struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	declared   []string
	declareErr error
	publishErr error
	sent       []published
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, _, _, _ bool, _ amqp.Table) error {
	if f.declareErr != nil {
		return f.declareErr
	}
	if kind == "topic" && durable {
		f.declared = append(f.declared, name)
	}
	return nil
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func sampleEvent() domain.JobEvent {
	return domain.JobEvent{
		Type:          domain.JobEventCompleted,
		CorrelationID: "corr-1",
		Country:       "USA",
		JobCount:      3,
		Status:        domain.JobStatusCompleted,
		AmountCent:    1050,
		OccurredAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_PublishJobEvent(t *testing.T) {
	ch := &fakeChannel{}
	p, err := NewPublisher(ch, "ride.jobs", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"ride.jobs"}, ch.declared)

	require.NoError(t, p.PublishJobEvent(context.Background(), sampleEvent()))

	require.Len(t, ch.sent, 1)
	sent := ch.sent[0]
	assert.Equal(t, "ride.jobs", sent.exchange)
	assert.Equal(t, "job.completed.USA", sent.key)
	assert.Equal(t, "application/json", sent.msg.ContentType)
	assert.Equal(t, amqp.Persistent, sent.msg.DeliveryMode)
	assert.Equal(t, "corr-1", sent.msg.MessageId)

	var decoded domain.JobEvent
	require.NoError(t, json.Unmarshal(sent.msg.Body, &decoded))
	assert.Equal(t, int64(1050), decoded.AmountCent)
	assert.Equal(t, domain.JobStatusCompleted, decoded.Status)
}

func TestPublisher_Errors(t *testing.T) {
	_, err := NewPublisher(&fakeChannel{declareErr: errors.New("channel closed")}, "ride.jobs", zerolog.Nop())
	assert.ErrorContains(t, err, "declare exchange")

	ch := &fakeChannel{}
	p, err := NewPublisher(ch, "ride.jobs", zerolog.Nop())
	require.NoError(t, err)
	ch.publishErr = amqp.ErrClosed

	err = p.PublishJobEvent(context.Background(), sampleEvent())
	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.PublishJobEvent(context.Background(), sampleEvent()))
}
