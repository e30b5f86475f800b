package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"ride-escrow-network/config"
	"ride-escrow-network/internal/core/domain"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const exchangeKind = "topic"

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher sends job events to a durable topic exchange. The routing key is
// "<event type>.<country>", e.g. job.completed.USA.
type Publisher struct {
	mu       sync.Mutex
	ch       Channel
	exchange string
	log      zerolog.Logger
}

// NewPublisher declares the exchange on ch and returns a publisher bound to it.
func NewPublisher(ch Channel, exchange string, log zerolog.Logger) (*Publisher, error) {
	if err := ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{ch: ch, exchange: exchange, log: log}, nil
}

// RoutingKey returns the key a job event is published under.
func RoutingKey(e domain.JobEvent) string {
	return fmt.Sprintf("%s.%s", e.Type, e.Country)
}

// PublishJobEvent implements ports.EventPublisher.
func (p *Publisher) PublishJobEvent(ctx context.Context, e domain.JobEvent) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal job event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx, p.exchange, RoutingKey(e), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    e.CorrelationID,
		Timestamp:    e.OccurredAt,
		Type:         string(e.Type),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}

	p.log.Debug().
		Str("routing_key", RoutingKey(e)).
		Str("correlation_id", e.CorrelationID).
		Msg("job event published")
	return nil
}

// Client owns the broker connection and its channel.
type Client struct {
	Conn *amqp.Connection
	Chan *amqp.Channel
}

// Connect dials the broker, retrying with exponential backoff.
func Connect(ctx context.Context, cfg config.RabbitMQConfig, log zerolog.Logger) (*Client, error) {
	var err error
	for attempt := 1; attempt <= 5; attempt++ {
		var conn *amqp.Connection
		conn, err = amqp.Dial(cfg.URL)
		if err == nil {
			ch, chErr := conn.Channel()
			if chErr != nil {
				_ = conn.Close()
				return nil, fmt.Errorf("open channel: %w", chErr)
			}
			return &Client{Conn: conn, Chan: ch}, nil
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("rabbitmq dial failed")
		backoff := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return nil, fmt.Errorf("connect to rabbitmq: %w", err)
}

// Close closes the channel and then the connection.
func (c *Client) Close() {
	if c.Chan != nil {
		_ = c.Chan.Close()
	}
	if c.Conn != nil {
		_ = c.Conn.Close()
	}
}

// Nop drops every event. Used when the broker is disabled.
type Nop struct{}

func (Nop) PublishJobEvent(context.Context, domain.JobEvent) error { return nil }
