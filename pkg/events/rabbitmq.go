package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/artem13815/jobseeker/pkg/jobseeker"
)

// RoutingResumeIngested is the routing key of the ingest event.
const RoutingResumeIngested = "resume.ingested"

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends JSON events to a durable topic exchange.
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	mu       sync.Mutex
}

var _ jobseeker.Publisher = (*Publisher)(nil)

// Dial connects to RabbitMQ and declares the exchange.
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	p, err := newPublisher(ch, exchange)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange string) (*Publisher, error) {
	if exchange == "" {
		return nil, errors.New("rabbitmq exchange name is empty")
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{ch: ch, exchange: exchange}, nil
}

// PublishIngested publishes ev as a persistent JSON message.
func (p *Publisher) PublishIngested(ctx context.Context, ev jobseeker.IngestedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    ev.IngestedAt,
		Type:         RoutingResumeIngested,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.PublishWithContext(ctx, p.exchange, RoutingResumeIngested, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", RoutingResumeIngested, err)
	}
	return nil
}

// Check fails once the broker connection is gone.
func (p *Publisher) Check(context.Context) error {
	if p.conn != nil && p.conn.IsClosed() {
		return errors.New("rabbitmq connection closed")
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
