package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/parthk/bakery-backend/internal/infra/messaging"
	"github.com/parthk/bakery-backend/internal/model"
)

// Config holds the broker connection parameters and the bounded-retry
// contract for establishing connections.
type Config struct {
	URL         string
	Queue       string
	MaxRetries  int
	RetryDelay  time.Duration
	Heartbeat   time.Duration
	DialTimeout time.Duration
}

// connection and channel mirror the subset of the amqp091 API the publisher
// uses, so the retry contract can be exercised without a live broker.
type connection interface {
	Channel() (channel, error)
	Close() error
}

type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type amqpConnection struct {
	conn *amqp.Connection
}

func (c *amqpConnection) Channel() (channel, error) {
	return c.conn.Channel()
}

func (c *amqpConnection) Close() error {
	return c.conn.Close()
}

// Publisher emits order notifications to a durable queue. Every publish
// opens a fresh connection and channel and tears them down afterwards;
// nothing is shared between requests.
type Publisher struct {
	cfg    Config
	logger *zerolog.Logger
	dial   func() (connection, error)
}

func NewPublisher(cfg Config, logger *zerolog.Logger) messaging.Publisher {
	p := &Publisher{
		cfg:    cfg,
		logger: logger,
	}
	p.dial = func() (connection, error) {
		conn, err := amqp.DialConfig(cfg.URL, amqp.Config{
			Heartbeat: cfg.Heartbeat,
			Dial:      amqp.DefaultDial(cfg.DialTimeout),
		})
		if err != nil {
			return nil, err
		}
		return &amqpConnection{conn: conn}, nil
	}
	return p
}

// connect dials the broker, retrying up to MaxRetries times with a fixed
// delay. The last error is propagated when all attempts fail.
func (p *Publisher) connect() (connection, error) {
	var lastErr error
	for attempt := 0; attempt < p.cfg.MaxRetries; attempt++ {
		conn, err := p.dial()
		if err == nil {
			return conn, nil
		}
		lastErr = err
		if attempt < p.cfg.MaxRetries-1 {
			time.Sleep(p.cfg.RetryDelay)
		}
	}
	return nil, fmt.Errorf("failed to connect to broker after %d attempts: %w", p.cfg.MaxRetries, lastErr)
}

func (p *Publisher) PublishOrderCreated(ctx context.Context, notification model.OrderNotification) error {
	conn, err := p.connect()
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(p.cfg.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	// Default exchange, routed directly by queue name, persistent delivery.
	err = ch.PublishWithContext(ctx, "", p.cfg.Queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	p.logger.Info().
		Int64("order_id", notification.OrderID).
		Str("queue", p.cfg.Queue).
		Msg("sent order notification")
	return nil
}
