// Package service provides the outbound integrations of the booking flow.
// Publishing is best effort: errors are logged and returned so the caller
// can ignore them without interrupting the request.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/iliyamo/cine-app/internal/queue"
)

// DefaultDialTimeout bounds the broker connection made for each publish.
const DefaultDialTimeout = 2 * time.Second

// BookingPublisher publishes BookingConfirmedEvent messages to RabbitMQ.
// Each publish opens its own connection; confirmations are rare in a demo.
type BookingPublisher struct {
	URL         string
	DialTimeout time.Duration
	Log         *zap.Logger
}

// NewBookingPublisher returns a publisher for the broker at url.
func NewBookingPublisher(url string, log *zap.Logger) *BookingPublisher {
	return &BookingPublisher{URL: url, DialTimeout: DefaultDialTimeout, Log: log}
}

// dialTimeout is DialTimeout, shortened to the deadline of ctx if that
// comes first.
func (p *BookingPublisher) dialTimeout(ctx context.Context) time.Duration {
	d := p.DialTimeout
	if d <= 0 {
		d = DefaultDialTimeout
	}
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < d {
			d = left
		}
	}
	return d
}

// PublishBookingConfirmed sends the event to the booking.confirmed queue as
// a persistent JSON message.  The request that confirms a payment waits at
// most the dial timeout for an unreachable broker.
func (p *BookingPublisher) PublishBookingConfirmed(ctx context.Context, event queue.BookingConfirmedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	timeout := p.dialTimeout(ctx)
	if timeout <= 0 {
		return context.DeadlineExceeded
	}
	conn, err := amqp.DialConfig(p.URL, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
	if err != nil {
		p.Log.Warn("rabbitmq: dial failed", zap.Error(err))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.Log.Warn("rabbitmq: channel open failed", zap.Error(err))
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		queue.BookingConfirmedQueue, // name
		true,                        // durable
		false,                       // autoDelete
		false,                       // exclusive
		false,                       // noWait
		nil,                         // args
	); err != nil {
		p.Log.Warn("rabbitmq: queue declare failed", zap.Error(err))
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.Log.Warn("rabbitmq: marshal event failed", zap.Error(err))
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx,
		"",                          // default exchange
		queue.BookingConfirmedQueue, // routing key = queue name
		false,                       // mandatory
		false,                       // immediate
		pub,
	); err != nil {
		p.Log.Warn("rabbitmq: publish failed", zap.Error(err))
		return err
	}
	p.Log.Info("booking confirmed event published", zap.String("booking_ref", event.BookingRef))
	return nil
}

// NopPublisher drops every event.  It is used when BOOKING_EVENTS_ENABLED is
// off.
type NopPublisher struct{}

func (NopPublisher) PublishBookingConfirmed(context.Context, queue.BookingConfirmedEvent) error {
	return nil
}
