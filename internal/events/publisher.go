package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Guilh-montalvao/hotel-management-system-sub000/pkg/utils"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher emits booking lifecycle events. Publishing is best-effort:
// callers log the returned error and carry on.
type Publisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
}

// NewPublisher returns an AMQP-backed publisher, or a no-op one when the
// broker is disabled.
func NewPublisher(config utils.BrokerConfig, log *zap.Logger) Publisher {
	if !config.Enabled {
		return nopPublisher{}
	}
	return &amqpPublisher{
		url:   config.URL,
		queue: config.Queue,
		log:   log.With(zap.String("component", "event_publisher")),
	}
}

type nopPublisher struct{}

func (nopPublisher) PublishBookingEvent(ctx context.Context, event BookingEvent) error {
	return nil
}

type amqpPublisher struct {
	url   string
	queue string
	log   *zap.Logger
}

func (p *amqpPublisher) PublishBookingEvent(ctx context.Context, event BookingEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("Broker dial failed", zap.Error(err))
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("Broker channel open failed", zap.Error(err))
		return err
	}
	defer ch.Close()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		p.log.Warn("Queue declare failed",
			zap.Error(err),
			zap.String("queue", p.queue),
		)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("Marshal event failed", zap.Error(err))
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.log.Warn("Publish failed",
			zap.Error(err),
			zap.String("queue", p.queue),
			zap.String("booking_id", event.BookingID),
		)
		return err
	}

	return nil
}
