package notification

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type bookingEventPublisher struct {
	ch    publishChannel
	queue string
	log   *zap.Logger
	mu    sync.Mutex
}

// NewBookingEventPublisher opens a dedicated channel and declares the durable
// queue admitted bookings are published to.
func NewBookingEventPublisher(conn *amqp.Connection, queue string, log *zap.Logger) (contracts.BookingEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQDeclareQueue(err, queue)
	}

	return &bookingEventPublisher{ch: ch, queue: queue, log: log}, nil
}

func (p *bookingEventPublisher) PublishBookingAdmitted(ctx context.Context, event *models.BookingAdmittedEvent) error {
	requestID := utils.GetRequestID(ctx)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.BookingID,
		AppId:        constvars.BookingEventSourceName,
		Type:         constvars.BookingEventAdmitted,
		Timestamp:    event.AdmittedAt,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.log.Error("bookingEventPublisher.PublishBookingAdmitted error publishing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, p.queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
	}

	p.log.Info("bookingEventPublisher.PublishBookingAdmitted published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.queue),
		zap.String(constvars.LoggingBookingIDKey, event.BookingID),
	)
	return nil
}
