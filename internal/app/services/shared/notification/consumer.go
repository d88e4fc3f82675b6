package notification

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// BookingMailWorker consumes admitted booking events and mails the patient.
type BookingMailWorker struct {
	conn   *amqp.Connection
	queue  string
	mailer contracts.MailerService
	sender string
	log    *zap.Logger
}

func NewBookingMailWorker(conn *amqp.Connection, queue, sender string, mailer contracts.MailerService, log *zap.Logger) *BookingMailWorker {
	return &BookingMailWorker{
		conn:   conn,
		queue:  queue,
		mailer: mailer,
		sender: sender,
		log:    log,
	}
}

// Run blocks until ctx is cancelled or the delivery channel closes.
func (w *BookingMailWorker) Run(ctx context.Context) error {
	ch, err := w.conn.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQOpenChannel(err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(1, 0, false); err != nil {
		w.log.Warn("BookingMailWorker.Run set QoS failed", zap.Error(err))
	}

	_, err = ch.QueueDeclare(w.queue, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQDeclareQueue(err, w.queue)
	}

	deliveries, err := ch.ConsumeWithContext(ctx, w.queue, "", false, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQConsumeQueue(err, w.queue)
	}

	w.log.Info("BookingMailWorker.Run consuming", zap.String(constvars.LoggingQueueKey, w.queue))
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := w.HandleMessage(ctx, d.Body); err != nil {
				w.log.Error("BookingMailWorker.Run handle message failed",
					zap.String(constvars.LoggingMessageIDKey, d.MessageId),
					zap.Error(err),
				)
				// no requeue, a poison message would spin forever
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *BookingMailWorker) HandleMessage(ctx context.Context, body []byte) error {
	var event models.BookingAdmittedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if event.Email == "" {
		return fmt.Errorf("booking %s has no recipient", event.BookingID)
	}

	return w.mailer.SendEmail(ctx, BuildBookingAdmittedEmail(&event, w.sender))
}

func BuildBookingAdmittedEmail(event *models.BookingAdmittedEvent, sender string) *requests.EmailPayload {
	patient := event.Patient
	if patient == "" {
		patient = event.Email
	}
	return &requests.EmailPayload{
		Subject: fmt.Sprintf(constvars.EmailBookingAdmittedSubjectFormat, event.Treatment),
		From:    sender,
		To:      []string{event.Email},
		Body: fmt.Sprintf(constvars.EmailBookingAdmittedBodyFormat,
			patient,
			event.Treatment,
			event.AppointmentDate,
			event.Slot,
			event.Price,
			event.BookingID,
		),
	}
}
