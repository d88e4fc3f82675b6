package mailer

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/drivers/mailer"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type mailerService struct {
	Client   *mailer.SMTPClient
	Log      *zap.Logger
	limiter  *rate.Limiter
	sendMail sendMailFunc
}

// NewMailerService sends plain text mail through the configured SMTP relay,
// at most maxPerSecond messages per second.
func NewMailerService(client *mailer.SMTPClient, maxPerSecond int, logger *zap.Logger) contracts.MailerService {
	if maxPerSecond <= 0 {
		maxPerSecond = 1
	}
	return &mailerService{
		Client:   client,
		Log:      logger,
		limiter:  rate.NewLimiter(rate.Limit(maxPerSecond), maxPerSecond),
		sendMail: smtp.SendMail,
	}
}

func (s *mailerService) SendEmail(ctx context.Context, payload *requests.EmailPayload) error {
	requestID := utils.GetRequestID(ctx)

	if len(payload.To) == 0 {
		return exceptions.ErrSMTPSendEmail(errors.New("no recipients"), s.Client.Host)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		s.Log.Warn("mailerService.SendEmail rate limiter wait aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}

	from := payload.From
	if from == "" {
		from = s.Client.EmailSender
	}

	msg := []byte(fmt.Sprintf(constvars.EmailSendBasicEmailSubjectFormat, from, strings.Join(payload.To, ", "), payload.Subject, payload.Body))
	addr := fmt.Sprintf("%s:%d", s.Client.Host, s.Client.Port)
	err := s.sendMail(addr, s.Client.Auth, from, payload.To, msg)
	if err != nil {
		s.Log.Error("mailerService.SendEmail error sending mail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings("to", payload.To),
			zap.Error(err),
		)
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}

	s.Log.Info("mailerService.SendEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings("to", payload.To),
	)
	return nil
}
