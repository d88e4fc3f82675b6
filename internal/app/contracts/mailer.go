package contracts

import (
	"clinic-booking-service/internal/pkg/dto/requests"
	"context"
)

type MailerService interface {
	SendEmail(ctx context.Context, payload *requests.EmailPayload) error
}
