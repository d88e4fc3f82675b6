package contracts

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"context"
)

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) (string, error)
	EnsureIndexes(ctx context.Context) error
}

type PaymentUsecase interface {
	ConfirmPayment(ctx context.Context, request *requests.ConfirmPayment) (*responses.InsertAcknowledgement, error)
	CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error)
}
