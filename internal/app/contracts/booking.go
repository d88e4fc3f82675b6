package contracts

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/requests"
	"context"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (string, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindActiveByDate(ctx context.Context, appointmentDate string) ([]models.Booking, error)
	CountActiveByTriple(ctx context.Context, treatment, appointmentDate, email string) (int64, error)
	MarkPaid(ctx context.Context, bookingID, transactionID string) (int64, error)
	Cancel(ctx context.Context, bookingID string) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type BookingUsecase interface {
	Admit(ctx context.Context, request *requests.CreateBooking) (*models.AdmissionResult, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Cancel(ctx context.Context, request *requests.CancelBooking) error
}

type BookingEventPublisher interface {
	PublishBookingAdmitted(ctx context.Context, event *models.BookingAdmittedEvent) error
}
