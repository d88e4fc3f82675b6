package contracts

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/responses"
	"context"
)

type TreatmentOptionRepository interface {
	FindAll(ctx context.Context) ([]models.TreatmentOption, error)
	FindByName(ctx context.Context, name string) (*models.TreatmentOption, error)
	// FindNames returns every option projected to its id and name.
	FindNames(ctx context.Context) ([]models.TreatmentOption, error)
	// FindAllWithBookedSlots joins each option with the slots of its active
	// bookings on appointmentDate in a single server side pipeline.
	FindAllWithBookedSlots(ctx context.Context, appointmentDate string) ([]models.TreatmentOptionWithBookedSlots, error)
	UpsertByName(ctx context.Context, option *models.TreatmentOption) (bool, error)
	EnsureIndexes(ctx context.Context) error
}

type AvailabilityUsecase interface {
	Resolve(ctx context.Context, appointmentDate string) ([]responses.AvailableTreatment, error)
	ListSpecialties(ctx context.Context) ([]responses.TreatmentSpecialty, error)
}
