package availability

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	TreatmentOptionRepository contracts.TreatmentOptionRepository
	BookingRepository         contracts.BookingRepository
	Strategy                  string
	Log                       *zap.Logger
}

func NewAvailabilityUsecase(
	treatmentOptionRepository contracts.TreatmentOptionRepository,
	bookingRepository contracts.BookingRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.AvailabilityUsecase, error) {
	strategy := strings.ToLower(strings.TrimSpace(internalConfig.Availability.Strategy))
	if strategy == "" {
		strategy = constvars.AvailabilityStrategyFilter
	}
	if strategy != constvars.AvailabilityStrategyFilter && strategy != constvars.AvailabilityStrategyAggregate {
		return nil, exceptions.ErrUnknownAvailabilityStrategy(fmt.Errorf("strategy %q", strategy), strategy)
	}

	return &availabilityUsecase{
		TreatmentOptionRepository: treatmentOptionRepository,
		BookingRepository:         bookingRepository,
		Strategy:                  strategy,
		Log:                       logger,
	}, nil
}

func (uc *availabilityUsecase) Resolve(ctx context.Context, appointmentDate string) ([]responses.AvailableTreatment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.Resolve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, appointmentDate),
		zap.String(constvars.LoggingStrategyKey, uc.Strategy),
	)

	// No date means nothing is booked yet, the join would match no booking.
	if uc.Strategy == constvars.AvailabilityStrategyAggregate && appointmentDate != "" {
		return uc.ResolveWithAggregation(ctx, appointmentDate)
	}
	return uc.ResolveWithFilter(ctx, appointmentDate)
}

// ResolveWithFilter reads the catalog and the same date bookings separately
// and subtracts per treatment.
func (uc *availabilityUsecase) ResolveWithFilter(ctx context.Context, appointmentDate string) ([]responses.AvailableTreatment, error) {
	requestID := utils.GetRequestID(ctx)

	treatmentOptions, err := uc.TreatmentOptionRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("availabilityUsecase.ResolveWithFilter error fetching treatment options",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	bookedByTreatment := map[string][]string{}
	if appointmentDate != "" {
		bookings, err := uc.BookingRepository.FindActiveByDate(ctx, appointmentDate)
		if err != nil {
			uc.Log.Error("availabilityUsecase.ResolveWithFilter error fetching bookings",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDateKey, appointmentDate),
				zap.Error(err),
			)
			return nil, err
		}
		bookedByTreatment = GroupBookedSlotsByTreatment(bookings)
	}

	response := make([]responses.AvailableTreatment, 0, len(treatmentOptions))
	for _, option := range treatmentOptions {
		response = append(response, buildAvailableTreatment(option, bookedByTreatment[option.Name]))
	}

	uc.Log.Info("availabilityUsecase.ResolveWithFilter succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response)),
	)
	return response, nil
}

// ResolveWithAggregation lets the store join bookings onto the catalog and
// applies the same subtraction as ResolveWithFilter.
func (uc *availabilityUsecase) ResolveWithAggregation(ctx context.Context, appointmentDate string) ([]responses.AvailableTreatment, error) {
	requestID := utils.GetRequestID(ctx)

	joined, err := uc.TreatmentOptionRepository.FindAllWithBookedSlots(ctx, appointmentDate)
	if err != nil {
		uc.Log.Error("availabilityUsecase.ResolveWithAggregation error running pipeline",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, appointmentDate),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.AvailableTreatment, 0, len(joined))
	for _, option := range joined {
		response = append(response, buildAvailableTreatment(option.TreatmentOption, option.BookedSlots))
	}

	uc.Log.Info("availabilityUsecase.ResolveWithAggregation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response)),
	)
	return response, nil
}

func (uc *availabilityUsecase) ListSpecialties(ctx context.Context) ([]responses.TreatmentSpecialty, error) {
	options, err := uc.TreatmentOptionRepository.FindNames(ctx)
	if err != nil {
		uc.Log.Error("availabilityUsecase.ListSpecialties error fetching names",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.TreatmentSpecialty, 0, len(options))
	for _, option := range options {
		response = append(response, responses.TreatmentSpecialty{
			ID:   option.ID.Hex(),
			Name: option.Name,
		})
	}
	return response, nil
}
