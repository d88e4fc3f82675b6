package bookings

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	bookingAttemptGroup = "booking"
	lockReleaseTimeout  = 3 * time.Second
)

type bookingUsecase struct {
	BookingRepository         contracts.BookingRepository
	TreatmentOptionRepository contracts.TreatmentOptionRepository
	LockerService             contracts.LockerService
	ResourceLimiter           contracts.ResourceLimiter
	EventPublisher            contracts.BookingEventPublisher
	InternalConfig            *config.InternalConfig
	Log                       *zap.Logger
}

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	treatmentOptionRepository contracts.TreatmentOptionRepository,
	lockerService contracts.LockerService,
	resourceLimiter contracts.ResourceLimiter,
	eventPublisher contracts.BookingEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingRepository:         bookingRepository,
		TreatmentOptionRepository: treatmentOptionRepository,
		LockerService:             lockerService,
		ResourceLimiter:           resourceLimiter,
		EventPublisher:            eventPublisher,
		InternalConfig:            internalConfig,
		Log:                       logger,
	}
}

func rejected(message string) *models.AdmissionResult {
	return &models.AdmissionResult{Accepted: false, Message: message}
}

func (uc *bookingUsecase) Admit(ctx context.Context, request *requests.CreateBooking) (*models.AdmissionResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.Admit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTreatmentKey, request.Treatment),
		zap.String(constvars.LoggingDateKey, request.AppointmentDate),
	)

	err := uc.checkAttemptQuota(ctx, request.Email)
	if err != nil {
		return nil, err
	}

	// Serialise admissions for the same triple so check and insert act as one
	lockKey := utils.BuildBookingLockKey(request.Treatment, request.AppointmentDate, request.Email)
	lockExpiry := time.Duration(uc.InternalConfig.Booking.LockExpiryInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockExpiry)
	if err != nil {
		return nil, err
	}
	if !acquired {
		uc.Log.Info("bookingUsecase.Admit another admission holds the lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
		)
		return rejected(fmt.Sprintf(constvars.ErrClientBookingInProgressFormat, request.AppointmentDate)), nil
	}
	defer func() {
		// release outlives the request deadline
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lockReleaseTimeout)
		defer cancel()
		if unlockErr := uc.LockerService.Unlock(releaseCtx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("bookingUsecase.Admit error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	if uc.InternalConfig.Booking.EnforceSlotValidity {
		err = uc.checkSlotOffered(ctx, request.Treatment, request.Slot)
		if err != nil {
			return nil, err
		}
	}

	existing, err := uc.BookingRepository.CountActiveByTriple(ctx, request.Treatment, request.AppointmentDate, request.Email)
	if err != nil {
		uc.Log.Error("bookingUsecase.Admit error counting existing bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing > 0 {
		uc.Log.Info("bookingUsecase.Admit booking already exists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingCountKey, existing),
		)
		return rejected(fmt.Sprintf(constvars.ErrClientBookingAlreadyExistsFormat, request.AppointmentDate)), nil
	}

	booking := &models.Booking{
		Email:           request.Email,
		Patient:         request.Patient,
		Phone:           request.Phone,
		Treatment:       request.Treatment,
		AppointmentDate: request.AppointmentDate,
		Slot:            request.Slot,
		Price:           request.Price,
		Paid:            false,
		Cancelled:       false,
	}
	booking.SetCreatedAt()

	bookingID, err := uc.BookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		// the unique index caught an admission that bypassed the lock
		if exceptions.StatusCodeOf(err) == constvars.StatusConflict {
			uc.Log.Warn("bookingUsecase.Admit unique index rejected insert",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return rejected(fmt.Sprintf(constvars.ErrClientBookingAlreadyExistsFormat, request.AppointmentDate)), nil
		}
		uc.Log.Error("bookingUsecase.Admit error creating booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if booking.ID.IsZero() {
		booking.ID, _ = primitive.ObjectIDFromHex(bookingID)
	}

	utils.LogBusinessEvent(uc.Log, "booking_admitted", requestID,
		zap.String(constvars.LoggingBookingIDKey, bookingID),
		zap.String(constvars.LoggingTreatmentKey, booking.Treatment),
		zap.String(constvars.LoggingDateKey, booking.AppointmentDate),
		zap.String(constvars.LoggingSlotKey, booking.Slot),
	)

	uc.publishAdmitted(requestID, booking.ToAdmittedEvent())

	return &models.AdmissionResult{Accepted: true, Booking: booking}, nil
}

func (uc *bookingUsecase) checkAttemptQuota(ctx context.Context, email string) error {
	maxAttempts := uc.InternalConfig.Booking.MaxAttemptsPerMinute
	if uc.ResourceLimiter == nil || maxAttempts <= 0 {
		return nil
	}

	allowed, retryAfter, err := uc.ResourceLimiter.Allow(ctx, bookingAttemptGroup, email, time.Minute, maxAttempts)
	if err != nil {
		return err
	}
	if !allowed {
		utils.LogSecurityEvent(uc.Log, "booking_attempts_exceeded", utils.GetRequestID(ctx), "low",
			zap.Duration("retry_after", retryAfter),
		)
		return exceptions.ErrTooManyBookingAttempts(fmt.Errorf("retry after %s", retryAfter), email)
	}
	return nil
}

func (uc *bookingUsecase) checkSlotOffered(ctx context.Context, treatment, slot string) error {
	option, err := uc.TreatmentOptionRepository.FindByName(ctx, treatment)
	if err != nil {
		return err
	}
	if option == nil {
		return exceptions.ErrTreatmentUnknown(nil, treatment)
	}
	if !option.OffersSlot(slot) {
		return exceptions.ErrSlotNotOffered(nil, slot, treatment)
	}
	return nil
}

// publishAdmitted hands the event to the publisher without blocking the
// response. Failures are logged only.
func (uc *bookingUsecase) publishAdmitted(requestID string, event *models.BookingAdmittedEvent) {
	if uc.EventPublisher == nil {
		return
	}

	timeout := time.Duration(uc.InternalConfig.RabbitMQ.PublishTimeoutInSecs) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)

		if err := uc.EventPublisher.PublishBookingAdmitted(ctx, event); err != nil {
			uc.Log.Error("bookingUsecase.publishAdmitted error publishing event",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBookingIDKey, event.BookingID),
				zap.Error(err),
			)
		}
	}()
}

func (uc *bookingUsecase) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := uc.BookingRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("bookingUsecase.FindByEmail error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	return bookings, nil
}

func (uc *bookingUsecase) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(nil, constvars.MongoCollectionBookings)
	}
	return booking, nil
}

func (uc *bookingUsecase) Cancel(ctx context.Context, request *requests.CancelBooking) error {
	requestID := utils.GetRequestID(ctx)

	booking, err := uc.FindByID(ctx, request.BookingID)
	if err != nil {
		return err
	}

	// Only the patient who booked may cancel
	if booking.Email != request.Email {
		utils.LogSecurityEvent(uc.Log, "booking_cancel_not_owner", requestID, "medium",
			zap.String(constvars.LoggingBookingIDKey, request.BookingID),
		)
		return exceptions.ErrBookingCancelNotOwner(nil, request.BookingID, request.Email)
	}
	if booking.Cancelled {
		return exceptions.ErrBookingAlreadyCancelled(nil, request.BookingID)
	}
	if booking.Paid {
		return exceptions.ErrBookingAlreadyPaid(nil, request.BookingID)
	}

	modified, err := uc.BookingRepository.Cancel(ctx, request.BookingID)
	if err != nil {
		return err
	}
	if modified == 0 {
		return exceptions.ErrBookingAlreadyCancelled(nil, request.BookingID)
	}

	utils.LogBusinessEvent(uc.Log, "booking_cancelled", requestID,
		zap.String(constvars.LoggingBookingIDKey, request.BookingID),
	)
	return nil
}
