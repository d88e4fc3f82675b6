package controllers

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
	InternalConfig *config.InternalConfig
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase, internalConfig *config.InternalConfig) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
		InternalConfig: internalConfig,
	}
}

// CreateBooking answers 200 with the inserted id, or 409 with the message to
// show the patient when the booking is rejected as a duplicate.
func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("BookingController.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateBooking)
	if err := decodeAndValidate(r, request); err != nil {
		ctrl.Log.Error("BookingController.CreateBooking invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.BookingUsecase.Admit(ctx, request)
	if err != nil {
		ctrl.Log.Error("BookingController.CreateBooking error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTreatmentKey, request.Treatment),
			zap.String(constvars.LoggingDateKey, request.AppointmentDate),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	if !result.Accepted {
		ctrl.Log.Info("BookingController.CreateBooking rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTreatmentKey, request.Treatment),
			zap.String(constvars.LoggingDateKey, request.AppointmentDate),
		)
		utils.BuildRawResponse(w, constvars.StatusConflict, responses.InsertAcknowledgement{
			Acknowledged: false,
			Message:      result.Message,
		})
		return
	}

	ctrl.Log.Info("BookingController.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, result.Booking.ID.Hex()),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildRawResponse(w, constvars.StatusOK, responses.InsertAcknowledgement{
		Acknowledged: true,
		InsertedID:   result.Booking.ID.Hex(),
	})
}

func (ctrl *BookingController) GetBookingsByEmail(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	email := utils.NormalizeEmail(r.URL.Query().Get(constvars.QueryParamEmail))
	ctrl.Log.Info("BookingController.GetBookingsByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	bookings, err := ctrl.BookingUsecase.FindByEmail(ctx, email)
	if err != nil {
		ctrl.Log.Error("BookingController.GetBookingsByEmail error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	utils.BuildRawResponse(w, constvars.StatusOK, bookings)
}

func (ctrl *BookingController) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	bookingID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("BookingController.GetBookingByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	booking, err := ctrl.BookingUsecase.FindByID(ctx, bookingID)
	if err != nil {
		ctrl.Log.Error("BookingController.GetBookingByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, booking)
}

// CancelBooking cancels the booking owned by the authenticated patient.
func (ctrl *BookingController) CancelBooking(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	request := &requests.CancelBooking{
		BookingID: chi.URLParam(r, constvars.URLParamID),
		Email:     utils.GetAuthEmail(r.Context()),
	}
	ctrl.Log.Info("BookingController.CancelBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, request.BookingID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	err := ctrl.BookingUsecase.Cancel(ctx, request)
	if err != nil {
		ctrl.Log.Error("BookingController.CancelBooking error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, request.BookingID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "booking_cancelled", requestID,
		zap.String(constvars.LoggingBookingIDKey, request.BookingID),
	)
	utils.BuildRawResponse(w, constvars.StatusOK, responses.UpdateAcknowledgement{
		Acknowledged:  true,
		MatchedCount:  1,
		ModifiedCount: 1,
	})
}
