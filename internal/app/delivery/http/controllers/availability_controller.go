package controllers

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
	InternalConfig      *config.InternalConfig
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase, internalConfig *config.InternalConfig) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
		InternalConfig:      internalConfig,
	}
}

// GetAppointmentOptions lists every treatment with the slots still free on
// the date query parameter. The date is passed through unvalidated.
func (ctrl *AvailabilityController) GetAppointmentOptions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())
	appointmentDate := r.URL.Query().Get(constvars.QueryParamDate)

	ctrl.Log.Info("AvailabilityController.GetAppointmentOptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, appointmentDate),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.Resolve(ctx, appointmentDate)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.GetAppointmentOptions error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AvailabilityController.GetAppointmentOptions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildRawResponse(w, constvars.StatusOK, result)
}

func (ctrl *AvailabilityController) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AvailabilityController.GetSpecialties called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.ListSpecialties(ctx)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.GetSpecialties error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, result)
}
