package controllers

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserController struct {
	Log            *zap.Logger
	UserUsecase    contracts.UserUsecase
	InternalConfig *config.InternalConfig
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase, internalConfig *config.InternalConfig) *UserController {
	return &UserController{
		Log:            logger,
		UserUsecase:    userUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *UserController) UpsertUser(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("UserController.UpsertUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.UpsertUser)
	if err := decodeAndValidate(r, request); err != nil {
		ctrl.Log.Error("UserController.UpsertUser invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.UserUsecase.UpsertUser(ctx, request)
	if err != nil {
		ctrl.Log.Error("UserController.UpsertUser error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("UserController.UpsertUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("upserted_count", result.UpsertedCount),
	)
	utils.BuildRawResponse(w, constvars.StatusOK, result)
}

func (ctrl *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("UserController.ListUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	users, err := ctrl.UserUsecase.ListUsers(ctx)
	if err != nil {
		ctrl.Log.Error("UserController.ListUsers error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	utils.BuildRawResponse(w, constvars.StatusOK, users)
}

func (ctrl *UserController) GetAdminStatus(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	email := utils.NormalizeEmail(chi.URLParam(r, constvars.URLParamEmail))
	ctrl.Log.Info("UserController.GetAdminStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	isAdmin, err := ctrl.UserUsecase.IsAdmin(ctx, email)
	if err != nil {
		ctrl.Log.Error("UserController.GetAdminStatus error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, responses.AdminStatus{IsAdmin: isAdmin})
}

func (ctrl *UserController) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	userID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("UserController.MakeAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.UserUsecase.MakeAdmin(ctx, userID)
	if err != nil {
		ctrl.Log.Error("UserController.MakeAdmin error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, result)
}

// IssueAccessToken answers 403 with an empty token for unknown emails.
func (ctrl *UserController) IssueAccessToken(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	email := utils.NormalizeEmail(r.URL.Query().Get(constvars.QueryParamEmail))
	ctrl.Log.Info("UserController.IssueAccessToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	token, err := ctrl.UserUsecase.IssueAccessToken(ctx, email)
	if err != nil {
		ctrl.Log.Error("UserController.IssueAccessToken error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	if token == "" {
		utils.LogSecurityEvent(ctrl.Log, "access_token_denied", requestID, "low",
			zap.String(constvars.LoggingEmailKey, email),
		)
		utils.BuildRawResponse(w, constvars.StatusForbidden, responses.AccessToken{AccessToken: ""})
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, responses.AccessToken{AccessToken: token})
}
