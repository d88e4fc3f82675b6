package users

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	JWTManager     contracts.JWTManager
	Log            *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	jwtManager contracts.JWTManager,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		JWTManager:     jwtManager,
		Log:            logger,
	}
}

func (uc *userUsecase) UpsertUser(ctx context.Context, request *requests.UpsertUser) (*responses.UpdateAcknowledgement, error) {
	requestID := utils.GetRequestID(ctx)

	user := &models.User{
		Email: request.Email,
		Name:  request.Name,
	}
	upsertedID, matched, err := uc.UserRepository.UpsertByEmail(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.UpsertUser error upserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	ack := &responses.UpdateAcknowledgement{
		Acknowledged: true,
		MatchedCount: matched,
		UpsertedID:   upsertedID,
	}
	if upsertedID != "" {
		ack.UpsertedCount = 1
	} else {
		ack.ModifiedCount = matched
	}
	return ack, nil
}

func (uc *userUsecase) ListUsers(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindAll(ctx)
}

func (uc *userUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

func (uc *userUsecase) MakeAdmin(ctx context.Context, userID string) (*responses.UpdateAcknowledgement, error) {
	requestID := utils.GetRequestID(ctx)

	matched, modified, err := uc.UserRepository.SetRoleByID(ctx, userID, constvars.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, exceptions.ErrUserNotFound(nil, constvars.MongoCollectionUsers)
	}

	utils.LogSecurityEvent(uc.Log, "user_promoted_to_admin", requestID, "info",
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingEmailKey, utils.GetAuthEmail(ctx)),
	)
	return &responses.UpdateAcknowledgement{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: modified,
	}, nil
}

func (uc *userUsecase) IssueAccessToken(ctx context.Context, email string) (string, error) {
	requestID := utils.GetRequestID(ctx)

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		uc.Log.Info("userUsecase.IssueAccessToken unknown email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return "", nil
	}

	token, err := uc.JWTManager.GenerateToken(user.Email)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return token, nil
}
