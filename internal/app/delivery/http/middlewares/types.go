package middlewares

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	JWTManager     contracts.JWTManager
	UserUsecase    contracts.UserUsecase
}

func NewMiddlewares(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	jwtManager contracts.JWTManager,
	userUsecase contracts.UserUsecase,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		JWTManager:     jwtManager,
		UserUsecase:    userUsecase,
	}
}
