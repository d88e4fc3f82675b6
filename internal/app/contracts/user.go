package contracts

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"context"
)

type UserRepository interface {
	// UpsertByEmail returns the generated id when a new user was inserted,
	// along with how many existing documents matched.
	UpsertByEmail(ctx context.Context, user *models.User) (string, int64, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	SetRoleByID(ctx context.Context, userID, role string) (int64, int64, error)
	EnsureIndexes(ctx context.Context) error
}

type UserUsecase interface {
	UpsertUser(ctx context.Context, request *requests.UpsertUser) (*responses.UpdateAcknowledgement, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	MakeAdmin(ctx context.Context, userID string) (*responses.UpdateAcknowledgement, error)
	// IssueAccessToken returns an empty token when email is unknown.
	IssueAccessToken(ctx context.Context, email string) (string, error)
}

type JWTManager interface {
	GenerateToken(email string) (string, error)
	ParseToken(token string) (string, error)
}
