package users

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertByEmail(ctx context.Context, user *models.User) (string, int64, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) SetRoleByID(ctx context.Context, userID, role string) (int64, int64, error) {
	args := m.Called(ctx, userID, role)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockJWTManager struct {
	mock.Mock
}

func (m *MockJWTManager) GenerateToken(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func (m *MockJWTManager) ParseToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func TestUpsertUser(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewUserUsecase(repo, new(MockJWTManager), zap.NewNop())

	repo.On("UpsertByEmail", mock.Anything, &models.User{Email: "new@x.com"}).Return("665f1c2e8b3e4a0012345678", int64(0), nil)
	repo.On("UpsertByEmail", mock.Anything, &models.User{Email: "old@x.com", Name: "Old"}).Return("", int64(1), nil)

	ack, err := uc.UpsertUser(context.Background(), &requests.UpsertUser{Email: "new@x.com"})
	require.NoError(t, err)
	assert.True(t, ack.Acknowledged)
	assert.Equal(t, int64(1), ack.UpsertedCount)
	assert.Equal(t, "665f1c2e8b3e4a0012345678", ack.UpsertedID)

	ack, err = uc.UpsertUser(context.Background(), &requests.UpsertUser{Email: "old@x.com", Name: "Old"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), ack.MatchedCount)
	assert.Zero(t, ack.UpsertedCount)
}

func TestIsAdmin(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewUserUsecase(repo, new(MockJWTManager), zap.NewNop())
	repo.On("FindByEmail", mock.Anything, "admin@x.com").Return(&models.User{Role: constvars.RoleAdmin}, nil)
	repo.On("FindByEmail", mock.Anything, "patient@x.com").Return(&models.User{}, nil)
	repo.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, nil)

	for email, want := range map[string]bool{"admin@x.com": true, "patient@x.com": false, "ghost@x.com": false} {
		got, err := uc.IsAdmin(context.Background(), email)
		require.NoError(t, err)
		assert.Equal(t, want, got, email)
	}
}

func TestMakeAdmin(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewUserUsecase(repo, new(MockJWTManager), zap.NewNop())
	repo.On("SetRoleByID", mock.Anything, "665f1c2e8b3e4a0012345678", constvars.RoleAdmin).Return(int64(1), int64(1), nil)
	repo.On("SetRoleByID", mock.Anything, "665f1c2e8b3e4a0000000000", constvars.RoleAdmin).Return(int64(0), int64(0), nil)

	ack, err := uc.MakeAdmin(context.Background(), "665f1c2e8b3e4a0012345678")
	require.NoError(t, err)
	assert.Equal(t, int64(1), ack.ModifiedCount)

	_, err = uc.MakeAdmin(context.Background(), "665f1c2e8b3e4a0000000000")
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
}

func TestIssueAccessToken(t *testing.T) {
	repo := new(MockUserRepository)
	jwt := new(MockJWTManager)
	uc := NewUserUsecase(repo, jwt, zap.NewNop())
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(&models.User{Email: "a@x.com"}, nil)
	repo.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, nil)
	jwt.On("GenerateToken", "a@x.com").Return("signed", nil)

	token, err := uc.IssueAccessToken(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "signed", token)

	token, err = uc.IssueAccessToken(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.Empty(t, token)
	jwt.AssertNumberOfCalls(t, "GenerateToken", 1)
}

func TestIssueAccessToken_StorageFailure(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewUserUsecase(repo, new(MockJWTManager), zap.NewNop())
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, exceptions.ErrMongoDBFindDocument(errors.New("down")))

	_, err := uc.IssueAccessToken(context.Background(), "a@x.com")

	assert.Equal(t, constvars.StatusServiceUnavailable, exceptions.StatusCodeOf(err))
}
