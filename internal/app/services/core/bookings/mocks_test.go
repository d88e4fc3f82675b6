package bookings

import (
	"clinic-booking-service/internal/app/models"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindActiveByDate(ctx context.Context, appointmentDate string) ([]models.Booking, error) {
	args := m.Called(ctx, appointmentDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountActiveByTriple(ctx context.Context, treatment, appointmentDate, email string) (int64, error) {
	args := m.Called(ctx, treatment, appointmentDate, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) MarkPaid(ctx context.Context, bookingID, transactionID string) (int64, error) {
	args := m.Called(ctx, bookingID, transactionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) Cancel(ctx context.Context, bookingID string) (int64, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockTreatmentOptionRepository struct {
	mock.Mock
}

func (m *MockTreatmentOptionRepository) FindAll(ctx context.Context) ([]models.TreatmentOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TreatmentOption), args.Error(1)
}

func (m *MockTreatmentOptionRepository) FindByName(ctx context.Context, name string) (*models.TreatmentOption, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TreatmentOption), args.Error(1)
}

func (m *MockTreatmentOptionRepository) FindNames(ctx context.Context) ([]models.TreatmentOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TreatmentOption), args.Error(1)
}

func (m *MockTreatmentOptionRepository) FindAllWithBookedSlots(ctx context.Context, appointmentDate string) ([]models.TreatmentOptionWithBookedSlots, error) {
	args := m.Called(ctx, appointmentDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TreatmentOptionWithBookedSlots), args.Error(1)
}

func (m *MockTreatmentOptionRepository) UpsertByName(ctx context.Context, option *models.TreatmentOption) (bool, error) {
	args := m.Called(ctx, option)
	return args.Bool(0), args.Error(1)
}

func (m *MockTreatmentOptionRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

type MockResourceLimiter struct {
	mock.Mock
}

func (m *MockResourceLimiter) Allow(ctx context.Context, group, resource string, window time.Duration, maxQuota int) (bool, time.Duration, error) {
	args := m.Called(ctx, group, resource, window, maxQuota)
	return args.Bool(0), args.Get(1).(time.Duration), args.Error(2)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishBookingAdmitted(ctx context.Context, event *models.BookingAdmittedEvent) error {
	return m.Called(ctx, event).Error(0)
}
