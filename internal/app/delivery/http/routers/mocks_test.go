package routers

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAvailabilityUsecase struct {
	mock.Mock
}

func (m *MockAvailabilityUsecase) Resolve(ctx context.Context, appointmentDate string) ([]responses.AvailableTreatment, error) {
	args := m.Called(ctx, appointmentDate)
	result, _ := args.Get(0).([]responses.AvailableTreatment)
	return result, args.Error(1)
}

func (m *MockAvailabilityUsecase) ListSpecialties(ctx context.Context) ([]responses.TreatmentSpecialty, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]responses.TreatmentSpecialty)
	return result, args.Error(1)
}

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) Admit(ctx context.Context, request *requests.CreateBooking) (*models.AdmissionResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.AdmissionResult)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	result, _ := args.Get(0).([]models.Booking)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	result, _ := args.Get(0).(*models.Booking)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) Cancel(ctx context.Context, request *requests.CancelBooking) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type MockPaymentUsecase struct {
	mock.Mock
}

func (m *MockPaymentUsecase) ConfirmPayment(ctx context.Context, request *requests.ConfirmPayment) (*responses.InsertAcknowledgement, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.InsertAcknowledgement)
	return result, args.Error(1)
}

func (m *MockPaymentUsecase) CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.PaymentIntent)
	return result, args.Error(1)
}

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) UpsertUser(ctx context.Context, request *requests.UpsertUser) (*responses.UpdateAcknowledgement, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.UpdateAcknowledgement)
	return result, args.Error(1)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]models.User)
	return result, args.Error(1)
}

func (m *MockUserUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserUsecase) MakeAdmin(ctx context.Context, userID string) (*responses.UpdateAcknowledgement, error) {
	args := m.Called(ctx, userID)
	result, _ := args.Get(0).(*responses.UpdateAcknowledgement)
	return result, args.Error(1)
}

func (m *MockUserUsecase) IssueAccessToken(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

type MockDoctorUsecase struct {
	mock.Mock
}

func (m *MockDoctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.InsertAcknowledgement, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.InsertAcknowledgement)
	return result, args.Error(1)
}

func (m *MockDoctorUsecase) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]models.Doctor)
	return result, args.Error(1)
}

func (m *MockDoctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) (*responses.DeleteAcknowledgement, error) {
	args := m.Called(ctx, doctorID)
	result, _ := args.Get(0).(*responses.DeleteAcknowledgement)
	return result, args.Error(1)
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
