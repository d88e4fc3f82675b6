package payments

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/dto/responses"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"math"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentRepository     contracts.PaymentRepository
	BookingRepository     contracts.BookingRepository
	PaymentGatewayService contracts.PaymentGatewayService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	bookingRepository contracts.BookingRepository,
	paymentGatewayService contracts.PaymentGatewayService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		PaymentRepository:     paymentRepository,
		BookingRepository:     bookingRepository,
		PaymentGatewayService: paymentGatewayService,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

func (uc *paymentUsecase) ConfirmPayment(ctx context.Context, request *requests.ConfirmPayment) (*responses.InsertAcknowledgement, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentUsecase.ConfirmPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, request.BookingID),
	)

	booking, err := uc.BookingRepository.FindByID(ctx, request.BookingID)
	if err != nil {
		uc.Log.Error("paymentUsecase.ConfirmPayment error fetching booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(nil, constvars.MongoCollectionBookings)
	}

	payment := &models.Payment{
		BookingID:     request.BookingID,
		TransactionID: request.TransactionID,
		Email:         request.Email,
		Price:         request.Price,
	}
	if payment.Email == "" {
		payment.Email = booking.Email
	}
	if payment.Price == 0 {
		payment.Price = booking.Price
	}
	payment.SetCreatedAt()

	// a payment row only exists for a booking already marked paid
	matched, err := uc.BookingRepository.MarkPaid(ctx, request.BookingID, request.TransactionID)
	if err != nil {
		uc.Log.Error("paymentUsecase.ConfirmPayment error marking booking paid",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, request.BookingID),
			zap.Error(err),
		)
		return nil, err
	}
	if matched == 0 {
		return nil, exceptions.ErrBookingNotFound(nil, constvars.MongoCollectionBookings)
	}

	paymentID, err := uc.PaymentRepository.CreatePayment(ctx, payment)
	if err != nil {
		uc.Log.Error("paymentUsecase.ConfirmPayment error creating payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "booking_paid", requestID,
		zap.String(constvars.LoggingBookingIDKey, request.BookingID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)

	return &responses.InsertAcknowledgement{
		Acknowledged: true,
		InsertedID:   paymentID,
	}, nil
}

func (uc *paymentUsecase) CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error) {
	requestID := utils.GetRequestID(ctx)

	amount := ToMinorUnits(request.Price)
	currency := uc.InternalConfig.Stripe.Currency
	if currency == "" {
		currency = constvars.StripeCurrencyUSD
	}

	uc.Log.Info("paymentUsecase.CreatePaymentIntent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("amount", amount),
		zap.String("currency", currency),
	)

	clientSecret, err := uc.PaymentGatewayService.CreatePaymentIntent(ctx, amount, currency)
	if err != nil {
		return nil, err
	}

	return &responses.PaymentIntent{ClientSecret: clientSecret}, nil
}

// ToMinorUnits converts a price to cents, rounding half away from zero.
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * constvars.StripeMinorUnitsPerMajor))
}
