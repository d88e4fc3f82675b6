package payment_gateway

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/zap"
)

type paymentIntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type stripeService struct {
	intents paymentIntentCreator
	Log     *zap.Logger
}

func NewStripeService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	api := &client.API{}
	api.Init(internalConfig.Stripe.SecretKey, nil)
	return &stripeService{
		intents: api.PaymentIntents,
		Log:     logger,
	}
}

func (s *stripeService) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	requestID := utils.GetRequestID(ctx)

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{constvars.StripePaymentMethodCard}),
	}
	params.Context = ctx

	intent, err := s.intents.New(params)
	if err != nil {
		s.Log.Error("stripeService.CreatePaymentIntent error from gateway",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64("amount", amount),
			zap.Error(err),
		)
		return "", exceptions.ErrStripeCreatePaymentIntent(err)
	}
	if intent.ClientSecret == "" {
		return "", exceptions.ErrStripeCreatePaymentIntent(errors.New("payment intent has no client secret"))
	}

	s.Log.Info("stripeService.CreatePaymentIntent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("payment_intent_id", intent.ID),
	)
	return intent.ClientSecret, nil
}
