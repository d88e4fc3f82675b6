package contracts

import "context"

type PaymentGatewayService interface {
	// CreatePaymentIntent returns the client secret of a new card payment
	// intent for amount expressed in the currency's minor unit.
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}
