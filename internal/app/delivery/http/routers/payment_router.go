package routers

import (
	"clinic-booking-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, paymentController *controllers.PaymentController) {
	router.Post("/create-payment-intent", paymentController.CreatePaymentIntent)
	router.Post("/payments", paymentController.ConfirmPayment)
}
