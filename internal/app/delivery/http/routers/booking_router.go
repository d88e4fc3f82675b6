package routers

import (
	"clinic-booking-service/internal/app/delivery/http/controllers"
	"clinic-booking-service/internal/app/delivery/http/middlewares"
	"clinic-booking-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.Post("/", bookingController.CreateBooking)
	router.With(
		middlewares.VerifyJWT,
		middlewares.RequireEmailMatch(constvars.QueryParamEmail),
	).Get("/", bookingController.GetBookingsByEmail)
	router.Get("/{id}", bookingController.GetBookingByID)
	router.With(middlewares.VerifyJWT).Patch("/{id}/cancel", bookingController.CancelBooking)
}
