package routers

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/delivery/http/controllers"
	"clinic-booking-service/internal/app/delivery/http/middlewares"
	"clinic-booking-service/internal/pkg/constvars"
	"fmt"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	healthController *controllers.HealthController,
	availabilityController *controllers.AvailabilityController,
	bookingController *controllers.BookingController,
	paymentController *controllers.PaymentController,
	userController *controllers.UserController,
	doctorController *controllers.DoctorController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.AllowedOrigins,
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodPut,
			constvars.MethodPatch,
			constvars.MethodDelete,
			constvars.MethodOptions,
		},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.BodyLimit)

	router.Get("/", healthController.Root)
	router.Get("/healthz", healthController.Liveness)

	attach := func(r chi.Router) {
		attachAvailabilityRoutes(r, availabilityController)
		r.Route("/bookings", func(r chi.Router) {
			attachBookingRoutes(r, middlewares, bookingController)
		})
		attachPaymentRoutes(r, paymentController)
		attachAuthRoutes(r, userController)
		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, middlewares, userController)
		})
		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, doctorController)
		})
	}

	endpointPrefix := strings.Trim(internalConfig.App.EndpointPrefix, "/")
	if endpointPrefix == "" {
		attach(router)
		return
	}
	router.Route(fmt.Sprintf("/%s", endpointPrefix), attach)
}
