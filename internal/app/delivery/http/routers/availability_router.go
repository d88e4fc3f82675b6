package routers

import (
	"clinic-booking-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, availabilityController *controllers.AvailabilityController) {
	router.Get("/appointmentOptions", availabilityController.GetAppointmentOptions)
	router.Get("/appointmentSpecialty", availabilityController.GetSpecialties)
}
