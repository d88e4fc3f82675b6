package routers

import (
	"clinic-booking-service/internal/app/delivery/http/controllers"
	"clinic-booking-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Use(middlewares.VerifyJWT, middlewares.VerifyAdmin)
	router.Get("/", doctorController.ListDoctors)
	router.Post("/", doctorController.CreateDoctor)
	router.Delete("/{id}", doctorController.DeleteDoctor)
}
