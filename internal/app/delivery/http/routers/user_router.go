package routers

import (
	"clinic-booking-service/internal/app/delivery/http/controllers"
	"clinic-booking-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, userController *controllers.UserController) {
	router.Get("/jwt", userController.IssueAccessToken)
}

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Post("/", userController.UpsertUser)
	router.Get("/admin/{email:.+@.+}", userController.GetAdminStatus)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.VerifyJWT, middlewares.VerifyAdmin)
		r.Get("/", userController.ListUsers)
		r.Put("/admin/{id:[0-9a-fA-F]{24}}", userController.MakeAdmin)
	})
}
