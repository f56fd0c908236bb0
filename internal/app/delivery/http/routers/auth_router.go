package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Use(middlewares.AuthRateLimit())
	router.Post("/register", authController.RegisterUser)
	router.Post("/login", authController.LoginUser)
}
