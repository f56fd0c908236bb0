package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachServiceRoutes(router chi.Router, serviceController *controllers.ServiceController) {
	router.Get("/", serviceController.FindAll)
	router.Get("/{"+constvars.URLParamServiceID+"}", serviceController.FindByID)
}
