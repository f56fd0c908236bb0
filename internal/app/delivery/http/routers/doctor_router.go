package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.Get("/{"+constvars.URLParamIdentityID+"}", doctorController.FindByIdentityID)
}
