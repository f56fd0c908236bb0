package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.GetOwnProfile)
	router.Post("/", patientController.UpsertOwnProfile)
}
