package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.ListAppointments)
	router.Post("/", appointmentController.CreateAppointment)
	router.Put("/{"+constvars.URLParamAppointmentID+"}", appointmentController.UpdateStatus)
}
