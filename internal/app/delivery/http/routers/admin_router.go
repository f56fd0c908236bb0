package routers

import (
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, ctrls *Controllers) {
	identityParam := "/{" + constvars.URLParamIdentityID + "}"

	router.Get("/verify", ctrls.User.VerifyAdmin)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", ctrls.User.FindAll)
		r.Get(identityParam, ctrls.User.FindByID)
		r.Put(identityParam, ctrls.User.UpdateByID)
		r.Delete(identityParam, ctrls.User.DeleteByID)
		r.Put(identityParam+"/role", ctrls.User.ChangeRole)
	})

	router.Route("/patients", func(r chi.Router) {
		r.Get("/", ctrls.Patient.FindAll)
		r.Post("/", ctrls.Patient.CreatePatient)
		r.Get(identityParam, ctrls.Patient.FindByIdentityID)
		r.Put(identityParam, ctrls.Patient.UpdateByIdentityID)
		r.Delete(identityParam, ctrls.Patient.DeleteByIdentityID)
	})

	router.Route("/doctors", func(r chi.Router) {
		r.Get("/", ctrls.Doctor.FindAll)
		r.Post("/", ctrls.Doctor.CreateDoctor)
		r.Get(identityParam, ctrls.Doctor.FindByIdentityID)
		r.Put(identityParam, ctrls.Doctor.UpdateByIdentityID)
		r.Delete(identityParam, ctrls.Doctor.DeleteByIdentityID)
	})

	router.Route("/services", func(r chi.Router) {
		serviceParam := "/{" + constvars.URLParamServiceID + "}"
		r.Get("/", ctrls.Service.FindAll)
		r.Post("/", ctrls.Service.CreateService)
		r.Get(serviceParam, ctrls.Service.FindByID)
		r.Put(serviceParam, ctrls.Service.UpdateByID)
		r.Delete(serviceParam, ctrls.Service.DeleteByID)
	})

	router.Route("/payment", func(r chi.Router) {
		r.Get("/", ctrls.Payment.FindAll)
		r.Get("/export", ctrls.Payment.ExportLedger)
	})

	router.Route("/appointments", func(r chi.Router) {
		appointmentParam := "/{" + constvars.URLParamAppointmentID + "}"
		r.Get("/", ctrls.Appointment.FindAll)
		r.Post("/", ctrls.Appointment.AdminCreateAppointment)
		r.Get(appointmentParam, ctrls.Appointment.FindByID)
		r.Put(appointmentParam, ctrls.Appointment.UpdateStatus)
		r.Delete(appointmentParam, ctrls.Appointment.CancelAppointment)
	})
}
