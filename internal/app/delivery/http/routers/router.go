package routers

import (
	"fmt"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Auth        *controllers.AuthController
	User        *controllers.UserController
	Patient     *controllers.PatientController
	Doctor      *controllers.DoctorController
	Service     *controllers.ServiceController
	Appointment *controllers.AppointmentController
	Payment     *controllers.PaymentController
	Prediction  *controllers.PredictionController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.CORSAllowedOrigins),
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID, constvars.HeaderContentDisposition},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.ErrorHandler)
	if limit := internalConfig.App.RequestBodyLimitInMegabyte; limit > 0 {
		router.Use(chimiddleware.RequestSize(int64(limit) << 20))
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, map[string]string{
			"status":  constvars.ResponseSuccess,
			"version": internalConfig.App.Version,
		})
	})

	endpointPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.EndpointPrefix, "/"))

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, ctrls.Auth)
		})

		r.Route("/disease", func(r chi.Router) {
			attachPredictionRoutes(r, middlewares, ctrls.Prediction)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.Authenticate)
			r.Use(middlewares.Authorize)

			r.Route("/user", func(r chi.Router) {
				attachUserRoutes(r, ctrls.User)
			})

			r.Route("/patient", func(r chi.Router) {
				attachPatientRoutes(r, ctrls.Patient)
			})

			r.Route("/doctor", func(r chi.Router) {
				attachDoctorRoutes(r, ctrls.Doctor)
			})

			r.Route("/appointment", func(r chi.Router) {
				attachAppointmentRoutes(r, ctrls.Appointment)
			})

			r.Route("/services", func(r chi.Router) {
				attachServiceRoutes(r, ctrls.Service)
			})

			r.Route("/payment", func(r chi.Router) {
				attachPaymentRoutes(r, ctrls.Payment)
			})

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, ctrls)
			})
		})
	})
}

func allowedOrigins(csv string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(csv, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
