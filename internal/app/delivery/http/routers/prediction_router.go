package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPredictionRoutes(router chi.Router, middlewares *middlewares.Middlewares, predictionController *controllers.PredictionController) {
	router.Get("/symptoms", predictionController.ListSymptoms)
	router.With(
		middlewares.Authenticate,
		middlewares.Authorize,
		middlewares.IdentityQuota("predict", middlewares.InternalConfig.App.PredictQuotaPerMinute),
	).Post("/predict", predictionController.Predict)
}
