package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, paymentController *controllers.PaymentController) {
	router.Get("/", paymentController.ListTransactions)
	router.Post("/create-order", paymentController.CreateOrder)
	router.Post("/save-transaction", paymentController.SaveTransaction)
	router.Get("/{"+constvars.URLParamTransactionID+"}/receipt", paymentController.GetReceipt)
}
