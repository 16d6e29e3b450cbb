package routers

import (
	"dermref-service/internal/app/delivery/http/middlewares"
	"dermref-service/internal/app/models"
	"dermref-service/internal/app/services/payments"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, mw *middlewares.Middlewares, paymentController *payments.PaymentController) {
	router.With(mw.Authenticate, mw.RequireRole(models.RoleDoctor)).Post("/create-payment", paymentController.CreatePayment)

	// Gateway callback; authenticated by signature, not session
	router.Post("/verify-payment", paymentController.VerifyPayment)
}
