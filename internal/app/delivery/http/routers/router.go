package routers

import (
	"net/http"
	"time"

	"dermref-service/internal/app/config"
	"dermref-service/internal/app/delivery/http/middlewares"
	"dermref-service/internal/app/services/auth"
	"dermref-service/internal/app/services/cases"
	"dermref-service/internal/app/services/doctors"
	"dermref-service/internal/app/services/payments"
	"dermref-service/internal/app/services/reports"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLog *logrus.Logger,
	mw *middlewares.Middlewares,
	authController *auth.AuthController,
	doctorController *doctors.DoctorController,
	caseController *cases.CaseController,
	paymentController *payments.PaymentController,
	reportController *reports.ReportController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second)
	router.Use(rateLimiter)

	router.Use(mw.RequestID)
	router.Use(mw.RequestLogger(internalConfig.App, accessLog))
	router.Use(mw.ErrorHandler)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, "ok", nil)
	})

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, mw, authController)
		})

		r.Route("/qualifications", func(r chi.Router) {
			attachQualificationRoutes(r, mw, doctorController)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, mw, caseController)
		})

		r.Route("/payments", func(r chi.Router) {
			attachPaymentRoutes(r, mw, paymentController)
		})

		r.Route("/admin", func(r chi.Router) {
			attachAdminRoutes(r, mw, caseController, reportController)
		})
	})
}
