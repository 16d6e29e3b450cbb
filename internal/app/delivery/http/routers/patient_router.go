package routers

import (
	"dermref-service/internal/app/delivery/http/middlewares"
	"dermref-service/internal/app/models"
	"dermref-service/internal/app/services/cases"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, mw *middlewares.Middlewares, caseController *cases.CaseController) {
	router.Use(mw.Authenticate)
	router.Use(mw.RequireRole(models.RoleDoctor))

	router.Post("/", caseController.CreateCase)
	router.Get("/", caseController.ListCases)
	router.Get("/pending", caseController.ListPendingCases)
	router.Get("/completed", caseController.ListCompletedCases)
	router.Get("/{patient_id}", caseController.GetCaseDetails)
}
