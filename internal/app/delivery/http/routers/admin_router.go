package routers

import (
	"dermref-service/internal/app/delivery/http/middlewares"
	"dermref-service/internal/app/models"
	"dermref-service/internal/app/services/cases"
	"dermref-service/internal/app/services/reports"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, mw *middlewares.Middlewares, caseController *cases.CaseController, reportController *reports.ReportController) {
	router.Use(mw.Authenticate)
	router.Use(mw.RequireRole(models.RoleAdmin))

	router.Get("/admin-all", caseController.AdminListPaidCases)
	router.Get("/admin-pending", caseController.AdminListPendingCases)
	router.Get("/admin-done", caseController.AdminListCompletedCases)
	router.Get("/admin-patient-details/{patient_id}", caseController.AdminGetCaseDetails)

	router.Post("/admin-generate-report/{patient_id}", reportController.GenerateReport)
	router.Get("/admin-all-reports", reportController.ListReports)
	router.Get("/admin-report/{report_id}", reportController.GetReport)
}
