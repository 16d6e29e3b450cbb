package routers

import (
	"dermref-service/internal/app/delivery/http/middlewares"
	"dermref-service/internal/app/services/doctors"

	"github.com/go-chi/chi/v5"
)

func attachQualificationRoutes(router chi.Router, mw *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.With(mw.Authenticate).Post("/upload", doctorController.UploadQualification)
}
