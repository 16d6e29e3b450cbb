package reports

import (
	"context"
	"errors"
	"net/http"
	"time"

	"dermref-service/internal/app/config"
	"dermref-service/internal/app/contracts"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/exceptions"
	"dermref-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReportController struct {
	Log            *zap.Logger
	ReportUsecase  contracts.ReportUsecase
	InternalConfig *config.InternalConfig
}

func NewReportController(logger *zap.Logger, reportUsecase contracts.ReportUsecase, internalConfig *config.InternalConfig) *ReportController {
	return &ReportController{
		Log:            logger,
		ReportUsecase:  reportUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ReportController) GenerateReport(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "patient_id")
	if caseID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(errors.New("missing url parameter"), "patient_id"))
		return
	}

	if err := r.ParseMultipartForm(ctrl.InternalConfig.App.UploadMaxSizeInMB << 20); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.GenerateReport{
		DermoscopeFindings: r.FormValue("dermoscopeFindings"),
		ClinicalImpression: r.FormValue("clinicalImpression"),
		DigitalSignature:   r.FormValue("digitalSignature"),
		AnnotationLabel:    r.FormValue("annotationLabel"),
	}

	utils.SanitizeGenerateReportRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	editedNakedEyePhoto, err := ctrl.parseEditedPhoto(r, "editedNakedEyePhoto")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	editedDermoscopePhoto, err := ctrl.parseEditedPhoto(r, "editedDermoscopePhoto")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Annotation and photo uploads make this the slowest write path
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	response, err := ctrl.ReportUsecase.GenerateReport(ctx, caseID, request, editedNakedEyePhoto, editedDermoscopePhoto)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ReportGeneratedSuccess, response)
}

// parseEditedPhoto reads a required edited-photo part. A missing part fails
// validation the same way an empty or oversized one does.
func (ctrl *ReportController) parseEditedPhoto(r *http.Request, fieldName string) (*requests.FileUpload, error) {
	file, err := utils.ParseFormFile(r, fieldName)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateUpload(file, ctrl.InternalConfig.App.UploadMaxSizeInMB); err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}
	return file, nil
}

func (ctrl *ReportController) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ReportUsecase.ListReports(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReportsFetchedSuccess, response)
}

func (ctrl *ReportController) GetReport(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "report_id")
	if reportID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(errors.New("missing url parameter"), "report_id"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ReportUsecase.GetReportByID(ctx, reportID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReportFetchedSuccess, response)
}
