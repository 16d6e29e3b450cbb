package cases

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dermref-service/internal/app/config"
	"dermref-service/internal/app/contracts"
	"dermref-service/internal/app/models"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/exceptions"
	"dermref-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CaseController struct {
	Log            *zap.Logger
	CaseUsecase    contracts.CaseUsecase
	InternalConfig *config.InternalConfig
}

func NewCaseController(logger *zap.Logger, caseUsecase contracts.CaseUsecase, internalConfig *config.InternalConfig) *CaseController {
	return &CaseController{
		Log:            logger,
		CaseUsecase:    caseUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *CaseController) CreateCase(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := r.Context().Value(constvars.ContextDoctorID).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	err := r.ParseMultipartForm(ctrl.InternalConfig.App.UploadMaxSizeInMB << 20)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	age, err := strconv.Atoi(r.FormValue("age"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.CreateCase{
		Firstname:         r.FormValue("firstname"),
		Lastname:          r.FormValue("lastname"),
		Age:               age,
		Gender:            r.FormValue("gender"),
		Duration:          r.FormValue("duration"),
		SiteOfInfection:   r.FormValue("siteOfInfection"),
		PreviousTreatment: r.FormValue("previousTreatment"),
	}

	utils.SanitizeCreateCaseRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	nakedEyePhoto, err := utils.ParseFormFile(r, "nakedEyePhoto")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateUpload(nakedEyePhoto, ctrl.InternalConfig.App.UploadMaxSizeInMB); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	dermoscopePhoto, err := utils.ParseFormFile(r, "dermoscopePhoto")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateUpload(dermoscopePhoto, ctrl.InternalConfig.App.UploadMaxSizeInMB); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	// Detached context so slow photo uploads outlive a dropped client
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	response, err := ctrl.CaseUsecase.CreateCase(ctx, doctorID, request, nakedEyePhoto, dermoscopePhoto)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CaseCreatedSuccess, response)
}

func (ctrl *CaseController) ListCases(w http.ResponseWriter, r *http.Request) {
	ctrl.listByDoctor(w, r, nil)
}

func (ctrl *CaseController) ListPendingCases(w http.ResponseWriter, r *http.Request) {
	status := models.CaseStatusPending
	ctrl.listByDoctor(w, r, &status)
}

func (ctrl *CaseController) ListCompletedCases(w http.ResponseWriter, r *http.Request) {
	status := models.CaseStatusDone
	ctrl.listByDoctor(w, r, &status)
}

func (ctrl *CaseController) listByDoctor(w http.ResponseWriter, r *http.Request, status *models.CaseStatus) {
	doctorID, ok := r.Context().Value(constvars.ContextDoctorID).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CaseUsecase.ListCases(ctx, doctorID, status)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CasesFetchedSuccess, response)
}

func (ctrl *CaseController) GetCaseDetails(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := r.Context().Value(constvars.ContextDoctorID).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	caseID := chi.URLParam(r, "patient_id")
	if caseID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(errors.New("missing url parameter"), "patient_id"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CaseUsecase.GetCaseDetails(ctx, doctorID, caseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.CaseDetailsSuccess
	if response.Report != nil {
		message = constvars.CaseDetailsWithReportSuccess
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func (ctrl *CaseController) AdminListPaidCases(w http.ResponseWriter, r *http.Request) {
	ctrl.adminListPaid(w, r, nil)
}

func (ctrl *CaseController) AdminListPendingCases(w http.ResponseWriter, r *http.Request) {
	status := models.CaseStatusPending
	ctrl.adminListPaid(w, r, &status)
}

func (ctrl *CaseController) AdminListCompletedCases(w http.ResponseWriter, r *http.Request) {
	status := models.CaseStatusDone
	ctrl.adminListPaid(w, r, &status)
}

// Admin listings only ever show paid work; unpaid submissions stay invisible
// until the referring doctor settles the order.
func (ctrl *CaseController) adminListPaid(w http.ResponseWriter, r *http.Request, status *models.CaseStatus) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CaseUsecase.ListPaidCases(ctx, status)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CasesFetchedSuccess, response)
}

func (ctrl *CaseController) AdminGetCaseDetails(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "patient_id")
	if caseID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(errors.New("missing url parameter"), "patient_id"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CaseUsecase.GetCaseDetailsAdmin(ctx, caseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.CaseDetailsSuccess
	if response.Report != nil {
		message = constvars.CaseDetailsWithReportSuccess
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}
