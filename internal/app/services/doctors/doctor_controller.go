package doctors

import (
	"context"
	"net/http"
	"time"

	"dermref-service/internal/app/config"
	"dermref-service/internal/app/contracts"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/exceptions"
	"dermref-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type DoctorController struct {
	Log            *zap.Logger
	DoctorUsecase  contracts.DoctorUsecase
	InternalConfig *config.InternalConfig
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, internalConfig *config.InternalConfig) *DoctorController {
	return &DoctorController{
		Log:            logger,
		DoctorUsecase:  doctorUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *DoctorController) UploadQualification(w http.ResponseWriter, r *http.Request) {
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

	file, err := utils.ParseFormFile(r, "qualification")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = utils.ValidateUpload(file, ctrl.InternalConfig.App.UploadMaxSizeInMB)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.UploadQualification(ctx, doctorID, file)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.QualificationUploadSuccess, response)
}
