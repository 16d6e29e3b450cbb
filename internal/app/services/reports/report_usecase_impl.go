package reports

import (
	"context"
	"time"

	"dermref-service/internal/app/contracts"
	"dermref-service/internal/app/models"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type reportUsecase struct {
	Log               *zap.Logger
	ReportRepository  contracts.ReportRepository
	CaseRepository    contracts.CaseRepository
	ImageStorage      contracts.ImageStorage
	AnnotationService contracts.AnnotationService
}

func NewReportUsecase(
	logger *zap.Logger,
	reportRepository contracts.ReportRepository,
	caseRepository contracts.CaseRepository,
	imageStorage contracts.ImageStorage,
	annotationService contracts.AnnotationService,
) contracts.ReportUsecase {
	return &reportUsecase{
		Log:               logger,
		ReportRepository:  reportRepository,
		CaseRepository:    caseRepository,
		ImageStorage:      imageStorage,
		AnnotationService: annotationService,
	}
}

// GenerateReport issues the diagnostic report for a paid case and flips the
// case to done. A retry after a half-applied attempt reuses the stored
// report and repairs the case status instead of writing a duplicate.
func (uc *reportUsecase) GenerateReport(ctx context.Context, caseID string, request *requests.GenerateReport, editedNakedEyePhoto, editedDermoscopePhoto *requests.FileUpload) (*models.Report, error) {
	patientCase, err := uc.CaseRepository.FindCaseByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if patientCase == nil {
		return nil, exceptions.ErrCaseNotExist(nil)
	}

	if patientCase.PaymentStatus != models.PaymentStatusCompleted {
		return nil, exceptions.ErrPaymentNotCompleted(nil)
	}

	existingReport, err := uc.ReportRepository.FindReportByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if existingReport != nil {
		if patientCase.Status != models.CaseStatusDone {
			if err := uc.CaseRepository.MarkCaseDone(ctx, caseID); err != nil {
				return nil, err
			}
		}
		return existingReport, nil
	}

	editedNakedEye, err := uc.storeEditedPhoto(ctx, editedNakedEyePhoto, request.AnnotationLabel)
	if err != nil {
		return nil, err
	}
	editedDermoscope, err := uc.storeEditedPhoto(ctx, editedDermoscopePhoto, request.AnnotationLabel)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	report := &models.Report{
		Doctor:                patientCase.Doctor,
		Patient:               patientCase.ID,
		DermoscopeFindings:    request.DermoscopeFindings,
		ClinicalImpression:    request.ClinicalImpression,
		EditedNakedEyePhoto:   editedNakedEye,
		EditedDermoscopePhoto: editedDermoscope,
		DigitalSignature:      request.DigitalSignature,
		ReportStatus:          models.ReportStatusCompleted,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	reportID, err := uc.ReportRepository.CreateReport(ctx, report)
	if err != nil {
		return nil, err
	}
	report.ID, err = primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	if err := uc.CaseRepository.MarkCaseDone(ctx, caseID); err != nil {
		return nil, err
	}

	uc.Log.Info("reportUsecase.GenerateReport report issued",
		zap.String(constvars.LoggingCaseIDKey, caseID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)
	return report, nil
}

// storeEditedPhoto uploads the admin-supplied edited photo, stamping the
// label onto it first when one was given.
func (uc *reportUsecase) storeEditedPhoto(ctx context.Context, file *requests.FileUpload, label string) (string, error) {
	if label != "" {
		annotated, err := uc.AnnotationService.AnnotateImage(ctx, file, label)
		if err != nil {
			return "", err
		}
		file = annotated
	}

	uploaded, err := uc.ImageStorage.UploadImage(ctx, constvars.StorageFolderReports, file)
	if err != nil {
		return "", err
	}
	return uploaded.URL, nil
}

func (uc *reportUsecase) ListReports(ctx context.Context) ([]models.Report, error) {
	return uc.ReportRepository.FindAllReports(ctx)
}

func (uc *reportUsecase) GetReportByID(ctx context.Context, reportID string) (*models.Report, error) {
	report, err := uc.ReportRepository.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrReportNotExist(nil)
	}
	return report, nil
}
