package cases

import (
	"context"
	"time"

	"dermref-service/internal/app/contracts"
	"dermref-service/internal/app/models"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/dto/responses"
	"dermref-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type caseUsecase struct {
	Log              *zap.Logger
	CaseRepository   contracts.CaseRepository
	ReportRepository contracts.ReportRepository
	ImageStorage     contracts.ImageStorage
}

func NewCaseUsecase(
	logger *zap.Logger,
	caseRepository contracts.CaseRepository,
	reportRepository contracts.ReportRepository,
	imageStorage contracts.ImageStorage,
) contracts.CaseUsecase {
	return &caseUsecase{
		Log:              logger,
		CaseRepository:   caseRepository,
		ReportRepository: reportRepository,
		ImageStorage:     imageStorage,
	}
}

func (uc *caseUsecase) CreateCase(ctx context.Context, doctorID string, request *requests.CreateCase, nakedEyePhoto, dermoscopePhoto *requests.FileUpload) (*models.PatientCase, error) {
	doctorObjectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	nakedEyeUploaded, err := uc.ImageStorage.UploadImage(ctx, constvars.StorageFolderCases, nakedEyePhoto)
	if err != nil {
		return nil, err
	}
	dermoscopeUploaded, err := uc.ImageStorage.UploadImage(ctx, constvars.StorageFolderCases, dermoscopePhoto)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	patientCase := &models.PatientCase{
		Doctor:            doctorObjectID,
		Firstname:         request.Firstname,
		Lastname:          request.Lastname,
		Age:               request.Age,
		Gender:            request.Gender,
		Duration:          request.Duration,
		SiteOfInfection:   request.SiteOfInfection,
		PreviousTreatment: request.PreviousTreatment,
		NakedEyePhoto:     nakedEyeUploaded.URL,
		DermoscopePhoto:   dermoscopeUploaded.URL,
		Status:            models.CaseStatusPending,
		PaymentStatus:     models.PaymentStatusPending,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	caseID, err := uc.CaseRepository.CreateCase(ctx, patientCase)
	if err != nil {
		return nil, err
	}

	patientCase.ID, err = primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	uc.Log.Info("caseUsecase.CreateCase referral submitted",
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingCaseIDKey, caseID),
	)
	return patientCase, nil
}

func (uc *caseUsecase) ListCases(ctx context.Context, doctorID string, status *models.CaseStatus) ([]models.PatientCase, error) {
	return uc.CaseRepository.FindCasesByDoctor(ctx, doctorID, status)
}

// GetCaseDetails is doctor scoped; a case owned by another doctor reads as
// not found.
func (uc *caseUsecase) GetCaseDetails(ctx context.Context, doctorID, caseID string) (*responses.CaseDetails, error) {
	patientCase, err := uc.CaseRepository.FindCaseByIDAndDoctor(ctx, caseID, doctorID)
	if err != nil {
		return nil, err
	}
	if patientCase == nil {
		return nil, exceptions.ErrCaseNotExist(nil)
	}

	return uc.buildCaseDetails(ctx, patientCase)
}

func (uc *caseUsecase) ListPaidCases(ctx context.Context, status *models.CaseStatus) ([]models.PatientCase, error) {
	return uc.CaseRepository.FindCasesByPaymentStatus(ctx, models.PaymentStatusCompleted, status)
}

func (uc *caseUsecase) GetCaseDetailsAdmin(ctx context.Context, caseID string) (*responses.CaseDetails, error) {
	patientCase, err := uc.CaseRepository.FindCaseByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if patientCase == nil {
		return nil, exceptions.ErrCaseNotExist(nil)
	}

	return uc.buildCaseDetails(ctx, patientCase)
}

func (uc *caseUsecase) buildCaseDetails(ctx context.Context, patientCase *models.PatientCase) (*responses.CaseDetails, error) {
	details := &responses.CaseDetails{Patient: patientCase}

	if patientCase.Status == models.CaseStatusDone {
		report, err := uc.ReportRepository.FindReportByCase(ctx, patientCase.ID.Hex())
		if err != nil {
			return nil, err
		}
		details.Report = report
	}

	return details, nil
}
