package contracts

import (
	"context"
	"time"

	"dermref-service/internal/app/models"
	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/dto/responses"
)

type CaseRepository interface {
	CreateCase(ctx context.Context, patientCase *models.PatientCase) (string, error)
	FindCaseByID(ctx context.Context, caseID string) (*models.PatientCase, error)
	FindCaseByIDAndDoctor(ctx context.Context, caseID, doctorID string) (*models.PatientCase, error)
	FindCasesByDoctor(ctx context.Context, doctorID string, status *models.CaseStatus) ([]models.PatientCase, error)
	FindCasesByPaymentStatus(ctx context.Context, paymentStatus models.PaymentStatus, status *models.CaseStatus) ([]models.PatientCase, error)
	UpdateCasePaymentCompleted(ctx context.Context, caseID, paymentID string, amount int64, paidAt time.Time) error
	MarkCaseDone(ctx context.Context, caseID string) error
}

type CaseUsecase interface {
	CreateCase(ctx context.Context, doctorID string, request *requests.CreateCase, nakedEyePhoto, dermoscopePhoto *requests.FileUpload) (*models.PatientCase, error)
	ListCases(ctx context.Context, doctorID string, status *models.CaseStatus) ([]models.PatientCase, error)
	GetCaseDetails(ctx context.Context, doctorID, caseID string) (*responses.CaseDetails, error)
	ListPaidCases(ctx context.Context, status *models.CaseStatus) ([]models.PatientCase, error)
	GetCaseDetailsAdmin(ctx context.Context, caseID string) (*responses.CaseDetails, error)
}
