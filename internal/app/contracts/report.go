package contracts

import (
	"context"

	"dermref-service/internal/app/models"
	"dermref-service/internal/pkg/dto/requests"
)

type ReportRepository interface {
	CreateReport(ctx context.Context, report *models.Report) (string, error)
	FindReportByID(ctx context.Context, reportID string) (*models.Report, error)
	FindReportByCase(ctx context.Context, caseID string) (*models.Report, error)
	FindAllReports(ctx context.Context) ([]models.Report, error)
}

type ReportUsecase interface {
	GenerateReport(ctx context.Context, caseID string, request *requests.GenerateReport, editedNakedEyePhoto, editedDermoscopePhoto *requests.FileUpload) (*models.Report, error)
	ListReports(ctx context.Context) ([]models.Report, error)
	GetReportByID(ctx context.Context, reportID string) (*models.Report, error)
}
