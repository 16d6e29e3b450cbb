package contracts

import (
	"context"

	"dermref-service/internal/app/models"
	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	FindDoctorByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindDoctorByResetToken(ctx context.Context, resetToken string) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
}

type DoctorUsecase interface {
	UploadQualification(ctx context.Context, doctorID string, file *requests.FileUpload) (*responses.QualificationUpload, error)
}
