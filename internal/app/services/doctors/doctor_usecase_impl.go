package doctors

import (
	"context"
	"time"

	"dermref-service/internal/app/contracts"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/dto/responses"
	"dermref-service/internal/pkg/exceptions"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	ImageStorage     contracts.ImageStorage
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	imageStorage contracts.ImageStorage,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		ImageStorage:     imageStorage,
	}
}

func (uc *doctorUsecase) UploadQualification(ctx context.Context, doctorID string, file *requests.FileUpload) (*responses.QualificationUpload, error) {
	existingDoctor, err := uc.DoctorRepository.FindDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if existingDoctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	uploaded, err := uc.ImageStorage.UploadImage(ctx, constvars.StorageFolderQualifications, file)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	existingDoctor.QualificationPic = uploaded.URL
	existingDoctor.UpdatedAt = now

	err = uc.DoctorRepository.UpdateDoctor(ctx, existingDoctor)
	if err != nil {
		return nil, err
	}

	return &responses.QualificationUpload{
		ImageURL:    uploaded.URL,
		DoctorID:    doctorID,
		LastUpdated: now.Format(time.RFC3339),
	}, nil
}
