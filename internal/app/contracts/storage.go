package contracts

import (
	"context"

	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/dto/responses"
)

type ImageStorage interface {
	UploadImage(ctx context.Context, folder string, file *requests.FileUpload) (*responses.UploadedImage, error)
}
