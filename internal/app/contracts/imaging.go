package contracts

import (
	"context"

	"dermref-service/internal/pkg/dto/requests"
)

type AnnotationService interface {
	AnnotateImage(ctx context.Context, file *requests.FileUpload, label string) (*requests.FileUpload, error)
}
