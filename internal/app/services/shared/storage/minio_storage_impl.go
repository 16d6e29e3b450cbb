package storage

import (
	"context"
	"fmt"

	"dermref-service/internal/app/contracts"
	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/dto/responses"
	"dermref-service/internal/pkg/exceptions"
	"dermref-service/internal/pkg/utils"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	Endpoint    string
	UseSSL      bool
}

func NewMinioStorage(minioClient *minio.Client, bucketName string, useSSL bool) contracts.ImageStorage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Endpoint:    minioClient.EndpointURL().Host,
		UseSSL:      useSSL,
	}
}

func (m *minioStorage) UploadImage(ctx context.Context, folder string, file *requests.FileUpload) (*responses.UploadedImage, error) {
	objectName := utils.GenerateObjectName(folder, file.FieldName, file.Filename)
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, file.Reader, file.Size, minio.PutObjectOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		return nil, exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return &responses.UploadedImage{
		URL: m.objectURL(objectName),
		Key: objectName,
	}, nil
}

func (m *minioStorage) objectURL(objectName string) string {
	scheme := "http"
	if m.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.Endpoint, m.BucketName, objectName)
}
