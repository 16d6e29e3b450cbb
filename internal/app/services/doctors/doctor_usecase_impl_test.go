package doctors

import (
	"bytes"
	"context"
	"testing"

	"dermref-service/internal/app/models"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/dto/responses"
	"dermref-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindDoctorByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindDoctorByResetToken(ctx context.Context, resetToken string) (*models.Doctor, error) {
	args := m.Called(ctx, resetToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

type MockImageStorage struct {
	mock.Mock
}

func (m *MockImageStorage) UploadImage(ctx context.Context, folder string, file *requests.FileUpload) (*responses.UploadedImage, error) {
	args := m.Called(ctx, folder, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UploadedImage), args.Error(1)
}

func TestDoctorUsecase_UploadQualification(t *testing.T) {
	doctorID := primitive.NewObjectID()
	upload := &requests.FileUpload{
		FieldName:   "qualification",
		Filename:    "degree.jpg",
		Size:        1024,
		ContentType: constvars.MIMEImageJPEG,
		Reader:      bytes.NewReader([]byte("fake-jpeg-bytes")),
	}

	t.Run("Stores the image and updates the doctor", func(t *testing.T) {
		mockDoctorRepo := new(MockDoctorRepository)
		mockStorage := new(MockImageStorage)
		usecase := NewDoctorUsecase(mockDoctorRepo, mockStorage)

		mockDoctorRepo.On("FindDoctorByID", mock.Anything, doctorID.Hex()).
			Return(&models.Doctor{ID: doctorID, Role: models.RoleDoctor}, nil)
		mockStorage.On("UploadImage", mock.Anything, constvars.StorageFolderQualifications, upload).
			Return(&responses.UploadedImage{URL: "http://storage/qualifications/degree.jpg"}, nil)
		mockDoctorRepo.On("UpdateDoctor", mock.Anything, mock.MatchedBy(func(doctor *models.Doctor) bool {
			return doctor.QualificationPic == "http://storage/qualifications/degree.jpg"
		})).Return(nil)

		uploaded, err := usecase.UploadQualification(context.Background(), doctorID.Hex(), upload)

		require.NoError(t, err)
		assert.Equal(t, "http://storage/qualifications/degree.jpg", uploaded.ImageURL)
		assert.Equal(t, doctorID.Hex(), uploaded.DoctorID)
		mockDoctorRepo.AssertExpectations(t)
	})

	t.Run("Unknown doctor is rejected before upload", func(t *testing.T) {
		mockDoctorRepo := new(MockDoctorRepository)
		mockStorage := new(MockImageStorage)
		usecase := NewDoctorUsecase(mockDoctorRepo, mockStorage)

		mockDoctorRepo.On("FindDoctorByID", mock.Anything, doctorID.Hex()).Return(nil, nil)

		uploaded, err := usecase.UploadQualification(context.Background(), doctorID.Hex(), upload)

		assert.Nil(t, uploaded)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		mockStorage.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything)
	})
}
