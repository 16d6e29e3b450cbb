package cases

import (
	"bytes"
	"context"
	"testing"
	"time"

	"dermref-service/internal/app/models"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/dto/responses"
	"dermref-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockCaseRepository struct {
	mock.Mock
}

func (m *MockCaseRepository) CreateCase(ctx context.Context, patientCase *models.PatientCase) (string, error) {
	args := m.Called(ctx, patientCase)
	return args.String(0), args.Error(1)
}

func (m *MockCaseRepository) FindCaseByID(ctx context.Context, caseID string) (*models.PatientCase, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PatientCase), args.Error(1)
}

func (m *MockCaseRepository) FindCaseByIDAndDoctor(ctx context.Context, caseID, doctorID string) (*models.PatientCase, error) {
	args := m.Called(ctx, caseID, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PatientCase), args.Error(1)
}

func (m *MockCaseRepository) FindCasesByDoctor(ctx context.Context, doctorID string, status *models.CaseStatus) ([]models.PatientCase, error) {
	args := m.Called(ctx, doctorID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PatientCase), args.Error(1)
}

func (m *MockCaseRepository) FindCasesByPaymentStatus(ctx context.Context, paymentStatus models.PaymentStatus, status *models.CaseStatus) ([]models.PatientCase, error) {
	args := m.Called(ctx, paymentStatus, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PatientCase), args.Error(1)
}

func (m *MockCaseRepository) UpdateCasePaymentCompleted(ctx context.Context, caseID, paymentID string, amount int64, paidAt time.Time) error {
	args := m.Called(ctx, caseID, paymentID, amount, paidAt)
	return args.Error(0)
}

func (m *MockCaseRepository) MarkCaseDone(ctx context.Context, caseID string) error {
	args := m.Called(ctx, caseID)
	return args.Error(0)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) CreateReport(ctx context.Context, report *models.Report) (string, error) {
	args := m.Called(ctx, report)
	return args.String(0), args.Error(1)
}

func (m *MockReportRepository) FindReportByID(ctx context.Context, reportID string) (*models.Report, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportRepository) FindReportByCase(ctx context.Context, caseID string) (*models.Report, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportRepository) FindAllReports(ctx context.Context) ([]models.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
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

func asCustomError(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr
}

func photoUpload(fieldName string) *requests.FileUpload {
	return &requests.FileUpload{
		FieldName:   fieldName,
		Filename:    fieldName + ".jpg",
		Size:        1024,
		ContentType: constvars.MIMEImageJPEG,
		Reader:      bytes.NewReader([]byte("fake-jpeg-bytes")),
	}
}

func TestCaseUsecase_CreateCase(t *testing.T) {
	doctorID := primitive.NewObjectID()
	caseID := primitive.NewObjectID()

	t.Run("Uploads both photos and stores a pending case", func(t *testing.T) {
		mockCaseRepo := new(MockCaseRepository)
		mockStorage := new(MockImageStorage)
		usecase := NewCaseUsecase(zap.NewNop(), mockCaseRepo, new(MockReportRepository), mockStorage)

		nakedEye := photoUpload("nakedEyePhoto")
		dermoscope := photoUpload("dermoscopePhoto")
		mockStorage.On("UploadImage", mock.Anything, constvars.StorageFolderCases, nakedEye).
			Return(&responses.UploadedImage{URL: "http://storage/cases/naked.jpg"}, nil)
		mockStorage.On("UploadImage", mock.Anything, constvars.StorageFolderCases, dermoscope).
			Return(&responses.UploadedImage{URL: "http://storage/cases/dermo.jpg"}, nil)
		mockCaseRepo.On("CreateCase", mock.Anything, mock.MatchedBy(func(patientCase *models.PatientCase) bool {
			return patientCase.Doctor == doctorID &&
				patientCase.Status == models.CaseStatusPending &&
				patientCase.PaymentStatus == models.PaymentStatusPending &&
				patientCase.NakedEyePhoto == "http://storage/cases/naked.jpg" &&
				patientCase.DermoscopePhoto == "http://storage/cases/dermo.jpg"
		})).Return(caseID.Hex(), nil)

		created, err := usecase.CreateCase(context.Background(), doctorID.Hex(), &requests.CreateCase{
			Firstname:         "Asha",
			Lastname:          "Rao",
			Age:               34,
			Gender:            "female",
			Duration:          "2 weeks",
			SiteOfInfection:   "left forearm",
			PreviousTreatment: "none",
		}, nakedEye, dermoscope)

		require.NoError(t, err)
		assert.Equal(t, caseID, created.ID)
		mockStorage.AssertExpectations(t)
		mockCaseRepo.AssertExpectations(t)
	})

	t.Run("Malformed doctor id is rejected before any upload", func(t *testing.T) {
		mockCaseRepo := new(MockCaseRepository)
		mockStorage := new(MockImageStorage)
		usecase := NewCaseUsecase(zap.NewNop(), mockCaseRepo, new(MockReportRepository), mockStorage)

		created, err := usecase.CreateCase(context.Background(), "not-an-object-id", &requests.CreateCase{}, photoUpload("nakedEyePhoto"), photoUpload("dermoscopePhoto"))

		assert.Nil(t, created)
		assert.Error(t, err)
		mockStorage.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCaseUsecase_GetCaseDetails(t *testing.T) {
	doctorID := primitive.NewObjectID()
	caseID := primitive.NewObjectID()

	t.Run("Pending case has no report attached", func(t *testing.T) {
		mockCaseRepo := new(MockCaseRepository)
		mockReportRepo := new(MockReportRepository)
		usecase := NewCaseUsecase(zap.NewNop(), mockCaseRepo, mockReportRepo, new(MockImageStorage))

		mockCaseRepo.On("FindCaseByIDAndDoctor", mock.Anything, caseID.Hex(), doctorID.Hex()).
			Return(&models.PatientCase{ID: caseID, Doctor: doctorID, Status: models.CaseStatusPending}, nil)

		details, err := usecase.GetCaseDetails(context.Background(), doctorID.Hex(), caseID.Hex())

		require.NoError(t, err)
		assert.Equal(t, caseID, details.Patient.ID)
		assert.Nil(t, details.Report)
		mockReportRepo.AssertNotCalled(t, "FindReportByCase", mock.Anything, mock.Anything)
	})

	t.Run("Done case joins its report", func(t *testing.T) {
		mockCaseRepo := new(MockCaseRepository)
		mockReportRepo := new(MockReportRepository)
		usecase := NewCaseUsecase(zap.NewNop(), mockCaseRepo, mockReportRepo, new(MockImageStorage))

		report := &models.Report{ID: primitive.NewObjectID(), Patient: caseID}
		mockCaseRepo.On("FindCaseByIDAndDoctor", mock.Anything, caseID.Hex(), doctorID.Hex()).
			Return(&models.PatientCase{ID: caseID, Doctor: doctorID, Status: models.CaseStatusDone}, nil)
		mockReportRepo.On("FindReportByCase", mock.Anything, caseID.Hex()).Return(report, nil)

		details, err := usecase.GetCaseDetails(context.Background(), doctorID.Hex(), caseID.Hex())

		require.NoError(t, err)
		assert.Equal(t, report, details.Report)
	})

	t.Run("Case owned by another doctor reads as not found", func(t *testing.T) {
		mockCaseRepo := new(MockCaseRepository)
		usecase := NewCaseUsecase(zap.NewNop(), mockCaseRepo, new(MockReportRepository), new(MockImageStorage))

		mockCaseRepo.On("FindCaseByIDAndDoctor", mock.Anything, caseID.Hex(), doctorID.Hex()).Return(nil, nil)

		details, err := usecase.GetCaseDetails(context.Background(), doctorID.Hex(), caseID.Hex())

		assert.Nil(t, details)
		assert.Equal(t, constvars.ErrClientCaseNotFound, asCustomError(t, err).ClientMessage)
	})
}

func TestCaseUsecase_ListPaidCases(t *testing.T) {
	mockCaseRepo := new(MockCaseRepository)
	usecase := NewCaseUsecase(zap.NewNop(), mockCaseRepo, new(MockReportRepository), new(MockImageStorage))

	status := models.CaseStatusPending
	paid := []models.PatientCase{{ID: primitive.NewObjectID(), PaymentStatus: models.PaymentStatusCompleted}}
	mockCaseRepo.On("FindCasesByPaymentStatus", mock.Anything, models.PaymentStatusCompleted, &status).Return(paid, nil)

	listed, err := usecase.ListPaidCases(context.Background(), &status)

	require.NoError(t, err)
	assert.Equal(t, paid, listed)
	mockCaseRepo.AssertExpectations(t)
}
