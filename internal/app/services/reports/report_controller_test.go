package reports

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"dermref-service/internal/app/config"
	"dermref-service/internal/app/models"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockReportUsecase struct {
	mock.Mock
}

func (m *MockReportUsecase) GenerateReport(ctx context.Context, caseID string, request *requests.GenerateReport, editedNakedEyePhoto, editedDermoscopePhoto *requests.FileUpload) (*models.Report, error) {
	args := m.Called(ctx, caseID, request, editedNakedEyePhoto, editedDermoscopePhoto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportUsecase) ListReports(ctx context.Context) ([]models.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockReportUsecase) GetReportByID(ctx context.Context, reportID string) (*models.Report, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func reportControllerTestConfig() *config.InternalConfig {
	internalConfig := &config.InternalConfig{}
	internalConfig.App.UploadMaxSizeInMB = 5
	return internalConfig
}

func newReportTestRouter(usecase *MockReportUsecase) *chi.Mux {
	controller := NewReportController(zap.NewNop(), usecase, reportControllerTestConfig())
	router := chi.NewRouter()
	router.Post("/admin-generate-report/{patient_id}", controller.GenerateReport)
	return router
}

// generateReportForm builds the multipart body the admin panel submits. Parts
// listed in photoFields carry JPEG bytes under that field name.
func generateReportForm(t *testing.T, photoFields ...string) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	require.NoError(t, writer.WriteField("dermoscopeFindings", "irregular pigment network"))
	require.NoError(t, writer.WriteField("clinicalImpression", "suspicious naevus, excision advised"))
	require.NoError(t, writer.WriteField("digitalSignature", "Dr. Admin"))

	for _, field := range photoFields {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+field+`.jpg"`)
		header.Set(constvars.HeaderContentType, constvars.MIMEImageJPEG)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader([]byte("edited-photo-bytes")))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestReportController_GenerateReport(t *testing.T) {
	caseID := primitive.NewObjectID()

	t.Run("Both edited photos reach the usecase", func(t *testing.T) {
		mockUsecase := new(MockReportUsecase)
		router := newReportTestRouter(mockUsecase)

		issued := &models.Report{ID: primitive.NewObjectID(), Patient: caseID}
		mockUsecase.On("GenerateReport",
			mock.Anything,
			caseID.Hex(),
			mock.MatchedBy(func(request *requests.GenerateReport) bool {
				return request.DermoscopeFindings == "irregular pigment network" &&
					request.ClinicalImpression == "suspicious naevus, excision advised"
			}),
			mock.MatchedBy(func(file *requests.FileUpload) bool {
				return file != nil && file.FieldName == "editedNakedEyePhoto"
			}),
			mock.MatchedBy(func(file *requests.FileUpload) bool {
				return file != nil && file.FieldName == "editedDermoscopePhoto"
			}),
		).Return(issued, nil)

		body, contentType := generateReportForm(t, "editedNakedEyePhoto", "editedDermoscopePhoto")
		request := httptest.NewRequest(http.MethodPost, "/admin-generate-report/"+caseID.Hex(), body)
		request.Header.Set(constvars.HeaderContentType, contentType)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusCreated, recorder.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Missing naked-eye photo is rejected before the usecase runs", func(t *testing.T) {
		mockUsecase := new(MockReportUsecase)
		router := newReportTestRouter(mockUsecase)

		body, contentType := generateReportForm(t, "editedDermoscopePhoto")
		request := httptest.NewRequest(http.MethodPost, "/admin-generate-report/"+caseID.Hex(), body)
		request.Header.Set(constvars.HeaderContentType, contentType)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusBadRequest, recorder.Code)
		mockUsecase.AssertNotCalled(t, "GenerateReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing dermoscope photo is rejected before the usecase runs", func(t *testing.T) {
		mockUsecase := new(MockReportUsecase)
		router := newReportTestRouter(mockUsecase)

		body, contentType := generateReportForm(t, "editedNakedEyePhoto")
		request := httptest.NewRequest(http.MethodPost, "/admin-generate-report/"+caseID.Hex(), body)
		request.Header.Set(constvars.HeaderContentType, contentType)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusBadRequest, recorder.Code)
		mockUsecase.AssertNotCalled(t, "GenerateReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing findings fail validation", func(t *testing.T) {
		mockUsecase := new(MockReportUsecase)
		router := newReportTestRouter(mockUsecase)

		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField("clinicalImpression", "suspicious naevus"))
		require.NoError(t, writer.Close())

		request := httptest.NewRequest(http.MethodPost, "/admin-generate-report/"+caseID.Hex(), body)
		request.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, constvars.StatusBadRequest, recorder.Code)
		mockUsecase.AssertNotCalled(t, "GenerateReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
