package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"dermref-service/internal/app/config"
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

type MockGatewayClient struct {
	mock.Mock
}

func (m *MockGatewayClient) CreateOrder(ctx context.Context, request *requests.GatewayOrder) (*responses.GatewayOrder, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.GatewayOrder), args.Error(1)
}

func paymentTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		PaymentGateway: config.PaymentGateway{
			KeyID:     "rzp_test_key",
			KeySecret: "rzp_test_secret",
			Currency:  "INR",
		},
	}
}

func asCustomError(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr
}

func TestPaymentUsecase_CreateOrder(t *testing.T) {
	doctorID := primitive.NewObjectID()
	caseID := primitive.NewObjectID()

	t.Run("Creates gateway order in smallest currency unit", func(t *testing.T) {
		mockDoctorRepo := new(MockDoctorRepository)
		mockCaseRepo := new(MockCaseRepository)
		mockGateway := new(MockGatewayClient)
		usecase := NewPaymentUsecase(zap.NewNop(), mockCaseRepo, mockDoctorRepo, mockGateway, paymentTestConfig())

		mockDoctorRepo.On("FindDoctorByID", mock.Anything, doctorID.Hex()).
			Return(&models.Doctor{ID: doctorID}, nil)
		mockCaseRepo.On("FindCaseByID", mock.Anything, caseID.Hex()).
			Return(&models.PatientCase{ID: caseID, Doctor: doctorID}, nil)
		mockGateway.On("CreateOrder", mock.Anything, &requests.GatewayOrder{
			Amount:   500 * constvars.PaymentSmallestUnitFactor,
			Currency: "INR",
			Receipt:  "receipt_" + caseID.Hex(),
		}).Return(&responses.GatewayOrder{
			ID:       "order_123",
			Amount:   500 * constvars.PaymentSmallestUnitFactor,
			Currency: "INR",
			Status:   "created",
		}, nil)

		order, err := usecase.CreateOrder(context.Background(), &requests.CreatePayment{
			DoctorID:  doctorID.Hex(),
			PatientID: caseID.Hex(),
			Amount:    500,
		})

		require.NoError(t, err)
		assert.Equal(t, "order_123", order.OrderID)
		assert.Equal(t, int64(500*constvars.PaymentSmallestUnitFactor), order.Amount)
		assert.Equal(t, caseID.Hex(), order.PatientID)
		mockGateway.AssertExpectations(t)
	})

	t.Run("Unknown doctor is rejected", func(t *testing.T) {
		mockDoctorRepo := new(MockDoctorRepository)
		mockCaseRepo := new(MockCaseRepository)
		mockGateway := new(MockGatewayClient)
		usecase := NewPaymentUsecase(zap.NewNop(), mockCaseRepo, mockDoctorRepo, mockGateway, paymentTestConfig())

		mockDoctorRepo.On("FindDoctorByID", mock.Anything, doctorID.Hex()).Return(nil, nil)

		order, err := usecase.CreateOrder(context.Background(), &requests.CreatePayment{
			DoctorID:  doctorID.Hex(),
			PatientID: caseID.Hex(),
			Amount:    500,
		})

		assert.Nil(t, order)
		assert.Equal(t, constvars.StatusNotFound, asCustomError(t, err).StatusCode)
		mockGateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("Unknown case is rejected", func(t *testing.T) {
		mockDoctorRepo := new(MockDoctorRepository)
		mockCaseRepo := new(MockCaseRepository)
		mockGateway := new(MockGatewayClient)
		usecase := NewPaymentUsecase(zap.NewNop(), mockCaseRepo, mockDoctorRepo, mockGateway, paymentTestConfig())

		mockDoctorRepo.On("FindDoctorByID", mock.Anything, doctorID.Hex()).
			Return(&models.Doctor{ID: doctorID}, nil)
		mockCaseRepo.On("FindCaseByID", mock.Anything, caseID.Hex()).Return(nil, nil)

		order, err := usecase.CreateOrder(context.Background(), &requests.CreatePayment{
			DoctorID:  doctorID.Hex(),
			PatientID: caseID.Hex(),
			Amount:    500,
		})

		assert.Nil(t, order)
		assert.Equal(t, constvars.ErrClientCaseNotFound, asCustomError(t, err).ClientMessage)
	})

	t.Run("Gateway failure is propagated", func(t *testing.T) {
		mockDoctorRepo := new(MockDoctorRepository)
		mockCaseRepo := new(MockCaseRepository)
		mockGateway := new(MockGatewayClient)
		usecase := NewPaymentUsecase(zap.NewNop(), mockCaseRepo, mockDoctorRepo, mockGateway, paymentTestConfig())

		mockDoctorRepo.On("FindDoctorByID", mock.Anything, doctorID.Hex()).
			Return(&models.Doctor{ID: doctorID}, nil)
		mockCaseRepo.On("FindCaseByID", mock.Anything, caseID.Hex()).
			Return(&models.PatientCase{ID: caseID, Doctor: doctorID}, nil)
		mockGateway.On("CreateOrder", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrGatewayCreateOrder(errors.New("gateway returned status 502")))

		order, err := usecase.CreateOrder(context.Background(), &requests.CreatePayment{
			DoctorID:  doctorID.Hex(),
			PatientID: caseID.Hex(),
			Amount:    500,
		})

		assert.Nil(t, order)
		assert.Equal(t, constvars.StatusBadGateway, asCustomError(t, err).StatusCode)
	})
}

func TestPaymentUsecase_VerifyAndApply(t *testing.T) {
	caseID := primitive.NewObjectID()
	secret := "rzp_test_secret"

	validRequest := func() *requests.VerifyPayment {
		return &requests.VerifyPayment{
			OrderID:   "order_123",
			PaymentID: "pay_456",
			Signature: ComputeSignature("order_123", "pay_456", secret),
			PatientID: caseID.Hex(),
			Amount:    50000,
		}
	}

	t.Run("Invalid signature is rejected before any lookup", func(t *testing.T) {
		mockCaseRepo := new(MockCaseRepository)
		usecase := NewPaymentUsecase(zap.NewNop(), mockCaseRepo, new(MockDoctorRepository), new(MockGatewayClient), paymentTestConfig())

		request := validRequest()
		request.Signature = ComputeSignature("order_123", "pay_456", "wrong-secret")

		err := usecase.VerifyAndApply(context.Background(), request)

		assert.Equal(t, constvars.ErrClientPaymentSignature, asCustomError(t, err).ClientMessage)
		mockCaseRepo.AssertNotCalled(t, "FindCaseByID", mock.Anything, mock.Anything)
	})

	t.Run("Unknown case is rejected", func(t *testing.T) {
		mockCaseRepo := new(MockCaseRepository)
		usecase := NewPaymentUsecase(zap.NewNop(), mockCaseRepo, new(MockDoctorRepository), new(MockGatewayClient), paymentTestConfig())

		mockCaseRepo.On("FindCaseByID", mock.Anything, caseID.Hex()).Return(nil, nil)

		err := usecase.VerifyAndApply(context.Background(), validRequest())

		assert.Equal(t, constvars.ErrClientCaseNotFound, asCustomError(t, err).ClientMessage)
	})

	t.Run("First valid callback settles the case", func(t *testing.T) {
		mockCaseRepo := new(MockCaseRepository)
		usecase := NewPaymentUsecase(zap.NewNop(), mockCaseRepo, new(MockDoctorRepository), new(MockGatewayClient), paymentTestConfig())

		mockCaseRepo.On("FindCaseByID", mock.Anything, caseID.Hex()).
			Return(&models.PatientCase{ID: caseID, PaymentStatus: models.PaymentStatusPending}, nil)
		mockCaseRepo.On("UpdateCasePaymentCompleted", mock.Anything, caseID.Hex(), "pay_456", int64(50000), mock.AnythingOfType("time.Time")).
			Return(nil)

		err := usecase.VerifyAndApply(context.Background(), validRequest())

		assert.NoError(t, err)
		mockCaseRepo.AssertExpectations(t)
	})

	t.Run("Identical retry is a no-op", func(t *testing.T) {
		mockCaseRepo := new(MockCaseRepository)
		usecase := NewPaymentUsecase(zap.NewNop(), mockCaseRepo, new(MockDoctorRepository), new(MockGatewayClient), paymentTestConfig())

		mockCaseRepo.On("FindCaseByID", mock.Anything, caseID.Hex()).
			Return(&models.PatientCase{
				ID:            caseID,
				PaymentStatus: models.PaymentStatusCompleted,
				PaymentID:     "pay_456",
			}, nil)

		err := usecase.VerifyAndApply(context.Background(), validRequest())

		assert.NoError(t, err)
		mockCaseRepo.AssertNotCalled(t, "UpdateCasePaymentCompleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Different payment against a settled case is rejected", func(t *testing.T) {
		mockCaseRepo := new(MockCaseRepository)
		usecase := NewPaymentUsecase(zap.NewNop(), mockCaseRepo, new(MockDoctorRepository), new(MockGatewayClient), paymentTestConfig())

		mockCaseRepo.On("FindCaseByID", mock.Anything, caseID.Hex()).
			Return(&models.PatientCase{
				ID:            caseID,
				PaymentStatus: models.PaymentStatusCompleted,
				PaymentID:     "pay_other",
			}, nil)

		err := usecase.VerifyAndApply(context.Background(), validRequest())

		assert.Equal(t, constvars.ErrClientPaymentConflict, asCustomError(t, err).ClientMessage)
		mockCaseRepo.AssertNotCalled(t, "UpdateCasePaymentCompleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
