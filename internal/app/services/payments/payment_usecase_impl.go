package payments

import (
	"context"
	"time"

	"dermref-service/internal/app/config"
	"dermref-service/internal/app/contracts"
	"dermref-service/internal/app/models"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/dto/responses"
	"dermref-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	Log              *zap.Logger
	CaseRepository   contracts.CaseRepository
	DoctorRepository contracts.DoctorRepository
	GatewayClient    contracts.PaymentGatewayClient
	InternalConfig   *config.InternalConfig
}

func NewPaymentUsecase(
	logger *zap.Logger,
	caseRepository contracts.CaseRepository,
	doctorRepository contracts.DoctorRepository,
	gatewayClient contracts.PaymentGatewayClient,
	internalConfig *config.InternalConfig,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		Log:              logger,
		CaseRepository:   caseRepository,
		DoctorRepository: doctorRepository,
		GatewayClient:    gatewayClient,
		InternalConfig:   internalConfig,
	}
}

func (uc *paymentUsecase) CreateOrder(ctx context.Context, request *requests.CreatePayment) (*responses.CreateOrder, error) {
	doctor, err := uc.DoctorRepository.FindDoctorByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	patientCase, err := uc.CaseRepository.FindCaseByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patientCase == nil {
		return nil, exceptions.ErrCaseNotExist(nil)
	}

	gatewayOrder := &requests.GatewayOrder{
		Amount:   request.Amount * constvars.PaymentSmallestUnitFactor,
		Currency: uc.InternalConfig.PaymentGateway.Currency,
		Receipt:  "receipt_" + request.PatientID,
	}

	order, err := uc.GatewayClient.CreateOrder(ctx, gatewayOrder)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("paymentUsecase.CreateOrder order created",
		zap.String(constvars.LoggingOrderIDKey, order.ID),
		zap.String(constvars.LoggingCaseIDKey, request.PatientID),
	)

	return &responses.CreateOrder{
		OrderID:   order.ID,
		Amount:    order.Amount,
		Currency:  order.Currency,
		PatientID: request.PatientID,
	}, nil
}

// VerifyAndApply settles a gateway callback. The first valid callback wins;
// an identical retry is a no-op and a different payment against an already
// settled case is rejected.
func (uc *paymentUsecase) VerifyAndApply(ctx context.Context, request *requests.VerifyPayment) error {
	if !VerifySignature(request.OrderID, request.PaymentID, uc.InternalConfig.PaymentGateway.KeySecret, request.Signature) {
		return exceptions.ErrPaymentSignatureInvalid(nil)
	}

	patientCase, err := uc.CaseRepository.FindCaseByID(ctx, request.PatientID)
	if err != nil {
		return err
	}
	if patientCase == nil {
		return exceptions.ErrCaseNotExist(nil)
	}

	if patientCase.PaymentStatus == models.PaymentStatusCompleted {
		if patientCase.PaymentID == request.PaymentID {
			return nil
		}
		return exceptions.ErrPaymentAlreadyApplied(nil)
	}

	err = uc.CaseRepository.UpdateCasePaymentCompleted(ctx, request.PatientID, request.PaymentID, request.Amount, time.Now())
	if err != nil {
		return err
	}

	uc.Log.Info("paymentUsecase.VerifyAndApply payment applied",
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
		zap.String(constvars.LoggingPaymentIDKey, request.PaymentID),
		zap.String(constvars.LoggingCaseIDKey, request.PatientID),
	)
	return nil
}
