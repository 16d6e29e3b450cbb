package contracts

import (
	"context"

	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/dto/responses"
)

type PaymentGatewayClient interface {
	CreateOrder(ctx context.Context, request *requests.GatewayOrder) (*responses.GatewayOrder, error)
}

type PaymentUsecase interface {
	CreateOrder(ctx context.Context, request *requests.CreatePayment) (*responses.CreateOrder, error)
	VerifyAndApply(ctx context.Context, request *requests.VerifyPayment) error
}
