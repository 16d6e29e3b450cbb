package contracts

import (
	"context"
	"time"

	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/dto/responses"
)

type OtpRepository interface {
	SaveOtp(ctx context.Context, email, code string, exp time.Duration) error
	GetOtp(ctx context.Context, email string) (string, error)
	DeleteOtp(ctx context.Context, email string) error
}

type AuthUsecase interface {
	SendOtp(ctx context.Context, request *requests.SendOtp) error
	VerifyOtpAndRegister(ctx context.Context, request *requests.VerifyOtp) (*responses.Register, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	ChangePassword(ctx context.Context, doctorID string, request *requests.ChangePassword) error
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
}
