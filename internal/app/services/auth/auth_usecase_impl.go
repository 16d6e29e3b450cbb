package auth

import (
	"context"
	"fmt"
	"time"

	"dermref-service/internal/app/config"
	"dermref-service/internal/app/contracts"
	"dermref-service/internal/app/models"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/dto/responses"
	"dermref-service/internal/pkg/exceptions"
	"dermref-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	Log              *zap.Logger
	DoctorRepository contracts.DoctorRepository
	OtpRepository    contracts.OtpRepository
	MailerService    contracts.MailerService
	InternalConfig   *config.InternalConfig
}

func NewAuthUsecase(
	logger *zap.Logger,
	doctorRepository contracts.DoctorRepository,
	otpRepository contracts.OtpRepository,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &authUsecase{
		Log:              logger,
		DoctorRepository: doctorRepository,
		OtpRepository:    otpRepository,
		MailerService:    mailerService,
		InternalConfig:   internalConfig,
	}
}

func (uc *authUsecase) SendOtp(ctx context.Context, request *requests.SendOtp) error {
	// Reject emails that already belong to an account
	existingDoctor, err := uc.DoctorRepository.FindDoctorByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if existingDoctor != nil {
		return exceptions.ErrEmailAlreadyExist(nil)
	}

	code, err := utils.GenerateOTP(uc.InternalConfig.OTP.Length)
	if err != nil {
		return exceptions.ErrOtpGenerate(err)
	}

	exp := time.Duration(uc.InternalConfig.OTP.ExpTimeInMinute) * time.Minute
	err = uc.OtpRepository.SaveOtp(ctx, request.Email, code, exp)
	if err != nil {
		return err
	}

	payload := &requests.EmailPayload{
		To:       request.Email,
		Subject:  constvars.EmailOtpSubject,
		HTMLBody: fmt.Sprintf(constvars.EmailOtpHTMLBodyFormat, code, uc.InternalConfig.OTP.ExpTimeInMinute),
	}
	err = uc.MailerService.SendEmail(ctx, payload)
	if err != nil {
		return err
	}

	uc.Log.Info("authUsecase.SendOtp verification code issued",
		zap.String(constvars.LoggingEmailKey, request.Email),
	)
	return nil
}

func (uc *authUsecase) VerifyOtpAndRegister(ctx context.Context, request *requests.VerifyOtp) (*responses.Register, error) {
	existingDoctor, err := uc.DoctorRepository.FindDoctorByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingDoctor != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	storedCode, err := uc.OtpRepository.GetOtp(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if storedCode == "" || storedCode != request.Otp {
		return nil, exceptions.ErrOtpInvalid(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	doctor := &models.Doctor{
		Firstname:         request.Firstname,
		Lastname:          request.Lastname,
		Email:             request.Email,
		Phone:             request.Phone,
		Password:          hashedPassword,
		Age:               request.Age,
		QualificationPic:  request.QualificationPic,
		Role:              models.RoleDoctor,
		HowDoYouKnowAdmin: request.HowDoYouKnowAdmin,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}

	// Codes are single use
	err = uc.OtpRepository.DeleteOtp(ctx, request.Email)
	if err != nil {
		uc.Log.Warn("authUsecase.VerifyOtpAndRegister cannot delete used code",
			zap.String(constvars.LoggingEmailKey, request.Email),
			zap.Error(err),
		)
	}

	uc.Log.Info("authUsecase.VerifyOtpAndRegister doctor registered",
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return &responses.Register{DoctorID: doctorID}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	doctor, err := uc.DoctorRepository.FindDoctorByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	if !utils.CheckPasswordHash(request.Password, doctor.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	expTime := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateSessionJWT(doctor.ID.Hex(), doctor.Role, uc.InternalConfig.JWT.Secret, expTime)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &responses.Login{
		Token:  token,
		Doctor: doctor,
	}, nil
}

func (uc *authUsecase) ChangePassword(ctx context.Context, doctorID string, request *requests.ChangePassword) error {
	doctor, err := uc.DoctorRepository.FindDoctorByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotExist(nil)
	}

	if !utils.CheckPasswordHash(request.OldPassword, doctor.Password) {
		return exceptions.ErrOldPasswordMismatch(nil)
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	doctor.Password = hashedPassword
	doctor.UpdatedAt = time.Now()
	return uc.DoctorRepository.UpdateDoctor(ctx, doctor)
}

func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	doctor, err := uc.DoctorRepository.FindDoctorByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotExist(nil)
	}

	resetToken, err := utils.GenerateResetToken()
	if err != nil {
		return exceptions.ErrServerProcess(err)
	}

	expiresAt := time.Now().Add(time.Duration(uc.InternalConfig.ResetPassword.ExpTimeInMinute) * time.Minute)
	doctor.ResetToken = resetToken
	doctor.ResetPasswordExpires = &expiresAt
	doctor.UpdatedAt = time.Now()

	err = uc.DoctorRepository.UpdateDoctor(ctx, doctor)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/update-password/%s", uc.InternalConfig.App.FrontendBaseUrl, resetToken)
	payload := &requests.EmailPayload{
		To:       doctor.Email,
		Subject:  constvars.EmailResetPasswordSubject,
		HTMLBody: fmt.Sprintf(constvars.EmailResetPasswordHTMLBodyFormat, resetLink, resetLink),
	}
	return uc.MailerService.SendEmail(ctx, payload)
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	if request.Password != request.ConfirmPassword {
		return exceptions.ErrPasswordsDoNotMatch(nil)
	}

	doctor, err := uc.DoctorRepository.FindDoctorByResetToken(ctx, request.Token)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrResetTokenInvalid(nil)
	}

	if doctor.ResetPasswordExpires == nil || time.Now().After(*doctor.ResetPasswordExpires) {
		return exceptions.ErrResetTokenExpired(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	doctor.Password = hashedPassword
	doctor.ResetToken = ""
	doctor.ResetPasswordExpires = nil
	doctor.UpdatedAt = time.Now()
	return uc.DoctorRepository.UpdateDoctor(ctx, doctor)
}
