package utils

import (
	"dermref-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeSendOtpRequest(request *requests.SendOtp) {
	request.Email = SanitizeEmail(request.Email)
}

func SanitizeVerifyOtpRequest(request *requests.VerifyOtp) {
	request.Firstname = strings.TrimSpace(request.Firstname)
	request.Lastname = strings.TrimSpace(request.Lastname)
	request.Email = SanitizeEmail(request.Email)
	request.Phone = strings.TrimSpace(request.Phone)
	request.HowDoYouKnowAdmin = strings.TrimSpace(request.HowDoYouKnowAdmin)
	request.Otp = strings.TrimSpace(request.Otp)
}

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = SanitizeEmail(request.Email)
}

func SanitizeForgotPasswordRequest(request *requests.ForgotPassword) {
	request.Email = SanitizeEmail(request.Email)
}

func SanitizeCreateCaseRequest(request *requests.CreateCase) {
	request.Firstname = strings.TrimSpace(request.Firstname)
	request.Lastname = strings.TrimSpace(request.Lastname)
	request.Gender = strings.ToLower(strings.TrimSpace(request.Gender))
	request.Duration = strings.TrimSpace(request.Duration)
	request.SiteOfInfection = strings.TrimSpace(request.SiteOfInfection)
	request.PreviousTreatment = strings.TrimSpace(request.PreviousTreatment)
}

func SanitizeGenerateReportRequest(request *requests.GenerateReport) {
	request.DermoscopeFindings = strings.TrimSpace(request.DermoscopeFindings)
	request.ClinicalImpression = strings.TrimSpace(request.ClinicalImpression)
	request.DigitalSignature = strings.TrimSpace(request.DigitalSignature)
	request.AnnotationLabel = strings.TrimSpace(request.AnnotationLabel)
}
