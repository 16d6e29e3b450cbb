package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Auth messages
	OtpSentSuccess        = "OTP sent successfully"
	SignupSuccess         = "signup successful"
	LoginSuccess          = "user login success"
	ChangePasswordSuccess = "password changed successfully"
	ForgotPasswordSuccess = "password reset email sent successfully"
	ResetPasswordSuccess  = "password reset successfully"

	// Case messages
	CaseCreatedSuccess           = "patient created successfully"
	CasesFetchedSuccess          = "patients fetched successfully"
	CaseDetailsSuccess           = "patient details fetched successfully"
	CaseDetailsWithReportSuccess = "patient details with report fetched successfully"

	// Report messages
	ReportGeneratedSuccess = "report generated successfully"
	ReportsFetchedSuccess  = "reports fetched successfully"
	ReportFetchedSuccess   = "report fetched successfully"

	// Payment messages
	PaymentOrderCreatedSuccess = "payment order created successfully"
	PaymentVerifiedSuccess     = "payment verified and patient updated"

	// Qualification messages
	QualificationUploadSuccess = "qualification uploaded successfully"
)
