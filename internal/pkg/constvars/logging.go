package constvars

const (
	LoggingRequestIDKey = "request_id"
	LoggingDoctorIDKey  = "doctor_id"
	LoggingCaseIDKey    = "case_id"
	LoggingReportIDKey  = "report_id"
	LoggingEmailKey     = "email"
	LoggingOrderIDKey   = "order_id"
	LoggingPaymentIDKey = "payment_id"
)
