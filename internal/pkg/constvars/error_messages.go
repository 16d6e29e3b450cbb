package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"numeric":  "must be a number",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"eqfield":  "must match %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"oneof":   true,
	"gt":      true,
	"gte":     true,
	"eqfield": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientUpstreamFailure               = "an external service we depend on failed, please retry"

	ErrClientEmailAlreadyRegistered = "a doctor with this email already exists"
	ErrClientOtpInvalid             = "invalid or expired OTP"
	ErrClientDoctorNotFound         = "doctor not found, please sign up"
	ErrClientInvalidCredentials     = "invalid credentials"
	ErrClientNotAuthorized          = "you can't access this feature"
	ErrClientNotLoggedIn            = "your session ended, please login again"
	ErrClientOldPasswordIncorrect   = "incorrect old password"
	ErrClientPasswordsDoNotMatch    = "passwords do not match"
	ErrClientResetTokenInvalid      = "invalid or expired token"
	ErrClientResetTokenExpired      = "token has expired, please request a new one"

	ErrClientCaseNotFound        = "patient not found"
	ErrClientReportNotFound      = "report not found"
	ErrClientInvalidImageUpload  = "the image you uploaded does not meet the specified standards"
	ErrClientPaymentNotCompleted = "payment not completed"
	ErrClientPaymentSignature    = "invalid payment signature"
	ErrClientPaymentConflict     = "payment already recorded for this patient"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevValidationFailed         = "validation failed"
	ErrDevImageValidationFailed    = "image validation failed"
	ErrDevURLParamValidationFailed = "parameter %s validation failed"
	ErrDevServerDeadlineExceeded   = "the server process exceeded its deadline"
	ErrDevServerProcess            = "unexpected server error"

	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevEmailAlreadyExists   = "email already exists"
	ErrDevOtpNotMatch          = "otp record missing or code does not match"
	ErrDevOtpGenerate          = "failed to generate otp code"
	ErrDevDoctorNotExists      = "doctor not exists in our system"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevOldPasswordMismatch  = "old password does not match stored hash"
	ErrDevPasswordsDoNotMatch  = "new password and confirmation differ"
	ErrDevResetTokenNotFound   = "no doctor holds the supplied reset token"
	ErrDevResetTokenExpired    = "reset token past its expiry"

	ErrDevAuthTokenMissing          = "authentication token missing from cookie, body and bearer header"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthGenerateToken         = "failed to generate and sign authentication token"
	ErrDevRoleTypeDoesntMatch       = "request done by account with a different role"

	ErrDevCaseNotExists         = "patient case not exists or not owned by caller"
	ErrDevReportNotExists       = "report not exists"
	ErrDevPaymentNotCompleted   = "report generation attempted before payment completion"
	ErrDevPaymentBadSignature   = "recomputed HMAC does not match supplied signature"
	ErrDevPaymentAlreadyApplied = "case already completed with a different payment id"

	// MongoDB
	ErrDevDBFailedToFindDocument   = "failed to find document from mongo database"
	ErrDevDBFailedToInsertDocument = "failed to insert document to mongo database"
	ErrDevDBFailedToUpdateDocument = "failed to update document in mongo database"
	ErrDevDBFailedToDeleteDocument = "failed to delete document from mongo database"
	ErrDevDBFailedIterateDocuments = "failed to iterate documents from mongo database"
	ErrDevDBStringNotObjectID      = "string cannot be converted to mongo ObjectID"

	// Redis
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// Collaborators
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevSMTPSendEmail             = "failed to send email via SMTP client hostname %s"
	ErrDevRabbitMQPublishMessage    = "failed to publish message to queue %s"
	ErrDevGatewayCreateOrder        = "failed to create order on payment gateway"
	ErrDevImageAnnotationFailed     = "failed to annotate image from source url"
)
