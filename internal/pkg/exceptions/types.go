package exceptions

import (
	"dermref-service/internal/pkg/constvars"
	"fmt"
)

var (
	// Input and parsing
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrImageValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidImageUpload, constvars.ErrDevImageValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamValidationFailed, paramName))
	}

	// Registration and authentication
	ErrEmailAlreadyExist = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientEmailAlreadyRegistered, constvars.ErrDevEmailAlreadyExists)
	}
	ErrOtpInvalid = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientOtpInvalid, constvars.ErrDevOtpNotMatch)
	}
	ErrOtpGenerate = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevOtpGenerate)
	}
	ErrHashPassword = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrDoctorNotExist = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientDoctorNotFound, constvars.ErrDevDoctorNotExists)
	}
	ErrInvalidCredentials = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientInvalidCredentials, constvars.ErrDevInvalidCredentials)
	}
	ErrOldPasswordMismatch = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientOldPasswordIncorrect, constvars.ErrDevOldPasswordMismatch)
	}
	ErrPasswordsDoNotMatch = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientPasswordsDoNotMatch, constvars.ErrDevPasswordsDoNotMatch)
	}
	ErrResetTokenInvalid = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientResetTokenInvalid, constvars.ErrDevResetTokenNotFound)
	}
	ErrResetTokenExpired = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientResetTokenExpired, constvars.ErrDevResetTokenExpired)
	}

	// Session tokens and roles
	ErrTokenMissing = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrNotMatchRoleType = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevRoleTypeDoesntMatch)
	}

	// Cases, reports and payments
	ErrCaseNotExist = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientCaseNotFound, constvars.ErrDevCaseNotExists)
	}
	ErrReportNotExist = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientReportNotFound, constvars.ErrDevReportNotExists)
	}
	ErrPaymentNotCompleted = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientPaymentNotCompleted, constvars.ErrDevPaymentNotCompleted)
	}
	ErrPaymentSignatureInvalid = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientPaymentSignature, constvars.ErrDevPaymentBadSignature)
	}
	ErrPaymentAlreadyApplied = func(err error) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientPaymentConflict, constvars.ErrDevPaymentAlreadyApplied)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedIterateDocuments)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisGet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}

	// Collaborators
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamFailure, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrSMTPSendEmail = func(err error, hostname string) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamFailure, fmt.Sprintf(constvars.ErrDevSMTPSendEmail, hostname))
	}
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamFailure, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
	ErrGatewayCreateOrder = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamFailure, constvars.ErrDevGatewayCreateOrder)
	}
	ErrImageAnnotation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamFailure, constvars.ErrDevImageAnnotationFailed)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// Default server
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)
