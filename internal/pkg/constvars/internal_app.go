package constvars

type ContextKey string

const (
	ContextRequestID ContextKey = "requestID"
	ContextDoctorID  ContextKey = "doctorID"
	ContextRole      ContextKey = "role"
)

const (
	MongoCollectionDoctors = "doctors"
	MongoCollectionCases   = "patients"
	MongoCollectionReports = "reports"
)

const (
	RedisOtpKeyPrefix = "otp:"
)

const (
	SessionCookieName = "token"
	BearerTokenPrefix = "Bearer "
)

const (
	StorageFolderCases          = "patients"
	StorageFolderReports        = "reports"
	StorageFolderQualifications = "doctor_qualifications"
)

const (
	PaymentSignatureSeparator = "|"

	// Gateway amounts are expressed in the smallest currency unit.
	PaymentSmallestUnitFactor = 100
)
