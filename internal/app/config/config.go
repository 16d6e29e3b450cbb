package config

import (
	"dermref-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "dermref"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", ""),
			Password:   utils.GetEnvString("MINIO_PASSWORD", ""),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "dermref"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			FrontendBaseUrl:            utils.GetEnvString("APP_FRONTEND_BASE_URL", "http://localhost:3000"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 12),
			UploadMaxSizeInMB:          utils.GetEnvInt64("APP_UPLOAD_MAX_SIZE_IN_MB", 5),
		},
		JWT: JWT{
			Secret:              utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour:       utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
			CookieExpTimeInHour: utils.GetEnvInt("JWT_COOKIE_EXP_TIME_IN_HOUR", 72),
		},
		OTP: OTP{
			Length:          utils.GetEnvInt("OTP_LENGTH", 6),
			ExpTimeInMinute: utils.GetEnvInt("OTP_EXP_TIME_IN_MINUTE", 5),
		},
		ResetPassword: ResetPassword{
			ExpTimeInMinute: utils.GetEnvInt("RESET_PASSWORD_EXP_TIME_IN_MINUTE", 60),
		},
		PaymentGateway: PaymentGateway{
			BaseUrl:          utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://api.razorpay.com/v1"),
			KeyID:            utils.GetEnvString("PAYMENT_GATEWAY_KEY_ID", ""),
			KeySecret:        utils.GetEnvString("PAYMENT_GATEWAY_KEY_SECRET", ""),
			Currency:         utils.GetEnvString("PAYMENT_GATEWAY_CURRENCY", "INR"),
			TimeoutInSeconds: utils.GetEnvInt("PAYMENT_GATEWAY_TIMEOUT_IN_SECONDS", 15),
		},
		Mailer: Mailer{
			Queue:       utils.GetEnvString("MAILER_QUEUE", "mailer_queue"),
			EmailSender: utils.GetEnvString("MAILER_EMAIL_SENDER", ""),
		},
	}
}
