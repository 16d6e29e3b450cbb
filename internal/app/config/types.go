package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
		SMTP     SMTP
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
		Enabled  bool
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
)

type (
	InternalConfig struct {
		App            App
		JWT            JWT
		OTP            OTP
		ResetPassword  ResetPassword
		PaymentGateway PaymentGateway
		Mailer         Mailer
	}

	App struct {
		Env                        string
		Port                       string
		Timezone                   string
		EndpointPrefix             string
		FrontendBaseUrl            string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
		UploadMaxSizeInMB          int64
	}

	JWT struct {
		Secret              string
		ExpTimeInHour       int
		CookieExpTimeInHour int
	}

	OTP struct {
		Length          int
		ExpTimeInMinute int
	}

	ResetPassword struct {
		ExpTimeInMinute int
	}

	PaymentGateway struct {
		BaseUrl          string
		KeyID            string
		KeySecret        string
		Currency         string
		TimeoutInSeconds int
	}

	Mailer struct {
		Queue       string
		EmailSender string
	}
)
