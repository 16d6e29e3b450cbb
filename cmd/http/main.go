package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dermref-service/internal/app/config"
	"dermref-service/internal/app/delivery/http/middlewares"
	"dermref-service/internal/app/delivery/http/routers"
	"dermref-service/internal/app/drivers/database"
	"dermref-service/internal/app/drivers/logger"
	driverMailer "dermref-service/internal/app/drivers/mailer"
	"dermref-service/internal/app/drivers/messaging"
	driverStorage "dermref-service/internal/app/drivers/storage"
	"dermref-service/internal/app/services/auth"
	"dermref-service/internal/app/services/cases"
	"dermref-service/internal/app/services/doctors"
	"dermref-service/internal/app/services/payments"
	"dermref-service/internal/app/services/reports"
	"dermref-service/internal/app/services/shared/imaging"
	sharedMailer "dermref-service/internal/app/services/shared/mailer"
	sharedStorage "dermref-service/internal/app/services/shared/storage"
	"dermref-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	accessLog := logger.NewLogrusLogger(internalConfig)
	zapLog := logger.NewZapLogger(driverConfig, internalConfig)

	utils.ConfigureResponseDetail(internalConfig.App.Env)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := driverStorage.NewMinio(driverConfig)

	var rabbitMQ *amqp091.Connection
	if driverConfig.RabbitMQ.Enabled {
		rabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(&bootstrap, accessLog)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown finished with error: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, accessLog *logrus.Logger) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared collaborators
	imageStorage := sharedStorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName, bootstrap.DriverConfig.Minio.UseSSL)
	smtpClient := driverMailer.NewSMTPClient(bootstrap.DriverConfig)
	mailerService, err := sharedMailer.NewMailerService(smtpClient, bootstrap.RabbitMQ, bootstrap.InternalConfig.Mailer.Queue)
	if err != nil {
		log.Fatalf("Failed to initialize mailer service: %v", err)
	}
	annotationService := imaging.NewAnnotationService()

	if bootstrap.RabbitMQ != nil {
		mailWorker, err := sharedMailer.NewMailWorker(bootstrap.RabbitMQ, smtpClient, bootstrap.InternalConfig.Mailer.Queue, bootstrap.Logger)
		if err != nil {
			log.Fatalf("Failed to initialize mail worker: %v", err)
		}
		if err := mailWorker.Start(); err != nil {
			log.Fatalf("Failed to start mail worker: %v", err)
		}
		bootstrap.MailWorkerStop = mailWorker.Stop
	}

	// Doctors
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, imageStorage)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase, bootstrap.InternalConfig)

	// Auth
	otpRepository := auth.NewOtpRedisRepository(bootstrap.Redis)
	authUsecase := auth.NewAuthUsecase(bootstrap.Logger, doctorRepository, otpRepository, mailerService, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	// Cases and reports
	caseRepository := cases.NewCaseMongoRepository(bootstrap.MongoDB, dbName)
	reportRepository := reports.NewReportMongoRepository(bootstrap.MongoDB, dbName)
	caseUsecase := cases.NewCaseUsecase(bootstrap.Logger, caseRepository, reportRepository, imageStorage)
	caseController := cases.NewCaseController(bootstrap.Logger, caseUsecase, bootstrap.InternalConfig)
	reportUsecase := reports.NewReportUsecase(bootstrap.Logger, reportRepository, caseRepository, imageStorage, annotationService)
	reportController := reports.NewReportController(bootstrap.Logger, reportUsecase, bootstrap.InternalConfig)

	// Payments
	gatewayClient := payments.NewGatewayClient(bootstrap.InternalConfig)
	paymentUsecase := payments.NewPaymentUsecase(bootstrap.Logger, caseRepository, doctorRepository, gatewayClient, bootstrap.InternalConfig)
	paymentController := payments.NewPaymentController(bootstrap.Logger, paymentUsecase)

	// Middlewares and routes
	mw := middlewares.NewMiddlewares(bootstrap.Logger, doctorRepository, bootstrap.InternalConfig)
	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		accessLog,
		mw,
		authController,
		doctorController,
		caseController,
		paymentController,
		reportController,
	)
}
