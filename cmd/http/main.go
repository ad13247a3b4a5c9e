package main

import (
	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/delivery/http/controllers"
	"clinicdesk-service/internal/app/delivery/http/middlewares"
	"clinicdesk-service/internal/app/delivery/http/routers"
	"clinicdesk-service/internal/app/drivers/database"
	"clinicdesk-service/internal/app/drivers/logger"
	"clinicdesk-service/internal/app/services/core/bills"
	"clinicdesk-service/internal/app/services/core/history"
	"clinicdesk-service/internal/app/services/core/patients"
	"clinicdesk-service/internal/app/services/core/prescriptions"
	"clinicdesk-service/internal/app/services/core/tokens"
	"clinicdesk-service/internal/app/services/core/webhook"
	"clinicdesk-service/internal/app/services/shared/locker"
	"clinicdesk-service/internal/app/services/shared/payment_gateway"
	sharedredis "clinicdesk-service/internal/app/services/shared/redis"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	requestLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("failed to load timezone", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap, requestLog)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed to start", zap.Error(err))
		}
	}()
	zapLogger.Info("server started", zap.String("addr", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	requestLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server forced to shutdown", zap.Error(err))
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("failed to close dependencies", zap.Error(err))
	}

	requestLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, requestLog *logrus.Logger) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	paymentGateway := payment_gateway.NewStripeService(bootstrap.InternalConfig)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Repositories
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	prescriptionRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoDB, dbName)
	billRepository := bills.NewBillMongoRepository(bootstrap.MongoDB, dbName)
	historyRepository := history.NewHistoryMongoRepository(bootstrap.MongoDB, dbName)

	// Patient
	patientUsecase := patients.NewPatientUsecase(patientRepository, prescriptionRepository, bootstrap.Logger)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase)

	// Token
	tokenSequencer := tokens.NewTokenSequencer(patientRepository)
	tokenController := controllers.NewTokenController(bootstrap.Logger, tokenSequencer)

	// Prescription
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionRepository, patientRepository)
	prescriptionController := controllers.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase)

	// History / archival
	archiveService := history.NewHistoryUsecase(historyRepository, patientRepository, prescriptionRepository)
	historyController := controllers.NewHistoryController(bootstrap.Logger, archiveService)

	// Bill
	cascadeDeleter := bills.NewCascadeCoordinator(billRepository, patientRepository, prescriptionRepository, bootstrap.Logger)
	billUsecase := bills.NewBillUsecase(
		billRepository,
		patientRepository,
		archiveService,
		paymentGateway,
		cascadeDeleter,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	billController := controllers.NewBillController(bootstrap.Logger, billUsecase)

	// Webhook
	webhookUsecase := webhook.NewWebhookUsecase(paymentGateway, billUsecase, lockerService, bootstrap.Logger)
	webhookController := controllers.NewWebhookController(bootstrap.Logger, webhookUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		requestLog,
		appMiddlewares,
		patientController,
		tokenController,
		prescriptionController,
		billController,
		historyController,
		webhookController,
	)
}
