package main

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/delivery/http/routers"
	"hospital-service/internal/app/drivers/database"
	"hospital-service/internal/app/drivers/logger"
	"hospital-service/internal/app/drivers/messaging"
	"hospital-service/internal/app/drivers/rbac"
	"hospital-service/internal/app/drivers/storage"
	"hospital-service/internal/app/services/ai_model"
	"hospital-service/internal/app/services/core/appointments"
	"hospital-service/internal/app/services/core/auth"
	"hospital-service/internal/app/services/core/catalog"
	"hospital-service/internal/app/services/core/doctors"
	"hospital-service/internal/app/services/core/patients"
	"hospital-service/internal/app/services/core/predictions"
	"hospital-service/internal/app/services/core/roles"
	"hospital-service/internal/app/services/core/scheduler"
	"hospital-service/internal/app/services/core/transactions"
	"hospital-service/internal/app/services/core/users"
	"hospital-service/internal/app/services/shared/documents"
	"hospital-service/internal/app/services/shared/locker"
	"hospital-service/internal/app/services/shared/mailer"
	"hospital-service/internal/app/services/shared/mongotx"
	"hospital-service/internal/app/services/shared/payment_gateway"
	"hospital-service/internal/app/services/shared/ratelimiter"
	"hospital-service/internal/app/services/shared/redis"
	minioStorage "hospital-service/internal/app/services/shared/storage"
	"hospital-service/internal/pkg/utils"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig, internalConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := logger.NewZapLogger(driverConfig, internalConfig)
	utils.ConfigureErrorResponses(internalConfig.App.Env)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         logger,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		logger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              ":" + internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       internalConfig.RequestTimeout(),
	}

	go func() {
		logger.Info("Server started", zap.String("port", internalConfig.App.Port), zap.String("version", internalConfig.App.Version))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(internalConfig.App.ShutdownTimeoutInSeconds)*time.Second,
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Failed to close drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	cfg := bootstrap.InternalConfig
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	log := bootstrap.Logger

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, log)
	transactionManager := mongotx.NewTransactionManager(bootstrap.MongoDB, log)
	storageService := minioStorage.NewMinioStorage(bootstrap.Minio)
	documentRenderer := documents.NewDocumentRenderer()
	paymentGateway := payment_gateway.NewRazorpayService(cfg, log)
	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, cfg.RabbitMQ.MailerQueue, log)
	if err != nil {
		return err
	}
	predictionClient := ai_model.NewPredictionClient(
		cfg.AIModelService.URL,
		time.Duration(cfg.AIModelService.TimeoutInSeconds)*time.Second,
	)

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	serviceRepository := catalog.NewServiceMongoRepository(bootstrap.MongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	transactionRepository := transactions.NewTransactionMongoRepository(bootstrap.MongoDB, dbName)

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, repository := range []interface{ EnsureIndexes(context.Context) error }{
		userRepository,
		patientRepository,
		doctorRepository,
		serviceRepository,
		appointmentRepository,
		transactionRepository,
	} {
		if err := repository.EnsureIndexes(indexCtx); err != nil {
			return err
		}
	}

	// Usecases
	roleUsecase := roles.NewRoleUsecase(userRepository, patientRepository, doctorRepository, transactionManager, lockService, cfg, log)
	authUsecase := auth.NewAuthUsecase(userRepository, cfg, log)
	userUsecase := users.NewUserUsecase(userRepository, roleUsecase, log)
	patientUsecase := patients.NewPatientUsecase(patientRepository, roleUsecase, log)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, roleUsecase, log)
	serviceUsecase := catalog.NewServiceUsecase(serviceRepository, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		patientRepository,
		doctorRepository,
		userRepository,
		lockService,
		mailerService,
		cfg,
		log,
	)
	transactionUsecase := transactions.NewTransactionUsecase(
		transactionRepository,
		userRepository,
		paymentGateway,
		storageService,
		mailerService,
		documentRenderer,
		cfg,
		log,
	)
	predictionUsecase := predictions.NewPredictionUsecase(predictionClient, redisRepository, cfg, log)

	// Scheduler
	if cfg.Scheduler.Enabled {
		worker := scheduler.NewWorker(log, cfg, lockService, predictionUsecase, appointmentUsecase)
		if err := worker.Start(context.Background()); err != nil {
			return err
		}
		bootstrap.SchedulerStop = worker.Stop
	}

	// Middlewares
	enforcer, err := rbac.NewEnforcer(log)
	if err != nil {
		return err
	}
	quotaLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	middlewares := middlewares.NewMiddlewares(log, authUsecase, enforcer, quotaLimiter, cfg)

	routers.SetupRoutes(bootstrap.Router, cfg, middlewares, &routers.Controllers{
		Auth:        controllers.NewAuthController(log, authUsecase),
		User:        controllers.NewUserController(log, userUsecase),
		Patient:     controllers.NewPatientController(log, patientUsecase),
		Doctor:      controllers.NewDoctorController(log, doctorUsecase),
		Service:     controllers.NewServiceController(log, serviceUsecase),
		Appointment: controllers.NewAppointmentController(log, appointmentUsecase),
		Payment:     controllers.NewPaymentController(log, transactionUsecase),
		Prediction:  controllers.NewPredictionController(log, predictionUsecase),
	})
	return nil
}
