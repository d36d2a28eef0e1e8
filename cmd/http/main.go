package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"patient-service/internal/app/config"
	"patient-service/internal/app/delivery/http/middlewares"
	"patient-service/internal/app/delivery/http/routers"
	"patient-service/internal/app/drivers/database"
	"patient-service/internal/app/drivers/logger"
	"patient-service/internal/app/drivers/messaging"
	"patient-service/internal/app/drivers/storage"
	"patient-service/internal/app/services/core/auth"
	"patient-service/internal/app/services/core/patients"
	"patient-service/internal/app/services/shared/eventqueue"
	"patient-service/internal/app/services/shared/locker"
	redisRepo "patient-service/internal/app/services/shared/redis"
	minioStorage "patient-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	zapLogger.Info("Starting patient service",
		zap.String("version", Version),
		zap.String("tag", Tag),
		zap.String("env", internalConfig.App.Env),
	)

	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer initCancel()

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Fs:             afero.NewOsFs(),
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if driverConfig.Redis.Enabled {
		bootstrap.Redis, err = database.NewRedisClient(initCtx, driverConfig, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
	}

	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ, err = messaging.NewRabbitMQ(driverConfig, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
	}

	if driverConfig.Minio.Enabled {
		bootstrap.Minio, err = storage.NewMinio(initCtx, driverConfig, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to connect to MinIO", zap.Error(err))
		}
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Locker
	lockerService := locker.NewLocalLockService()
	if bootstrap.Redis != nil {
		redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
		lockerService = locker.NewLockService(redisRepository, log)
	}

	// Patient events
	eventPublisher := eventqueue.NewNoopPublisher()
	if bootstrap.RabbitMQ != nil {
		eventQueueService, err := eventqueue.NewService(bootstrap.RabbitMQ, log, internalConfig.RabbitMQ.PatientEventQueue)
		if err != nil {
			return err
		}
		eventPublisher = eventQueueService
	}

	// Patient document
	patientRepository := patients.NewPatientFileRepository(bootstrap.Fs, internalConfig.App.DataFile, log)
	patientSnapshotter := patients.NewNoopPatientSnapshotter()
	if bootstrap.Minio != nil {
		snapshotStorage := minioStorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
		patientSnapshotter = patients.NewPatientSnapshotService(snapshotStorage, internalConfig.Minio.SnapshotPrefix, log)
	}

	// Patient
	patientUsecase := patients.NewPatientUsecase(patientRepository, lockerService, eventPublisher, patientSnapshotter, internalConfig, log)
	patientController := patients.NewPatientController(log, patientUsecase, internalConfig)

	// Auth
	authUsecase := auth.NewAuthUsecase(internalConfig.Auth.Users, log)
	authController := auth.NewAuthController(log, authUsecase)

	// Middlewares
	writeLimiter := middlewares.NewRateLimiter(
		internalConfig.App.WriteRequestsPerSecond,
		time.Second,
		time.Duration(internalConfig.App.WriteBlockTimeInSeconds)*time.Second,
		log,
	)
	middlewares := middlewares.NewMiddlewares(log, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, writeLimiter, patientController, authController)
	return nil
}
