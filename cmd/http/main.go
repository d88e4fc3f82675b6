package main

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/delivery/http/controllers"
	"clinic-booking-service/internal/app/delivery/http/middlewares"
	"clinic-booking-service/internal/app/delivery/http/routers"
	"clinic-booking-service/internal/app/drivers/database"
	"clinic-booking-service/internal/app/drivers/logger"
	"clinic-booking-service/internal/app/drivers/mailer"
	"clinic-booking-service/internal/app/drivers/messaging"
	"clinic-booking-service/internal/app/drivers/storage"
	"clinic-booking-service/internal/app/services/core/availability"
	"clinic-booking-service/internal/app/services/core/bookings"
	"clinic-booking-service/internal/app/services/core/doctors"
	"clinic-booking-service/internal/app/services/core/payments"
	"clinic-booking-service/internal/app/services/core/treatments"
	"clinic-booking-service/internal/app/services/core/users"
	"clinic-booking-service/internal/app/services/shared/jwtmanager"
	"clinic-booking-service/internal/app/services/shared/locker"
	mailerService "clinic-booking-service/internal/app/services/shared/mailer"
	"clinic-booking-service/internal/app/services/shared/notification"
	"clinic-booking-service/internal/app/services/shared/payment_gateway"
	"clinic-booking-service/internal/app/services/shared/ratelimiter"
	"clinic-booking-service/internal/app/services/shared/redis"
	minioStorage "clinic-booking-service/internal/app/services/shared/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var (
	Version string
	Tag     string
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	log.Info("Starting clinic booking service",
		zap.String("version", Version),
		zap.String("tag", Tag),
		zap.String("env", internalConfig.App.Env),
	)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        database.NewMongoDB(driverConfig, log),
		Redis:          database.NewRedisClient(driverConfig, log),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig, log),
		Minio:          storage.NewMinio(driverConfig, log),
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server listening", zap.String("address", internalConfig.App.Address+internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, log)
	attemptLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	stripeService := payment_gateway.NewStripeService(bootstrap.InternalConfig, log)
	doctorImageStorage := minioStorage.NewMinioStorage(bootstrap.Minio)

	jwtManager, err := jwtmanager.NewJWTManager(bootstrap.InternalConfig, log)
	if err != nil {
		return err
	}

	bookingEventPublisher, err := notification.NewBookingEventPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.BookingQueue,
		log,
	)
	if err != nil {
		return err
	}

	smtpClient := mailer.NewSMTPClient(bootstrap.DriverConfig, log)
	mailService := mailerService.NewMailerService(smtpClient, bootstrap.InternalConfig.Mailer.MaxPerSecond, log)

	// Repositories
	treatmentOptionRepository := treatments.NewTreatmentOptionMongoRepository(bootstrap.MongoDB, dbName)
	bookingRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, dbName)
	paymentRepository := payments.NewPaymentMongoRepository(bootstrap.MongoDB, dbName)
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	availabilityUsecase, err := availability.NewAvailabilityUsecase(
		treatmentOptionRepository,
		bookingRepository,
		bootstrap.InternalConfig,
		log,
	)
	if err != nil {
		return err
	}
	bookingUsecase := bookings.NewBookingUsecase(
		bookingRepository,
		treatmentOptionRepository,
		lockService,
		attemptLimiter,
		bookingEventPublisher,
		bootstrap.InternalConfig,
		log,
	)
	paymentUsecase := payments.NewPaymentUsecase(
		paymentRepository,
		bookingRepository,
		stripeService,
		bootstrap.InternalConfig,
		log,
	)
	userUsecase := users.NewUserUsecase(userRepository, jwtManager, log)
	doctorUsecase := doctors.NewDoctorUsecase(
		doctorRepository,
		treatmentOptionRepository,
		doctorImageStorage,
		bootstrap.DriverConfig.Minio.BucketName,
		bootstrap.InternalConfig,
		log,
	)

	// Background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	bookingMailWorker := notification.NewBookingMailWorker(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.BookingQueue,
		bootstrap.InternalConfig.Mailer.EmailSender,
		mailService,
		log,
	)
	go func() {
		err := bookingMailWorker.Run(workerCtx)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Booking mail worker stopped", zap.Error(err))
		}
	}()
	bootstrap.WorkerStop = stopWorkers

	// HTTP
	middlewareInstance := middlewares.NewMiddlewares(log, bootstrap.InternalConfig, jwtManager, userUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		controllers.NewHealthController(),
		controllers.NewAvailabilityController(log, availabilityUsecase, bootstrap.InternalConfig),
		controllers.NewBookingController(log, bookingUsecase, bootstrap.InternalConfig),
		controllers.NewPaymentController(log, paymentUsecase, bootstrap.InternalConfig),
		controllers.NewUserController(log, userUsecase, bootstrap.InternalConfig),
		controllers.NewDoctorController(log, doctorUsecase, bootstrap.InternalConfig),
	)
	return nil
}
