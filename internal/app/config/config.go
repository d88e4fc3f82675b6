package config

import (
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:      utils.GetEnvString("MONGODB_URI", ""),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "doctorsPortal"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "no-reply@clinic.local"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "doctors"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":5000"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", ""),
			AllowedOrigins:             utils.GetEnvCSV("APP_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Booking: AppBooking{
			EnforceSlotValidity:  utils.GetEnvBool("APP_ENFORCE_SLOT_VALIDITY", true),
			LockExpiryInSeconds:  utils.GetEnvInt("APP_BOOKING_LOCK_EXPIRY_IN_SECONDS", 10),
			MaxAttemptsPerMinute: utils.GetEnvInt("APP_BOOKING_MAX_ATTEMPTS_PER_MINUTE", 20),
		},
		Availability: AppAvailability{
			Strategy: utils.GetEnvString("APP_AVAILABILITY_STRATEGY", constvars.AvailabilityStrategyFilter),
		},
		RabbitMQ: AppRabbitMQ{
			BookingQueue:         utils.GetEnvString("APP_RABBITMQ_BOOKING_QUEUE", constvars.BookingEventAdmitted),
			PublishTimeoutInSecs: utils.GetEnvInt("APP_RABBITMQ_PUBLISH_TIMEOUT_IN_SECONDS", 5),
		},
		Mailer: AppMailer{
			EmailSender:  utils.GetEnvString("APP_MAILER_EMAIL_SENDER", "no-reply@clinic.local"),
			MaxPerSecond: utils.GetEnvInt("APP_MAILER_MAX_PER_SECOND", 5),
		},
		Stripe: AppStripe{
			SecretKey:               utils.GetEnvString("STRIPE_SECRET_KEY", ""),
			Currency:                utils.GetEnvString("STRIPE_CURRENCY", constvars.StripeCurrencyUSD),
			RequestTimeoutInSeconds: utils.GetEnvInt("STRIPE_REQUEST_TIMEOUT_IN_SECONDS", 15),
		},
		Minio: AppMinio{
			DoctorImageMaxSizeInMB: utils.GetEnvInt("APP_MINIO_DOCTOR_IMAGE_MAX_SIZE_IN_MB", 2),
		},
	}
}
