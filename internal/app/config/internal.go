package config

type InternalConfig struct {
	App          App
	JWT          AppJWT
	Booking      AppBooking
	Availability AppAvailability
	RabbitMQ     AppRabbitMQ
	Mailer       AppMailer
	Stripe       AppStripe
	Minio        AppMinio
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	AllowedOrigins             []string
	MaxRequests                int
	ShutdownTimeout            int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
	RequestTimeoutInSeconds    int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppBooking struct {
	// EnforceSlotValidity rejects bookings for unknown treatments or slots
	// the treatment does not offer.
	EnforceSlotValidity bool
	LockExpiryInSeconds int
	// MaxAttemptsPerMinute caps admission attempts per email, 0 disables it.
	MaxAttemptsPerMinute int
}

type AppAvailability struct {
	Strategy string
}

type AppRabbitMQ struct {
	BookingQueue         string
	PublishTimeoutInSecs int
}

type AppMailer struct {
	EmailSender  string
	MaxPerSecond int
}

type AppStripe struct {
	SecretKey               string
	Currency                string
	RequestTimeoutInSeconds int
}

type AppMinio struct {
	DoctorImageMaxSizeInMB int
}
