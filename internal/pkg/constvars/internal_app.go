package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_AUTH_EMAIL_KEY           ContextKey = "auth_email"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	MongoCollectionTreatmentOptions = "appointmentOptions"
	MongoCollectionBookings         = "bookings"
	MongoCollectionPayments         = "payments"
	MongoCollectionUsers            = "users"
	MongoCollectionDoctors          = "doctors"
)

const (
	RoleAdmin = "admin"
)

const (
	AvailabilityStrategyFilter    = "filter"
	AvailabilityStrategyAggregate = "aggregate"
)

const (
	// BookingLockKeyFormat is treatment, date, email.
	BookingLockKeyFormat = "booking:lock:%s:%s:%s"

	BookingEventSourceName = "clinic-booking-service"
	BookingEventAdmitted   = "booking.admitted"
)

const (
	StripeCurrencyUSD        = "usd"
	StripePaymentMethodCard  = "card"
	StripeMinorUnitsPerMajor = 100
)

const (
	DoctorImageObjectNameFormat = "doctors/%s%s"
	DoctorImageDefaultExtension = ".png"
)

const (
	QueryParamDate  = "date"
	QueryParamEmail = "email"
	URLParamID      = "id"
	URLParamEmail   = "email"
)
