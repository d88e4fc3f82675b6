package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"email":      "must be a valid email",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"gt":         "must be greater than %s",
	"gte":        "must be greater than or equal to %s",
	"oneof":      "must be one of [%s]",
	"datetime":   "must be a date in YYYY-MM-DD format",
	"base64":     "must be a valid base64 string",
	"object_id":  "must be a valid identifier",
	"slot_label": "must be a non empty slot label",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientServiceUnavailable            = "the service is temporarily unavailable, please try again"
	ErrClientUnauthorizedAccess            = "unauthorized access"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientForbiddenAccess               = "forbidden access"
	ErrClientInvalidIdentity               = "the given identifier is not valid"
	ErrClientBookingNotFound               = "booking not found"
	ErrClientUserNotFound                  = "user not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientTreatmentNotFound             = "treatment not found"
	ErrClientSlotNotOffered                = "the selected slot is not offered for this treatment"
	ErrClientBookingAlreadyExistsFormat    = "You already have a booking on %s"
	ErrClientBookingInProgressFormat       = "A booking for %s is already being processed"
	ErrClientBookingAlreadyCancelled       = "booking already cancelled"
	ErrClientBookingAlreadyPaid            = "paid bookings cannot be cancelled"
	ErrClientTooManyBookingAttempts        = "too many booking attempts, please try again later"
	ErrClientPaymentGatewayFailed          = "payment provider is unavailable, please try again"
	ErrClientInvalidImageFormat            = "image must be a valid base64 encoded picture"
)

// Error messages for developers
const (
	ErrDevInvalidInput                 = "invalid input"
	ErrDevValidationFailed             = "input validation failed"
	ErrDevCannotParseJSON              = "cannot parse JSON"
	ErrDevCannotMarshalJSON            = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded       = "server deadline exceeded"
	ErrDevMissingRequestID             = "request id missing from context"
	ErrDevTooManyRequests              = "client exceeded the per ip request rate"
	ErrDevURLParamIDValidationFailed   = "url param '%s' validation failed"
	ErrDevAuthHeaderMissing            = "authorization header missing"
	ErrDevAuthTokenInvalidOrExpired    = "authorization token invalid or expired"
	ErrDevAuthSigningMethod            = "unexpected jwt signing method"
	ErrDevAuthClaimMissing             = "jwt claim '%s' missing"
	ErrDevAuthGenerateToken            = "failed to generate jwt"
	ErrDevAuthEmailMismatch            = "email in token does not match email in query"
	ErrDevAuthRoleMismatch             = "user role is not admin"
	ErrDevDBStringNotObjectID          = "string is not a valid object id"
	ErrDevDBFailedToFindDocument       = "failed to find document"
	ErrDevDBFailedToIterateDocuments   = "failed to iterate documents"
	ErrDevDBFailedToInsertDocument     = "failed to insert document"
	ErrDevDBFailedToUpdateDocument     = "failed to update document"
	ErrDevDBFailedToDeleteDocument     = "failed to delete document"
	ErrDevDBFailedToAggregate          = "failed to run aggregation pipeline"
	ErrDevDBFailedToDistinct           = "failed to run distinct"
	ErrDevDBFailedToCreateIndex        = "failed to create index on collection '%s'"
	ErrDevDocumentNotFound             = "document not found in collection '%s'"
	ErrDevBookingConflict              = "booking already exists for treatment '%s' date '%s' email '%s'"
	ErrDevBookingLockHeld              = "booking lock '%s' held by another admission"
	ErrDevBookingDuplicateKey          = "unique index rejected booking insert"
	ErrDevBookingCancelNotOwner        = "booking '%s' is not owned by '%s'"
	ErrDevBookingStateInvalid          = "booking '%s' cannot transition from current state"
	ErrDevBookingAttemptsExceeded      = "booking attempts exceeded for '%s'"
	ErrDevTreatmentUnknown             = "treatment '%s' not in catalog"
	ErrDevSlotNotOffered               = "slot '%s' not offered by treatment '%s'"
	ErrDevUnknownAvailabilityStrategy  = "unknown availability strategy '%s'"
	ErrDevRedisGetData                 = "failed to get data from redis"
	ErrDevRedisSetData                 = "failed to set data to redis"
	ErrDevRedisDeleteData              = "failed to delete data from redis"
	ErrDevRedisIncrementValue          = "failed to increment value in redis"
	ErrDevRedisExpire                  = "failed to set expiry in redis"
	ErrDevRabbitMQOpenChannel          = "failed to open rabbitmq channel"
	ErrDevRabbitMQDeclareQueue         = "failed to declare rabbitmq queue '%s'"
	ErrDevRabbitMQPublishMessage       = "failed to publish message to queue '%s'"
	ErrDevRabbitMQConsumeQueue         = "failed to consume queue '%s'"
	ErrDevSMTPSendEmail                = "failed to send email through smtp host '%s'"
	ErrDevMinioFailedToCreateObject    = "failed to create object in bucket '%s'"
	ErrDevMinioFailedToDeleteObject    = "failed to delete object in bucket '%s'"
	ErrDevImageValidationFailed        = "image validation failed"
	ErrDevStripeCreatePaymentIntent    = "failed to create stripe payment intent"
	ErrDevStripePaymentIntentNoSecrets = "stripe payment intent returned no client secret"
)
