package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingErrorTypeKey          = "error_type"
	LoggingRequestKey            = "request"
	LoggingResponseKey           = "response"
	LoggingResponseLengthKey     = "response_length"
	LoggingEmailKey              = "email"
	LoggingDateKey               = "appointment_date"
	LoggingTreatmentKey          = "treatment"
	LoggingSlotKey               = "slot"
	LoggingBookingIDKey          = "booking_id"
	LoggingTransactionIDKey      = "transaction_id"
	LoggingUserIDKey             = "user_id"
	LoggingDoctorIDKey           = "doctor_id"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingQueueKey              = "queue"
	LoggingMessageIDKey          = "message_id"
	LoggingBucketNameKey         = "bucket_name"
	LoggingObjectNameKey         = "object_name"
	LoggingStrategyKey           = "strategy"
	LoggingCountKey              = "count"
)
