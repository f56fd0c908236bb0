package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingSessionDataKey    = "session_data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingOperationKey  = "operation"

	LoggingErrorCodeKey    = "error_code"
	LoggingErrorMessageKey = "error_message"

	LoggingIdentityIDKey    = "identity_id"
	LoggingRoleKey          = "role"
	LoggingTargetRoleKey    = "target_role"
	LoggingPatientIDKey     = "patient_id"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingServiceIDKey     = "service_id"
	LoggingTransactionIDKey = "transaction_id"
	LoggingOrderIDKey       = "order_id"
	LoggingPaymentIDKey     = "payment_id"
	LoggingAmountKey        = "amount"
	LoggingCountKey         = "count"
	LoggingStatusKey        = "status"
	LoggingURLKey           = "url"
	LoggingObjectKey        = "object_key"
	LoggingBucketKey        = "bucket"
	LoggingQueueKey         = "queue"
	LoggingJobKey           = "job"
	LoggingCronSpecKey      = "cron_spec"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)

const (
	SecuritySeverityLow    = "low"
	SecuritySeverityMedium = "medium"
	SecuritySeverityHigh   = "high"
)
