package constvars

// Custom validation error messages
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"required_if":   "is required",
	"email":         "must be a valid email",
	"alphanum":      "must contain only alphanumeric characters",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"eqfield":       "must match %s",
	"numeric":       "must be a number",
	"len":           "must be %s characters long",
	"oneof":         "must be one of [%s]",
	"gt":            "must be greater than %s",
	"gte":           "must be greater than or equal to %s",
	"lt":            "must be less than %s",
	"lte":           "must be less than or equal to %s",
	"url":           "must be a valid URL",
	"dive":          "contains an invalid entry",
	"phone_digits":  "Phone number must be exactly 10 digits",
	"not_past_date": "Date cannot be in the past",
	"iso_date":      "Date must be in YYYY-MM-DD format",
	"object_id":     "must be a valid ID",
	"non_blank":     "must not be blank",
}

// Tags whose message is rendered without the field name prefix
var StandaloneValidationTags = map[string]bool{
	"phone_digits":  true,
	"not_past_date": true,
	"iso_date":      true,
}

var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"eqfield": true,
	"gt":      true,
	"gte":     true,
	"lt":      true,
	"lte":     true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientValidationFailed              = "Validation Failed"
	ErrClientPasswordsDoNotMatch           = "Passwords do not match"
	ErrClientEmailAlreadyExists            = "Email already exists, try to login"
	ErrClientPhoneAlreadyRegistered        = "Phone number already registered"
	ErrClientInvalidCredentials            = "Invalid credentials, please try again"
	ErrClientRecordNotFound                = "Record not found"
	ErrClientPatientProfileNotFound        = "Patient profile not found"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientDoctorNotAvailable            = "Doctor Not Available"
	ErrClientServiceNotFound               = "Service not found"
	ErrClientInvalidServiceID              = "Invalid service ID"
	ErrClientInvalidID                     = "Invalid ID"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientAppointmentAlreadyExists      = "Appointment Already Exists"
	ErrClientInvalidAppointmentDate        = "Date must be in YYYY-MM-DD format"
	ErrClientInvalidStatusTransition       = "Invalid appointment status transition"
	ErrClientTransactionNotFound           = "Transaction not found"
	ErrClientInvalidPaymentSignature       = "Invalid payment signature"
	ErrClientPaymentGatewayFailed          = "Failed to create order"
	ErrClientPredictionFailed              = "Error in prediction service"
	ErrClientSymptomsFailed                = "Failed to fetch symptoms"
	ErrClientInvalidRole                   = "Invalid role"
	ErrClientTokenMissing                  = "Access denied, no token provided"
	ErrClientTokenInvalidOrExpired         = "Invalid or expired token"
	ErrClientAdminOnly                     = "Access denied, admins only"
	ErrClientUnauthorizedRole              = "Unauthorized role"
	ErrClientNotOwner                      = "You can't access this resource"
	ErrClientCannotProcessRequest          = "Failed to process your request"
	ErrClientSomethingWrongWithApplication = "There is something wrong with the application"
	ErrClientServerLongRespond             = "The app is taking too long to respond"
	ErrClientTooManyRequests               = "Too many requests, you are temporarily blocked"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"
	ErrDevValidationFailed           = "validation failed"
	ErrDevMissingRequestID           = "request ID missing from context"
	ErrDevMissingSessionData         = "session data missing from context"

	// Usecase messages
	ErrDevFailedToHashPassword    = "failed to hash password"
	ErrDevPasswordsDoNotMatch     = "passwords do not match"
	ErrDevEmailAlreadyExists      = "email already exists"
	ErrDevPhoneAlreadyRegistered  = "phone number already registered to another profile"
	ErrDevUserNotExists           = "user not exists in our system"
	ErrDevInvalidCredentials      = "invalid credentials"
	ErrDevPatientProfileNotExists = "patient profile not exists for identity"
	ErrDevDoctorNotExists         = "doctor profile not exists"
	ErrDevDoctorNotActive         = "doctor status is not Active"
	ErrDevServiceNotExists        = "service not exists"
	ErrDevAppointmentNotExists    = "appointment not exists"
	ErrDevAppointmentDuplicate    = "appointment already exists for patient and doctor pair"
	ErrDevInvalidAppointmentDate  = "appointment date %q is neither YYYY-MM-DD nor RFC3339"
	ErrDevInvalidStatusTransition = "appointment status transition %s -> %s is not allowed"
	ErrDevTransactionNotExists    = "transaction not exists"
	ErrDevInvalidRole             = "role is not one of user, patient, doctor, admin"
	ErrDevNotOwner                = "resource does not belong to the caller"
	ErrDevRoleTransitionBusy      = "role transition already in progress for identity %s"
	ErrDevAppointmentBusy         = "appointment booking already in progress for pair"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthAdminOnly             = "admin role required"
	ErrDevAuthRoleNotAllowed        = "role not allowed for this operation"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToCreateIndex      = "failed to create index on collection %s"
	ErrDevDBFailedTransaction        = "database transaction failed"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObject             = "failed to get object from minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData   = "failed to SET data into redis"
	ErrDevRedisGetData   = "failed to GET data from redis"
	ErrDevRedisGetNoData = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDelete    = "failed to DELETE data from redis"
	ErrDevRedisExpire    = "failed to EXPIRE key in redis"
	ErrDevRedisUnlock    = "failed to release redis lock"

	// Messaging messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitmq queue %s"
	ErrDevRabbitMQOpenChannel    = "failed to open rabbitmq channel"
	ErrDevSMTPSendEmail          = "failed to send email via SMTP client hostname %s"

	// Upstream messages
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevDecodeResponse         = "failed to decode %s response"
	ErrDevPaymentGatewayFailed   = "payment gateway call failed"
	ErrDevPaymentSignature       = "payment signature verification failed"
	ErrDevPredictionUpstream     = "prediction service call failed"
	ErrDevRenderDocument         = "failed to render %s document"
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)
