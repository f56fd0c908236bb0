package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HMS_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

// Identity roles
const (
	RoleUser    = "user"
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

const (
	DoctorStatusActive = "Active"
	DoctorStatusAway   = "Away"
)

const (
	TimeSlotMorning   = "Morning"
	TimeSlotAfternoon = "Afternoon"
	TimeSlotEvening   = "Evening"
)

const (
	AppointmentStatusPending   = "Pending"
	AppointmentStatusCompleted = "Completed"
	AppointmentStatusRejected  = "Rejected"
)

const (
	ServiceCategoryDiagnostic   = "diagnostic"
	ServiceCategoryConsultation = "consultation"
	ServiceCategorySurgery      = "surgery"
	ServiceCategoryTherapy      = "therapy"
	ServiceCategoryOther        = "other"

	ServiceDefaultDuration = "30 minutes"
)

const (
	TransactionStatusSuccess = "success"
	TransactionStatusFailed  = "failed"

	CurrencyINR = "INR"

	// gateway amounts are in the currency's minor unit
	MinorUnitsPerMajorUnit = 100

	ReceiptOrderPrefix = "receipt_order_"
)

const (
	PredictionUnavailable = "Prediction Unavailable"
)

const (
	MongoCollectionUsers        = "users"
	MongoCollectionPatients     = "patients"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionServices     = "services"
	MongoCollectionAppointments = "appointments"
	MongoCollectionTransactions = "transactions"
)

const (
	RedisKeySymptomVocabulary     = "prediction:symptoms"
	LockKeyRoleTransitionFormat   = "role-transition:%s"
	LockKeyAppointmentPairFormat  = "appointment:%s:%s"
	LockKeyLeaderFormat           = "scheduler:leader:%s"
	ReceiptObjectKeyFormat        = "receipts/%s/%s.pdf"
	LedgerExportFileNameFormat    = "transactions_%s.xlsx"
	ReceiptFileNameFormat         = "receipt_%s.pdf"
	AppointmentReminderDateLayout = "2006-01-02"
	AppointmentDateLayout         = "2006-01-02"
)
