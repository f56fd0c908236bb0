package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth
	RegisterSuccessMessage = "User registered successfully"
	LoginSuccessMessage    = "Login successful"
	AdminVerifiedMessage   = "Admin verified"

	// Users
	GetUserInfoSuccessMessage    = "Info retrieved"
	GetAllUsersSuccessMessage    = "All users retrieved"
	GetUserSuccessMessage        = "User retrieved"
	UpdateUserSuccessMessage     = "Successfully updated"
	DeleteUserSuccessMessage     = "Successfully deleted"
	ChangeUserRoleSuccessMessage = "Role changed successfully"

	// Patients
	UpsertPatientSuccessMessage  = "Patient profile saved"
	GetPatientSuccessMessage     = "Patient retrieved"
	GetAllPatientsSuccessMessage = "All patients retrieved"
	CreatePatientSuccessMessage  = "Patient added successfully"
	UpdatePatientSuccessMessage  = "Patient updated successfully"
	DeletePatientSuccessMessage  = "Patient deleted successfully"

	// Doctors
	GetDoctorSuccessMessage     = "Doctor retrieved"
	GetAllDoctorsSuccessMessage = "All doctors retrieved"
	CreateDoctorSuccessMessage  = "Doctor added successfully"
	UpdateDoctorSuccessMessage  = "Doctor updated successfully"
	DeleteDoctorSuccessMessage  = "Doctor deleted successfully"

	// Services
	GetAllServicesSuccessMessage = "All services retrieved"
	GetServiceSuccessMessage     = "Service retrieved"
	CreateServiceSuccessMessage  = "Service created successfully"
	UpdateServiceSuccessMessage  = "Service updated successfully"
	DeleteServiceSuccessMessage  = "Service deleted successfully"

	// Appointments
	CreateAppointmentSuccessMessage  = "Appointment Requested"
	GetAppointmentsSuccessMessage    = "Appointments retrieved successfully"
	GetAllAppointmentsSuccessMessage = "All appointments retrieved"
	GetAppointmentSuccessMessage     = "Appointment retrieved"
	UpdateAppointmentSuccessMessage  = "Appointment status updated"
	CancelAppointmentSuccessMessage  = "Appointment cancelled"

	// Payments
	CreateOrderSuccessMessage        = "Order created"
	SaveTransactionSuccessMessage    = "Transaction saved"
	GetTransactionsSuccessMessage    = "Transactions retrieved"
	GetReceiptURLSuccessMessage      = "Receipt retrieved"
	GetAllTransactionsSuccessMessage = "All transactions retrieved"

	// Prediction
	GetSymptomsSuccessMessage = "Symptoms retrieved"
	PredictSuccessMessage     = "Prediction successful"

	HealthCheckSuccessMessage = "Service is healthy"
)
