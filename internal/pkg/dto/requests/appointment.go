package requests

type CreateAppointment struct {
	DoctorID string `json:"doctorID" validate:"required,object_id"`
	// Date is YYYY-MM-DD or RFC3339.
	Date     string `json:"date" validate:"required,iso_date,not_past_date"`
	TimeSlot string `json:"timeSlot" validate:"required,oneof=Morning Afternoon Evening"`
	Reason   string `json:"reason" validate:"required,non_blank,max=200"`
}

type AdminCreateAppointment struct {
	PatientID string `json:"patientID" validate:"required,object_id"`
	CreateAppointment
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=Pending Completed Rejected"`
}
