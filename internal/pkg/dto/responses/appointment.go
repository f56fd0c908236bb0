package responses

import (
	"hospital-service/internal/app/models"
	"time"
)

// Appointment is an appointment with its patient and doctor profiles expanded.
// A profile is nil when it no longer exists.
type Appointment struct {
	ID        string          `json:"_id"`
	Patient   *models.Patient `json:"patientID"`
	Doctor    *models.Doctor  `json:"doctorID"`
	Date      time.Time       `json:"date"`
	TimeSlot  string          `json:"timeSlot"`
	Status    string          `json:"status"`
	Reason    string          `json:"reason"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
