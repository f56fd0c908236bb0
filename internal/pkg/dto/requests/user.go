package requests

type UpdateUser struct {
	Name  string `json:"name" validate:"omitempty,min=3,max=20"`
	Email string `json:"email" validate:"omitempty,email"`
}

// ChangeRole carries the profile for the target role. Patient or Doctor must
// be present when Role is patient or doctor.
type ChangeRole struct {
	Role    string          `json:"role" validate:"required,oneof=user patient doctor admin"`
	Patient *PatientProfile `json:"patient,omitempty" validate:"required_if=Role patient"`
	Doctor  *DoctorProfile  `json:"doctor,omitempty" validate:"required_if=Role doctor"`
}
