package requests

type PatientProfile struct {
	Name        string `json:"name" validate:"required,non_blank,max=50"`
	Age         int    `json:"age" validate:"required,min=1,max=150"`
	Gender      string `json:"gender" validate:"required,oneof=Male Female"`
	Phone       string `json:"phone" validate:"phone_digits"`
	Description string `json:"description" validate:"required,non_blank,max=500"`
}

type AdminCreatePatient struct {
	IdentityID string `json:"patientID" validate:"required,object_id"`
	PatientProfile
}
