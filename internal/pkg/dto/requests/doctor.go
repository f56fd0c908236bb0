package requests

type DoctorProfile struct {
	Name           string `json:"name" validate:"required,non_blank,max=50"`
	Phone          string `json:"phone" validate:"phone_digits"`
	Gender         string `json:"gender" validate:"required,oneof=Male Female"`
	Age            int    `json:"age" validate:"required,min=1,max=120"`
	Specialization string `json:"specialization" validate:"required,non_blank,max=100"`
	Status         string `json:"status" validate:"omitempty,oneof=Active Away"`
}

type AdminCreateDoctor struct {
	IdentityID string `json:"doctorID" validate:"required,object_id"`
	DoctorProfile
}
