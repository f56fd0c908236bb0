package requests

type Service struct {
	Name        string  `json:"name" validate:"required,non_blank,max=100"`
	Description string  `json:"description" validate:"required,non_blank,max=1000"`
	Category    string  `json:"category" validate:"omitempty,oneof=diagnostic consultation surgery therapy other"`
	Price       float64 `json:"price" validate:"gte=0"`
	Duration    string  `json:"duration" validate:"omitempty,max=50"`
}
