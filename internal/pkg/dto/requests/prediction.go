package requests

type Predict struct {
	Symptoms []string `json:"symptoms" validate:"required,min=1,dive,required,non_blank"`
}
