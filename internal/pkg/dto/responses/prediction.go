package responses

type Symptoms struct {
	Symptoms []string `json:"symptoms"`
}

type Prediction struct {
	Prediction string `json:"prediction"`
}
