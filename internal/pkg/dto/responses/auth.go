package responses

type RegisterUser struct {
	ID string `json:"id"`
}

type LoginUser struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
