package api

// swagger:model api.LoginResponse
type LoginResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message" example:"Login successful"`
}
