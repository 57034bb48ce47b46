package api

// swagger:model api.UserResponse
type UserResponse struct {
	Email string `json:"email" example:"alice@example.com"`
	Name  string `json:"name" example:"Alice"`
}
