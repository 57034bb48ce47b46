package api

import "strings"

// AuthTokenRequest 以 email 與密碼換取 token，密碼不做 trim
// swagger:model api.AuthTokenRequest
type AuthTokenRequest struct {
	Email    string `json:"email" form:"email" validate:"required" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123"`
}

func (r *AuthTokenRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}
