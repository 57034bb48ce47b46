package api

import "strings"

// UserRequest 用於註冊 (POST /user/create) 以及完整更新個人資料 (PUT /user/me)
// swagger:model api.UserRequest
type UserRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email,max=255" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required,min=5" example:"Secret123"`
	Name     string `json:"name" form:"name" validate:"required,max=255" example:"Alice"`
}

// Normalize trims surrounding whitespace from every field.
func (r *UserRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Password = strings.TrimSpace(r.Password)
	r.Name = strings.TrimSpace(r.Name)
}
