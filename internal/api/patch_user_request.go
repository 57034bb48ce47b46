package api

import "strings"

// PatchUserRequest 部分更新個人資料，未提供的欄位維持不變
// swagger:model api.PatchUserRequest
type PatchUserRequest struct {
	Email    *string `json:"email" form:"email" validate:"omitnil,notblank,email,max=255" example:"alice@example.com"`
	Password *string `json:"password" form:"password" validate:"omitnil,notblank,min=5" example:"NewSecret123"`
	Name     *string `json:"name" form:"name" validate:"omitnil,notblank,max=255" example:"Alice"`
}

func (r *PatchUserRequest) Normalize() {
	for _, f := range []*string{r.Email, r.Password, r.Name} {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}
