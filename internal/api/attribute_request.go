package api

import "strings"

// AttributeRequest 建立 tag 或 ingredient
// swagger:model api.AttributeRequest
type AttributeRequest struct {
	Name string `json:"name" form:"name" validate:"notblank,max=255" example:"Vegan"`
}

func (r *AttributeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}
