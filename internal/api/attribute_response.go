package api

// swagger:model api.AttributeResponse
type AttributeResponse struct {
	ID   int    `json:"id" example:"1"`
	Name string `json:"name" example:"Vegan"`
}
