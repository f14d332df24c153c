package api

// swagger:model api.CreateItemRequest
type CreateItemRequest struct {
	Name string   `json:"name" validate:"required" example:"Blue vase"`
	Desc string   `json:"desc" validate:"required" example:"Hand blown glass"`
	Imgs []string `json:"imgs,omitempty"`
}
