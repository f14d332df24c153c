package api

import "gallery/internal/model"

// swagger:model api.DeleteItemResponse
type DeleteItemResponse struct {
	Message string     `json:"message" example:"Item deleted successfully"`
	Item    model.Item `json:"item"`
}
