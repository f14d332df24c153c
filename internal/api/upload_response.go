package api

// swagger:model api.UploadResponse
type UploadResponse struct {
	ImagePath string `json:"imagePath" example:"images/webp/1f2d3c.webp"`
}
