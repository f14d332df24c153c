package api

import "gallery/internal/model"

// UserResponse 回傳使用者資料，永遠不包含密碼哈希
// swagger:model api.UserResponse
type UserResponse struct {
	ID       int        `json:"id" example:"42"`
	Username string     `json:"username" example:"alice"`
	Role     model.Role `json:"role" example:"user"`
	Name     string     `json:"name" example:"Alice"`
}

// NewUserResponse 由 model.User 建立響應，剝除密碼哈希
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Name:     u.Name,
	}
}
