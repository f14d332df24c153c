// File: internal/model/user.go
package model

// Role 使用者角色，admin 可以跳過擁有者檢查
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User 對應 users 集合中的一筆紀錄。
// PasswordHash 為 bcrypt 哈希，序列化欄位名沿用資料檔中的 "password"。
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	Role         Role   `json:"role"`
	Name         string `json:"name"`
}
