// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"

	"gallery/internal/model"
)

// AuthenticateUser 根據使用者紀錄驗證明文密碼，成功回傳 nil
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return errors.New("invalid password")
	}
	return nil
}
