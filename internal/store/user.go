package store

import (
	"context"
	"encoding/json"
	"fmt"

	"gallery/internal/database"
	"gallery/internal/model"
)

const usersCollection = "users"

// 使用者集合由部署時預先提供，這裡只讀不寫。

func loadUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	data, err := db.Read(ctx, usersCollection)
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}
	return users, nil
}

func GetUserByName(ctx context.Context, db database.DB, username string) (*model.User, error) {
	users, err := loadUsers(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("GetUserByName: %w", err)
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	users, err := loadUsers(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	for i := range users {
		if users[i].ID == userID {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}
