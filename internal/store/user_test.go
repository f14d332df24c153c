package store

import (
	"context"
	"errors"
	"testing"

	"gallery/internal/database"
	"gallery/internal/model"

	"github.com/stretchr/testify/require"
)

func seedUsers() database.DB {
	return &database.FakeDB{
		ReadFn: func(_ context.Context, collection string) ([]byte, error) {
			if collection != "users" {
				return nil, errors.New("unexpected collection " + collection)
			}
			return []byte(`[
                {"id": 1, "username": "alice", "password": "$2a$10$hash", "role": "admin", "name": "Alice"},
                {"id": 2, "username": "bob", "password": "$2a$10$hash2", "role": "user", "name": "Bob"}
            ]`), nil
		},
	}
}

func TestGetUserByName(t *testing.T) {
	ctx := context.Background()
	db := seedUsers()

	u, err := GetUserByName(ctx, db, "alice")
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)
	require.Equal(t, model.RoleAdmin, u.Role)
	require.Equal(t, "$2a$10$hash", u.PasswordHash)

	_, err = GetUserByName(ctx, db, "nobody")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()
	db := seedUsers()

	u, err := GetUserByID(ctx, db, 2)
	require.NoError(t, err)
	require.Equal(t, "bob", u.Username)
	require.Equal(t, model.RoleUser, u.Role)

	_, err = GetUserByID(ctx, db, 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserLookupErrors(t *testing.T) {
	ctx := context.Background()

	failing := &database.FakeDB{
		ReadFn: func(context.Context, string) ([]byte, error) { return nil, errors.New("io") },
	}
	_, err := GetUserByName(ctx, failing, "alice")
	require.Error(t, err)
	_, err = GetUserByID(ctx, failing, 1)
	require.Error(t, err)

	corrupt := &database.FakeDB{
		ReadFn: func(context.Context, string) ([]byte, error) { return []byte("oops"), nil },
	}
	_, err = GetUserByName(ctx, corrupt, "alice")
	require.Error(t, err)
}
