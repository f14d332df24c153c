package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"gallery/internal/database"
)

func restoreGlobals() {
	newFileDB = database.NewFileDB
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc = func(code int) {}
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	newFileDB = func(dir string) (database.DB, error) {
		called["db"] = true
		require.Equal(t, "testdata", dir)
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":8081", addr)
		return nil
	}

	t.Setenv("JWT_SECRET", "s")
	t.Setenv("DATA_DIR", "testdata")
	t.Setenv("UPLOAD_DIR", filepath.Join(t.TempDir(), "uploads"))
	t.Setenv("STATIC_DIR", "")
	t.Setenv("PORT", "8081")

	require.NoError(t, run())
	require.True(t, called["db"])
	require.True(t, called["start"])
	require.True(t, called["dbClose"])
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)

	t.Setenv("JWT_SECRET", "")
	require.Error(t, run())

	t.Setenv("JWT_SECRET", "s")
	t.Setenv("DATA_DIR", "testdata")
	t.Setenv("UPLOAD_DIR", filepath.Join(t.TempDir(), "uploads"))
	newFileDB = func(dir string) (database.DB, error) { return nil, errors.New("open") }
	require.Error(t, run())
}
