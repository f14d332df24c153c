package database

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFileDB(t *testing.T) {
	_, err := NewFileDB("")
	require.Error(t, err)

	dir := filepath.Join(t.TempDir(), "data")
	db, err := NewFileDB(dir)
	require.NoError(t, err)
	defer db.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestFileDBReadWrite(t *testing.T) {
	ctx := context.Background()
	db, err := NewFileDB(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	// 檔案尚未建立
	_, err = db.Read(ctx, "items")
	require.True(t, errors.Is(err, fs.ErrNotExist))

	require.NoError(t, db.Write(ctx, "items", []byte(`[]`)))
	data, err := db.Read(ctx, "items")
	require.NoError(t, err)
	require.Equal(t, `[]`, string(data))

	// 整份覆寫
	require.NoError(t, db.Write(ctx, "items", []byte(`[{"id":1}]`)))
	data, err = db.Read(ctx, "items")
	require.NoError(t, err)
	require.Equal(t, `[{"id":1}]`, string(data))
}

func TestFileDBContextCancelled(t *testing.T) {
	db, err := NewFileDB(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = db.Read(ctx, "items")
	require.Error(t, err)
	require.Error(t, db.Write(ctx, "items", []byte(`[]`)))
}

func TestFileDBPing(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	db, err := NewFileDB(dir)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Ping(ctx))

	require.NoError(t, os.RemoveAll(dir))
	require.Error(t, db.Ping(ctx))
}

func TestFakeDB(t *testing.T) {
	ctx := context.Background()
	closed := false
	f := &FakeDB{
		ReadFn:  func(context.Context, string) ([]byte, error) { return []byte("x"), nil },
		WriteFn: func(context.Context, string, []byte) error { return nil },
		PingFn:  func(context.Context) error { return nil },
		CloseFn: func() { closed = true },
	}
	data, err := f.Read(ctx, "c")
	require.NoError(t, err)
	require.Equal(t, []byte("x"), data)
	require.NoError(t, f.Write(ctx, "c", nil))
	require.NoError(t, f.Ping(ctx))
	f.Close()
	require.True(t, closed)

	empty := &FakeDB{}
	require.Panics(t, func() { empty.Read(ctx, "c") })
	require.Panics(t, func() { empty.Write(ctx, "c", nil) })
	require.Panics(t, func() { empty.Ping(ctx) })
	empty.Close()
}
