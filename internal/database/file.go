package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// fileDB 將每個集合保存為 <dir>/<collection>.json 的完整 JSON 檔。
// 寫入走暫存檔加 rename，避免寫到一半的檔案被讀到。
type fileDB struct {
	dir string
}

// NewFileDB 建立以 dir 為資料目錄的 DB。目錄不存在時建立。
func NewFileDB(dir string) (DB, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory not set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("NewFileDB: %w", err)
	}
	return &fileDB{dir: dir}, nil
}

func (f *fileDB) path(collection string) string {
	return filepath.Join(f.dir, collection+".json")
}

func (f *fileDB) Read(ctx context.Context, collection string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path(collection))
	if err != nil {
		return nil, fmt.Errorf("Read %s: %w", collection, err)
	}
	return data, nil
}

func (f *fileDB) Write(ctx context.Context, collection string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("Write %s: %w", collection, err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("Write %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("Write %s: %w", collection, err)
	}
	if err := os.Rename(name, f.path(collection)); err != nil {
		os.Remove(name)
		return fmt.Errorf("Write %s: %w", collection, err)
	}
	return nil
}

func (f *fileDB) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(f.dir); err != nil {
		return fmt.Errorf("Ping: %w", err)
	}
	return nil
}

func (f *fileDB) Close() {}
