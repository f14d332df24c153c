package database

import "context"

// DB 定義持久層操作介面：以集合名稱存取整份序列化內容。
// 方便測試時替換 FakeDB 實作。
type DB interface {
	Read(ctx context.Context, collection string) ([]byte, error)
	Write(ctx context.Context, collection string, data []byte) error
	Ping(ctx context.Context) error
	Close()
}

type FakeDB struct {
	ReadFn  func(ctx context.Context, collection string) ([]byte, error)
	WriteFn func(ctx context.Context, collection string, data []byte) error
	PingFn  func(ctx context.Context) error
	CloseFn func()
}

func (f *FakeDB) Read(ctx context.Context, collection string) ([]byte, error) {
	if f.ReadFn != nil {
		return f.ReadFn(ctx, collection)
	}
	panic("unexpected Read")
}

func (f *FakeDB) Write(ctx context.Context, collection string, data []byte) error {
	if f.WriteFn != nil {
		return f.WriteFn(ctx, collection, data)
	}
	panic("unexpected Write")
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
