package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"gallery/internal/database"
	"gallery/internal/model"
	"gallery/internal/worker"
)

var (
	// ErrNotFound 查無符合 id 的紀錄
	ErrNotFound = errors.New("not found")
	// ErrValidation 必填欄位缺漏
	ErrValidation = errors.New("missing required field")
)

const itemsCollection = "items"

// PlaceholderImage 建立項目未附圖片時的預設圖
const PlaceholderImage = "images/webp/placeholder.webp"

var timeNow = time.Now

// ItemPatch 部分更新欄位；nil 代表保持原值。
// id 與 owner 不在此結構內，合併永遠不會改動它們。
type ItemPatch struct {
	Name *string
	Desc *string
	Imgs []string
}

// ItemStore 對 items 集合提供 CRUD。
// 每次操作都重新讀取整份集合、改寫後整份寫回；
// 變更一律排進單一 worker 的佇列循序執行，
// 同程序內的 read-modify-write 不會交錯（跨程序競爭不在此設計內）。
type ItemStore struct {
	db database.DB
	q  worker.Pool
}

func NewItemStore(db database.DB) *ItemStore {
	return &ItemStore{db: db, q: worker.NewPool(1)}
}

// Close 停止序列化佇列，等待排隊中的變更完成
func (s *ItemStore) Close() {
	s.q.Stop()
}

func (s *ItemStore) load(ctx context.Context) ([]model.Item, error) {
	data, err := s.db.Read(ctx, itemsCollection)
	if errors.Is(err, fs.ErrNotExist) {
		// 尚未建立過任何項目，視為空集合
		return []model.Item{}, nil
	}
	if err != nil {
		return nil, err
	}
	var items []model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}
	return items, nil
}

func (s *ItemStore) save(ctx context.Context, items []model.Item) error {
	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("items: %w", err)
	}
	return s.db.Write(ctx, itemsCollection, data)
}

// List 回傳儲存順序的全部項目
func (s *ItemStore) List(ctx context.Context) ([]model.Item, error) {
	return s.load(ctx)
}

// Get 依 id 取得單一項目，查無即 ErrNotFound
func (s *ItemStore) Get(ctx context.Context, id int) (*model.Item, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create 驗證必填欄位後寫入新項目。
// id 為現有最大 id 加一（空集合從 1 起算），
// Owner 與 Created 由 store 蓋章，Imgs 缺漏時補上預設圖。
func (s *ItemStore) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	if item.Name == "" || item.Desc == "" {
		return nil, ErrValidation
	}
	if len(item.Imgs) == 0 {
		item.Imgs = []string{PlaceholderImage}
	}
	item.Created = timeNow()

	var created *model.Item
	err := s.serialize(ctx, func(ctx context.Context) error {
		items, err := s.load(ctx)
		if err != nil {
			return err
		}
		maxID := 0
		for i := range items {
			if items[i].ID > maxID {
				maxID = items[i].ID
			}
		}
		item.ID = maxID + 1
		items = append(items, *item)
		if err := s.save(ctx, items); err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update 將 patch 合併到既有紀錄：patch 中出現的欄位整個取代，
// 缺席欄位不動；id 與 owner 永遠不被合併覆寫。
func (s *ItemStore) Update(ctx context.Context, id int, patch ItemPatch) (*model.Item, error) {
	var updated *model.Item
	err := s.serialize(ctx, func(ctx context.Context) error {
		items, err := s.load(ctx)
		if err != nil {
			return err
		}
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if patch.Name != nil {
				items[i].Name = *patch.Name
			}
			if patch.Desc != nil {
				items[i].Desc = *patch.Desc
			}
			if patch.Imgs != nil {
				items[i].Imgs = patch.Imgs
			}
			if err := s.save(ctx, items); err != nil {
				return err
			}
			updated = &items[i]
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete 移除符合 id 的紀錄並回傳它，查無即 ErrNotFound
func (s *ItemStore) Delete(ctx context.Context, id int) (*model.Item, error) {
	var removed *model.Item
	err := s.serialize(ctx, func(ctx context.Context) error {
		items, err := s.load(ctx)
		if err != nil {
			return err
		}
		for i := range items {
			if items[i].ID != id {
				continue
			}
			it := items[i]
			items = append(items[:i], items[i+1:]...)
			if err := s.save(ctx, items); err != nil {
				return err
			}
			removed = &it
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// serialize 透過單一 worker 佇列執行 fn，序列化所有變更
func (s *ItemStore) serialize(ctx context.Context, fn func(context.Context) error) error {
	var inner error
	if err := s.q.Do(ctx, func() { inner = fn(ctx) }); err != nil {
		return err
	}
	return inner
}
