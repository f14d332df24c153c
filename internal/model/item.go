// File: internal/model/item.go
package model

import "time"

// Item 對應 items 集合中的一筆紀錄。
// Owner 與 ID 於建立時指定，之後不可被更新覆寫。
type Item struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Desc    string    `json:"desc"`
	Imgs    []string  `json:"imgs"`
	Owner   int       `json:"owner"`
	Created time.Time `json:"created"`
}
