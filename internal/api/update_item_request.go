package api

// UpdateItemRequest 部分更新：缺席欄位保持原值。
// id 與 owner 即使出現在請求中也不會被合併。
// swagger:model api.UpdateItemRequest
type UpdateItemRequest struct {
	Name *string  `json:"name,omitempty" example:"Blue vase"`
	Desc *string  `json:"desc,omitempty" example:"Hand blown glass"`
	Imgs []string `json:"imgs,omitempty"`
}
