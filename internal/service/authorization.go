// File: internal/service/authorization.go
package service

import "gallery/internal/model"

// HasIdentity 回傳是否帶有已驗證身分，用於 create / upload 的守門
func HasIdentity(claims *SessionClaims) bool {
	return claims != nil
}

// CanMutate 判斷身分能否修改指定項目：admin 或項目擁有者。
// 純函式，每個請求重新評估，不快取結果。
func CanMutate(claims *SessionClaims, item *model.Item) bool {
	if claims == nil || item == nil {
		return false
	}
	if claims.Role == model.RoleAdmin {
		return true
	}
	return claims.ID == item.Owner
}
