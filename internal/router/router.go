// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"gallery/internal/database"
	"gallery/internal/handler"
	"gallery/internal/handler/auth"
	"gallery/internal/handler/items"
	"gallery/internal/middleware"
	"gallery/internal/store"
)

// Setup 註冊所有路由與中介層。
// Session 掛在整個 /api 群組上：每個請求都先解析憑證，
// 無效憑證降級為匿名，讀取端點照常放行。
func Setup(e *echo.Echo, db database.DB, itemStore *store.ItemStore, uploadDir string) {
	api := e.Group("/api", middleware.Session)

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db))

	// 登入、登出與當前使用者
	api.POST("/login", auth.LoginHandler(db))
	api.GET("/logout", auth.LogoutHandler())
	api.GET("/current-user", auth.CurrentUserHandler(db))

	// 項目：讀取開放匿名，建立需登入，修改需擁有者或 admin
	api.GET("/items", items.ListItemsHandler(itemStore))
	api.GET("/items/:id", items.GetItemHandler(itemStore))
	api.POST("/items", items.CreateItemHandler(itemStore), middleware.RequireIdentity)
	api.PUT("/items/:id", items.UpdateItemHandler(itemStore), middleware.RequireItemOwnership(itemStore))
	api.DELETE("/items/:id", items.DeleteItemHandler(itemStore), middleware.RequireItemOwnership(itemStore))

	// 圖片上傳
	api.POST("/upload", items.UploadHandler(uploadDir), middleware.RequireIdentity)
}
