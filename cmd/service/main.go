// @title        Gallery API
// @version      1.0
// @description  管理畫廊項目的後端 API：登入發放 session cookie，項目修改需擁有者或 admin
// @host         localhost:3000
// @BasePath     /api
package main

import (
	"fmt"
	"log"
	"os"

	"gallery/internal/database"
	"gallery/internal/router"
	"gallery/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "gallery/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newFileDB   = database.NewFileDB
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc    = os.Exit
)

func run() error {
	// .env 存在就載入，缺席不是錯誤
	_ = godotenv.Load()

	if os.Getenv("JWT_SECRET") == "" {
		return fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "images/webp"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return fmt.Errorf("建立上傳目錄失敗: %v", err)
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	db, err := newFileDB(dataDir)
	if err != nil {
		return fmt.Errorf("開啟資料目錄失敗: %v", err)
	}
	defer db.Close()

	itemStore := store.NewItemStore(db)
	defer itemStore.Close()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.Setup(e, db, itemStore, uploadDir)

	// 上傳後的圖片直接以靜態檔供前端引用
	e.Static("/images/webp", uploadDir)
	if staticDir := os.Getenv("STATIC_DIR"); staticDir != "" {
		e.Static("/", staticDir)
	}

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return startServer(e, ":"+port)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
