package items

import (
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gallery/internal/api"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MaxUploadSize 單檔上限 5 MB
const MaxUploadSize = 5 << 20

// allowedExts 僅接受常見點陣圖格式
var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var newUploadName = func() string {
	// 存檔名一律正規化為 .webp 副檔名
	return uuid.New().String() + ".webp"
}

// @Summary     上傳圖片
// @Description 接收 multipart 欄位 image，存檔後回傳可引用的圖片路徑
// @Tags        items
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "圖片檔 (jpg/jpeg/png/gif/webp，最大 5MB)"
// @Success     200 {object} api.UploadResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /upload [post]
func UploadHandler(uploadDir string) echo.HandlerFunc {
	return func(c echo.Context) error {
		file, err := c.FormFile("image")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "No file uploaded"})
		}
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedExts[ext] {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Only image files are allowed"})
		}
		if file.Size > MaxUploadSize {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "File too large"})
		}

		src, err := file.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to upload file"})
		}
		defer src.Close()

		name := newUploadName()
		dst, err := os.Create(filepath.Join(uploadDir, name))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to upload file"})
		}
		defer dst.Close()

		if _, err := io.Copy(dst, src); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to upload file"})
		}

		// 回傳前端引用用的相對路徑，與項目 imgs 欄位格式一致
		return c.JSON(http.StatusOK, api.UploadResponse{ImagePath: path.Join("images/webp", name)})
	}
}
