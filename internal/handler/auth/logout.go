// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"gallery/internal/api"
	"gallery/internal/middleware"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 清除 session cookie。
// 伺服器端沒有撤銷清單，已發出的憑證在到期前仍然有效；
// 登出只是讓客戶端不再送出 cookie，永遠回報成功。
// @Summary     登出使用者
// @Description 清除 session cookie
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      /logout [get]
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out successfully"})
	}
}
