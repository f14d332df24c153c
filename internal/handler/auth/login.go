// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"time"

	"gallery/internal/api"
	"gallery/internal/database"
	"gallery/internal/middleware"
	"gallery/internal/service"
	"gallery/internal/store"

	"github.com/labstack/echo/v4"
)

// SessionTTL 憑證有效期間，與 cookie 壽命一致
const SessionTTL = 24 * time.Hour

var (
	getUserByName     = store.GetUserByName
	authenticateUser  = service.AuthenticateUser
	issueSessionToken = service.IssueSessionToken
)

// LoginHandler 使用 Username/Password 驗證並以 HttpOnly cookie 發放憑證
// @Summary     登入使用者
// @Description 驗證帳號密碼，成功後設定 session cookie 並回傳使用者資料（不含密碼）
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       credentials body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Username and password required"})
		}

		// 查無此人與密碼錯誤回同一個訊息，不洩漏帳號是否存在
		user, err := getUserByName(c.Request().Context(), db, req.Username)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid credentials"})
		}
		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid credentials"})
		}

		token, err := issueSessionToken(*user, SessionTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Authentication failed"})
		}

		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			MaxAge:   int(SessionTTL / time.Second),
		})

		return c.JSON(http.StatusOK, api.LoginResponse{
			User:    api.NewUserResponse(user),
			Message: "Login successful",
		})
	}
}
