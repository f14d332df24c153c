// File: internal/handler/auth/current_user.go
package auth

import (
	"errors"
	"net/http"

	"gallery/internal/api"
	"gallery/internal/database"
	"gallery/internal/middleware"
	"gallery/internal/store"

	"github.com/labstack/echo/v4"
)

var getUserByID = store.GetUserByID

// CurrentUserHandler 以憑證身分回查最新的使用者紀錄
// @Summary     取得當前使用者
// @Description 透過 session cookie 取得當前使用者資料（不含密碼）；匿名或查無使用者回 404
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /current-user [get]
func CurrentUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CurrentIdentity(c)
		if claims == nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found"})
		}
		user, err := getUserByID(c.Request().Context(), db, claims.ID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to retrieve user"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
