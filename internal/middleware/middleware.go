package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"gallery/internal/service"
	"gallery/internal/store"

	"github.com/labstack/echo/v4"
)

// ContextIdentityKey 請求範圍內的身分存放鍵。
// 身分只存在於單一請求的 context 上，絕不放進套件層級變數。
const ContextIdentityKey = "identity"

// SessionCookieName 承載 session 憑證的 HttpOnly cookie 名稱
const SessionCookieName = "token"

// Session 從 cookie 取出憑證並驗證。
// cookie 缺席、簽名不符、毀損或過期一律視為匿名並放行，
// 不在這一層拒絕請求；該不該擋由下游的授權中介層決定。
func Session(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}
		claims, err := service.VerifySessionToken(cookie.Value)
		if err != nil {
			return next(c)
		}
		c.Set(ContextIdentityKey, claims)
		return next(c)
	}
}

// CurrentIdentity 取出本請求的身分，匿名時回傳 nil
func CurrentIdentity(c echo.Context) *service.SessionClaims {
	claims, _ := c.Get(ContextIdentityKey).(*service.SessionClaims)
	return claims
}

// RequireIdentity 要求已驗證身分，匿名一律 401
func RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !service.HasIdentity(CurrentIdentity(c)) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}
		return next(c)
	}
}

// RequireItemOwnership 要求身分能修改 :id 指定的項目。
// 先查項目：查無以 404 回報，優先於任何擁有權比對；
// 查得後由 CanMutate 決定，admin 或擁有者以外一律 403。
func RequireItemOwnership(items *store.ItemStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := CurrentIdentity(c)
			if !service.HasIdentity(claims) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			id, err := strconv.Atoi(c.Param("id"))
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid item ID")
			}
			item, err := items.Get(c.Request().Context(), id)
			if errors.Is(err, store.ErrNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, "Item not found")
			}
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
			}
			if !service.CanMutate(claims, item) {
				return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to modify this item")
			}
			return next(c)
		}
	}
}
