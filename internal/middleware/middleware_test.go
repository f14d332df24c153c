package middleware

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gallery/internal/database"
	"gallery/internal/model"
	"gallery/internal/service"
	"gallery/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(cookie string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	next := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }

	t.Run("no cookie is anonymous", func(t *testing.T) {
		ctx, rec := newContext("")
		require.NoError(t, Session(next)(ctx))
		require.Nil(t, CurrentIdentity(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("garbage token is anonymous", func(t *testing.T) {
		ctx, rec := newContext("not-a-jwt")
		require.NoError(t, Session(next)(ctx))
		require.Nil(t, CurrentIdentity(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("expired token is anonymous", func(t *testing.T) {
		tok, err := service.IssueSessionToken(model.User{ID: 1, Username: "a", Role: model.RoleUser}, -time.Minute)
		require.NoError(t, err)
		ctx, rec := newContext(tok)
		require.NoError(t, Session(next)(ctx))
		require.Nil(t, CurrentIdentity(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		tok, err := service.IssueSessionToken(model.User{ID: 3, Username: "carol", Role: model.RoleAdmin}, time.Minute)
		require.NoError(t, err)
		ctx, _ := newContext(tok)
		require.NoError(t, Session(next)(ctx))
		claims := CurrentIdentity(ctx)
		require.NotNil(t, claims)
		require.Equal(t, 3, claims.ID)
		require.Equal(t, "carol", claims.Username)
		require.Equal(t, model.RoleAdmin, claims.Role)
	})
}

func TestRequireIdentity(t *testing.T) {
	called := false
	next := func(c echo.Context) error { called = true; return c.String(http.StatusOK, "ok") }

	ctx, _ := newContext("")
	err := RequireIdentity(next)(ctx)
	require.Error(t, err)
	require.False(t, called)
	he := &echo.HTTPError{}
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)

	ctx, _ = newContext("")
	ctx.Set(ContextIdentityKey, &service.SessionClaims{ID: 1})
	require.NoError(t, RequireIdentity(next)(ctx))
	require.True(t, called)
}

func itemFixture() database.DB {
	return &database.FakeDB{
		ReadFn: func(_ context.Context, collection string) ([]byte, error) {
			if collection != "items" {
				return nil, fs.ErrNotExist
			}
			return []byte(`[{"id": 9, "name": "n", "desc": "d", "imgs": ["x"], "owner": 7, "created": "2025-01-01T00:00:00Z"}]`), nil
		},
	}
}

func ownershipCtx(id string, claims *service.SessionClaims) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/items/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/items/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	if claims != nil {
		c.Set(ContextIdentityKey, claims)
	}
	return c
}

func TestRequireItemOwnership(t *testing.T) {
	items := store.NewItemStore(itemFixture())
	defer items.Close()

	called := false
	next := func(c echo.Context) error { called = true; return c.String(http.StatusOK, "ok") }
	mw := RequireItemOwnership(items)(next)

	httpCode := func(err error) int {
		he := &echo.HTTPError{}
		require.ErrorAs(t, err, &he)
		return he.Code
	}

	t.Run("anonymous", func(t *testing.T) {
		called = false
		err := mw(ownershipCtx("9", nil))
		require.Equal(t, http.StatusUnauthorized, httpCode(err))
		require.False(t, called)
	})

	t.Run("bad id", func(t *testing.T) {
		err := mw(ownershipCtx("abc", &service.SessionClaims{ID: 7, Role: model.RoleUser}))
		require.Equal(t, http.StatusBadRequest, httpCode(err))
	})

	t.Run("missing item reports 404 before ownership", func(t *testing.T) {
		// 即使呼叫者不是擁有者，查無項目優先回 404
		err := mw(ownershipCtx("99", &service.SessionClaims{ID: 5, Role: model.RoleUser}))
		require.Equal(t, http.StatusNotFound, httpCode(err))
	})

	t.Run("non-owner", func(t *testing.T) {
		called = false
		err := mw(ownershipCtx("9", &service.SessionClaims{ID: 5, Role: model.RoleUser}))
		require.Equal(t, http.StatusForbidden, httpCode(err))
		require.False(t, called)
	})

	t.Run("owner", func(t *testing.T) {
		called = false
		require.NoError(t, mw(ownershipCtx("9", &service.SessionClaims{ID: 7, Role: model.RoleUser})))
		require.True(t, called)
	})

	t.Run("admin", func(t *testing.T) {
		called = false
		require.NoError(t, mw(ownershipCtx("9", &service.SessionClaims{ID: 5, Role: model.RoleAdmin})))
		require.True(t, called)
	})

	t.Run("storage failure", func(t *testing.T) {
		broken := store.NewItemStore(&database.FakeDB{
			ReadFn: func(context.Context, string) ([]byte, error) { return nil, errors.New("io") },
		})
		defer broken.Close()
		err := RequireItemOwnership(broken)(next)(ownershipCtx("9", &service.SessionClaims{ID: 7, Role: model.RoleUser}))
		require.Equal(t, http.StatusInternalServerError, httpCode(err))
	})
}
