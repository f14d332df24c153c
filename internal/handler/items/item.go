package items

import (
	"errors"
	"net/http"
	"strconv"

	"gallery/internal/api"
	"gallery/internal/middleware"
	"gallery/internal/model"
	"gallery/internal/store"

	"github.com/labstack/echo/v4"
)

// @Summary     列出全部項目
// @Description 依儲存順序回傳所有項目，匿名可讀
// @Tags        items
// @Produce     json
// @Success     200 {array}  model.Item
// @Failure     500 {object} api.ErrorResponse
// @Router      /items [get]
func ListItemsHandler(s *store.ItemStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := s.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to read items"})
		}
		return c.JSON(http.StatusOK, list)
	}
}

// @Summary     取得單一項目
// @Description 依 ID 查詢並回傳項目，匿名可讀
// @Tags        items
// @Produce     json
// @Param       id  path     int true "項目 ID"
// @Success     200 {object} model.Item
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /items/{id} [get]
func GetItemHandler(s *store.ItemStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid item ID"})
		}
		item, err := s.Get(c.Request().Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Item not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to retrieve item"})
		}
		return c.JSON(http.StatusOK, item)
	}
}

// @Summary     建立新項目
// @Description 建立項目並以當前身分蓋上擁有者；任何已登入的使用者都可建立
// @Tags        items
// @Accept      json
// @Produce     json
// @Param       item body api.CreateItemRequest true "項目內容"
// @Success     201 {object} model.Item
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /items [post]
func CreateItemHandler(s *store.ItemStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Name and description are required"})
		}

		claims := middleware.CurrentIdentity(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication required"})
		}

		item, err := s.Create(c.Request().Context(), &model.Item{
			Name:  req.Name,
			Desc:  req.Desc,
			Imgs:  req.Imgs,
			Owner: claims.ID,
		})
		if errors.Is(err, store.ErrValidation) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Name and description are required"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to create item"})
		}
		return c.JSON(http.StatusCreated, item)
	}
}

// @Summary     更新項目
// @Description 部分更新：請求中出現的欄位整個取代，缺席欄位不動；id 與 owner 不可改
// @Tags        items
// @Accept      json
// @Produce     json
// @Param       id   path int                   true "項目 ID"
// @Param       item body api.UpdateItemRequest true "要更新的欄位"
// @Success     200 {object} model.Item
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /items/{id} [put]
func UpdateItemHandler(s *store.ItemStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid item ID"})
		}
		var req api.UpdateItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}

		item, err := s.Update(c.Request().Context(), id, store.ItemPatch{
			Name: req.Name,
			Desc: req.Desc,
			Imgs: req.Imgs,
		})
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Item not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to update item"})
		}
		return c.JSON(http.StatusOK, item)
	}
}

// @Summary     刪除項目
// @Description 移除項目並回傳被刪除的紀錄
// @Tags        items
// @Produce     json
// @Param       id  path     int true "項目 ID"
// @Success     200 {object} api.DeleteItemResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /items/{id} [delete]
func DeleteItemHandler(s *store.ItemStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid item ID"})
		}
		item, err := s.Delete(c.Request().Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Item not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to delete item"})
		}
		return c.JSON(http.StatusOK, api.DeleteItemResponse{
			Message: "Item deleted successfully",
			Item:    *item,
		})
	}
}
