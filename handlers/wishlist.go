package handlers

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcalger/store-backend-go/middleware"
	"github.com/mcalger/store-backend-go/models"
)

// AddWishlistItem persists a wishlist entry unconditionally: the product
// id is not checked for existence.
func (h *Handler) AddWishlistItem(c echo.Context) error {
	defer func() {
		ok := c.Response().Status >= 200 && c.Response().Status < 300
		middleware.RecordOperation("add_wishlist", ok)
	}()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unable to read request body"})
	}

	item, err := models.Validate("wishlist", body)
	if err != nil {
		return invalidPayload(c, err)
	}

	if _, err := h.store.Insert(c.Request().Context(), item.CollectionName(), item); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"status": "ok"})
}
