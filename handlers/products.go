package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcalger/store-backend-go/middleware"
	"github.com/mcalger/store-backend-go/store"
)

// ListProducts returns the catalog filtered by the optional q, category,
// color, size and collection query parameters, AND-combined.
func (h *Handler) ListProducts(c echo.Context) error {
	defer func() {
		ok := c.Response().Status >= 200 && c.Response().Status < 300
		middleware.RecordOperation("list_products", ok)
	}()

	query := store.ProductQuery{
		Title:      c.QueryParam("q"),
		Category:   c.QueryParam("category"),
		Color:      c.QueryParam("color"),
		Collection: c.QueryParam("collection"),
		Size:       c.QueryParam("size"),
	}

	ctx := c.Request().Context()
	seq, err := h.store.Find(ctx, "product", query.Filter())
	if err != nil {
		return respondError(c, err)
	}

	docs, err := store.Drain(ctx, seq)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *Handler) GetProduct(c echo.Context) error {
	doc, err := h.store.FindByID(c.Request().Context(), "product", c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}
