package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcalger/store-backend-go/models"
)

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "MC Alger Store API running"})
}

// Health is a read-only diagnostic: whether the store is configured and
// reachable, and which collections exist.
func (h *Handler) Health(c echo.Context) error {
	ctx := c.Request().Context()

	resp := map[string]any{
		"backend":             "running",
		"database_configured": h.store.Configured(),
		"database_connected":  false,
		"collections":         []string{},
	}

	if !h.store.Configured() {
		return c.JSON(http.StatusOK, resp)
	}

	if err := h.store.Ping(ctx); err != nil {
		resp["database_error"] = err.Error()
		return c.JSON(http.StatusOK, resp)
	}
	resp["database_connected"] = true

	if names, err := h.store.Collections(ctx); err == nil {
		resp["collections"] = names
	} else {
		resp["database_error"] = err.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

// SchemaOverview exposes the structural definition of the four entities
// for tooling consumption.
func (h *Handler) SchemaOverview(c echo.Context) error {
	return c.JSON(http.StatusOK, models.Schemas())
}
