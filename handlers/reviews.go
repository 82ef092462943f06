package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcalger/store-backend-go/middleware"
	"github.com/mcalger/store-backend-go/models"
)

// AddReview validates a review payload and persists it tagged with the
// product id from the path. The product must exist; the review document
// carries the reference by id only and the product is left untouched.
func (h *Handler) AddReview(c echo.Context) error {
	defer func() {
		ok := c.Response().Status >= 200 && c.Response().Status < 300
		middleware.RecordOperation("add_review", ok)
	}()

	ctx := c.Request().Context()
	productID := c.Param("id")
	if _, err := h.store.FindByID(ctx, "product", productID); err != nil {
		return respondError(c, err)
	}

	var review models.Review
	if err := c.Bind(&review); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid review payload"})
	}

	// The path parameter wins over whatever the body carries.
	review.ProductID = productID
	review.ApplyDefaults()
	if err := models.ValidateEntity(&review); err != nil {
		return invalidPayload(c, err)
	}

	if _, err := h.store.Insert(ctx, review.CollectionName(), &review); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"status": "ok"})
}
