package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcalger/store-backend-go/middleware"
	"github.com/mcalger/store-backend-go/models"
)

type CheckoutRequest struct {
	Items           []models.OrderItem `json:"items"`
	UserID          string             `json:"user_id,omitempty"`
	Email           string             `json:"email,omitempty"`
	ShippingAddress map[string]any     `json:"shipping_address,omitempty"`
}

// Checkout computes the order total locally as sum(price*qty) and persists
// a pending order. Orders are never deduplicated: submitting the same
// payload twice creates two orders.
func (h *Handler) Checkout(c echo.Context) error {
	defer func() {
		ok := c.Response().Status >= 200 && c.Response().Status < 300
		middleware.RecordOperation("checkout", ok)
	}()

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid checkout payload"})
	}

	order := models.Order{
		UserID:          req.UserID,
		Items:           req.Items,
		Total:           models.ComputeTotal(req.Items),
		Email:           req.Email,
		ShippingAddress: req.ShippingAddress,
	}
	order.ApplyDefaults()
	if err := models.ValidateEntity(&order); err != nil {
		return invalidPayload(c, err)
	}

	orderID, err := h.store.Insert(c.Request().Context(), order.CollectionName(), &order)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"status":   "ok",
		"order_id": orderID,
		"total":    order.Total,
	})
}
