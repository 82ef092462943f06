package handlers

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcalger/store-backend-go/middleware"
	"github.com/mcalger/store-backend-go/models"
)

// CreateUser validates a user payload, hashes the password and persists
// the record. The password is never echoed back.
func (h *Handler) CreateUser(c echo.Context) error {
	defer func() {
		ok := c.Response().Status >= 200 && c.Response().Status < 300
		middleware.RecordOperation("create_user", ok)
	}()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unable to read request body"})
	}

	entity, err := models.Validate("user", body)
	if err != nil {
		return invalidPayload(c, err)
	}
	user := entity.(*models.User)

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to process password"})
	}
	user.Password = string(hashed)

	userID, err := h.store.Insert(c.Request().Context(), user.CollectionName(), user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"status": "ok", "id": userID})
}
