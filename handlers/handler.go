// Package handlers contains the HTTP surface of the store API. Handlers
// hold the document store through a narrow interface so tests can swap in
// a fake without a running database.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mcalger/store-backend-go/models"
	"github.com/mcalger/store-backend-go/store"
)

// Store is the slice of the document-access layer the handlers use.
type Store interface {
	Configured() bool
	Insert(ctx context.Context, collection string, doc any) (string, error)
	Find(ctx context.Context, collection string, filter bson.M) (store.Seq, error)
	FindByID(ctx context.Context, collection, id string) (store.PublicDoc, error)
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
}

type Handler struct {
	store Store
}

func New(s Store) *Handler {
	return &Handler{store: s}
}

// respondError maps a store failure to its HTTP shape: configuration
// errors are service-unavailable, missing documents are a definite 404,
// anything else is internal.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNotConfigured):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "database not configured"})
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// invalidPayload maps a validation failure to 422 with field detail, and
// any other decode problem to a plain 400.
func invalidPayload(c echo.Context, err error) error {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
}
