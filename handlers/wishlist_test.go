package handlers

import (
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mcalger/store-backend-go/models"
)

func TestAddWishlistItemSkipsExistenceCheck(t *testing.T) {
	ms := newMemStore()
	h := New(ms)

	// The product does not exist; the entry is persisted regardless.
	missing := primitive.NewObjectID().Hex()
	c, rec := newTestContext(http.MethodPost, "/wishlist", `{"product_id":"`+missing+`"}`)
	if err := h.AddWishlistItem(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", rec.Code, rec.Body.String())
	}

	if len(ms.inserted["wishlist"]) != 1 {
		t.Fatalf("inserted %d wishlist items, want 1", len(ms.inserted["wishlist"]))
	}
	item := ms.inserted["wishlist"][0].(*models.WishlistItem)
	if item.ProductID != missing {
		t.Errorf("product_id = %q, want %q", item.ProductID, missing)
	}
}

func TestAddWishlistItemMissingProductID(t *testing.T) {
	ms := newMemStore()
	h := New(ms)

	c, rec := newTestContext(http.MethodPost, "/wishlist", `{}`)
	if err := h.AddWishlistItem(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	if len(ms.inserted["wishlist"]) != 0 {
		t.Error("invalid wishlist items must not be persisted")
	}
}

func TestAddWishlistItemMalformedBody(t *testing.T) {
	h := New(newMemStore())

	c, rec := newTestContext(http.MethodPost, "/wishlist", `{not json`)
	if err := h.AddWishlistItem(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
