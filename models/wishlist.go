package models

// WishlistItem is persisted unconditionally; the referenced product is not
// checked for existence.
type WishlistItem struct {
	ProductID string `bson:"product_id" json:"product_id" validate:"required"`
}

func (w *WishlistItem) CollectionName() string { return "wishlist" }

func (w *WishlistItem) ApplyDefaults() {}
