package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mcalger/store-backend-go/middleware"
	"github.com/mcalger/store-backend-go/models"
)

// SeedCatalog inserts the sample catalog when the product collection is
// empty; a non-empty catalog is left alone.
func (h *Handler) SeedCatalog(c echo.Context) error {
	defer func() {
		ok := c.Response().Status >= 200 && c.Response().Status < 300
		middleware.RecordOperation("seed", ok)
	}()

	ctx := c.Request().Context()
	n, err := h.store.Count(ctx, "product", bson.M{})
	if err != nil {
		return respondError(c, err)
	}
	if n > 0 {
		return c.JSON(http.StatusOK, map[string]string{"status": "exists"})
	}

	for i := range sampleProducts {
		product := sampleProducts[i]
		product.ApplyDefaults()
		if _, err := h.store.Insert(ctx, product.CollectionName(), &product); err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"status": "seeded",
		"count":  len(sampleProducts),
	})
}

var sampleProducts = []models.Product{
	{
		Title:        "MC Alger Home Kit 2024",
		Description:  "Official home kit in green with red trim. Lightweight fabric, breathable panels, embroidered crest.",
		Price:        floatPtr(12999),
		Category:     "t-shirt",
		Color:        "green",
		Collection:   "home",
		Sizes:        []string{"S", "M", "L", "XL"},
		Images:       []models.ProductImage{{URL: "https://images.unsplash.com/photo-1546519638-68e109498ffc?q=80&w=1200", Alt: "Home kit"}},
		Rating:       floatPtr(4.9),
		ReviewsCount: intPtr(128),
	},
	{
		Title:        "MCA Training Tracksuit",
		Description:  "High-performance tracksuit with MCA crest. Tapered fit, zip pockets, moisture-wicking.",
		Price:        floatPtr(18999),
		Category:     "tracksuit",
		Color:        "green",
		Collection:   "training",
		Sizes:        []string{"M", "L", "XL"},
		Images:       []models.ProductImage{{URL: "https://images.unsplash.com/photo-1511735111819-9a3f7709049c?q=80&w=1200", Alt: "Tracksuit"}},
		Rating:       floatPtr(4.7),
		ReviewsCount: intPtr(76),
	},
	{
		Title:        "Retro 1990s Hoodie",
		Description:  "Throwback hoodie inspired by MCA 90s era. Cozy fleece, vintage crest patch.",
		Price:        floatPtr(14999),
		Category:     "hoodie",
		Color:        "red",
		Collection:   "retro",
		Sizes:        []string{"S", "M", "L"},
		Images:       []models.ProductImage{{URL: "https://images.unsplash.com/photo-1544025162-d76694265947?q=80&w=1200", Alt: "Retro hoodie"}},
		Rating:       floatPtr(4.6),
		ReviewsCount: intPtr(52),
	},
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
