package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcalger/store-backend-go/handlers"
)

func SetupRoutes(e *echo.Echo, h *handlers.Handler) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/seed", h.SeedCatalog)

	// Catalog
	e.GET("/products", h.ListProducts)
	e.GET("/products/:id", h.GetProduct)
	e.POST("/products/:id/reviews", h.AddReview)

	// Wishlist / checkout
	e.POST("/wishlist", h.AddWishlistItem)
	e.POST("/checkout", h.Checkout)

	// Users
	e.POST("/users", h.CreateUser)

	// Schema insight for dev tools
	e.GET("/schema", h.SchemaOverview)
}
