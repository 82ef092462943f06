package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mcalger/store-backend-go/config"
	"github.com/mcalger/store-backend-go/database"
	"github.com/mcalger/store-backend-go/handlers"
	custommiddleware "github.com/mcalger/store-backend-go/middleware"
	"github.com/mcalger/store-backend-go/routes"
	"github.com/mcalger/store-backend-go/store"
)

func main() {
	// Load environment variables
	config.LoadEnv()
	cfg := config.Load()

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(custommiddleware.Prometheus())

	// Connect to MongoDB. A failed connect is not fatal: the service
	// starts degraded, the health endpoint reports the state, and every
	// store operation answers service-unavailable.
	db, err := database.Connect(cfg.MongoURI, cfg.DatabaseName)
	if err != nil {
		log.Println("Database unavailable, starting degraded:", err)
	}

	// Setup routes
	h := handlers.New(store.New(db))
	routes.SetupRoutes(e, h)

	// Start the server
	fmt.Printf("Server starting on port %s...\n", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
