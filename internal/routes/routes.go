package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/lavega/internal/handlers"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB) {
	importHandler := handlers.NewImportHandler(db)
	catalogHandler := handlers.NewCatalogHandler(db)
	orderHandler := handlers.NewOrderHandler(db)
	reportHandler := handlers.NewReportHandler(db)

	api := app.Group("/api")

	api.Post("/imports", importHandler.Upload)

	categories := api.Group("/categories")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Post("/", catalogHandler.CreateCategory)

	products := api.Group("/products")
	products.Get("/uncategorized", catalogHandler.UncategorizedProducts)
	products.Post("/category", catalogHandler.AssignCategory)

	orders := api.Group("/orders")
	orders.Get("/", orderHandler.ListOrders)
	orders.Get("/dates", orderHandler.PendingDates)
	orders.Post("/:id/complete", orderHandler.CompleteOrder)
	orders.Delete("/:id", orderHandler.DeleteOrder)

	api.Get("/stats", orderHandler.Stats)

	api.Get("/shopping-list/:date", reportHandler.ShoppingList)
	api.Get("/shopping-list/:date/download", reportHandler.DownloadShoppingList)
	api.Get("/picking/:date/download", reportHandler.DownloadPickingManifest)
}
