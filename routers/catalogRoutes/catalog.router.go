package catalogRoutes

import (
	catalogController "docseva/controllers/catalog"
	"docseva/middleware"
	catalogValidator "docseva/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

func SetupCatalogRoutes(app *fiber.App) {
	catalogGroup := app.Group("/catalog")

	// Public browse
	catalogGroup.Get("/categories", catalogController.ListCategories)
	catalogGroup.Get("/products", catalogController.ListProducts)
	catalogGroup.Get("/products/:id", catalogController.GetProduct)

	// Admin catalog management
	adminGroup := catalogGroup.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Post("/categories", catalogValidator.Category(), catalogController.CreateCategory)
	adminGroup.Post("/sub-categories", catalogValidator.SubCategory(), catalogController.CreateSubCategory)
	adminGroup.Post("/products", catalogValidator.Product(), catalogController.CreateProduct)
	adminGroup.Put("/products/:id", catalogValidator.Product(), catalogController.UpdateProduct)
	adminGroup.Delete("/products/:id", catalogController.DeleteProduct)
}
