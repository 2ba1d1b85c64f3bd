package cartRoutes

import (
	cartController "docseva/controllers/cart"
	"docseva/middleware"
	cartValidator "docseva/validators/cart"

	"github.com/gofiber/fiber/v2"
)

func SetupCartRoutes(app *fiber.App) {
	cartGroup := app.Group("/cart", middleware.JWTMiddleware)

	cartGroup.Get("/", cartController.GetCart)
	cartGroup.Post("/items", cartValidator.AddToCart(), cartController.AddToCart)
	cartGroup.Put("/items", cartValidator.UpdateQuantity(), cartController.UpdateQuantity)
	cartGroup.Delete("/items/:id", cartController.RemoveItem)
	cartGroup.Delete("/", cartController.ClearCart)
}
