package orderRoutes

import (
	orderController "docseva/controllers/order"
	"docseva/middleware"
	orderValidator "docseva/validators/order"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(app *fiber.App) {
	orderGroup := app.Group("/orders", middleware.JWTMiddleware)

	// User routes
	orderGroup.Get("/", orderController.ListMyOrders)
	orderGroup.Get("/:id", orderController.GetOrder)

	// Admin routes
	adminGroup := app.Group("/admin/orders", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Get("/", orderController.ListAllOrders)
	adminGroup.Get("/dashboard", orderController.Dashboard)
	adminGroup.Put("/:id/status", orderValidator.SetStatus(), orderController.SetOrderStatus)
}
