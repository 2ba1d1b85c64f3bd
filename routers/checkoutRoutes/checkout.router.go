package checkoutRoutes

import (
	checkoutController "docseva/controllers/checkout"
	"docseva/middleware"
	checkoutValidator "docseva/validators/checkout"

	"github.com/gofiber/fiber/v2"
)

func SetupCheckoutRoutes(app *fiber.App) {
	checkoutGroup := app.Group("/checkout", middleware.JWTMiddleware)

	checkoutGroup.Get("/session", checkoutController.GetSession)
	checkoutGroup.Post("/identity", checkoutValidator.IdentityLink(), checkoutController.SaveIdentityLink)
	checkoutGroup.Post("/delivery", checkoutValidator.Delivery(), checkoutController.SaveDelivery)
	checkoutGroup.Post("/place-order", checkoutController.PlaceOrder)
}
